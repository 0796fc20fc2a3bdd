package sources

// Generic fallback selectors appended to every publisher's cascades.
// Publisher-specific selectors come first so they win when both match.
var (
	genericTitleSelectors = []string{
		".article_title", ".news_title", ".title", "h1",
	}

	genericAuthorSelectors = []string{
		".reporter", ".byline", ".writer", ".article-info", ".news-info",
		".writer-name", ".article-writer", ".article_writer",
		"span[class*='writer']", "span[class*='name']", "div[class*='byline']",
		"em[class*='name']", ".reporter-name", ".reporter_name",
		".journalist", ".journalist-name", ".byline-name", ".byline_name",
		".article-meta", ".article_meta", ".news-meta", ".news_meta",
		".article_author", ".news_author", ".author_info",
	}

	genericContentSelectors = []string{
		".article_body", ".article-body", ".news_body", ".news-body",
		".article_content", ".news_content", ".article-text", ".article_text",
		".content", ".story-body", ".story_body", ".post-content",
		".post_content", ".entry-content", ".entry_content", ".main-content",
		".main_content", ".article", "article", "#article", ".news-article",
		".view_body",
	}

	genericContentExclude = []string{
		"script", "style", ".ad", ".advertisement", ".banner",
		".related-articles", ".social", ".tag", ".recommend",
	}
)

// GenericContentSelectors returns the shared body-container fallback
// cascade, used when no profile matches the page host.
func GenericContentSelectors() []string {
	return genericContentSelectors
}

// GenericContentExcludes returns the shared exclusion selectors applied
// to body containers before text extraction.
func GenericContentExcludes() []string {
	return genericContentExclude
}

// withGenericFallbacks appends the shared fallback cascades to a
// publisher's own selectors.
func withGenericFallbacks(s FieldSelectors) FieldSelectors {
	s.Title = append(s.Title, genericTitleSelectors...)
	s.Author = append(s.Author, genericAuthorSelectors...)
	s.Content = append(s.Content, genericContentSelectors...)
	if len(s.ContentExclude) == 0 {
		s.ContentExclude = genericContentExclude
	}
	return s
}

// DefaultProfiles returns the built-in publisher profiles. These are the
// publishers the service was written for; a sources YAML file can
// override or extend them.
func DefaultProfiles() []*Profile {
	return []*Profile{
		{
			Key:   "donga",
			Name:  "동아일보",
			Hosts: []string{"www.donga.com", "donga.com", "news.donga.com"},
			ArticlePatterns: []string{
				`/news/\w+/\d{4}/\d{2}/\d{2}/\d+`,
				`/news/\w+/\d{4}/\d{2}/\d{2}/[A-Z0-9]+`,
			},
			RequireDatePath: true,
			MinPathSegments: 6,
			Categories: []Category{
				{URL: "https://www.donga.com/news/Opinion", Label: "오피니언"},
				{URL: "https://www.donga.com/news/Politics", Label: "정치"},
				{URL: "https://www.donga.com/news/Economy", Label: "경제"},
				{URL: "https://www.donga.com/news/Inter", Label: "국제"},
				{URL: "https://www.donga.com/news/Society", Label: "사회"},
				{URL: "https://www.donga.com/news/Culture", Label: "문화"},
				{URL: "https://www.donga.com/news/Entertainment", Label: "연예"},
				{URL: "https://www.donga.com/news/Sports", Label: "스포츠"},
				{URL: "https://www.donga.com/news/Health", Label: "헬스동아"},
				{URL: "https://www.donga.com/news/TrendNews/daily", Label: "트렌드뉴스"},
			},
			Selectors: withGenericFallbacks(FieldSelectors{
				Title:   []string{".article_title", ".news_title"},
				Author:  []string{".article_info .byline", ".writer_info"},
				Content: []string{".article_txt", ".article_body"},
			}),
		},
		{
			Key:   "hankyung",
			Name:  "한국경제",
			Hosts: []string{"www.hankyung.com", "hankyung.com"},
			ArticlePatterns: []string{
				`/(?:[a-z\-]+/)?article/\d{8,}`,
			},
			MinPathSegments: 2,
			Categories: []Category{
				{URL: "https://www.hankyung.com/all-news-opinion", Label: "오피니언"},
				{URL: "https://www.hankyung.com/all-news-economy", Label: "경제"},
				{URL: "https://www.hankyung.com/all-news-politics", Label: "정치"},
				{URL: "https://www.hankyung.com/all-news-society", Label: "사회"},
				{URL: "https://www.hankyung.com/all-news-finance", Label: "증권"},
				{URL: "https://www.hankyung.com/all-news-realestate", Label: "부동산"},
				{URL: "https://www.hankyung.com/all-news-international", Label: "국제"},
				{URL: "https://www.hankyung.com/all-news-it", Label: "IT/과학"},
				{URL: "https://www.hankyung.com/all-news-life", Label: "생활/문화"},
				{URL: "https://www.hankyung.com/all-news-sports", Label: "스포츠"},
				{URL: "https://www.hankyung.com/all-news-entertainment", Label: "연예"},
			},
			Selectors: withGenericFallbacks(FieldSelectors{
				Title:   []string{".headline", ".article-tit"},
				Author:  []string{".author .name", ".reporter-wrap"},
				Content: []string{"#articletxt", ".article-body"},
			}),
		},
		{
			Key:   "sisaon",
			Name:  "시사오늘",
			Hosts: []string{"www.sisaon.co.kr", "sisaon.co.kr"},
			ArticlePatterns: []string{
				`/news/articleView\.html\?idxno=\d+`,
				`/articleView\.html\?idxno=\d+`,
				`/news/view\.html\?idxno=\d+`,
				`/article/view\.html\?idxno=\d+`,
			},
			Categories: []Category{
				{URL: "https://www.sisaon.co.kr/news/articleList.html?sc_sub_section_code=S2N29&view_type=sm", Label: "정치"},
				{URL: "https://www.sisaon.co.kr/news/articleList.html?sc_sub_section_code=S2N30&view_type=sm", Label: "경제"},
				{URL: "https://www.sisaon.co.kr/news/articleList.html?sc_sub_section_code=S2N31&view_type=sm", Label: "산업"},
				{URL: "https://www.sisaon.co.kr/news/articleList.html?sc_sub_section_code=S2N32&view_type=sm", Label: "건설·부동산"},
				{URL: "https://www.sisaon.co.kr/news/articleList.html?sc_sub_section_code=S2N33&view_type=sm", Label: "IT"},
				{URL: "https://www.sisaon.co.kr/news/articleList.html?sc_sub_section_code=S2N34&view_type=sm", Label: "유통·바이오"},
				{URL: "https://www.sisaon.co.kr/news/articleList.html?sc_sub_section_code=S2N35&view_type=sm", Label: "사회"},
				{URL: "https://www.sisaon.co.kr/news/articleList.html?sc_sub_section_code=S2N55&view_type=sm", Label: "자동차"},
			},
			Selectors: withGenericFallbacks(FieldSelectors{
				Title:   []string{".article-head-title", ".heading"},
				Author:  []string{".profile-name", ".names", ".info-text .name"},
				Content: []string{"#article-view-content-div", ".article-veiw-body"},
			}),
		},
		{
			Key:   "mbn",
			Name:  "MBN",
			Hosts: []string{"www.mbn.co.kr", "mbn.co.kr"},
			ArticlePatterns: []string{
				`/news/\w+/\d{6,}`,
				`/vod/programContents/preview/\d+`,
			},
			MinPathSegments: 3,
			Categories: []Category{
				{URL: "https://www.mbn.co.kr/news/politics/", Label: "정치"},
				{URL: "https://www.mbn.co.kr/news/economy/", Label: "경제"},
				{URL: "https://www.mbn.co.kr/news/society/", Label: "사회"},
				{URL: "https://www.mbn.co.kr/news/international/", Label: "국제"},
				{URL: "https://www.mbn.co.kr/news/culture/", Label: "문화"},
				{URL: "https://www.mbn.co.kr/news/sports/", Label: "스포츠"},
			},
			Selectors: withGenericFallbacks(FieldSelectors{
				Title:   []string{".news_title_text", ".article_title"},
				Author:  []string{".author_desc", ".name_text"},
				Content: []string{".detail_text", "#newsViewArea"},
			}),
		},
		{
			Key:   "chosun",
			Name:  "조선일보",
			Hosts: []string{"www.chosun.com", "chosun.com"},
			ArticlePatterns: []string{
				`/[a-z\-]+/(?:[a-z\-]+/)*\d{4}/\d{2}/\d{2}/[A-Z0-9]+`,
			},
			RequireDatePath: true,
			Feeds: []string{
				"https://www.chosun.com/arc/outboundfeeds/rss/category/politics/?outputType=xml",
				"https://www.chosun.com/arc/outboundfeeds/rss/category/economy/?outputType=xml",
				"https://www.chosun.com/arc/outboundfeeds/rss/category/national/?outputType=xml",
				"https://www.chosun.com/arc/outboundfeeds/rss/category/international/?outputType=xml",
				"https://www.chosun.com/arc/outboundfeeds/rss/category/culture-life/?outputType=xml",
				"https://www.chosun.com/arc/outboundfeeds/rss/category/opinion/?outputType=xml",
				"https://www.chosun.com/arc/outboundfeeds/rss/category/sports/?outputType=xml",
				"https://www.chosun.com/arc/outboundfeeds/rss/category/entertainments/?outputType=xml",
			},
			FeedCategoryLabels: map[string]string{
				"politics":       "정치",
				"economy":        "경제",
				"national":       "사회",
				"international":  "국제",
				"culture-life":   "문화/라이프",
				"opinion":        "오피니언",
				"sports":         "스포츠",
				"entertainments": "연예",
			},
			Selectors: withGenericFallbacks(FieldSelectors{
				Title:   []string{".article-header__headline"},
				Author:  []string{".byline__author"},
				Content: []string{".article-body", "section.article-body"},
			}),
		},
	}
}
