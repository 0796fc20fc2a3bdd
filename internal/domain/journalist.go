package domain

import "time"

// JournalistStat tracks cumulative statistics for one reporter at one
// publisher. Uniquely keyed by (Name, Source); mutated incrementally on
// every successfully extracted, authored article and never deleted.
type JournalistStat struct {
	ID               int64      `db:"id"`
	Name             string     `db:"name"`
	Source           string     `db:"source"`
	TotalArticles    int        `db:"total_articles"`
	FirstArticleDate *time.Time `db:"first_article_date"`
	LastArticleDate  *time.Time `db:"last_article_date"`
	Categories       []string   `db:"categories"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`

	// Append-only parallel history arrays of prior articles.
	ArticleTitles         []string `db:"article_titles"`
	ArticleContents       []string `db:"article_contents"`
	ArticleURLs           []string `db:"article_urls"`
	ArticleCategories     []string `db:"article_categories"`
	ArticlePublishedDates []string `db:"article_published_dates"`
}

// ArticleSnapshot is the slice of an article appended to a journalist's
// history arrays when the article is recorded.
type ArticleSnapshot struct {
	Title         string
	Content       string
	URL           string
	PublishedDate *time.Time
	Category      string
}
