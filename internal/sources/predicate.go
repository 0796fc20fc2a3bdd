package sources

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var yearSegment = regexp.MustCompile(`^\d{4}$`)

// MatchesHost reports whether the URL's hostname belongs to the profile.
func (p *Profile) MatchesHost(u *url.URL) bool {
	host := strings.ToLower(u.Hostname())
	for _, h := range p.Hosts {
		if host == strings.ToLower(h) {
			return true
		}
	}
	return false
}

// IsArticleURL reports whether rawURL looks like an article page of this
// publisher: the host must belong to the profile, the path+query must
// match one of the article patterns, and the structural predicate
// (segment count, date ranges) must hold. The structural check exists to
// reject accidental regex matches.
func (p *Profile) IsArticleURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if !p.MatchesHost(u) {
		return false
	}

	target := u.Path
	if u.RawQuery != "" {
		target += "?" + u.RawQuery
	}

	matched := false
	for _, re := range p.compiled {
		if re.MatchString(target) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}

	segments := splitPath(u.Path)
	if p.MinPathSegments > 0 && len(segments) < p.MinPathSegments {
		return false
	}
	if p.RequireDatePath && !hasValidDateRun(segments) {
		return false
	}

	return true
}

// splitPath splits a URL path into its non-empty segments.
func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// hasValidDateRun scans for a yyyy/mm/dd segment triple with the month in
// 1..12 and the day in 1..31. A date-shaped run with an out-of-range day
// (e.g. /2024/05/99/) does not count.
func hasValidDateRun(segments []string) bool {
	for i := 0; i+2 < len(segments); i++ {
		if !yearSegment.MatchString(segments[i]) {
			continue
		}
		month, okM := twoDigit(segments[i+1])
		day, okD := twoDigit(segments[i+2])
		if okM && okD && month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			return true
		}
	}
	return false
}

// twoDigit parses a strictly two-digit segment.
func twoDigit(s string) (int, bool) {
	if len(s) != 2 {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
