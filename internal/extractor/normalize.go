package extractor

import "strings"

// normalizeSpace collapses all whitespace runs to single spaces and trims
// the ends. Extracted text is stored in this canonical form.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
