package extractor

import "errors"

// ErrExtractionIncomplete means the page yielded no valid title or no
// valid body content. The record is discarded and the URL skipped.
var ErrExtractionIncomplete = errors.New("extraction incomplete: missing title or content")
