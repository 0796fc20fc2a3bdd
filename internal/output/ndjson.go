// Package output streams extracted articles as NDJSON, one object per
// line, to stdout or a file.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/ysleecn1234/newspaper-project/internal/domain"
)

// Writer emits article records as NDJSON. Safe for concurrent use;
// workers emit as they finish.
type Writer struct {
	mu     sync.Mutex
	out    io.Writer
	closer io.Closer
	enc    *json.Encoder
}

// NewWriter creates a Writer for the given path. An empty path writes
// to stdout.
func NewWriter(path string) (*Writer, error) {
	if path == "" {
		return newWriter(os.Stdout, nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file %q: %w", path, err)
	}
	return newWriter(f, f), nil
}

func newWriter(out io.Writer, closer io.Closer) *Writer {
	w := &Writer{out: out, closer: closer}
	w.enc = json.NewEncoder(out)
	w.enc.SetEscapeHTML(false)
	return w
}

// Write emits one article as a single JSON line.
func (w *Writer) Write(article *domain.ArticleRecord) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.enc.Encode(article); err != nil {
		return fmt.Errorf("failed to encode article %q: %w", article.URL, err)
	}
	return nil
}

// Close closes the underlying file, if any.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closer == nil {
		return nil
	}
	return w.closer.Close()
}
