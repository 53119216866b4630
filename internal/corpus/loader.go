// Package corpus turns a directory of PDF files into an ordered sequence of
// page records for indexing.
package corpus

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// ErrNoExtractor indicates that PDF text extraction is entirely unavailable
// in this process. It is distinct from "no PDF files found", which is a valid
// empty result.
var ErrNoExtractor = errors.New("pdf text extraction is not available")

// Extractor extracts per-page plain text from one document.
type Extractor interface {
	ExtractPages(path string) ([]string, error)
}

// Loader scans a corpus directory and extracts page records.
type Loader struct {
	ext Extractor
	log *zap.Logger
}

// NewLoader returns a Loader using the given extractor. ext may be nil, in
// which case every load reports ErrNoExtractor.
func NewLoader(ext Extractor, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{ext: ext, log: log}
}

// Available reports whether the loader can extract text at all.
func (l *Loader) Available() bool { return l != nil && l.ext != nil }

// LoadDir extracts page records from every PDF immediately inside dir.
//
// The directory is created if missing. Only immediate children with a .pdf
// extension are considered — no recursion. Files are processed in sorted
// order; a corrupt or unreadable file is skipped and the pass continues.
// Pages with empty or whitespace-only text are dropped. An empty result with
// a nil error is valid and means the corpus has no extractable text.
func (l *Loader) LoadDir(dir string) ([]Page, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create corpus dir %s: %w", dir, err)
	}
	if !l.Available() {
		return nil, ErrNoExtractor
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read corpus dir %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var pages []Page
	for _, name := range names {
		texts, err := l.ext.ExtractPages(filepath.Join(dir, name))
		if err != nil {
			l.log.Debug("skipping unreadable PDF",
				zap.String("file", name),
				zap.Error(err))
			continue
		}
		for i, text := range texts {
			text = strings.TrimSpace(text)
			if text == "" {
				continue
			}
			pages = append(pages, Page{File: name, Number: i + 1, Text: text})
		}
	}

	l.log.Debug("corpus loaded",
		zap.String("dir", dir),
		zap.Int("files", len(names)),
		zap.Int("pages", len(pages)))
	return pages, nil
}
