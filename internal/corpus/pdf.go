package corpus

import (
	"fmt"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor extracts page-level plain text using the pure-Go PDF reader.
type PDFExtractor struct{}

// NewPDFExtractor returns the default PDF text extractor.
func NewPDFExtractor() *PDFExtractor { return &PDFExtractor{} }

// ExtractPages returns the plain text of every page of the PDF at path, in
// page order. Entries may be empty when a page carries no extractable text;
// the caller decides what to do with those.
//
// The underlying reader can panic on malformed files, so the whole pass is
// guarded with recover and reported as an ordinary error.
func (e *PDFExtractor) ExtractPages(path string) (texts []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed PDF %s: %v", path, r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open PDF %s: %w", path, err)
	}
	defer f.Close()

	n := reader.NumPage()
	texts = make([]string, 0, n)
	for i := 1; i <= n; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			texts = append(texts, "")
			continue
		}
		fonts := make(map[string]*pdf.Font)
		text, err := page.GetPlainText(fonts)
		if err != nil {
			// A single unreadable page does not fail the file.
			texts = append(texts, "")
			continue
		}
		texts = append(texts, text)
	}
	return texts, nil
}
