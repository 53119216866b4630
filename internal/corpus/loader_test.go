package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// fakeExtractor maps file base names to page texts so loader behavior can be
// tested without real PDF files.
type fakeExtractor struct {
	pages map[string][]string
}

func (f *fakeExtractor) ExtractPages(path string) ([]string, error) {
	texts, ok := f.pages[filepath.Base(path)]
	if !ok {
		return nil, fmt.Errorf("unreadable file %s", path)
	}
	return texts, nil
}

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDir_ExtractsOrderedPages(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b.pdf")
	touch(t, dir, "a.pdf")
	touch(t, dir, "notes.txt") // ignored

	ext := &fakeExtractor{pages: map[string][]string{
		"a.pdf": {"alpha page one", "alpha page two"},
		"b.pdf": {"beta page one"},
	}}
	pages, err := NewLoader(ext, nil).LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(pages))
	}
	// Files processed in sorted order, pages 1-based.
	if pages[0].File != "a.pdf" || pages[0].Number != 1 {
		t.Fatalf("unexpected first page: %+v", pages[0])
	}
	if pages[2].File != "b.pdf" || pages[2].Number != 1 {
		t.Fatalf("unexpected last page: %+v", pages[2])
	}
}

func TestLoadDir_CreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "law_pdfs")
	pages, err := NewLoader(&fakeExtractor{}, nil).LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(pages) != 0 {
		t.Fatalf("expected empty corpus, got %d pages", len(pages))
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("dir not created: %v", err)
	}
}

func TestLoadDir_DropsBlankPages(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.pdf")
	ext := &fakeExtractor{pages: map[string][]string{
		"a.pdf": {"", "   \n\t ", "real text"},
	}}
	pages, err := NewLoader(ext, nil).LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	// Original page numbering is preserved for the surviving page.
	if pages[0].Number != 3 || pages[0].Text != "real text" {
		t.Fatalf("unexpected page: %+v", pages[0])
	}
}

func TestLoadDir_SkipsUnreadableFile(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "good.pdf")
	touch(t, dir, "corrupt.pdf") // not present in the fake's map

	ext := &fakeExtractor{pages: map[string][]string{
		"good.pdf": {"usable text"},
	}}
	pages, err := NewLoader(ext, nil).LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(pages) != 1 || pages[0].File != "good.pdf" {
		t.Fatalf("unexpected pages: %+v", pages)
	}
}

func TestLoadDir_CaseInsensitiveExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "UPPER.PDF")
	ext := &fakeExtractor{pages: map[string][]string{
		"UPPER.PDF": {"content"},
	}}
	pages, err := NewLoader(ext, nil).LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("expected .PDF to be picked up, got %d pages", len(pages))
	}
}

func TestLoadDir_NilExtractor(t *testing.T) {
	l := NewLoader(nil, nil)
	if l.Available() {
		t.Fatal("nil extractor reported available")
	}
	if _, err := l.LoadDir(t.TempDir()); err != ErrNoExtractor {
		t.Fatalf("expected ErrNoExtractor, got %v", err)
	}
}

func TestPDFExtractor_RejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "garbage.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewPDFExtractor().ExtractPages(path); err == nil {
		t.Fatal("expected error for non-PDF bytes")
	}
}
