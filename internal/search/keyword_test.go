package search

import (
	"strings"
	"testing"

	"github.com/lextransition/lexcite-cli/internal/corpus"
)

func pagesFixture() []corpus.Page {
	return []corpus.Page{
		{File: "bns.pdf", Number: 1, Text: "Section 103 of the BNS replaces IPC Section 302. Murder is punishable with death or imprisonment for life."},
		{File: "bns.pdf", Number: 2, Text: "Culpable homicide not amounting to murder is dealt with separately from murder; murder requires intention."},
		{File: "ipc.pdf", Number: 5, Text: "Whoever commits theft shall be punished with imprisonment."},
	}
}

func TestQuery_RanksByTermFrequency(t *testing.T) {
	idx := NewKeywordIndex(pagesFixture())

	hits := idx.Query("murder", 3)
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	// Page 2 mentions "murder" three times, page 1 once.
	if hits[0].Page != 2 || hits[0].Score != 3 {
		t.Fatalf("unexpected top hit: %+v", hits[0])
	}
	if hits[1].Page != 1 || hits[1].Score != 1 {
		t.Fatalf("unexpected second hit: %+v", hits[1])
	}
}

func TestQuery_CaseInsensitive(t *testing.T) {
	idx := NewKeywordIndex(pagesFixture())

	lower := idx.Query("murder", 3)
	upper := idx.Query("MURDER", 3)
	if len(lower) != len(upper) {
		t.Fatalf("case changed hit count: %d vs %d", len(lower), len(upper))
	}
	for i := range lower {
		if lower[i] != upper[i] {
			t.Fatalf("hit %d differs: %+v vs %+v", i, lower[i], upper[i])
		}
	}
}

func TestQuery_SubstringMatchesSectionSuffix(t *testing.T) {
	idx := NewKeywordIndex([]corpus.Page{
		{File: "a.pdf", Number: 1, Text: "Refer to Section 302-A for the aggravated form."},
	})
	hits := idx.Query("302", 3)
	if len(hits) != 1 {
		t.Fatalf("expected substring match on 302-A, got %d hits", len(hits))
	}
}

func TestQuery_TopKTruncates(t *testing.T) {
	pages := make([]corpus.Page, 0, 10)
	for i := 1; i <= 10; i++ {
		pages = append(pages, corpus.Page{File: "x.pdf", Number: i, Text: "theft theft theft"})
	}
	idx := NewKeywordIndex(pages)

	hits := idx.Query("theft", 4)
	if len(hits) != 4 {
		t.Fatalf("expected 4 hits, got %d", len(hits))
	}
	// Equal scores rank by page ascending.
	for i, h := range hits {
		if h.Page != i+1 {
			t.Fatalf("tie-break broken at %d: %+v", i, h)
		}
	}
}

func TestQuery_NoMatchAndEmptyQuery(t *testing.T) {
	idx := NewKeywordIndex(pagesFixture())

	if hits := idx.Query("zebra", 3); hits != nil {
		t.Fatalf("expected nil for no match, got %v", hits)
	}
	if hits := idx.Query("   ", 3); hits != nil {
		t.Fatalf("expected nil for blank query, got %v", hits)
	}
	empty := NewKeywordIndex(nil)
	if hits := empty.Query("murder", 3); hits != nil {
		t.Fatalf("expected nil from empty index, got %v", hits)
	}
}

func TestTokenize(t *testing.T) {
	toks := Tokenize("  IPC Section 302  ")
	want := []string{"ipc", "section", "302"}
	if len(toks) != len(want) {
		t.Fatalf("unexpected tokens: %v", toks)
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Fatalf("token %d: got %q want %q", i, toks[i], want[i])
		}
	}
	if Tokenize("") != nil {
		t.Fatal("expected nil for empty query")
	}
}

func TestExtractSnippet_WindowAndFallback(t *testing.T) {
	long := strings.Repeat("filler ", 100) + "murder" + strings.Repeat(" trailing", 100)
	snip := ExtractSnippet(long, []string{"murder"})
	if !strings.HasPrefix(snip, "murder") {
		t.Fatalf("snippet does not start at match: %q", snip[:20])
	}
	if len(snip) > SnippetWindow {
		t.Fatalf("snippet too long: %d", len(snip))
	}

	// No locatable offset: first bytes of the page, bounded.
	noMatch := ExtractSnippet(strings.Repeat("a", 500), []string{"zzz"})
	if len(noMatch) != 200 {
		t.Fatalf("fallback length: got %d want 200", len(noMatch))
	}
}

func TestExtractSnippet_CollapsesNewlines(t *testing.T) {
	snip := ExtractSnippet("line one\r\nmurder charge\nline three", []string{"murder"})
	if strings.ContainsAny(snip, "\r\n") {
		t.Fatalf("newlines survived: %q", snip)
	}
}

func TestSortHits_Deterministic(t *testing.T) {
	hits := []Hit{
		{File: "b.pdf", Page: 1, Score: 2},
		{File: "a.pdf", Page: 3, Score: 2},
		{File: "a.pdf", Page: 1, Score: 2},
		{File: "c.pdf", Page: 9, Score: 5},
	}
	SortHits(hits)
	want := []Hit{
		{File: "c.pdf", Page: 9, Score: 5},
		{File: "a.pdf", Page: 1, Score: 2},
		{File: "a.pdf", Page: 3, Score: 2},
		{File: "b.pdf", Page: 1, Score: 2},
	}
	for i := range want {
		if hits[i] != want[i] {
			t.Fatalf("position %d: got %+v want %+v", i, hits[i], want[i])
		}
	}
}
