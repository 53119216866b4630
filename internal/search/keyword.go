// Package search implements page-level citation retrieval: a term-frequency
// keyword index over an ingested corpus, plus the shared result types used by
// the embedding index.
package search

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/lextransition/lexcite-cli/internal/corpus"
)

const (
	// SnippetWindow is the length in bytes of the excerpt emitted per hit,
	// starting at the earliest matched query token.
	SnippetWindow = 300
	// snippetFallback bounds the excerpt when no token offset can be located
	// despite a positive score.
	snippetFallback = 200

	// DefaultTopK is the default number of hits returned per query.
	DefaultTopK = 3
)

// KeywordIndex is an in-memory page corpus scored by raw term frequency.
// It is immutable after construction; rebuilds replace the whole index.
type KeywordIndex struct {
	pages []corpus.Page
}

// NewKeywordIndex builds an index over pages. An empty page set is a valid,
// always-no-result index.
func NewKeywordIndex(pages []corpus.Page) *KeywordIndex {
	return &KeywordIndex{pages: pages}
}

// Len returns the number of indexed pages.
func (idx *KeywordIndex) Len() int { return len(idx.pages) }

// Pages returns the indexed page records in index order.
func (idx *KeywordIndex) Pages() []corpus.Page { return idx.pages }

// Query scores every page against the query and returns the topK best hits,
// or nil when nothing matches.
//
// Scoring is the sum, over query tokens, of raw substring occurrence counts
// in the case-folded page text. Substring counting is deliberate: "302"
// matches "302-A", at the cost of over-counting tokens embedded in longer
// words. Pages scoring zero are excluded entirely.
func (idx *KeywordIndex) Query(query string, topK int) []Hit {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return nil
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	folder := cases.Fold()
	var hits []Hit
	for _, p := range idx.pages {
		folded := folder.String(p.Text)
		score := 0
		for _, tok := range tokens {
			score += strings.Count(folded, tok)
		}
		if score == 0 {
			continue
		}
		hits = append(hits, Hit{
			File:    p.File,
			Page:    p.Number,
			Snippet: ExtractSnippet(p.Text, tokens),
			Score:   float64(score),
		})
	}
	if len(hits) == 0 {
		return nil
	}

	SortHits(hits)
	if len(hits) > topK {
		hits = hits[:topK]
	}
	return hits
}

// Tokenize case-folds the query and splits it on whitespace. A query with no
// tokens (empty, or punctuation/whitespace only once folded) returns nil.
func Tokenize(query string) []string {
	folder := cases.Fold()
	parts := strings.Fields(folder.String(strings.TrimSpace(query)))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ExtractSnippet emits a SnippetWindow-byte excerpt of text starting at the
// earliest offset of any token, with newlines collapsed to spaces. When no
// token offset can be located it falls back to the first snippetFallback
// bytes of the page.
func ExtractSnippet(text string, tokens []string) string {
	lowered := strings.ToLower(text)
	first := -1
	for _, tok := range tokens {
		if pos := strings.Index(lowered, tok); pos >= 0 {
			if first < 0 || pos < first {
				first = pos
			}
		}
	}

	var window string
	if first < 0 {
		window = text
		if len(window) > snippetFallback {
			window = window[:snippetFallback]
		}
	} else {
		end := first + SnippetWindow
		if end > len(text) {
			end = len(text)
		}
		window = text[first:end]
	}

	window = strings.ReplaceAll(window, "\n", " ")
	window = strings.ReplaceAll(window, "\r", " ")
	return strings.TrimSpace(window)
}
