package engine

import (
	"strings"
	"testing"

	"github.com/lextransition/lexcite-cli/internal/search"
)

func TestRenderMarkdown_Keyword(t *testing.T) {
	hits := []search.Hit{
		{File: "bns.pdf", Page: 1, Snippet: "Punishment for murder", Score: 2},
		{File: "ipc.pdf", Page: 5, Snippet: "repealed provision", Score: 1},
	}
	out := RenderMarkdown(hits, false)

	if !strings.HasPrefix(out, "> **Answer (grounded snippets):**") {
		t.Fatalf("missing answer header: %q", out)
	}
	if !strings.Contains(out, "> - **Source:** bns.pdf | **Page:** 1") {
		t.Fatalf("missing source line: %q", out)
	}
	if !strings.Contains(out, ">   > _Punishment for murder_") {
		t.Fatalf("missing snippet: %q", out)
	}
	if strings.Contains(out, "**Score:**") {
		t.Fatalf("keyword rendering must not carry scores: %q", out)
	}
}

func TestRenderMarkdown_Semantic(t *testing.T) {
	hits := []search.Hit{
		{File: "bns.pdf", Page: 1, Snippet: "Punishment for murder", Score: 0.98765},
	}
	out := RenderMarkdown(hits, true)

	if !strings.HasPrefix(out, "> **Answer (embedding search, grounded):**") {
		t.Fatalf("missing answer header: %q", out)
	}
	if !strings.Contains(out, "**Score:** 0.988") {
		t.Fatalf("score not rendered to three decimals: %q", out)
	}
}

func TestRenderMarkdown_Empty(t *testing.T) {
	if out := RenderMarkdown(nil, false); out != "" {
		t.Fatalf("expected empty string, got %q", out)
	}
}
