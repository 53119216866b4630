package engine

import (
	"fmt"
	"strings"

	"github.com/lextransition/lexcite-cli/internal/search"
)

// RenderMarkdown formats hits into the block-quoted citation layout used as
// the human-readable interchange format: a leading Answer line and one
// bullet per hit carrying Source, Page, optionally Score, and the snippet.
// Returns "" for an empty hit list.
func RenderMarkdown(hits []search.Hit, semantic bool) string {
	if len(hits) == 0 {
		return ""
	}

	lines := make([]string, 0, len(hits)+1)
	if semantic {
		lines = append(lines, "> **Answer (embedding search, grounded):**\n")
	} else {
		lines = append(lines, "> **Answer (grounded snippets):**\n")
	}
	for _, h := range hits {
		if semantic {
			lines = append(lines, fmt.Sprintf("> - **Source:** %s | **Page:** %d | **Score:** %.3f\n>   > _%s_\n",
				h.File, h.Page, h.Score, h.Snippet))
		} else {
			lines = append(lines, fmt.Sprintf("> - **Source:** %s | **Page:** %d\n>   > _%s_\n",
				h.File, h.Page, h.Snippet))
		}
	}
	return strings.Join(lines, "\n")
}
