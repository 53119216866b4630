// Package mapping resolves superseded IPC section identifiers to their BNS
// (Bharatiya Nyaya Sanhita, 2023) successors. Lookup tries an exact section
// match first, then numeric-token extraction, then fuzzy matching over the
// known section keys.
package mapping

import (
	"sort"
	"strings"
)

// Mapping is one verified IPC → BNS correspondence.
type Mapping struct {
	IPCSection string `json:"ipc_section"`
	BNSSection string `json:"bns_section"`
	Notes      string `json:"notes"`
	Category   string `json:"category"`
	Source     string `json:"source"`
}

// fuzzyCutoff is the minimum similarity ratio for a fuzzy key match.
const fuzzyCutoff = 0.6

// Lookup resolves a free-form IPC reference ("302", "IPC 302", "Section
// 304-B") to its BNS mapping. Returns nil when nothing matches.
func Lookup(query string) *Mapping {
	q := normalize(query)
	if q == "" {
		return nil
	}
	if m, ok := table[q]; ok {
		return &m
	}

	// Try section-shaped tokens: digits with an optional letter suffix.
	for _, tok := range strings.Fields(q) {
		if key := sectionKey(tok); key != "" {
			if m, ok := table[key]; ok {
				return &m
			}
		}
	}

	// Fuzzy match on keys as a last resort.
	if key := closestKey(q); key != "" {
		m := table[key]
		return &m
	}
	return nil
}

// All returns every known mapping keyed by normalized IPC section.
func All() map[string]Mapping {
	out := make(map[string]Mapping, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}

// Categories returns the sorted distinct offense categories.
func Categories() []string {
	seen := map[string]struct{}{}
	for _, m := range table {
		seen[m.Category] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Count returns the number of known mappings.
func Count() int { return len(table) }

// normalize lowercases the query and strips the filler words users type
// around a section number.
func normalize(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	fields := strings.Fields(q)
	kept := fields[:0]
	for _, f := range fields {
		switch strings.Trim(f, ".") {
		case "ipc", "section", "sec", "s":
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

// sectionKey reduces a token like "304-B" or "498(a)" to the table key form
// "304b". Tokens without a digit yield "".
func sectionKey(tok string) string {
	var b strings.Builder
	hasDigit := false
	for _, r := range tok {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
			b.WriteRune(r)
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		}
	}
	if !hasDigit {
		return ""
	}
	return b.String()
}

// closestKey returns the table key most similar to q, or "" when the best
// ratio falls below fuzzyCutoff. Ties resolve to the lexicographically
// smallest key so results are deterministic.
func closestKey(q string) string {
	best := ""
	bestRatio := 0.0
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if r := similarity(q, k); r > bestRatio {
			best, bestRatio = k, r
		}
	}
	if bestRatio < fuzzyCutoff {
		return ""
	}
	return best
}

// similarity is 1 - editDistance/maxLen, a cheap stand-in for a sequence
// matcher ratio. Identical strings score 1, disjoint strings approach 0.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	la, lb := len(a), len(b)
	if la == 0 || lb == 0 {
		return 0
	}
	d := editDistance(a, b)
	max := la
	if lb > max {
		max = lb
	}
	return 1 - float64(d)/float64(max)
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
