package search

// Hit is one ranked, source-attributed citation.
type Hit struct {
	// File is the basename of the source PDF.
	File string `json:"file"`
	// Page is the 1-based page number within the source document.
	Page int `json:"page"`
	// Snippet is a bounded-length excerpt drawn verbatim from the page text.
	Snippet string `json:"snippet"`
	// Score is the term-frequency score (keyword mode) or cosine similarity
	// (embedding mode).
	Score float64 `json:"score"`
}
