package index

// Manifest describes a persisted page-vector index and how to interpret it.
type Manifest struct {
	IndexVersion int    `json:"index_version"`
	CreatedAt    string `json:"created_at"`
	ModelID      string `json:"model_id"`
	Dim          int    `json:"dim"`
	Normalize    bool   `json:"normalize"`
	VectorFile   string `json:"vector_file"`
	PagesFile    string `json:"pages_file"`
}

// PageEntry is one page row in pages.jsonl, positionally aligned with the
// vectors in the vector file.
type PageEntry struct {
	File    string `json:"file"`
	Page    int    `json:"page"`
	Snippet string `json:"snippet"`
}

// Index is a loaded page-vector index.
type Index struct {
	Manifest Manifest
	Pages    []PageEntry
	Vectors  []float32
}

// Vector returns the embedding of the i-th page entry.
func (idx *Index) Vector(i int) []float32 {
	dim := idx.Manifest.Dim
	return idx.Vectors[i*dim : (i+1)*dim]
}
