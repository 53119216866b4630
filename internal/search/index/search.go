package index

import (
	"github.com/lextransition/lexcite-cli/internal/search"
)

// Search ranks every stored page vector against the query vector by cosine
// similarity and returns the topK best hits, sorted descending by score with
// deterministic tie-breaks. An empty index yields nil.
func (idx *Index) Search(queryVec []float32, topK int) ([]search.Hit, error) {
	if len(idx.Pages) == 0 {
		return nil, nil
	}
	if topK <= 0 {
		topK = search.DefaultTopK
	}
	if idx.Manifest.Normalize {
		queryVec = NormalizeL2(queryVec)
	}

	hits := make([]search.Hit, 0, len(idx.Pages))
	for i, p := range idx.Pages {
		score, err := Cosine(queryVec, idx.Vector(i))
		if err != nil {
			return nil, err
		}
		hits = append(hits, search.Hit{
			File:    p.File,
			Page:    p.Page,
			Snippet: p.Snippet,
			Score:   score,
		})
	}

	search.SortHits(hits)
	if len(hits) > topK {
		hits = hits[:topK]
	}
	return hits, nil
}
