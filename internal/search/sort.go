package search

import "sort"

// SortHits sorts hits by score (descending), then by (file, page) ascending
// so equal scores always rank in the same order.
func SortHits(hits []Hit) {
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Score == hits[j].Score {
			if hits[i].File == hits[j].File {
				return hits[i].Page < hits[j].Page
			}
			return hits[i].File < hits[j].File
		}
		return hits[i].Score > hits[j].Score
	})
}
