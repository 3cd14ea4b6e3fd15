package service

import (
	"math"
	"sort"

	"resume-builder/internal/domain"
)

// cosineSimilarity computes the cosine of the angle between two embedding
// vectors. Returns 0.0 when either vector has zero magnitude or the
// dimensions disagree.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// rankBySimilarity scores each item against the query embedding and
// returns the items sorted by descending score. The sort is stable, so
// ties keep their input order.
func rankBySimilarity(query []float32, items []domain.RankableItem, embeddings [][]float32) []domain.RankableItem {
	ranked := make([]domain.RankableItem, len(items))
	for i, item := range items {
		item.Score = cosineSimilarity(query, embeddings[i])
		ranked[i] = item
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
