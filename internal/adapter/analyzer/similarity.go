package analyzer

import "classroom/internal/domain"

// Jaccard returns |a ∩ b| / |a ∪ b|. Two empty sets score 0 so that students
// with no stated preferences never look like perfect matches.
func Jaccard(a, b domain.TokenSet) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0.0
	}

	intersection := 0
	for t := range a {
		if b.Has(t) {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0.0
	}

	return float64(intersection) / float64(union)
}

// BuildSimilarityMatrix scores every pair of sets. The diagonal is 1.
func BuildSimilarityMatrix(sets []domain.TokenSet) domain.SimilarityMatrix {
	n := len(sets)
	matrix := make(domain.SimilarityMatrix, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		matrix[i][i] = 1
		for j := i + 1; j < n; j++ {
			sim := Jaccard(sets[i], sets[j])
			matrix[i][j] = sim
			matrix[j][i] = sim
		}
	}
	return matrix
}
