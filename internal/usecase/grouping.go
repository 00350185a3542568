package usecase

import (
	"classroom/internal/adapter/random"
	"classroom/internal/domain"
	"classroom/internal/port"
)

// SampleNames shuffles names and keeps the first size of them.
func SampleNames(names []string, size int, rng port.RNG) []string {
	if len(names) == 0 || size < 1 {
		return nil
	}
	shuffled := random.Shuffle(names, rng)
	return shuffled[:min(size, len(shuffled))]
}

// Partition shuffles names and cuts them into groups contiguous runs sized
// by GroupSizes.
func Partition(names []string, groups int, rng port.RNG) []domain.Group {
	if len(names) == 0 || groups < 1 {
		return nil
	}
	shuffled := random.Shuffle(names, rng)

	result := make([]domain.Group, 0, groups)
	cursor := 0
	for _, size := range GroupSizes(len(shuffled), groups) {
		result = append(result, domain.Group(shuffled[cursor:cursor+size]))
		cursor += size
	}
	return result
}

// RoundRobin shuffles participants into a single review cycle: each one
// reviews the next, and the last reviews the first.
func RoundRobin(participants []string, rng port.RNG) []domain.Pair {
	if len(participants) < 2 {
		return nil
	}
	shuffled := random.Shuffle(participants, rng)

	pairs := make([]domain.Pair, len(shuffled))
	for i, reviewer := range shuffled {
		pairs[i] = domain.Pair{
			Reviewer: reviewer,
			Reviewee: shuffled[(i+1)%len(shuffled)],
		}
	}
	return pairs
}

// GreedyPreferenceGroups builds groups of the given sizes from roster
// indices. order fixes anchor order and tie-breaks: each group starts from
// the next unplaced index and is filled with the candidate of highest mean
// similarity to the members placed so far, the earliest remaining candidate
// winning ties. This is a greedy heuristic, not an optimal partition.
func GreedyPreferenceGroups(matrix domain.SimilarityMatrix, sizes []int, order []int) [][]int {
	remaining := append([]int(nil), order...)

	groups := make([][]int, 0, len(sizes))
	for _, size := range sizes {
		if len(remaining) == 0 {
			break
		}

		anchor := remaining[0]
		remaining = remaining[1:]
		members := []int{anchor}

		for len(members) < size && len(remaining) > 0 {
			bestPos := 0
			bestScore := -1.0

			for pos, candidate := range remaining {
				sum := 0.0
				for _, member := range members {
					sum += matrix[candidate][member]
				}
				score := sum / float64(len(members))
				if score > bestScore {
					bestScore = score
					bestPos = pos
				}
			}

			members = append(members, remaining[bestPos])
			remaining = append(remaining[:bestPos], remaining[bestPos+1:]...)
		}

		groups = append(groups, members)
	}
	return groups
}

func indexRange(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
