package usecase

import (
	"math"
	"strconv"
	"strings"
)

// ResolveGroupCount reconciles a requested team count and/or group size into
// the number of groups to build. Zero means there is nothing to group.
func ResolveGroupCount(nameCount int, teamCount, groupSize *int) (int, error) {
	if teamCount == nil && groupSize == nil {
		return 0, invalidInput("Provide either team count or group size.")
	}
	if teamCount != nil && *teamCount < 1 {
		return 0, invalidInput("Team count must be at least 1.")
	}
	if groupSize != nil && *groupSize < 1 {
		return 0, invalidInput("Group size must be at least 1.")
	}

	if teamCount == nil {
		if nameCount == 0 {
			return 0, nil
		}
		return ceilDiv(nameCount, *groupSize), nil
	}

	if groupSize != nil && ceilDiv(nameCount, *groupSize) != *teamCount {
		return 0, invalidInput("Team count and group size describe different groupings.")
	}
	return min(*teamCount, nameCount), nil
}

// GroupSizes spreads n members over groups as evenly as possible; the first
// n mod groups groups get one extra member.
func GroupSizes(n, groups int) []int {
	if groups <= 0 {
		return nil
	}
	base, remainder := n/groups, n%groups
	sizes := make([]int, groups)
	for i := range sizes {
		sizes[i] = base
		if i < remainder {
			sizes[i]++
		}
	}
	return sizes
}

// ParseCount reads an optional whole-number field. Blank text means unset.
func ParseCount(raw, label string) (*int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, invalidInput(label + " must be a whole number.")
	}
	n := int(f)
	return &n, nil
}

// ParseSampleSize reads the cold-call sample size. Blank text means 1;
// fractional sizes are floored after the lower-bound check.
func ParseSampleSize(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 1, nil
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 1 {
		return 0, invalidInput("Sample size must be at least 1.")
	}
	if f > math.MaxInt32 {
		return math.MaxInt32, nil
	}
	return int(f), nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
