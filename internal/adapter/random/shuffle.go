package random

import "classroom/internal/port"

// Shuffle returns a permuted copy of items using Fisher-Yates from the last
// index down. items is left untouched.
func Shuffle[T any](items []T, rng port.RNG) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := int(rng.Float64() * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// ShuffleSeeded shuffles with a fresh generator for seed.
func ShuffleSeeded[T any](items []T, seed *float64) []T {
	return Shuffle(items, New(seed))
}
