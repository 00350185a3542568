package random

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"classroom/internal/port"
)

type systemSource struct{}

func (systemSource) Float64() float64 {
	return rand.Float64()
}

// New returns a reproducible generator for a finite seed and the process-wide
// source otherwise.
func New(seed *float64) port.RNG {
	if seed == nil || math.IsNaN(*seed) || math.IsInf(*seed, 0) {
		return systemSource{}
	}
	return NewMulberry32(*seed)
}

// NormalizeSeed turns seed field text into a seed. Blank or non-numeric text
// yields nil; it never fails.
func NormalizeSeed(raw string) *float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		if math.IsNaN(f) {
			return nil
		}
		return &f
	}
	// 0x, 0o and 0b literals
	if i, err := strconv.ParseInt(trimmed, 0, 64); err == nil {
		f := float64(i)
		return &f
	}
	return nil
}

// Seed is a convenience for callers holding an integer seed.
func Seed(v int64) *float64 {
	f := float64(v)
	return &f
}
