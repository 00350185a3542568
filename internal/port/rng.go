package port

// RNG produces draws in [0, 1).
type RNG interface {
	Float64() float64
}
