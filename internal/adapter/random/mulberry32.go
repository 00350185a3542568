package random

import "math"

const (
	mulberryIncrement = 0x6D2B79F5
	twoTo32           = 4294967296.0
)

// Mulberry32 is a 32-bit generator whose output stream is a pure function of its seed.
type Mulberry32 struct {
	state uint32
}

// NewMulberry32 seeds the generator. The seed is added to the increment as a
// float and then wrapped to 32 bits, so fractional and negative seeds are
// accepted and truncate toward zero.
func NewMulberry32(seed float64) *Mulberry32 {
	return &Mulberry32{state: toUint32(seed + mulberryIncrement)}
}

// Uint32 advances the state and returns the next raw 32-bit output.
func (m *Mulberry32) Uint32() uint32 {
	t := m.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	m.state = t
	return t ^ (t >> 14)
}

// Float64 returns the next draw in [0, 1).
func (m *Mulberry32) Float64() float64 {
	return float64(m.Uint32()) / twoTo32
}

// toUint32 wraps a float to 32 bits the way ECMAScript ToUint32 does.
func toUint32(f float64) uint32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	m := math.Mod(math.Trunc(f), twoTo32)
	if m < 0 {
		m += twoTo32
	}
	return uint32(m)
}
