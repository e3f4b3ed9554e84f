package vmath

// FastRand is a xorshift64 pseudo-random generator
// A single seeded instance is threaded explicitly through every system that
// needs randomness so one seed reproduces one run
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator; a zero seed is remapped to 1
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// Next returns the next raw 64-bit value
func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n), 0 if n <= 0
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Normal approximates a standard normal sample by summing uniforms
// Mean 3, variance 0.5 for six uniforms; rescaled to ~N(0,1)
func (r *FastRand) Normal() float64 {
	s := 0.0
	for i := 0; i < 6; i++ {
		s += r.Float64()
	}
	return (s - 3.0) * 1.41421356
}
