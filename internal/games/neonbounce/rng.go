package neonbounce

// Rand is the random source the simulation draws from.
// Injecting a scripted implementation makes every random decision reproducible.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n). It returns 0 for n <= 0.
	Intn(n int) int
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a 64-bit LCG; outputs are taken from the high bits.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.Next() >> 32) % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// uniform returns a value in [lo, hi).
func uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// randInt returns an integer in [lo, hi], both ends inclusive.
func randInt(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}
