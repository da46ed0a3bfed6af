package invaders

// RNG is a deterministic pseudo-random number generator (64-bit LCG).
// The whole simulation draws from one RNG so a seed reproduces a run.
type RNG struct {
	state uint64
}

// NewRNG creates an RNG with the given seed. Seed 0 is replaced by 1.
func NewRNG(seed int64) *RNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &RNG{state: s}
}

func (r *RNG) next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a value in [0, n). Non-positive n yields 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.next() >> 33) % uint64(n)) //#nosec G115 -- n is positive and result < n
}

// Range returns a value in [lo, hi).
func (r *RNG) Range(lo, hi int) int {
	return lo + r.Intn(hi-lo)
}

// State returns the internal state for snapshots.
func (r *RNG) State() uint64 {
	return r.state
}
