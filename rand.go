package starfield

import (
	"math/rand/v2"
	"time"
)

// Source is the uniform integer sampler used for spawning. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a uniform value in [0, n). n is always > 0.
	IntN(n int) int
}

// NewSource returns a PCG-backed Source. A zero seed is replaced by the
// current time.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// intBetween returns a uniform integer in [lo, hi). Requires hi > lo.
func intBetween(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo)
}

// nonZeroSpread returns a uniform integer in [-spread, spread] excluding 0.
// A star on the axis would never leave the origin.
func nonZeroSpread(src Source, spread int) int {
	v := src.IntN(2*spread) - spread
	if v >= 0 {
		v++
	}
	return v
}
