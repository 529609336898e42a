package sim

import "math/rand"

// Source is the random number source used by generation.
// *rand.Rand satisfies it; tests may supply scripted sources.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// NewSource returns a deterministic source for the given seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// chance returns true with probability p.
func chance(src Source, p float64) bool {
	if p <= 0 {
		return false
	}
	return src.Float64() < p
}

// uniform returns a value in [lo, hi).
func uniform(src Source, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + src.Float64()*(hi-lo)
}
