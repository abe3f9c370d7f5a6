package colony

import "math/rand"

// Sampler draws one index from an explicit probability vector.
// Implementations must never return an index whose probability is zero.
type Sampler interface {
	Sample(probs []float64, rng *rand.Rand) int
}

// CumulativeSampler inverts the cumulative distribution of probs at a uniform draw.
type CumulativeSampler struct{}

func (CumulativeSampler) Sample(probs []float64, rng *rand.Rand) int {
	return SampleAt(probs, rng.Float64())
}

// SampleAt returns the first index whose cumulative probability exceeds u, for u in [0,1).
// Rounding can leave the total slightly below u; the last index with positive
// mass is returned in that case. It returns -1 when every entry is zero.
func SampleAt(probs []float64, u float64) int {
	cumulative := 0.0
	last := -1
	for i, p := range probs {
		if p <= 0 {
			continue
		}
		last = i
		cumulative += p
		if u < cumulative {
			return i
		}
	}
	return last
}
