package colony

import (
	"math"
	"math/rand"
)

type drawKind int

const (
	drawWeighted drawKind = iota
	// All unvisited scores underflowed to zero: uniform over unvisited locations.
	drawUniformUnvisited
	// The score sum overflowed: uniform over the unvisited locations scoring +Inf.
	drawUniformInfinite
	drawNone
)

// Selector chooses an ant's next location with probability proportional to
// pheromone(c,j)^alpha * eta(c,j)^beta over the unvisited locations j.
type Selector struct {
	pheromone *PheromoneMatrix
	alpha     float64
	sampler   Sampler

	n      int
	etaPow []float64 // eta(i,j)^beta, row-major; static for the run
}

// NewSelector precomputes eta^beta for every edge. A nil sampler selects CumulativeSampler.
func NewSelector(pheromone *PheromoneMatrix, heuristic Heuristic, alpha, beta float64, sampler Sampler) *Selector {
	n := pheromone.Size()
	etaPow := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			etaPow[i*n+j] = math.Pow(heuristic.Eta(i, j), beta)
		}
	}

	if sampler == nil {
		sampler = CumulativeSampler{}
	}

	return &Selector{
		pheromone: pheromone,
		alpha:     alpha,
		sampler:   sampler,
		n:         n,
		etaPow:    etaPow,
	}
}

// Probabilities returns the selection distribution over all n locations
// from current, with zero mass on visited ones.
func (s *Selector) Probabilities(current int, visited []bool) []float64 {
	probs := make([]float64, s.n)
	s.fill(current, visited, probs)
	return probs
}

// Next draws the next location into which the ant at current moves.
// probs is scratch space of length n. fallback reports whether the draw had
// to bypass the weighted distribution. Next returns -1 when every location is visited.
func (s *Selector) Next(current int, visited []bool, probs []float64, rng *rand.Rand) (next int, fallback bool) {
	kind := s.fill(current, visited, probs)
	if kind == drawNone {
		return -1, false
	}
	return s.sampler.Sample(probs, rng), kind != drawWeighted
}

func (s *Selector) fill(current int, visited []bool, probs []float64) drawKind {
	row := current * s.n

	sum := 0.0
	unvisited := 0
	for j := 0; j < s.n; j++ {
		if visited[j] {
			probs[j] = 0
			continue
		}
		unvisited++

		score := math.Pow(s.pheromone.At(current, j), s.alpha) * s.etaPow[row+j]
		if math.IsNaN(score) {
			score = 0
		}
		probs[j] = score
		sum += score
	}

	switch {
	case unvisited == 0:
		return drawNone

	case math.IsInf(sum, 1):
		infinite := 0
		for _, p := range probs {
			if math.IsInf(p, 1) {
				infinite++
			}
		}
		// Finite scores can sum to +Inf without any single +Inf entry.
		if infinite == 0 {
			uniformUnvisited(visited, probs, unvisited)
			return drawUniformInfinite
		}
		w := 1 / float64(infinite)
		for j, p := range probs {
			if math.IsInf(p, 1) {
				probs[j] = w
			} else {
				probs[j] = 0
			}
		}
		return drawUniformInfinite

	case sum <= 0:
		uniformUnvisited(visited, probs, unvisited)
		return drawUniformUnvisited
	}

	for j := range probs {
		probs[j] /= sum
	}
	return drawWeighted
}

func uniformUnvisited(visited []bool, probs []float64, unvisited int) {
	w := 1 / float64(unvisited)
	for j := range probs {
		if visited[j] {
			probs[j] = 0
		} else {
			probs[j] = w
		}
	}
}
