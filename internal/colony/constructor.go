package colony

import (
	"colony-route-service/internal/domain"
	"fmt"
	"math/rand"
)

// ant is the transient state of one tour construction.
type ant struct {
	tour    domain.Tour
	visited []bool
	probs   []float64
}

func newAnt(n int) *ant {
	return &ant{
		tour:    make(domain.Tour, 0, n),
		visited: make([]bool, n),
		probs:   make([]float64, n),
	}
}

func (a *ant) visit(loc int) {
	a.tour = append(a.tour, loc)
	a.visited[loc] = true
}

// Construction is one ant's finished tour and how many of its draws fell back to uniform.
type Construction struct {
	domain.Solution
	Fallbacks int
}

// TourConstructor builds complete cyclic tours from the depot using a Selector.
type TourConstructor struct {
	dist     *domain.DistanceMatrix
	selector *Selector
}

func NewTourConstructor(dist *domain.DistanceMatrix, selector *Selector) *TourConstructor {
	return &TourConstructor{dist: dist, selector: selector}
}

// Construct runs exactly n-1 selection steps starting from the depot.
// rng must not be shared with another goroutine.
func (c *TourConstructor) Construct(rng *rand.Rand) (Construction, error) {
	n := c.dist.Size()
	a := newAnt(n)
	a.visit(domain.Depot)

	fallbacks := 0
	current := domain.Depot
	for step := 1; step < n; step++ {
		next, fallback := c.selector.Next(current, a.visited, a.probs, rng)
		if next < 0 || next >= n || a.visited[next] {
			return Construction{}, fmt.Errorf("construct tour: step %d from %d: sampler returned invalid location %d", step, current, next)
		}
		if fallback {
			fallbacks++
		}

		a.visit(next)
		current = next
	}

	return Construction{
		Solution: domain.Solution{
			Tour:     a.tour,
			Distance: c.dist.TourDistance(a.tour),
		},
		Fallbacks: fallbacks,
	}, nil
}
