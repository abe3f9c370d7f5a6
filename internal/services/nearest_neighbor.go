package services

import (
	"colony-route-service/internal/domain"
	"math"
)

// Build a closed tour using a greedy nearest-neighbor algorithm.
//
// The algorithm minimizes the immediate leg at each step starting from the depot.
// It does not attempt global optimization; it serves as the baseline a colony
// run is compared against. Ties go to the lower location index so the result
// is deterministic.
func NearestNeighborTour(m *domain.DistanceMatrix) domain.Solution {
	n := m.Size()
	visited := make([]bool, n)
	tour := make(domain.Tour, 0, n)

	current := domain.Depot
	visited[current] = true
	tour = append(tour, current)

	for len(tour) < n {
		best := -1
		bestDist := math.Inf(1)

		// Select next stop by minimum leg distance (greedy step).
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if d := m.At(current, j); d < bestDist || best == -1 {
				best = j
				bestDist = d
			}
		}

		visited[best] = true
		tour = append(tour, best)
		current = best
	}

	return domain.Solution{Tour: tour, Distance: m.TourDistance(tour)}
}
