package colony

import "colony-route-service/internal/domain"

// Heuristic is the static desirability of an edge: eta(i,j) = 1 / (d(i,j) + epsilon).
type Heuristic struct {
	dist    *domain.DistanceMatrix
	epsilon float64
}

// NewHeuristic returns the heuristic over dist; epsilon guards zero-distance edges.
func NewHeuristic(dist *domain.DistanceMatrix, epsilon float64) Heuristic {
	return Heuristic{dist: dist, epsilon: epsilon}
}

// Eta returns 1 / (d(i,j) + epsilon).
func (h Heuristic) Eta(i, j int) float64 {
	return 1 / (h.dist.At(i, j) + h.epsilon)
}
