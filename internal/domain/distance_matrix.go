package domain

import "math"

// Immutable n×n table of non-negative travel costs between locations.
// Location i is the row/column index i; location 0 is the depot.
type DistanceMatrix struct {
	n     int
	cells []float64
}

// NewDistanceMatrix validates rows and copies them into a new matrix.
// Rows must form a square table of finite, non-negative values with at least two locations,
// small enough that the cost of any tour stays finite.
func NewDistanceMatrix(rows [][]float64) (*DistanceMatrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, NewConfigError("distances", "matrix must not be empty")
	}
	if n < 2 {
		return nil, NewConfigError("distances", "need at least 2 locations, got %d", n)
	}

	cells := make([]float64, n*n)
	largest := 0.0
	for i, row := range rows {
		if len(row) != n {
			return nil, NewConfigError("distances", "row %d has %d entries, want %d", i, len(row), n)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, NewConfigError("distances", "entry (%d,%d) is not finite", i, j)
			}
			if v < 0 {
				return nil, NewConfigError("distances", "entry (%d,%d) is negative: %g", i, j, v)
			}
			cells[i*n+j] = v
			largest = math.Max(largest, v)
		}
	}

	// A tour has n edges, so n*largest bounds every tour cost.
	if math.IsInf(float64(n)*largest, 0) {
		return nil, NewConfigError("distances", "entries up to %g overflow a %d-location tour cost", largest, n)
	}

	return &DistanceMatrix{n: n, cells: cells}, nil
}

// Number of locations.
func (m *DistanceMatrix) Size() int { return m.n }

// At returns the cost of travelling from i to j.
func (m *DistanceMatrix) At(i, j int) float64 { return m.cells[i*m.n+j] }

// IsSymmetric reports whether |d(i,j) - d(j,i)| <= tol for all pairs.
func (m *DistanceMatrix) IsSymmetric(tol float64) bool {
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if math.Abs(m.At(i, j)-m.At(j, i)) > tol {
				return false
			}
		}
	}
	return true
}

// Rows returns a copy of the matrix as a slice of rows.
func (m *DistanceMatrix) Rows() [][]float64 {
	out := make([][]float64, m.n)
	for i := range out {
		out[i] = append([]float64(nil), m.cells[i*m.n:(i+1)*m.n]...)
	}
	return out
}

// TourDistance sums consecutive edges of tour plus the closing edge back to tour[0].
func (m *DistanceMatrix) TourDistance(tour Tour) float64 {
	if len(tour) == 0 {
		return 0
	}

	total := 0.0
	for i := 0; i < len(tour)-1; i++ {
		total += m.At(tour[i], tour[i+1])
	}
	total += m.At(tour[len(tour)-1], tour[0])
	return total
}
