package colony

import (
	"colony-route-service/internal/domain"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fourStops has a known optimal cycle of 13: 0-1-3-2-0 (or its reverse).
var fourStops = [][]float64{
	{0, 1, 9, 9},
	{1, 0, 9, 2},
	{9, 9, 0, 1},
	{9, 2, 1, 0},
}

// tenStops is the classic 10-location delivery instance.
var tenStops = [][]float64{
	{0, 29, 20, 21, 16, 31, 100, 12, 4, 31},
	{29, 0, 15, 29, 28, 40, 72, 21, 29, 41},
	{20, 15, 0, 15, 14, 25, 81, 9, 23, 27},
	{21, 29, 15, 0, 4, 12, 92, 12, 25, 13},
	{16, 28, 14, 4, 0, 16, 94, 9, 20, 16},
	{31, 40, 25, 12, 16, 0, 95, 24, 36, 3},
	{100, 72, 81, 92, 94, 95, 0, 90, 101, 99},
	{12, 21, 9, 12, 9, 24, 90, 0, 15, 25},
	{4, 29, 23, 25, 20, 36, 101, 15, 0, 35},
	{31, 41, 27, 13, 16, 3, 99, 25, 35, 0},
}

func mustMatrix(t *testing.T, rows [][]float64) *domain.DistanceMatrix {
	t.Helper()
	m, err := domain.NewDistanceMatrix(rows)
	require.NoError(t, err)
	return m
}

// bruteForceOptimum enumerates every tour from the depot.
func bruteForceOptimum(m *domain.DistanceMatrix) float64 {
	n := m.Size()
	perm := make(domain.Tour, n)
	used := make([]bool, n)
	perm[0] = domain.Depot
	used[domain.Depot] = true
	best := math.Inf(1)

	var rec func(pos int)
	rec = func(pos int) {
		if pos == n {
			if d := m.TourDistance(perm); d < best {
				best = d
			}
			return
		}
		for loc := 1; loc < n; loc++ {
			if used[loc] {
				continue
			}
			used[loc] = true
			perm[pos] = loc
			rec(pos + 1)
			used[loc] = false
		}
	}
	rec(1)
	return best
}

// recomputeDistance sums edges independently of DistanceMatrix.TourDistance.
func recomputeDistance(rows [][]float64, tour domain.Tour) float64 {
	total := 0.0
	for i := range tour {
		total += rows[tour[i]][tour[(i+1)%len(tour)]]
	}
	return total
}
