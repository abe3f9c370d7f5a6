package services

import (
	"colony-route-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMatrix(t *testing.T, rows [][]float64) *domain.DistanceMatrix {
	t.Helper()
	m, err := domain.NewDistanceMatrix(rows)
	require.NoError(t, err)
	return m
}

var fourStops = [][]float64{
	{0, 1, 9, 9},
	{1, 0, 9, 2},
	{9, 9, 0, 1},
	{9, 2, 1, 0},
}

func TestNearestNeighborTour(t *testing.T) {
	sol := NearestNeighborTour(mustMatrix(t, fourStops))

	assert.Equal(t, domain.Tour{0, 1, 3, 2}, sol.Tour)
	assert.Equal(t, 13.0, sol.Distance)
}

func TestNearestNeighborTourBreaksTiesByIndex(t *testing.T) {
	m := mustMatrix(t, [][]float64{
		{0, 5, 5},
		{5, 0, 1},
		{5, 1, 0},
	})

	sol := NearestNeighborTour(m)
	assert.Equal(t, domain.Tour{0, 1, 2}, sol.Tour)
	assert.NoError(t, sol.Tour.Validate(3))
}
