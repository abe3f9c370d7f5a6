package distance

import (
	"colony-route-service/internal/domain"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticDistanceProvider(t *testing.T) {
	p := NewStaticDistanceProvider([]Pair{
		{From: "HUB", To: "A", Distance: 1000, Duration: 300},
		{From: "A", To: "HUB", Distance: 1100, Duration: 320},
	})

	r, err := p.GetDistance(context.Background(), "HUB", "A")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, r.Distance)
	assert.Equal(t, 300.0, r.Duration)

	_, err = p.GetDistance(context.Background(), "A", "B")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	many, err := p.GetDistances(context.Background(), "A", []string{"HUB", "B"})
	require.NoError(t, err)
	assert.Len(t, many, 1)
	assert.Equal(t, 1100.0, many["HUB"].Distance)
}

func TestNewMatrixDistanceProvider(t *testing.T) {
	labels := []string{"HUB", "A", "B"}
	p, err := NewMatrixDistanceProvider(labels,
		[][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}},
		[][]float64{{0, 10, 20}, {10, 0, 30}, {20, 30, 0}},
	)
	require.NoError(t, err)

	r, err := p.GetDistance(context.Background(), "B", "A")
	require.NoError(t, err)
	assert.Equal(t, 3.0, r.Distance)
	assert.Equal(t, 30.0, r.Duration)

	_, err = p.GetDistance(context.Background(), "A", "A")
	assert.ErrorIs(t, err, domain.ErrNotFound, "diagonal is not indexed")

	_, err = NewMatrixDistanceProvider(labels, [][]float64{{0, 1}, {1, 0}}, nil)
	assert.Error(t, err)
}
