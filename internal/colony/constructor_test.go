package colony

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTourConstructorBuildsValidTours(t *testing.T) {
	dist := mustMatrix(t, tenStops)
	p := NewPheromoneMatrix(10, 1)
	c := NewTourConstructor(dist, NewSelector(p, NewHeuristic(dist, 1e-10), 1, 5, nil))

	for seed := int64(1); seed <= 50; seed++ {
		got, err := c.Construct(rand.New(rand.NewSource(seed)))
		require.NoError(t, err)

		require.NoError(t, got.Tour.Validate(10), "seed %d", seed)
		assert.Equal(t, 0, got.Tour[0])
		assert.InDelta(t, recomputeDistance(tenStops, got.Tour), got.Distance, 1e-9)
		assert.Zero(t, got.Fallbacks)
	}
}

func TestTourConstructorTwoLocations(t *testing.T) {
	rows := [][]float64{{0, 3}, {3, 0}}
	dist := mustMatrix(t, rows)
	c := NewTourConstructor(dist, NewSelector(NewPheromoneMatrix(2, 1), NewHeuristic(dist, 1e-10), 1, 1, nil))

	got, err := c.Construct(rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, []int(got.Tour))
	assert.Equal(t, 6.0, got.Distance)
}

type stuckSampler struct{}

func (stuckSampler) Sample([]float64, *rand.Rand) int { return 0 }

func TestTourConstructorRejectsVisitedPick(t *testing.T) {
	dist := mustMatrix(t, fourStops)
	c := NewTourConstructor(dist, NewSelector(NewPheromoneMatrix(4, 1), NewHeuristic(dist, 1e-10), 1, 1, stuckSampler{}))

	_, err := c.Construct(rand.New(rand.NewSource(1)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid location 0")
}

func TestTourConstructorCountsFallbacks(t *testing.T) {
	dist := mustMatrix(t, fourStops)
	c := NewTourConstructor(dist, NewSelector(NewPheromoneMatrix(4, 0), NewHeuristic(dist, 1e-10), 1, 1, nil))

	got, err := c.Construct(rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	require.NoError(t, got.Tour.Validate(4))
	assert.Equal(t, 3, got.Fallbacks)
}
