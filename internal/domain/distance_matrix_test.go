package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDistanceMatrixRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
	}{
		{"empty", nil},
		{"single location", [][]float64{{0}}},
		{"ragged", [][]float64{{0, 1}, {1}}},
		{"not square", [][]float64{{0, 1, 2}, {1, 0, 2}}},
		{"negative entry", [][]float64{{0, -1}, {1, 0}}},
		{"nan entry", [][]float64{{0, math.NaN()}, {1, 0}}},
		{"infinite entry", [][]float64{{0, math.Inf(1)}, {1, 0}}},
		{"tour cost overflows", [][]float64{{0, 1e308, 1e308}, {1e308, 0, 1e308}, {1e308, 1e308, 0}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDistanceMatrix(tc.rows)
			require.ErrorIs(t, err, ErrConfiguration)

			var cerr *ConfigError
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, "distances", cerr.Field)
		})
	}
}

func TestDistanceMatrixCopiesInput(t *testing.T) {
	rows := [][]float64{{0, 2}, {2, 0}}
	m, err := NewDistanceMatrix(rows)
	require.NoError(t, err)

	rows[0][1] = 100
	assert.Equal(t, 2.0, m.At(0, 1))
	assert.Equal(t, [][]float64{{0, 2}, {2, 0}}, m.Rows())
}

func TestDistanceMatrixSymmetry(t *testing.T) {
	sym, err := NewDistanceMatrix([][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}})
	require.NoError(t, err)
	assert.True(t, sym.IsSymmetric(0))

	asym, err := NewDistanceMatrix([][]float64{{0, 1}, {4, 0}})
	require.NoError(t, err)
	assert.False(t, asym.IsSymmetric(1e-9))
}

func TestTourDistanceIncludesClosingEdge(t *testing.T) {
	m, err := NewDistanceMatrix([][]float64{
		{0, 1, 9, 9},
		{1, 0, 9, 2},
		{9, 9, 0, 1},
		{9, 2, 1, 0},
	})
	require.NoError(t, err)

	assert.Equal(t, 13.0, m.TourDistance(Tour{0, 1, 3, 2}))
	assert.Equal(t, 20.0, m.TourDistance(Tour{0, 1, 2, 3}))
	assert.Equal(t, 0.0, m.TourDistance(nil))
}

func TestTourValidate(t *testing.T) {
	assert.NoError(t, Tour{0, 2, 1}.Validate(3))

	assert.Error(t, Tour{0, 1}.Validate(3), "too short")
	assert.Error(t, Tour{1, 0, 2}.Validate(3), "not starting at depot")
	assert.Error(t, Tour{0, 1, 1}.Validate(3), "duplicate")
	assert.Error(t, Tour{0, 1, 3}.Validate(3), "out of range")
}

func TestConfigErrorMessage(t *testing.T) {
	err := NewConfigError("rho", "must be within [0,1], got %g", 2.0)
	assert.Equal(t, "configuration error: rho: must be within [0,1], got 2", err.Error())
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestLargeEntriesKeepTourCostFinite(t *testing.T) {
	m, err := NewDistanceMatrix([][]float64{{0, 1e307, 1e307}, {1e307, 0, 1e307}, {1e307, 1e307, 0}})
	require.NoError(t, err)

	d := m.TourDistance(Tour{0, 1, 2})
	assert.False(t, math.IsInf(d, 0))
	assert.InDelta(t, 3e307, d, 1e293)
}
