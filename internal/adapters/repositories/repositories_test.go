package repositories

import (
	"colony-route-service/internal/domain"
	"colony-route-service/internal/platform/db"
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.OpenSqlite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, InitSchema(context.Background(), conn))
	return conn
}

var threeStops = LocationSeed{
	Locations: []string{"HUB", "A", "B"},
	Distances: [][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}},
	Durations: [][]float64{{0, 60, 120}, {60, 0, 180}, {120, 180, 0}},
}

func TestInitSchemaIsIdempotent(t *testing.T) {
	conn := openTestDB(t)
	assert.NoError(t, InitSchema(context.Background(), conn))
}

func TestDialectPlaceholders(t *testing.T) {
	assert.Equal(t, "?", SQLite.ph(3))
	assert.Equal(t, "$3", Postgres.ph(3))
	assert.Equal(t, "?,?,?", SQLite.phList(1, 3))
	assert.Equal(t, "$2,$3", Postgres.phList(2, 2))
}

func TestSeedAndLocationStore(t *testing.T) {
	ctx := context.Background()
	conn := openTestDB(t)
	require.NoError(t, Seed(ctx, conn, SQLite, threeStops))
	// Reseeding upserts instead of failing on the primary keys.
	require.NoError(t, Seed(ctx, conn, SQLite, threeStops))

	store := NewSQLLocationStore(conn, SQLite)

	names, err := store.ListLocations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"HUB", "A", "B"}, names)

	r, err := store.GetDistance(ctx, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, 3.0, r.Distance)
	assert.Equal(t, 180.0, r.Duration)

	many, err := store.GetDistances(ctx, "HUB", []string{"A", "B", "A", " ", "Z"})
	require.NoError(t, err)
	assert.Len(t, many, 2)
	assert.Equal(t, 2.0, many["B"].Distance)

	_, err = store.GetDistance(ctx, "A", "Z")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSeedFromJSON(t *testing.T) {
	ctx := context.Background()
	conn := openTestDB(t)

	path := filepath.Join(t.TempDir(), "locations.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"locations": ["HUB", "A"],
		"distances": [[0, 5], [5, 0]]
	}`), 0o600))

	require.NoError(t, SeedFromJSON(ctx, conn, SQLite, path))

	r, err := NewSQLLocationStore(conn, SQLite).GetDistance(ctx, "A", "HUB")
	require.NoError(t, err)
	assert.Equal(t, 5.0, r.Distance)
	assert.Equal(t, 5.0, r.Duration, "durations default to distances")
}

func TestSeedRejectsInvalidCatalog(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()

	tests := []LocationSeed{
		{Locations: []string{"HUB", "HUB"}, Distances: [][]float64{{0, 1}, {1, 0}}},
		{Locations: []string{"HUB", ""}, Distances: [][]float64{{0, 1}, {1, 0}}},
		{Locations: []string{"HUB", "A"}, Distances: [][]float64{{0, 1}}},
		{Locations: []string{"HUB", "A"}, Distances: [][]float64{{0, -1}, {1, 0}}},
	}
	for i, seed := range tests {
		assert.Error(t, Seed(ctx, conn, SQLite, seed), "case %d", i)
	}
}

func TestRunRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLRunRepository(openTestDB(t), SQLite)

	base := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	older := &domain.Run{
		ID:               "run-1",
		CreatedAt:        base,
		Labels:           []string{"HUB", "A", "B"},
		Params:           domain.RunParams{NumAnts: 5, NumIterations: 10, Alpha: 1, Beta: 5, Rho: 0.5, Q: 100, Epsilon: 1e-10, InitialPheromone: 1, Seed: 7},
		Best:             domain.Solution{Tour: domain.Tour{0, 2, 1}, Distance: 6},
		BaselineDistance: 6,
		History:          []float64{6, 6},
	}
	newer := &domain.Run{
		ID:        "run-2",
		CreatedAt: base.Add(time.Minute),
		Best:      domain.Solution{Tour: domain.Tour{0, 1}, Distance: 2},
		History:   []float64{2},
	}
	require.NoError(t, repo.SaveRun(ctx, older))
	require.NoError(t, repo.SaveRun(ctx, newer))

	got, err := repo.GetRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, older, got)

	list, err := repo.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "run-2", list[0].ID)
	assert.Equal(t, []string{}, list[0].Labels)

	limited, err := repo.ListRuns(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	_, err = repo.GetRun(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Error(t, repo.SaveRun(ctx, older), "duplicate id")
}
