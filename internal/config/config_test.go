package config

import (
	"colony-route-service/internal/colony"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	t.Setenv("ACO_TEST_VALUE", "  x ")
	assert.Equal(t, "x", Get("ACO_TEST_VALUE", "fallback"))

	t.Setenv("ACO_TEST_VALUE", "   ")
	assert.Equal(t, "fallback", Get("ACO_TEST_VALUE", "fallback"))
}

func TestGetInt(t *testing.T) {
	t.Setenv("ACO_TEST_INT", "12")
	n, err := GetInt("ACO_TEST_INT", 3)
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	t.Setenv("ACO_TEST_INT", "twelve")
	_, err = GetInt("ACO_TEST_INT", 3)
	assert.Error(t, err)
}

func TestLoadServerDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_PATH", "DATABASE_URL", "SEED_PATH", "LOG_LEVEL", "ACO_WORKERS"} {
		t.Setenv(k, "")
	}

	cfg, err := LoadServer()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "data/app.db", cfg.DBPath)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, 4, cfg.Workers)
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "problem.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadProblem(t *testing.T) {
	path := writeFile(t, `
labels: [HUB, A, B]
distances:
  - [0, 1, 2]
  - [1, 0, 3]
  - [2, 3, 0]
params:
  num_ants: 4
  rho: 0.25
  seed: 9
`)

	p, err := LoadProblem(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"HUB", "A", "B"}, p.Labels)
	assert.Equal(t, 3.0, p.Distances[1][2])

	cfg := p.Params.Apply(colony.DefaultConfig())
	assert.Equal(t, 4, cfg.NumAnts)
	assert.Equal(t, 0.25, cfg.Rho)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, 100, cfg.NumIterations, "unset fields keep defaults")
	assert.Equal(t, 5.0, cfg.Beta)
}

func TestLoadProblemRejectsBadFiles(t *testing.T) {
	_, err := LoadProblem(writeFile(t, "distances: [[0, 1], [1, 0]]\nunknown: 1\n"))
	assert.Error(t, err, "unknown field")

	_, err = LoadProblem(writeFile(t, "labels: [HUB]\ndistances: [[0, 1], [1, 0]]\n"))
	assert.Error(t, err, "label count mismatch")

	_, err = LoadProblem(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
