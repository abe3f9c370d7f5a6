package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Dialect selects placeholder syntax for the SQL backends we support.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

// ph returns the i-th (1-based) bind placeholder.
func (d Dialect) ph(i int) string {
	if d == Postgres {
		return "$" + strconv.Itoa(i)
	}
	return "?"
}

// phList returns count placeholders starting at position from, comma separated.
func (d Dialect) phList(from, count int) string {
	ph := make([]string, 0, count)
	for i := 0; i < count; i++ {
		ph = append(ph, d.ph(from+i))
	}
	return strings.Join(ph, ",")
}

// Initialize the database schema. Statements are idempotent.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createLocationsQuery := `
	CREATE TABLE IF NOT EXISTS locations (
		name TEXT PRIMARY KEY,
		position INTEGER NOT NULL
	);
	`

	createDistancesQuery := `
	CREATE TABLE IF NOT EXISTS distances (
        origin TEXT NOT NULL,
        destination TEXT NOT NULL,
        distance DOUBLE PRECISION NOT NULL,
        duration DOUBLE PRECISION NOT NULL,
        PRIMARY KEY (origin, destination)
    );
	`

	createRunsQuery := `
	CREATE TABLE IF NOT EXISTS runs (
        id TEXT PRIMARY KEY,
        created_at BIGINT NOT NULL,
        labels TEXT NOT NULL,
        params TEXT NOT NULL,
        tour TEXT NOT NULL,
        distance DOUBLE PRECISION NOT NULL,
        baseline DOUBLE PRECISION NOT NULL,
        fallbacks INTEGER NOT NULL,
        history TEXT NOT NULL
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_runs_created_at
    ON runs(created_at);
	`

	statements := []string{
		createLocationsQuery,
		createDistancesQuery,
		createRunsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// LocationSeed is the on-disk catalog format: names plus square matrices
// indexed like names. Durations are optional and default to distances.
type LocationSeed struct {
	Locations []string    `json:"locations"`
	Distances [][]float64 `json:"distances"`
	Durations [][]float64 `json:"durations,omitempty"`
}

// Validate checks names are unique and non-empty and the matrices are square.
func (s LocationSeed) Validate() error {
	n := len(s.Locations)
	seen := make(map[string]struct{}, n)
	for i, name := range s.Locations {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("location at index %d: name cannot be empty", i)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("location at index %d: duplicate name %q", i, name)
		}
		seen[name] = struct{}{}
	}

	check := func(what string, m [][]float64) error {
		if len(m) != n {
			return fmt.Errorf("%s: %d rows for %d locations", what, len(m), n)
		}
		for i, row := range m {
			if len(row) != n {
				return fmt.Errorf("%s: row %d has %d entries, want %d", what, i, len(row), n)
			}
			for j, v := range row {
				if v < 0 {
					return fmt.Errorf("%s: entry (%d,%d) is negative", what, i, j)
				}
			}
		}
		return nil
	}
	if err := check("distances", s.Distances); err != nil {
		return err
	}
	if s.Durations != nil {
		return check("durations", s.Durations)
	}
	return nil
}

// Populate the location catalog and distance table from a JSON file.
func SeedFromJSON(ctx context.Context, db *sql.DB, dialect Dialect, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed locations: read %q: %w", jsonPath, err)
	}

	var data LocationSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed locations: parse json: %w", err)
	}

	return Seed(ctx, db, dialect, data)
}

// Seed upserts data in a single transaction.
func Seed(ctx context.Context, db *sql.DB, dialect Dialect, data LocationSeed) error {
	if db == nil {
		return errors.New("seed locations: DB is nil")
	}
	if err := data.Validate(); err != nil {
		return fmt.Errorf("seed locations: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed locations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	locStmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`
	INSERT INTO locations (name, position)
	VALUES (%s, %s)
	ON CONFLICT (name) DO UPDATE
	SET position = excluded.position;
	`, dialect.ph(1), dialect.ph(2)))
	if err != nil {
		return fmt.Errorf("seed locations: prepare location insert: %w", err)
	}
	defer locStmt.Close()

	for i, name := range data.Locations {
		if _, err := locStmt.ExecContext(ctx, name, i); err != nil {
			return fmt.Errorf("seed locations: insert location %q: %w", name, err)
		}
	}

	distStmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`
	INSERT INTO distances (origin, destination, distance, duration)
	VALUES (%s)
	ON CONFLICT (origin, destination) DO UPDATE
	SET distance = excluded.distance,
		duration = excluded.duration;
	`, dialect.phList(1, 4)))
	if err != nil {
		return fmt.Errorf("seed locations: prepare distance insert: %w", err)
	}
	defer distStmt.Close()

	for i, origin := range data.Locations {
		for j, dest := range data.Locations {
			if i == j {
				continue
			}
			dur := data.Distances[i][j]
			if data.Durations != nil {
				dur = data.Durations[i][j]
			}
			if _, err := distStmt.ExecContext(ctx, origin, dest, data.Distances[i][j], dur); err != nil {
				return fmt.Errorf("seed locations: insert distance %q -> %q: %w", origin, dest, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed locations: commit tx: %w", err)
	}

	return nil
}
