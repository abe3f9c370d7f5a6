package repositories

import (
	"colony-route-service/internal/domain"
	"colony-route-service/internal/platform/obs"
	"colony-route-service/internal/ports"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQL-backed location catalog and distance table.
// It implements ports.LocationRepository and ports.DistanceMatrixProvider.
type SQLLocationStore struct {
	DB      *sql.DB
	Dialect Dialect
}

func NewSQLLocationStore(db *sql.DB, dialect Dialect) *SQLLocationStore {
	return &SQLLocationStore{DB: db, Dialect: dialect}
}

// Return all location names ordered by catalog position.
func (s *SQLLocationStore) ListLocations(ctx context.Context) ([]string, error) {
	if s.DB == nil {
		return nil, errors.New("location store: db is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT name
	FROM locations
	ORDER BY position, name;
	`)
	if err != nil {
		return nil, fmt.Errorf("list locations: query locations table: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0, 64)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("list locations: scan row: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list locations: row iteration: %w", err)
	}

	return names, nil
}

func (s *SQLLocationStore) GetDistance(ctx context.Context, origin, destination string) (ports.DistanceResult, error) {
	res, err := s.GetDistances(ctx, origin, []string{destination})
	if err != nil {
		return ports.DistanceResult{}, err
	}

	r, ok := res[strings.TrimSpace(destination)]
	if !ok {
		return ports.DistanceResult{}, fmt.Errorf("get distance %q -> %q: %w", origin, destination, domain.ErrNotFound)
	}
	return r, nil
}

// Fetch stored results for one origin and multiple destinations.
// Destinations without a stored pair are omitted from the result.
func (s *SQLLocationStore) GetDistances(
	ctx context.Context,
	origin string,
	destinations []string,
) (_ map[string]ports.DistanceResult, err error) {
	defer obs.Time(ctx, "location.store.GetDistances")(&err)

	if s.DB == nil {
		return nil, errors.New("location store: db is nil")
	}

	origin = strings.TrimSpace(origin)
	if origin == "" {
		return nil, errors.New("get distances: origin must not be empty")
	}

	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(destinations))
	for _, d := range destinations {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		uniq = append(uniq, d)
	}

	if len(uniq) == 0 {
		return map[string]ports.DistanceResult{}, nil
	}

	args := make([]any, 0, 1+len(uniq))
	args = append(args, origin)
	for _, d := range uniq {
		args = append(args, d)
	}

	// database/sql cannot bind a slice to IN (...), so only the placeholder
	// structure is interpolated; all values remain parameterized.
	q := fmt.Sprintf(`
	SELECT
        destination,
        distance,
        duration
    FROM distances
    WHERE origin = %s
        AND destination IN (%s);
	`, s.Dialect.ph(1), s.Dialect.phList(2, len(uniq)))

	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("get distances: query distances table: %w", err)
	}
	defer rows.Close()

	out := make(map[string]ports.DistanceResult, len(uniq))
	for rows.Next() {
		var dest string
		var r ports.DistanceResult
		if err := rows.Scan(&dest, &r.Distance, &r.Duration); err != nil {
			return nil, fmt.Errorf("get distances: scan rows: %w", err)
		}
		out[dest] = r
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get distances: row iteration: %w", err)
	}

	return out, nil
}
