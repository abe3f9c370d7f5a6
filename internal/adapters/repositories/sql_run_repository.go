package repositories

import (
	"colony-route-service/internal/domain"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// SQL-backed implementation of the RunRepository port.
// Slices and parameters are stored as JSON text so both dialects share one schema.
type SQLRunRepository struct {
	DB      *sql.DB
	Dialect Dialect
}

func NewSQLRunRepository(db *sql.DB, dialect Dialect) *SQLRunRepository {
	return &SQLRunRepository{DB: db, Dialect: dialect}
}

func (s *SQLRunRepository) SaveRun(ctx context.Context, run *domain.Run) error {
	if s.DB == nil {
		return errors.New("run repository: DB is nil")
	}
	if run == nil || run.ID == "" {
		return errors.New("save run: run must have an id")
	}

	labels, err := json.Marshal(nonNil(run.Labels))
	if err != nil {
		return fmt.Errorf("save run: encode labels: %w", err)
	}
	params, err := json.Marshal(run.Params)
	if err != nil {
		return fmt.Errorf("save run: encode params: %w", err)
	}
	tour, err := json.Marshal([]int(run.Best.Tour))
	if err != nil {
		return fmt.Errorf("save run: encode tour: %w", err)
	}
	history, err := json.Marshal(run.History)
	if err != nil {
		return fmt.Errorf("save run: encode history: %w", err)
	}

	q := fmt.Sprintf(`
	INSERT INTO runs (
		id,
		created_at,
		labels,
		params,
		tour,
		distance,
		baseline,
		fallbacks,
		history
	)
	VALUES (%s);
	`, s.Dialect.phList(1, 9))

	_, err = s.DB.ExecContext(ctx, q,
		run.ID,
		run.CreatedAt.UnixMicro(),
		string(labels),
		string(params),
		string(tour),
		run.Best.Distance,
		run.BaselineDistance,
		run.Fallbacks,
		string(history),
	)
	if err != nil {
		return fmt.Errorf("save run %s: %w", run.ID, err)
	}
	return nil
}

const selectRunColumns = `
	SELECT
		id,
		created_at,
		labels,
		params,
		tour,
		distance,
		baseline,
		fallbacks,
		history
	FROM runs`

func (s *SQLRunRepository) GetRun(ctx context.Context, id string) (*domain.Run, error) {
	if s.DB == nil {
		return nil, errors.New("run repository: DB is nil")
	}

	row := s.DB.QueryRowContext(ctx, selectRunColumns+fmt.Sprintf(" WHERE id = %s;", s.Dialect.ph(1)), id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get run %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", id, err)
	}
	return run, nil
}

func (s *SQLRunRepository) ListRuns(ctx context.Context, limit int) ([]*domain.Run, error) {
	if s.DB == nil {
		return nil, errors.New("run repository: DB is nil")
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.DB.QueryContext(ctx,
		selectRunColumns+fmt.Sprintf(" ORDER BY created_at DESC, id LIMIT %s;", s.Dialect.ph(1)), limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: query runs table: %w", err)
	}
	defer rows.Close()

	var runs []*domain.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: row iteration: %w", err)
	}

	return runs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*domain.Run, error) {
	var (
		run                           domain.Run
		createdAt                     int64
		labels, params, tour, history string
		tourIdx                       []int
	)
	if err := row.Scan(
		&run.ID,
		&createdAt,
		&labels,
		&params,
		&tour,
		&run.Best.Distance,
		&run.BaselineDistance,
		&run.Fallbacks,
		&history,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(labels), &run.Labels); err != nil {
		return nil, fmt.Errorf("decode labels: %w", err)
	}
	if err := json.Unmarshal([]byte(params), &run.Params); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	if err := json.Unmarshal([]byte(tour), &tourIdx); err != nil {
		return nil, fmt.Errorf("decode tour: %w", err)
	}
	if err := json.Unmarshal([]byte(history), &run.History); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}

	run.Best.Tour = domain.Tour(tourIdx)
	run.CreatedAt = time.UnixMicro(createdAt).UTC()
	return &run, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
