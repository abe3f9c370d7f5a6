package ports

import (
	"colony-route-service/internal/domain"
	"context"
)

// Port: storage for completed optimization runs.
type RunRepository interface {
	SaveRun(ctx context.Context, run *domain.Run) error
	// Return domain.ErrNotFound (wrapped) when no run has the id.
	GetRun(ctx context.Context, id string) (*domain.Run, error)
	// Return the most recent runs first, at most limit of them.
	ListRuns(ctx context.Context, limit int) ([]*domain.Run, error)
}
