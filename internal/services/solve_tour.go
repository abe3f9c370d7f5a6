package services

import (
	"colony-route-service/internal/colony"
	"colony-route-service/internal/domain"
	"colony-route-service/internal/platform/obs"
	"colony-route-service/internal/ports"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SolveRequest describes one tour to optimize.
//
// Either Distances is given directly (Locations then optionally labels its
// rows), or Locations names the stops and the matrix is resolved through a
// DistanceProvider. The first location is the depot.
type SolveRequest struct {
	Locations []string
	Distances [][]float64
	Metric    Metric
	Config    colony.Config
}

// SolveTour runs the colony for req and returns the best tour as a RoutePlan.
// When runs is non-nil the run is persisted and its id recorded on the plan.
func SolveTour(
	ctx context.Context,
	req SolveRequest,
	provider ports.DistanceProvider,
	runs ports.RunRepository,
	opts ...colony.Option,
) (_ *domain.RoutePlan, err error) {
	defer obs.Time(ctx, "services.SolveTour")(&err)

	m, err := requestMatrix(ctx, req, provider)
	if err != nil {
		return nil, fmt.Errorf("solve tour: %w", err)
	}

	engine, err := colony.NewEngine(m, req.Config, opts...)
	if err != nil {
		return nil, fmt.Errorf("solve tour: %w", err)
	}

	res, err := engine.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("solve tour: %w", err)
	}

	baseline := NearestNeighborTour(m)

	plan := domain.NewRoutePlan(m, res.Best.Tour, req.Locations)
	plan.BaselineDistance = baseline.Distance
	plan.Fallbacks = res.Fallbacks

	if runs == nil {
		return plan, nil
	}

	run := &domain.Run{
		ID:               uuid.NewString(),
		CreatedAt:        time.Now().UTC(),
		Labels:           req.Locations,
		Params:           engine.Config().Params(),
		Best:             res.Best,
		BaselineDistance: baseline.Distance,
		Fallbacks:        res.Fallbacks,
		History:          res.History,
	}
	if err := runs.SaveRun(ctx, run); err != nil {
		return nil, fmt.Errorf("solve tour: save run: %w", err)
	}
	plan.RunID = run.ID

	return plan, nil
}

func requestMatrix(ctx context.Context, req SolveRequest, provider ports.DistanceProvider) (*domain.DistanceMatrix, error) {
	if req.Distances == nil {
		if provider == nil {
			return nil, domain.NewConfigError("distances", "required when no distance provider is configured")
		}
		return ResolveDistanceMatrix(ctx, req.Locations, req.Metric, provider)
	}

	m, err := domain.NewDistanceMatrix(req.Distances)
	if err != nil {
		return nil, err
	}
	if len(req.Locations) > 0 && len(req.Locations) != m.Size() {
		return nil, domain.NewConfigError("locations", "%d labels for %d locations", len(req.Locations), m.Size())
	}
	return m, nil
}
