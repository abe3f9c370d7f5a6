package services

import (
	"colony-route-service/internal/domain"
	"colony-route-service/internal/ports"
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Which travel cost a resolved matrix is built from.
type Metric string

const (
	MetricDistance Metric = "distance"
	MetricDuration Metric = "duration"
)

// ParseMetric accepts "distance" (also the empty string) or "duration".
func ParseMetric(s string) (Metric, error) {
	switch Metric(strings.ToLower(strings.TrimSpace(s))) {
	case "", MetricDistance:
		return MetricDistance, nil
	case MetricDuration:
		return MetricDuration, nil
	}
	return "", domain.NewConfigError("metric", "unknown metric %q, want distance or duration", s)
}

func (m Metric) pick(r ports.DistanceResult) float64 {
	if m == MetricDuration {
		return r.Duration
	}
	return r.Distance
}

// maxConcurrentOrigins bounds in-flight provider lookups.
const maxConcurrentOrigins = 5

// ResolveDistanceMatrix builds the pairwise matrix for named locations.
// locations[0] is the depot. Each origin is fetched concurrently; batched
// lookups are preferred when the provider supports them.
func ResolveDistanceMatrix(
	ctx context.Context,
	locations []string,
	metric Metric,
	provider ports.DistanceProvider,
) (*domain.DistanceMatrix, error) {
	if provider == nil {
		return nil, fmt.Errorf("resolve distance matrix: provider must be non-nil")
	}
	if len(locations) < 2 {
		return nil, domain.NewConfigError("locations", "need at least 2 locations, got %d", len(locations))
	}

	seen := make(map[string]struct{}, len(locations))
	for i, loc := range locations {
		if strings.TrimSpace(loc) == "" {
			return nil, domain.NewConfigError("locations", "location %d is empty", i)
		}
		if _, ok := seen[loc]; ok {
			return nil, domain.NewConfigError("locations", "location %q listed twice", loc)
		}
		seen[loc] = struct{}{}
	}

	n := len(locations)
	rows := make([][]float64, n)
	mp, hasMatrix := provider.(ports.DistanceMatrixProvider)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentOrigins)

	for i, origin := range locations {
		targets := make([]string, 0, n-1)
		for j, t := range locations {
			if j != i {
				targets = append(targets, t)
			}
		}

		// Each goroutine owns row i, so rows needs no lock.
		g.Go(func() error {
			var results map[string]ports.DistanceResult
			if hasMatrix {
				res, err := mp.GetDistances(gctx, origin, targets)
				if err != nil {
					return fmt.Errorf("resolve distance matrix: get distances from %q: %w", origin, err)
				}
				results = res
			} else {
				results = make(map[string]ports.DistanceResult, len(targets))
				for _, t := range targets {
					r, err := provider.GetDistance(gctx, origin, t)
					if err != nil {
						return fmt.Errorf("resolve distance matrix: get distance from %q to %q: %w", origin, t, err)
					}
					results[t] = r
				}
			}

			row := make([]float64, n)
			for j, t := range locations {
				if j == i {
					continue
				}
				r, ok := results[t]
				if !ok {
					return fmt.Errorf("resolve distance matrix: missing distance from %q to %q: %w", origin, t, domain.ErrNotFound)
				}
				row[j] = metric.pick(r)
			}
			rows[i] = row
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	m, err := domain.NewDistanceMatrix(rows)
	if err != nil {
		return nil, fmt.Errorf("resolve distance matrix: %w", err)
	}
	return m, nil
}
