package distance

import (
	"colony-route-service/internal/domain"
	"colony-route-service/internal/ports"
	"context"
	"fmt"
)

type Pair struct {
	From, To string
	Distance float64
	Duration float64
}

// StaticDistanceProvider serves travel costs from an in-memory table.
// It is safe for concurrent use because the table never changes after construction.
type StaticDistanceProvider struct {
	m map[string]ports.DistanceResult
}

func key(origin, destination string) string { return origin + "|" + destination }

// NewStaticDistanceProvider indexes directed pairs. A later pair overrides an earlier one.
func NewStaticDistanceProvider(pairs []Pair) *StaticDistanceProvider {
	m := make(map[string]ports.DistanceResult, len(pairs))
	for _, p := range pairs {
		m[key(p.From, p.To)] = ports.DistanceResult{Distance: p.Distance, Duration: p.Duration}
	}
	return &StaticDistanceProvider{m: m}
}

// NewMatrixDistanceProvider indexes every off-diagonal cell of labelled matrices.
// durations may be nil, in which case durations equal distances.
func NewMatrixDistanceProvider(labels []string, distances, durations [][]float64) (*StaticDistanceProvider, error) {
	if len(distances) != len(labels) {
		return nil, fmt.Errorf("matrix provider: %d labels for %d rows", len(labels), len(distances))
	}
	if durations != nil && len(durations) != len(labels) {
		return nil, fmt.Errorf("matrix provider: %d labels for %d duration rows", len(labels), len(durations))
	}

	pairs := make([]Pair, 0, len(labels)*len(labels))
	for i, row := range distances {
		if len(row) != len(labels) {
			return nil, fmt.Errorf("matrix provider: row %d has %d entries, want %d", i, len(row), len(labels))
		}
		for j, d := range row {
			if i == j {
				continue
			}
			dur := d
			if durations != nil {
				if len(durations[i]) != len(labels) {
					return nil, fmt.Errorf("matrix provider: duration row %d has %d entries, want %d", i, len(durations[i]), len(labels))
				}
				dur = durations[i][j]
			}
			pairs = append(pairs, Pair{From: labels[i], To: labels[j], Distance: d, Duration: dur})
		}
	}

	return NewStaticDistanceProvider(pairs), nil
}

func (p *StaticDistanceProvider) GetDistance(ctx context.Context, origin, destination string) (ports.DistanceResult, error) {
	r, ok := p.m[key(origin, destination)]
	if !ok {
		return ports.DistanceResult{}, fmt.Errorf("missing pair %q -> %q: %w", origin, destination, domain.ErrNotFound)
	}

	return r, nil
}

// GetDistances returns every known pair from origin; unknown destinations are omitted.
func (p *StaticDistanceProvider) GetDistances(ctx context.Context, origin string, destinations []string) (map[string]ports.DistanceResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make(map[string]ports.DistanceResult, len(destinations))
	for _, d := range destinations {
		if r, ok := p.m[key(origin, d)]; ok {
			out[d] = r
		}
	}
	return out, nil
}
