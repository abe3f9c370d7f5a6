package ports

import "context"

// Travel cost between two named locations.
type DistanceResult struct {
	Distance float64
	Duration float64
}

// Contract for retrieving travel cost between named locations.
type DistanceProvider interface {
	// Return travel distance and duration from origin to destination.
	GetDistance(ctx context.Context, origin string, destination string) (DistanceResult, error)
}
