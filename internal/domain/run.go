package domain

import "time"

// Parameters of one optimization run as they were applied.
type RunParams struct {
	NumAnts          int     `json:"num_ants"`
	NumIterations    int     `json:"num_iterations"`
	Alpha            float64 `json:"alpha"`
	Beta             float64 `json:"beta"`
	Rho              float64 `json:"rho"`
	Q                float64 `json:"q"`
	Epsilon          float64 `json:"epsilon"`
	InitialPheromone float64 `json:"initial_pheromone"`
	Seed             int64   `json:"seed"`
	Workers          int     `json:"workers"`
}

// Represents a completed optimization run.
// Labels are optional names for the locations, indexed like the distance matrix.
// It is immutable result data; pheromone state is never part of it.
type Run struct {
	ID               string
	CreatedAt        time.Time
	Labels           []string
	Params           RunParams
	Best             Solution
	BaselineDistance float64
	Fallbacks        int
	History          []float64
}
