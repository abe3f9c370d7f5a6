package colony

import (
	"colony-route-service/internal/domain"
	"math"
)

// Config holds the tunable parameters of one colony run.
type Config struct {
	NumAnts       int
	NumIterations int

	Alpha float64 // pheromone exponent
	Beta  float64 // heuristic exponent
	Rho   float64 // evaporation rate in [0,1]
	Q     float64 // deposit scale

	Epsilon          float64 // heuristic zero-distance guard
	InitialPheromone float64

	// Seed selects the random streams. Zero means defaultSeed.
	Seed int64
	// Workers bounds how many ants are constructed concurrently. Values below 2 run ants sequentially.
	Workers int
}

// DefaultConfig returns the parameters of the classic 10-stop delivery setup.
func DefaultConfig() Config {
	return Config{
		NumAnts:          20,
		NumIterations:    100,
		Alpha:            1,
		Beta:             5,
		Rho:              0.5,
		Q:                100,
		Epsilon:          1e-10,
		InitialPheromone: 1.0,
		Workers:          1,
	}
}

// Validate reports the first invalid field as a *domain.ConfigError.
func (c Config) Validate() error {
	if c.NumAnts <= 0 {
		return domain.NewConfigError("num_ants", "must be positive, got %d", c.NumAnts)
	}
	if c.NumIterations <= 0 {
		return domain.NewConfigError("num_iterations", "must be positive, got %d", c.NumIterations)
	}
	if math.IsNaN(c.Alpha) || math.IsInf(c.Alpha, 0) || c.Alpha < 0 {
		return domain.NewConfigError("alpha", "must be a finite non-negative number, got %g", c.Alpha)
	}
	if math.IsNaN(c.Beta) || math.IsInf(c.Beta, 0) || c.Beta < 0 {
		return domain.NewConfigError("beta", "must be a finite non-negative number, got %g", c.Beta)
	}
	if math.IsNaN(c.Rho) || c.Rho < 0 || c.Rho > 1 {
		return domain.NewConfigError("rho", "must be within [0,1], got %g", c.Rho)
	}
	if math.IsNaN(c.Q) || math.IsInf(c.Q, 0) || c.Q <= 0 {
		return domain.NewConfigError("q", "must be a finite positive number, got %g", c.Q)
	}
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon <= 0 {
		return domain.NewConfigError("epsilon", "must be a small positive number, got %g", c.Epsilon)
	}
	if math.IsNaN(c.InitialPheromone) || math.IsInf(c.InitialPheromone, 0) || c.InitialPheromone < 0 {
		return domain.NewConfigError("initial_pheromone", "must be a finite non-negative number, got %g", c.InitialPheromone)
	}
	return nil
}

// Params converts the config into its persisted form.
func (c Config) Params() domain.RunParams {
	return domain.RunParams{
		NumAnts:          c.NumAnts,
		NumIterations:    c.NumIterations,
		Alpha:            c.Alpha,
		Beta:             c.Beta,
		Rho:              c.Rho,
		Q:                c.Q,
		Epsilon:          c.Epsilon,
		InitialPheromone: c.InitialPheromone,
		Seed:             c.Seed,
		Workers:          c.Workers,
	}
}

// ConfigFromParams is the inverse of Config.Params.
func ConfigFromParams(p domain.RunParams) Config {
	return Config{
		NumAnts:          p.NumAnts,
		NumIterations:    p.NumIterations,
		Alpha:            p.Alpha,
		Beta:             p.Beta,
		Rho:              p.Rho,
		Q:                p.Q,
		Epsilon:          p.Epsilon,
		InitialPheromone: p.InitialPheromone,
		Seed:             p.Seed,
		Workers:          p.Workers,
	}
}
