package colony

import (
	"colony-route-service/internal/domain"
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of a full run.
type Result struct {
	Best domain.Solution
	// History[i] is the global best distance after iteration i; it never increases.
	History    []float64
	Iterations int
	Fallbacks  int
	Seed       int64
}

// Engine runs the colony: each iteration every ant builds a tour against a
// read-only pheromone matrix, then the update policy mutates that matrix using
// all tours of the iteration.
type Engine struct {
	dist *domain.DistanceMatrix
	cfg  Config

	pheromone   *PheromoneMatrix
	constructor *TourConstructor
	policy      UpdatePolicy
	sampler     Sampler

	logger   *zap.Logger
	recorder Recorder
}

type Option func(*Engine)

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

func WithRecorder(r Recorder) Option {
	return func(e *Engine) {
		if r != nil {
			e.recorder = r
		}
	}
}

func WithSampler(s Sampler) Option {
	return func(e *Engine) {
		if s != nil {
			e.sampler = s
		}
	}
}

// WithUpdatePolicy replaces the default ant-cycle update.
func WithUpdatePolicy(p UpdatePolicy) Option {
	return func(e *Engine) {
		if p != nil {
			e.policy = p
		}
	}
}

// NewEngine validates cfg against dist and prepares a run.
func NewEngine(dist *domain.DistanceMatrix, cfg Config, opts ...Option) (*Engine, error) {
	if dist == nil {
		return nil, domain.NewConfigError("distances", "matrix must not be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = defaultSeed
	}

	e := &Engine{
		dist:     dist,
		cfg:      cfg,
		policy:   AntCycle{Rho: cfg.Rho, Q: cfg.Q},
		sampler:  CumulativeSampler{},
		logger:   zap.NewNop(),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(e)
	}

	if !dist.IsSymmetric(1e-9) {
		e.logger.Warn("distance matrix is not symmetric; deposits treat edges as undirected",
			zap.Int("locations", dist.Size()))
	}

	n := dist.Size()
	e.pheromone = NewPheromoneMatrix(n, cfg.InitialPheromone)
	selector := NewSelector(e.pheromone, NewHeuristic(dist, cfg.Epsilon), cfg.Alpha, cfg.Beta, e.sampler)
	e.constructor = NewTourConstructor(dist, selector)

	return e, nil
}

// Pheromone returns a copy of the current pheromone matrix.
func (e *Engine) Pheromone() *PheromoneMatrix { return e.pheromone.Clone() }

func (e *Engine) Config() Config { return e.cfg }

// Run executes exactly NumIterations iterations and returns the best tour seen.
// The pheromone matrix is reset to its initial value first, so repeated runs
// with the same seed produce the same result.
//
// Run mutates the engine's pheromone matrix and must not be called
// concurrently on the same Engine; build one Engine per concurrent run.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	n := e.dist.Size()

	for i := range e.pheromone.cells {
		e.pheromone.cells[i] = e.cfg.InitialPheromone
	}

	e.logger.Info("colony run started",
		zap.Int("locations", n),
		zap.Int("ants", e.cfg.NumAnts),
		zap.Int("iterations", e.cfg.NumIterations),
		zap.Float64("alpha", e.cfg.Alpha),
		zap.Float64("beta", e.cfg.Beta),
		zap.Float64("rho", e.cfg.Rho),
		zap.Int64("seed", e.cfg.Seed),
		zap.Int("workers", e.cfg.Workers),
	)

	res := &Result{
		Best:    domain.Solution{Distance: math.Inf(1)},
		History: make([]float64, 0, e.cfg.NumIterations),
		Seed:    e.cfg.Seed,
	}
	tours := make([]domain.Solution, e.cfg.NumAnts)

	for it := 0; it < e.cfg.NumIterations; it++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("colony run: iteration %d: %w", it, err)
		}

		built, err := e.construct(ctx, it)
		if err != nil {
			return nil, fmt.Errorf("colony run: iteration %d: %w", it, err)
		}

		iterBest := math.Inf(1)
		iterFallbacks := 0
		for k, c := range built {
			tours[k] = c.Solution
			iterFallbacks += c.Fallbacks
			if c.Distance < iterBest {
				iterBest = c.Distance
			}
			if res.Best.Tour == nil || c.Distance < res.Best.Distance {
				res.Best = domain.Solution{Tour: c.Tour.Clone(), Distance: c.Distance}
			}
			if c.Fallbacks > 0 {
				e.logger.Debug("degenerate selection fell back to uniform draw",
					zap.Int("iteration", it), zap.Int("ant", k), zap.Int("draws", c.Fallbacks))
			}
		}

		if err := e.policy.Apply(e.pheromone, tours); err != nil {
			return nil, fmt.Errorf("colony run: iteration %d: %w", it, err)
		}

		res.Iterations++
		res.Fallbacks += iterFallbacks
		res.History = append(res.History, res.Best.Distance)

		e.logger.Debug("iteration done",
			zap.Int("iteration", it),
			zap.Float64("iteration_best", iterBest),
			zap.Float64("global_best", res.Best.Distance),
		)
		e.recorder.IterationDone(IterationStats{
			Iteration:     it,
			Tours:         tours,
			IterationBest: iterBest,
			GlobalBest:    res.Best.Distance,
			Fallbacks:     iterFallbacks,
		})
	}

	elapsed := time.Since(start)
	e.logger.Info("colony run finished",
		zap.Float64("best_distance", res.Best.Distance),
		zap.Ints("best_tour", res.Best.Tour),
		zap.Int("fallbacks", res.Fallbacks),
		zap.Duration("dur", elapsed),
	)
	e.recorder.RunDone(res, elapsed)

	return res, nil
}

// construct builds one tour per ant. Ants share no mutable state, so with
// Workers > 1 they run concurrently; the caller's loop is the join barrier.
func (e *Engine) construct(ctx context.Context, iteration int) ([]Construction, error) {
	out := make([]Construction, e.cfg.NumAnts)

	if e.cfg.Workers <= 1 {
		for k := range out {
			c, err := e.constructor.Construct(antRNG(e.cfg.Seed, iteration, k, e.cfg.NumAnts))
			if err != nil {
				return nil, fmt.Errorf("ant %d: %w", k, err)
			}
			out[k] = c
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Workers)
	for k := range out {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			c, err := e.constructor.Construct(antRNG(e.cfg.Seed, iteration, k, e.cfg.NumAnts))
			if err != nil {
				return fmt.Errorf("ant %d: %w", k, err)
			}
			out[k] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
