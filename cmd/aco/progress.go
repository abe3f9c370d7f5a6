package main

import (
	"colony-route-service/internal/colony"
	"time"

	"go.uber.org/zap"
)

// progressRecorder logs each iteration at debug level.
type progressRecorder struct {
	logger *zap.Logger
}

func (p progressRecorder) IterationDone(s colony.IterationStats) {
	p.logger.Debug("iteration",
		zap.Int("iteration", s.Iteration),
		zap.Float64("iteration_best", s.IterationBest),
		zap.Float64("global_best", s.GlobalBest),
		zap.Int("fallbacks", s.Fallbacks),
	)
}

func (p progressRecorder) RunDone(res *colony.Result, elapsed time.Duration) {
	p.logger.Info("run done",
		zap.Int("iterations", res.Iterations),
		zap.Float64("best", res.Best.Distance),
		zap.Int64("seed", res.Seed),
		zap.Duration("elapsed", elapsed),
	)
}
