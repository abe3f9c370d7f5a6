package colony

import (
	"colony-route-service/internal/domain"
	"time"
)

// IterationStats summarizes one finished iteration, after its pheromone update.
// Tours is reused by the engine and is only valid for the duration of the call.
type IterationStats struct {
	Iteration     int
	Tours         []domain.Solution
	IterationBest float64
	GlobalBest    float64
	Fallbacks     int
}

// Recorder observes a run. Calls happen on the engine goroutine, in order.
type Recorder interface {
	IterationDone(stats IterationStats)
	RunDone(result *Result, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) IterationDone(IterationStats)   {}
func (nopRecorder) RunDone(*Result, time.Duration) {}
