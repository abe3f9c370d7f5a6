package handlers

import (
	"colony-route-service/internal/api/dto"
	"colony-route-service/internal/colony"
	"colony-route-service/internal/ports"
	"colony-route-service/internal/services"
	"net/http"

	"go.uber.org/zap"
)

// Upper bounds on a single request so one caller cannot pin the server.
const (
	maxLocations = 200
	maxAntSteps  = 5_000_000 // num_ants * num_iterations * locations
)

type TourHandler struct {
	Provider ports.DistanceProvider
	Runs     ports.RunRepository
	Defaults colony.Config
	Recorder colony.Recorder
	Logger   *zap.Logger
}

// Solve runs one colony optimization and returns the best closed tour.
func (h *TourHandler) Solve(w http.ResponseWriter, r *http.Request) {
	var req dto.SolveTourRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	n := len(req.Distances)
	if n == 0 {
		n = len(req.Locations)
	}
	if n > maxLocations {
		writeError(w, r, http.StatusBadRequest, "at most 200 locations per request")
		return
	}

	metric, err := services.ParseMetric(req.Metric)
	if err != nil {
		writeServiceError(w, r, "solve tour", err)
		return
	}

	cfg := h.Defaults
	if req.Params != nil {
		cfg = req.Params.Apply(cfg)
	}
	if tooMuchWork(cfg.NumAnts, cfg.NumIterations, n) {
		writeError(w, r, http.StatusBadRequest, "num_ants * num_iterations * locations exceeds 5000000")
		return
	}

	var opts []colony.Option
	if h.Logger != nil {
		opts = append(opts, colony.WithLogger(h.Logger))
	}
	if h.Recorder != nil {
		opts = append(opts, colony.WithRecorder(h.Recorder))
	}

	plan, err := services.SolveTour(r.Context(), services.SolveRequest{
		Locations: req.Locations,
		Distances: req.Distances,
		Metric:    metric,
		Config:    cfg,
	}, h.Provider, h.Runs, opts...)
	if err != nil {
		writeServiceError(w, r, "solve tour", err)
		return
	}

	res := dto.TourResponse{
		RunID:            plan.RunID,
		Tour:             make([]int, 0, len(plan.Stops)),
		Stops:            make([]dto.TourStopResponse, 0, len(plan.Stops)),
		ReturnLeg:        plan.ReturnLeg,
		TotalDistance:    plan.TotalDistance,
		BaselineDistance: plan.BaselineDistance,
		Improvement:      plan.BaselineDistance - plan.TotalDistance,
		Fallbacks:        plan.Fallbacks,
	}
	for _, s := range plan.Stops {
		res.Tour = append(res.Tour, s.Location)
		res.Stops = append(res.Stops, dto.TourStopResponse{
			Location:    s.Location,
			Label:       s.Label,
			LegDistance: s.LegDistance,
			Cumulative:  s.Cumulative,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// tooMuchWork reports whether ants*iterations*locations exceeds maxAntSteps.
// Each factor is bounded before multiplying so the product cannot overflow.
// Non-positive counts are left to config validation.
func tooMuchWork(ants, iterations, locations int) bool {
	if ants <= 0 || iterations <= 0 || locations <= 0 {
		return false
	}
	if ants > maxAntSteps || iterations > maxAntSteps/ants {
		return true
	}
	return locations > maxAntSteps/(ants*iterations)
}
