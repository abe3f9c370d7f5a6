package api

import (
	"colony-route-service/internal/api/handlers"
	"colony-route-service/internal/colony"
	"colony-route-service/internal/ports"
	"net/http"

	"go.uber.org/zap"
)

// Deps are the collaborators the HTTP surface needs. Nil Locations, Runs or
// Metrics leave the matching routes unregistered.
type Deps struct {
	DB        handlers.Pinger
	Locations ports.LocationRepository
	Provider  ports.DistanceProvider
	Runs      ports.RunRepository
	Defaults  colony.Config
	Recorder  colony.Recorder
	Metrics   http.Handler
	Logger    *zap.Logger
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	mux := http.NewServeMux()

	health := &handlers.HealthHandler{DB: d.DB}
	tours := &handlers.TourHandler{
		Provider: d.Provider,
		Runs:     d.Runs,
		Defaults: d.Defaults,
		Recorder: d.Recorder,
		Logger:   logger,
	}

	mux.HandleFunc("GET /health", health.Check)
	mux.HandleFunc("POST /tours", tours.Solve)

	if d.Runs != nil {
		runs := &handlers.RunHandler{Runs: d.Runs}
		mux.HandleFunc("GET /runs", runs.List)
		mux.HandleFunc("GET /runs/{id}", runs.Get)
	}
	if d.Locations != nil {
		locs := &handlers.LocationHandler{Repo: d.Locations}
		mux.HandleFunc("GET /locations", locs.List)
	}
	if d.Metrics != nil {
		mux.Handle("GET /metrics", d.Metrics)
	}

	return requestIDMiddleware(loggingMiddleware(logger, mux))
}
