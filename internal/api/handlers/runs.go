package handlers

import (
	"colony-route-service/internal/api/dto"
	"colony-route-service/internal/domain"
	"colony-route-service/internal/ports"
	"net/http"
	"strconv"
)

const maxListLimit = 200

// RunHandler serves persisted optimization runs.
type RunHandler struct {
	Runs ports.RunRepository
}

func (h *RunHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxListLimit {
			writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 200")
			return
		}
		limit = n
	}

	runs, err := h.Runs.ListRuns(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, "list runs", err)
		return
	}

	res := dto.ListRunsResponse{Runs: make([]dto.RunSummaryResponse, 0, len(runs))}
	for _, run := range runs {
		res.Runs = append(res.Runs, dto.RunSummaryResponse{
			ID:               run.ID,
			CreatedAt:        run.CreatedAt,
			Locations:        len(run.Best.Tour),
			Distance:         run.Best.Distance,
			BaselineDistance: run.BaselineDistance,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *RunHandler) Get(w http.ResponseWriter, r *http.Request) {
	run, err := h.Runs.GetRun(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "get run", err)
		return
	}

	writeJSON(w, r, http.StatusOK, runResponse(run))
}

func runResponse(run *domain.Run) dto.RunResponse {
	return dto.RunResponse{
		ID:               run.ID,
		CreatedAt:        run.CreatedAt,
		Labels:           run.Labels,
		Params:           run.Params,
		Tour:             run.Best.Tour,
		Distance:         run.Best.Distance,
		BaselineDistance: run.BaselineDistance,
		Fallbacks:        run.Fallbacks,
		History:          run.History,
	}
}
