package handlers

import (
	"colony-route-service/internal/api/dto"
	"colony-route-service/internal/ports"
	"net/http"
)

// LocationHandler exposes the seeded location catalog.
type LocationHandler struct {
	Repo ports.LocationRepository
}

func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	locs, err := h.Repo.ListLocations(r.Context())
	if err != nil {
		writeServiceError(w, r, "list locations", err)
		return
	}

	if locs == nil {
		locs = []string{}
	}
	writeJSON(w, r, http.StatusOK, dto.ListLocationsResponse{Locations: locs})
}
