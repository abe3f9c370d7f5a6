package dto

import "colony-route-service/internal/config"

// SolveTourRequest is the body of POST /tours. Either Distances or Locations
// (resolved through the configured distance source) must be given.
type SolveTourRequest struct {
	Locations []string              `json:"locations"`
	Distances [][]float64           `json:"distances"`
	Metric    string                `json:"metric"`
	Params    *config.ProblemParams `json:"params"`
}

type TourStopResponse struct {
	Location    int     `json:"location"`
	Label       string  `json:"label,omitempty"`
	LegDistance float64 `json:"leg_distance"`
	Cumulative  float64 `json:"cumulative"`
}

type TourResponse struct {
	RunID            string             `json:"run_id,omitempty"`
	Tour             []int              `json:"tour"`
	Stops            []TourStopResponse `json:"stops"`
	ReturnLeg        float64            `json:"return_leg"`
	TotalDistance    float64            `json:"total_distance"`
	BaselineDistance float64            `json:"baseline_distance"`
	Improvement      float64            `json:"improvement"`
	Fallbacks        int                `json:"fallbacks"`
}
