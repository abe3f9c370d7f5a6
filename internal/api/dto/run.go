package dto

import (
	"colony-route-service/internal/domain"
	"time"
)

type RunSummaryResponse struct {
	ID               string    `json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	Locations        int       `json:"locations"`
	Distance         float64   `json:"distance"`
	BaselineDistance float64   `json:"baseline_distance"`
}

type ListRunsResponse struct {
	Runs []RunSummaryResponse `json:"runs"`
}

type RunResponse struct {
	ID               string           `json:"id"`
	CreatedAt        time.Time        `json:"created_at"`
	Labels           []string         `json:"labels"`
	Params           domain.RunParams `json:"params"`
	Tour             []int            `json:"tour"`
	Distance         float64          `json:"distance"`
	BaselineDistance float64          `json:"baseline_distance"`
	Fallbacks        int              `json:"fallbacks"`
	History          []float64        `json:"history"`
}
