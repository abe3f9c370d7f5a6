package dto

type ListLocationsResponse struct {
	Locations []string `json:"locations"`
}
