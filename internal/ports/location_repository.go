package ports

import "context"

// Port: a boundary for listing the named locations routes can be planned over.
type LocationRepository interface {
	// Retrieve all known location names in catalog order.
	ListLocations(ctx context.Context) ([]string, error)
}
