package domain

// Represents a single stop in a planned tour.
// LegDistance is the cost of reaching this stop from the previous one;
// the depot stop has a zero leg.
type RouteStop struct {
	Location    int
	Label       string
	LegDistance float64
	Cumulative  float64
}

// Represents the planned closed tour for a set of locations.
// A RoutePlan is the output of an optimization run: the ordered stops from
// the depot, the closing leg back to it, and aggregate metrics.
// It is immutable planning data and contains no side effects.
type RoutePlan struct {
	RunID            string
	Stops            []RouteStop
	ReturnLeg        float64
	TotalDistance    float64
	BaselineDistance float64
	Fallbacks        int
}

// NewRoutePlan lays out tour over m. labels may be nil; otherwise it must be indexed like m.
func NewRoutePlan(m *DistanceMatrix, tour Tour, labels []string) *RoutePlan {
	plan := &RoutePlan{Stops: make([]RouteStop, 0, len(tour))}

	cumulative := 0.0
	for i, loc := range tour {
		leg := 0.0
		if i > 0 {
			leg = m.At(tour[i-1], loc)
		}
		cumulative += leg

		stop := RouteStop{Location: loc, LegDistance: leg, Cumulative: cumulative}
		if loc < len(labels) {
			stop.Label = labels[loc]
		}
		plan.Stops = append(plan.Stops, stop)
	}

	if len(tour) > 0 {
		plan.ReturnLeg = m.At(tour[len(tour)-1], tour[0])
	}
	plan.TotalDistance = cumulative + plan.ReturnLeg

	return plan
}
