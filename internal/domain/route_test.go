package domain

import (
	"testing"
)

func TestNewRoutePlan(t *testing.T) {
	m, err := NewDistanceMatrix([][]float64{
		{0, 1, 9, 9},
		{1, 0, 9, 2},
		{9, 9, 0, 1},
		{9, 2, 1, 0},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	plan := NewRoutePlan(m, Tour{0, 1, 3, 2}, []string{"HUB", "A", "B", "C"})

	if len(plan.Stops) != 4 {
		t.Fatalf("expected 4 stops, got %d", len(plan.Stops))
	}
	if plan.Stops[0].Label != "HUB" || plan.Stops[0].LegDistance != 0 {
		t.Fatalf("first stop = %+v, want depot with zero leg", plan.Stops[0])
	}
	if plan.Stops[2].Label != "C" {
		t.Fatalf("expected third stop C, got %q", plan.Stops[2].Label)
	}
	if plan.Stops[3].Cumulative != 4 {
		t.Fatalf("cumulative at last stop = %v, want 4", plan.Stops[3].Cumulative)
	}
	if plan.ReturnLeg != 9 {
		t.Fatalf("return leg = %v, want 9", plan.ReturnLeg)
	}
	if plan.TotalDistance != 13 {
		t.Fatalf("distance = %v, want 13", plan.TotalDistance)
	}
}

func TestNewRoutePlanWithoutLabels(t *testing.T) {
	m, err := NewDistanceMatrix([][]float64{{0, 2}, {2, 0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	plan := NewRoutePlan(m, Tour{0, 1}, nil)
	for _, s := range plan.Stops {
		if s.Label != "" {
			t.Errorf("stop %d has label %q, want none", s.Location, s.Label)
		}
	}
	if plan.TotalDistance != 4 {
		t.Fatalf("distance = %v, want 4", plan.TotalDistance)
	}
}
