package domain

import "fmt"

// Depot is the fixed start (and implicit end) of every tour.
const Depot = 0

// Represents a closed route: a permutation of all locations starting at the depot.
// The edge from the last element back to the first is implicit.
type Tour []int

// Validate checks that t visits every location of [0,n) exactly once, starting at the depot.
func (t Tour) Validate(n int) error {
	if len(t) != n {
		return fmt.Errorf("validate tour: length %d, want %d", len(t), n)
	}
	if n > 0 && t[0] != Depot {
		return fmt.Errorf("validate tour: starts at %d, want depot %d", t[0], Depot)
	}

	seen := make([]bool, n)
	for pos, loc := range t {
		if loc < 0 || loc >= n {
			return fmt.Errorf("validate tour: position %d has out-of-range location %d", pos, loc)
		}
		if seen[loc] {
			return fmt.Errorf("validate tour: location %d visited twice", loc)
		}
		seen[loc] = true
	}

	return nil
}

func (t Tour) Clone() Tour { return append(Tour(nil), t...) }

// A tour together with its total cyclic distance.
type Solution struct {
	Tour     Tour
	Distance float64
}
