package colony

import (
	"colony-route-service/internal/domain"
	"fmt"
)

// UpdatePolicy mutates the pheromone matrix once per iteration given all tours built in it.
type UpdatePolicy interface {
	Apply(p *PheromoneMatrix, tours []domain.Solution) error
}

// AntCycle evaporates every edge by Rho, then lets every tour of the
// iteration deposit Q/distance on each of its edges including the closing one.
type AntCycle struct {
	Rho float64
	Q   float64
}

func (u AntCycle) Apply(p *PheromoneMatrix, tours []domain.Solution) error {
	// Check every distance before touching the matrix so a failed update leaves it as it was.
	for i, s := range tours {
		if s.Distance == 0 {
			return fmt.Errorf("ant cycle update: tour %d %v: %w", i, s.Tour, domain.ErrZeroDistanceDeposit)
		}
	}

	if err := p.Evaporate(u.Rho); err != nil {
		return fmt.Errorf("ant cycle update: %w", err)
	}

	for _, s := range tours {
		amount := u.Q / s.Distance
		last := len(s.Tour) - 1
		for k := 0; k < last; k++ {
			if err := p.Deposit(s.Tour[k], s.Tour[k+1], amount); err != nil {
				return fmt.Errorf("ant cycle update: %w", err)
			}
		}
		if last >= 0 {
			if err := p.Deposit(s.Tour[last], s.Tour[0], amount); err != nil {
				return fmt.Errorf("ant cycle update: %w", err)
			}
		}
	}

	return nil
}
