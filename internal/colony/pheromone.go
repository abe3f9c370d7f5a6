package colony

import (
	"fmt"
	"math"
)

// PheromoneMatrix is the colony's evolving memory: an n×n table of
// non-negative edge desirabilities, kept symmetric by every write.
//
// It is not safe for concurrent mutation. The engine only reads it while
// ants are constructing tours and only mutates it after they have joined.
type PheromoneMatrix struct {
	n     int
	cells []float64
}

// NewPheromoneMatrix fills an n×n matrix with value.
func NewPheromoneMatrix(n int, value float64) *PheromoneMatrix {
	cells := make([]float64, n*n)
	for i := range cells {
		cells[i] = value
	}
	return &PheromoneMatrix{n: n, cells: cells}
}

// Size returns the number of locations n.
func (p *PheromoneMatrix) Size() int { return p.n }

// At returns the pheromone on edge (i,j).
func (p *PheromoneMatrix) At(i, j int) float64 { return p.cells[i*p.n+j] }

// Evaporate multiplies every entry by (1 - rho).
func (p *PheromoneMatrix) Evaporate(rho float64) error {
	if math.IsNaN(rho) || rho < 0 || rho > 1 {
		return fmt.Errorf("evaporate: rho must be within [0,1], got %g", rho)
	}

	keep := 1 - rho
	for i := range p.cells {
		p.cells[i] *= keep
	}
	return nil
}

// Deposit adds amount to both (i,j) and (j,i).
func (p *PheromoneMatrix) Deposit(i, j int, amount float64) error {
	if math.IsNaN(amount) || amount < 0 {
		return fmt.Errorf("deposit: amount must be non-negative, got %g", amount)
	}

	p.cells[i*p.n+j] += amount
	if i != j {
		p.cells[j*p.n+i] += amount
	}
	return nil
}

// Clone returns an independent copy.
func (p *PheromoneMatrix) Clone() *PheromoneMatrix {
	return &PheromoneMatrix{n: p.n, cells: append([]float64(nil), p.cells...)}
}

func (p *PheromoneMatrix) IsSymmetric() bool {
	for i := 0; i < p.n; i++ {
		for j := i + 1; j < p.n; j++ {
			if p.At(i, j) != p.At(j, i) {
				return false
			}
		}
	}
	return true
}

// Rows returns a copy of the matrix as a slice of rows.
func (p *PheromoneMatrix) Rows() [][]float64 {
	out := make([][]float64, p.n)
	for i := range out {
		out[i] = append([]float64(nil), p.cells[i*p.n:(i+1)*p.n]...)
	}
	return out
}
