package config

import (
	"colony-route-service/internal/colony"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Problem is the YAML file format read by the aco CLI.
//
//	labels: [HUB, A, B]
//	distances:
//	  - [0, 1, 2]
//	  - [1, 0, 3]
//	  - [2, 3, 0]
//	params:
//	  num_ants: 20
//	  beta: 5
type Problem struct {
	Labels    []string      `yaml:"labels"`
	Distances [][]float64   `yaml:"distances"`
	Params    ProblemParams `yaml:"params"`
}

// ProblemParams overrides colony.DefaultConfig field by field; nil means keep the default.
// It is shared by the YAML problem file and the POST /tours request body.
type ProblemParams struct {
	NumAnts          *int     `yaml:"num_ants" json:"num_ants,omitempty"`
	NumIterations    *int     `yaml:"num_iterations" json:"num_iterations,omitempty"`
	Alpha            *float64 `yaml:"alpha" json:"alpha,omitempty"`
	Beta             *float64 `yaml:"beta" json:"beta,omitempty"`
	Rho              *float64 `yaml:"rho" json:"rho,omitempty"`
	Q                *float64 `yaml:"q" json:"q,omitempty"`
	Epsilon          *float64 `yaml:"epsilon" json:"epsilon,omitempty"`
	InitialPheromone *float64 `yaml:"initial_pheromone" json:"initial_pheromone,omitempty"`
	Seed             *int64   `yaml:"seed" json:"seed,omitempty"`
	Workers          *int     `yaml:"workers" json:"workers,omitempty"`
}

// Apply copies every set field onto cfg.
func (p ProblemParams) Apply(cfg colony.Config) colony.Config {
	if p.NumAnts != nil {
		cfg.NumAnts = *p.NumAnts
	}
	if p.NumIterations != nil {
		cfg.NumIterations = *p.NumIterations
	}
	if p.Alpha != nil {
		cfg.Alpha = *p.Alpha
	}
	if p.Beta != nil {
		cfg.Beta = *p.Beta
	}
	if p.Rho != nil {
		cfg.Rho = *p.Rho
	}
	if p.Q != nil {
		cfg.Q = *p.Q
	}
	if p.Epsilon != nil {
		cfg.Epsilon = *p.Epsilon
	}
	if p.InitialPheromone != nil {
		cfg.InitialPheromone = *p.InitialPheromone
	}
	if p.Seed != nil {
		cfg.Seed = *p.Seed
	}
	if p.Workers != nil {
		cfg.Workers = *p.Workers
	}
	return cfg
}

// LoadProblem reads and decodes a YAML problem file. Unknown keys are rejected.
func LoadProblem(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load problem: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var p Problem
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("load problem %q: decode yaml: %w", path, err)
	}
	if len(p.Labels) > 0 && len(p.Labels) != len(p.Distances) {
		return nil, fmt.Errorf("load problem %q: %d labels for %d distance rows", path, len(p.Labels), len(p.Distances))
	}

	return &p, nil
}
