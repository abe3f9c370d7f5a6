package main

import (
	"colony-route-service/internal/colony"
	"colony-route-service/internal/config"
	"colony-route-service/internal/domain"
	"colony-route-service/internal/services"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type solveOptions struct {
	configPath string
	verbose    bool
	cfg        colony.Config
}

func newSolveCmd() *cobra.Command {
	opts := solveOptions{cfg: colony.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find a short closed tour for the distance matrix in a YAML problem file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd.Context(), cmd.OutOrStdout(), opts, cmd.Flags().Changed)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "path to the YAML problem file (required)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log per-iteration progress")
	f.IntVar(&opts.cfg.NumAnts, "ants", opts.cfg.NumAnts, "ants per iteration")
	f.IntVar(&opts.cfg.NumIterations, "iterations", opts.cfg.NumIterations, "number of iterations")
	f.Float64Var(&opts.cfg.Alpha, "alpha", opts.cfg.Alpha, "pheromone exponent")
	f.Float64Var(&opts.cfg.Beta, "beta", opts.cfg.Beta, "heuristic exponent")
	f.Float64Var(&opts.cfg.Rho, "rho", opts.cfg.Rho, "evaporation rate in [0,1]")
	f.Float64Var(&opts.cfg.Q, "q", opts.cfg.Q, "deposit scale")
	f.Float64Var(&opts.cfg.Epsilon, "epsilon", opts.cfg.Epsilon, "zero-distance guard of the heuristic")
	f.Int64Var(&opts.cfg.Seed, "seed", opts.cfg.Seed, "random seed (0 picks the default seed)")
	f.IntVar(&opts.cfg.Workers, "workers", opts.cfg.Workers, "ants constructed concurrently")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

// flagToField maps CLI flag names to the colony.Config field they set.
var flagToField = map[string]func(dst *colony.Config, src colony.Config){
	"ants":       func(d *colony.Config, s colony.Config) { d.NumAnts = s.NumAnts },
	"iterations": func(d *colony.Config, s colony.Config) { d.NumIterations = s.NumIterations },
	"alpha":      func(d *colony.Config, s colony.Config) { d.Alpha = s.Alpha },
	"beta":       func(d *colony.Config, s colony.Config) { d.Beta = s.Beta },
	"rho":        func(d *colony.Config, s colony.Config) { d.Rho = s.Rho },
	"q":          func(d *colony.Config, s colony.Config) { d.Q = s.Q },
	"epsilon":    func(d *colony.Config, s colony.Config) { d.Epsilon = s.Epsilon },
	"seed":       func(d *colony.Config, s colony.Config) { d.Seed = s.Seed },
	"workers":    func(d *colony.Config, s colony.Config) { d.Workers = s.Workers },
}

// runSolve resolves parameters as defaults < problem file < explicit flags.
func runSolve(ctx context.Context, out io.Writer, opts solveOptions, changed func(string) bool) error {
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	problem, err := config.LoadProblem(opts.configPath)
	if err != nil {
		return err
	}

	cfg := problem.Params.Apply(colony.DefaultConfig())
	for name, set := range flagToField {
		if changed(name) {
			set(&cfg, opts.cfg)
		}
	}

	engineOpts := []colony.Option{colony.WithLogger(logger)}
	if opts.verbose {
		engineOpts = append(engineOpts, colony.WithRecorder(progressRecorder{logger: logger}))
	}

	plan, err := services.SolveTour(ctx, services.SolveRequest{
		Locations: problem.Labels,
		Distances: problem.Distances,
		Config:    cfg,
	}, nil, nil, engineOpts...)
	if err != nil {
		var cerr *domain.ConfigError
		if errors.As(err, &cerr) {
			return fmt.Errorf("invalid %s: %s", cerr.Field, cerr.Reason)
		}
		return err
	}

	route := make([]string, 0, len(plan.Stops))
	for _, s := range plan.Stops {
		route = append(route, strconv.Itoa(s.Location))
	}
	fmt.Fprintf(out, "Best route found: [%s]\n", strings.Join(route, ", "))
	fmt.Fprintf(out, "Total distance of best route: %g\n", plan.TotalDistance)

	if opts.verbose {
		logger.Info("baseline comparison",
			zap.Float64("nearest_neighbor", plan.BaselineDistance),
			zap.Float64("colony", plan.TotalDistance),
			zap.Int("fallbacks", plan.Fallbacks),
		)
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
