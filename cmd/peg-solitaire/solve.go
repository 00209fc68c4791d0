package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lgbarn/peg-solitaire-go/internal/board"
	"github.com/lgbarn/peg-solitaire-go/internal/config"
	pegerrors "github.com/lgbarn/peg-solitaire-go/internal/errors"
	"github.com/lgbarn/peg-solitaire-go/internal/metrics"
	"github.com/lgbarn/peg-solitaire-go/internal/output"
	"github.com/lgbarn/peg-solitaire-go/internal/solver"
)

func newSolveCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find a sequence of jumps that leaves a single peg",
		Example: `  peg-solitaire solve --size 5 --hole 0,0
  peg-solitaire solve --board "./xx/xxx/xxxx" --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runSolve(cfg)
		},
	}
	addPuzzleFlags(cmd, opts, true)
	return cmd
}

func runSolve(cfg *config.Config) error {
	logger := cfg.Log.NewLogger()

	start, err := cfg.StartBoard()
	if err != nil {
		return err
	}
	target, err := cfg.TargetBoard()
	if err != nil {
		return err
	}

	logger.Info("solving", "board", board.Format(start), "pegs", start.PieceCount())
	s := solver.New(solver.WithLogger(logger))
	res, solveErr := s.Solve(start, target)
	if solveErr != nil && !errors.Is(solveErr, pegerrors.ErrNoSolution) {
		return solveErr
	}

	rec := metrics.NewRecorder()
	rec.Observe(res, solveErr)

	w := output.NewWriter(cfg.Output, false)
	if err := w.WriteSolution(output.Solution{Start: start, Target: target, Result: res}); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	if err := writeMetrics(cfg, rec, logger); err != nil {
		return err
	}
	if !res.Solved() {
		return errNoSolution
	}
	return nil
}

func writeMetrics(cfg *config.Config, rec *metrics.Recorder, logger *slog.Logger) error {
	if cfg.MetricsFile == "" {
		return nil
	}
	if err := rec.WriteTextfile(cfg.MetricsFile); err != nil {
		return err
	}
	logger.Debug("metrics written", "path", cfg.MetricsFile)
	return nil
}
