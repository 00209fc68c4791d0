package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lgbarn/peg-solitaire-go/internal/board"
	"github.com/lgbarn/peg-solitaire-go/internal/config"
	pegerrors "github.com/lgbarn/peg-solitaire-go/internal/errors"
	"github.com/lgbarn/peg-solitaire-go/internal/metrics"
	"github.com/lgbarn/peg-solitaire-go/internal/output"
	"github.com/lgbarn/peg-solitaire-go/internal/solver"
	"github.com/lgbarn/peg-solitaire-go/internal/worker"
)

func newBatchCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Solve every single-hole start of a triangle in parallel",
		Long: `batch solves one puzzle per starting hole. Without --hole every cell of
the triangle is tried in turn. Puzzles run in parallel; each search itself
is sequential.`,
		Example: `  peg-solitaire batch --size 5
  peg-solitaire batch --size 6 --workers 4 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, opts, batchDefaults)
			if err != nil {
				return err
			}
			if cfg.Puzzle.Board != "" {
				return fmt.Errorf("batch builds its starting boards from size and holes, puzzle.board %q is not allowed: %w",
					cfg.Puzzle.Board, pegerrors.ErrInvalidConfig)
			}
			return runBatch(cmd.Context(), cfg, changed(cmd, "hole"))
		},
	}
	addPuzzleFlags(cmd, opts, false)
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "number of puzzles solved at once (default one per CPU)")
	return cmd
}

// batchDefaults makes text batch output one summary line per start unless
// the file or -v asks for more.
func batchDefaults(cfg *config.Config) {
	cfg.Output.Verbosity = 0
}

// batchItems builds one work item per starting hole. With no explicit holes
// every cell of the triangle is used, in row-major order.
func batchItems(cfg *config.Config, explicit bool) ([]worker.WorkItem, error) {
	size := cfg.Puzzle.Size
	target, err := cfg.TargetBoard()
	if err != nil {
		return nil, err
	}

	holes := cfg.Puzzle.Holes
	if !explicit {
		holes = board.Triangle(size).Occupied()
	}

	items := make([]worker.WorkItem, 0, len(holes))
	for _, h := range holes {
		items = append(items, worker.WorkItem{
			Start:  board.Triangle(size, h),
			Target: target,
			Label:  h.String(),
		})
	}
	return items, nil
}

func runBatch(ctx context.Context, cfg *config.Config, explicitHoles bool) error {
	logger := cfg.Log.NewLogger()

	items, err := batchItems(cfg, explicitHoles)
	if err != nil {
		return err
	}
	logger.Info("batch started", "size", cfg.Puzzle.Size, "puzzles", len(items), "workers", cfg.Batch.Workers)

	s := solver.New(solver.WithLogger(logger))
	results, runErr := worker.SolveAll(ctx, items, worker.SolveFunc(s),
		worker.WithWorkers(cfg.Batch.Workers),
		worker.WithBufferSize(cfg.Batch.BufferSize),
	)
	if runErr != nil {
		logger.Warn("batch interrupted", "error", runErr)
	}

	rec := metrics.NewRecorder()
	w := output.NewWriter(cfg.Output, true)
	solved := 0
	for _, res := range results {
		if res.Start == nil {
			continue // skipped after cancellation
		}
		rec.Observe(res.Result, res.Err)
		if res.Result.Solved() {
			solved++
		}
		logger.Info("puzzle finished",
			"start", res.Label,
			"solved", res.Result.Solved(),
			"nodes", res.Result.Stats.Nodes,
			"duration", res.Result.Stats.Duration,
		)
		if err := w.WriteSolution(output.Solution{
			Label:  res.Label,
			Start:  res.Start,
			Target: items[res.Index].Target,
			Result: res.Result,
		}); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	logger.Info("batch finished", "puzzles", len(results), "solved", solved)

	if err := writeMetrics(cfg, rec, logger); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}
	if solved == 0 {
		return errNoSolution
	}
	return nil
}
