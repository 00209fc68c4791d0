package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/lgbarn/peg-solitaire-go/internal/board"
	"github.com/lgbarn/peg-solitaire-go/internal/config"
)

// options holds raw flag values. Only flags the user actually set are
// applied over the configuration file and defaults.
type options struct {
	stdout io.Writer
	stderr io.Writer

	configPath  string
	format      string
	color       string
	logLevel    string
	logFormat   string
	metricsFile string
	verbosity   int

	size    int
	holes   []string
	board   string
	target  string
	workers int
}

func addGlobalFlags(cmd *cobra.Command, opts *options) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&opts.format, "format", "text", "output format: text or json")
	pf.StringVar(&opts.color, "color", "auto", "colour output: auto, always or never")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	pf.StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")
	pf.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this file")
	pf.IntVarP(&opts.verbosity, "verbosity", "v", 1, "0 summary only, 1 boards, 2 boards and statistics")
}

func addPuzzleFlags(cmd *cobra.Command, opts *options, withBoard bool) {
	f := cmd.Flags()
	f.IntVar(&opts.size, "size", config.DefaultSize, "side length of the triangle")
	f.StringArrayVar(&opts.holes, "hole", nil, "empty cell of the starting board as row,col (repeatable)")
	f.StringVar(&opts.target, "target", "0,0", "cell where the last peg should end up, as row,col")
	if withBoard {
		f.StringVar(&opts.board, "board", "", "explicit starting board in notation form")
	}
}

func changed(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Changed
}

// buildConfig layers defaults, the configuration file and explicitly set
// flags, in that order, and validates the result. defaults adjust the
// built-in values for one command before the file is read.
func buildConfig(cmd *cobra.Command, opts *options, defaults ...func(*config.Config)) (*config.Config, error) {
	cfg := config.NewConfigBuilder().WithOutput(opts.stdout).Build()
	cfg.Log.Writer = opts.stderr
	for _, d := range defaults {
		d(cfg)
	}

	if opts.configPath != "" {
		if err := config.LoadFile(opts.configPath, cfg); err != nil {
			return nil, err
		}
	}

	if err := applyFlags(cmd, opts, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) error {
	if changed(cmd, "format") {
		f, err := config.ParseOutputFormat(opts.format)
		if err != nil {
			return err
		}
		cfg.Output.Format = f
	}
	if changed(cmd, "color") {
		m, err := config.ParseColorMode(opts.color)
		if err != nil {
			return err
		}
		cfg.Output.Color = m
	}
	if changed(cmd, "verbosity") {
		cfg.Output.Verbosity = opts.verbosity
	}
	if changed(cmd, "log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if changed(cmd, "log-format") {
		cfg.Log.Format = opts.logFormat
	}
	if changed(cmd, "metrics-file") {
		cfg.MetricsFile = opts.metricsFile
	}

	if changed(cmd, "size") {
		cfg.Puzzle.Size = opts.size
	}
	if changed(cmd, "hole") {
		holes := make([]board.Position, 0, len(opts.holes))
		for _, h := range opts.holes {
			pos, err := config.ParsePosition(h)
			if err != nil {
				return err
			}
			holes = append(holes, pos)
		}
		cfg.Puzzle.Holes = holes
	}
	if changed(cmd, "board") {
		cfg.Puzzle.Board = opts.board
	}
	if changed(cmd, "target") {
		pos, err := config.ParsePosition(opts.target)
		if err != nil {
			return err
		}
		cfg.Puzzle.Target = pos
	}
	if changed(cmd, "workers") {
		cfg.Batch.Workers = opts.workers
	}
	return nil
}
