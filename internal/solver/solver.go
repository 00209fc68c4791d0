// Package solver finds jump sequences that clear a triangular board down to
// a single peg, using exhaustive depth-first backtracking.
package solver

import (
	"log/slog"
	"time"

	"github.com/lgbarn/peg-solitaire-go/internal/board"
	"github.com/lgbarn/peg-solitaire-go/internal/engine"
	"github.com/lgbarn/peg-solitaire-go/internal/errors"
)

// Solve searches for a sequence of jumps from current down to at most one
// peg. It returns the boards visited, from current to the final board, or
// nil if no sequence exists.
//
// Any board with one peg or fewer counts as solved: target is accepted for
// API symmetry but the position of the surviving peg is not checked.
func Solve(current, target *board.Board) []*board.Board {
	var s search
	return s.solve(current, target, 0)
}

// Stats describes the work done by one search.
type Stats struct {
	Nodes     int           // boards visited
	Attempts  int           // jumps tried, legal or not
	Jumps     int           // legal jumps applied
	DeadEnds  int           // boards from which no solution was found
	MaxDepth  int           // deepest recursion reached
	Duration  time.Duration // wall time of the search
	Remaining int           // pegs left on the final board, -1 if unsolved
}

// Result is the outcome of Solver.Solve.
type Result struct {
	Path  []*board.Board
	Stats Stats
}

// Solved reports whether a path was found.
func (r Result) Solved() bool {
	return r.Path != nil
}

// Solver runs searches and reports their statistics.
type Solver struct {
	logger *slog.Logger
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the logger used to report each search.
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Solver. Without WithLogger it logs nothing.
func New(opts ...Option) *Solver {
	s := &Solver{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve runs the same search as the package-level Solve and also collects
// statistics. It returns errors.ErrNoSolution when the search is exhausted.
func (s *Solver) Solve(current, target *board.Board) (Result, error) {
	start := time.Now()
	var sr search
	path := sr.solve(current, target, 0)
	sr.stats.Duration = time.Since(start)

	sr.stats.Remaining = -1
	if path != nil {
		sr.stats.Remaining = path[len(path)-1].PieceCount()
	}

	s.logger.Debug("search finished",
		"board", board.Format(current),
		"solved", path != nil,
		"steps", len(path)-1,
		"nodes", sr.stats.Nodes,
		"attempts", sr.stats.Attempts,
		"dead_ends", sr.stats.DeadEnds,
		"max_depth", sr.stats.MaxDepth,
		"duration", sr.stats.Duration,
	)

	res := Result{Path: path, Stats: sr.stats}
	if path == nil {
		return res, errors.Wrapf(errors.ErrNoSolution, "board %s", board.Format(current))
	}
	return res, nil
}

// search holds the counters of one run. Boards are never shared between
// branches: every legal jump produces a fresh copy.
type search struct {
	stats Stats
}

func (s *search) solve(current, target *board.Board, depth int) []*board.Board {
	s.stats.Nodes++
	if depth > s.stats.MaxDepth {
		s.stats.MaxDepth = depth
	}

	if current.PieceCount() <= 1 {
		return []*board.Board{current}
	}

	for i := 0; i < current.Size(); i++ {
		for j := 0; j <= i; j++ {
			from := board.Position{Row: i, Col: j}
			if _, occupied := current.PeekUnchecked(from); !occupied {
				continue
			}
			for _, d := range engine.Directions {
				s.stats.Attempts++
				next, ok := engine.Move(current, from, from.Add(d))
				if !ok {
					continue
				}
				s.stats.Jumps++
				if rest := s.solve(next, target, depth+1); rest != nil {
					return append([]*board.Board{current}, rest...)
				}
			}
		}
	}
	s.stats.DeadEnds++
	return nil
}
