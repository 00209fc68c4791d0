package testutil

import (
	"testing"

	"github.com/lgbarn/peg-solitaire-go/internal/board"
)

// MustParse parses a board notation or fails the test.
func MustParse(t testing.TB, notation string) *board.Board {
	t.Helper()
	b, err := board.Parse(notation)
	if err != nil {
		t.Fatalf("board.Parse(%q) error: %v", notation, err)
	}
	return b
}

// MustTarget builds a single-peg target board or fails the test.
func MustTarget(t testing.TB, size int, pos board.Position) *board.Board {
	t.Helper()
	b, err := board.Target(size, pos)
	if err != nil {
		t.Fatalf("board.Target(%d, %v) error: %v", size, pos, err)
	}
	return b
}

// Puzzle is a named starting board used across package tests.
type Puzzle struct {
	Name  string
	Size  int
	Hole  board.Position
	Steps int // jumps in the first solution found, -1 if unsolvable
	Last  board.Position
}

// Start returns the puzzle's starting board.
func (p Puzzle) Start() *board.Board {
	return board.Triangle(p.Size, p.Hole)
}

// Puzzles with known outcomes under the solver's fixed move ordering.
var (
	SizeOne          = Puzzle{Name: "size 1 full", Size: 1, Hole: board.Pos(-1, -1), Steps: 0, Last: board.Pos(0, 0)}
	SizeThreeApex    = Puzzle{Name: "size 3 apex", Size: 3, Hole: board.Pos(0, 0), Steps: -1}
	SizeFourEdge     = Puzzle{Name: "size 4 hole (1,0)", Size: 4, Hole: board.Pos(1, 0), Steps: 8, Last: board.Pos(1, 1)}
	SizeFourCentre   = Puzzle{Name: "size 4 hole (2,1)", Size: 4, Hole: board.Pos(2, 1), Steps: -1}
	SizeFiveApex     = Puzzle{Name: "size 5 apex", Size: 5, Hole: board.Pos(0, 0), Steps: 13, Last: board.Pos(4, 2)}
	SizeFiveEdgeHole = Puzzle{Name: "size 5 hole (1,0)", Size: 5, Hole: board.Pos(1, 0), Steps: 13, Last: board.Pos(2, 2)}
)
