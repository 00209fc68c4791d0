// Package engine provides peg-solitaire jump validation and board updates.
package engine

import "github.com/lgbarn/peg-solitaire-go/internal/board"

// Directions are the six jump vectors along the triangle's three axes, in
// the order the solver tries them.
var Directions = [6]board.Position{
	{Row: 2, Col: 0},
	{Row: -2, Col: 0},
	{Row: 0, Col: 2},
	{Row: 0, Col: -2},
	{Row: -2, Col: -2},
	{Row: 2, Col: 2},
}

// Jump is a single move: the piece on From jumps over Over and lands on To.
type Jump struct {
	From board.Position
	Over board.Position
	To   board.Position
}

// isDirection reports whether d is one of the six jump vectors.
func isDirection(d board.Position) bool {
	for _, v := range Directions {
		if v == d {
			return true
		}
	}
	return false
}

// validateJump checks every legality condition for a jump from from to to
// and returns the captured cell. Both Move and MoveInPlace go through here.
func validateJump(b *board.Board, from, to board.Position) (board.Position, bool) {
	if !b.InBounds(to) {
		return board.Position{}, false
	}
	if _, occupied := b.PeekUnchecked(to); occupied {
		return board.Position{}, false
	}
	if _, occupied := b.Peek(from); !occupied {
		return board.Position{}, false
	}

	diff := to.Sub(from)
	if !isDirection(diff) {
		return board.Position{}, false
	}

	// from and to are both on the board and lie on one axis, so the
	// midpoint is on the board too.
	over := from.Add(board.Position{Row: Sign(diff.Row), Col: Sign(diff.Col)})
	if _, occupied := b.PeekUnchecked(over); !occupied {
		return board.Position{}, false
	}
	return over, true
}

// apply performs a validated jump on b.
func apply(b *board.Board, from, over, to board.Position) {
	b.Take(over)
	id, _ := b.Take(from)
	b.AddPiece(to, id)
}

// Move returns a new board with the jump from from to to applied, leaving
// b untouched. It returns false if the jump is illegal.
func Move(b *board.Board, from, to board.Position) (*board.Board, bool) {
	over, ok := validateJump(b, from, to)
	if !ok {
		return nil, false
	}
	nb := b.Clone()
	apply(nb, from, over, to)
	return nb, true
}

// MoveInPlace applies the jump from from to to directly on b.
// Returns false, leaving b unchanged, if the jump is illegal.
func MoveInPlace(b *board.Board, from, to board.Position) bool {
	over, ok := validateJump(b, from, to)
	if !ok {
		return false
	}
	apply(b, from, over, to)
	return true
}

// Check reports whether the jump from from to to is legal on b and, if so,
// returns it.
func Check(b *board.Board, from, to board.Position) (Jump, bool) {
	over, ok := validateJump(b, from, to)
	if !ok {
		return Jump{}, false
	}
	return Jump{From: from, Over: over, To: to}, true
}
