// Package board provides the triangular peg-solitaire board and its
// coordinate types.
package board

import "fmt"

// Position identifies a cell of the triangle. Valid cells satisfy
// Row >= 0 and 0 <= Col <= Row. Coordinates are signed so that the
// difference of two positions can be negative.
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Add returns the component-wise sum of p and q.
func (p Position) Add(q Position) Position {
	return Position{Row: p.Row + q.Row, Col: p.Col + q.Col}
}

// Sub returns the component-wise difference p - q.
func (p Position) Sub(q Position) Position {
	return Position{Row: p.Row - q.Row, Col: p.Col - q.Col}
}

// String returns the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Piece identifies a peg. The id is only used for display; any value is
// allowed and ids need not be distinct.
type Piece int

// cell is one slot of the grid.
type cell struct {
	piece    Piece
	occupied bool
}
