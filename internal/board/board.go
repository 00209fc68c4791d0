package board

import (
	"fmt"

	"github.com/lgbarn/peg-solitaire-go/internal/errors"
)

// Board is a triangular grid: row r holds exactly r+1 cells, each empty or
// holding a Piece.
//
// count caches the number of occupied cells. Every mutator keeps it equal
// to the true number of occupied cells.
type Board struct {
	rows  [][]cell
	count int
}

// New creates a board with no rows.
func New() *Board {
	return &Board{}
}

// NewTriangle creates an empty triangle with size rows. Row i (0-based)
// has i+1 cells. A negative size yields an empty board.
func NewTriangle(size int) *Board {
	b := &Board{}
	if size <= 0 {
		return b
	}
	b.rows = make([][]cell, size)
	for i := range b.rows {
		b.rows[i] = make([]cell, i+1)
	}
	return b
}

// PieceCount returns the number of occupied cells.
func (b *Board) PieceCount() int {
	return b.count
}

// Size returns the number of rows.
func (b *Board) Size() int {
	return len(b.rows)
}

// RowLen returns the number of cells in row, or 0 if the row does not exist.
func (b *Board) RowLen(row int) int {
	if row < 0 || row >= len(b.rows) {
		return 0
	}
	return len(b.rows[row])
}

// InBounds reports whether pos is a cell of the triangle:
// 0 <= Col <= Row < Size().
func (b *Board) InBounds(pos Position) bool {
	if pos.Row < 0 || pos.Col < 0 {
		return false
	}
	if pos.Col > pos.Row {
		return false
	}
	return pos.Row < len(b.rows)
}

// inStorage reports whether pos addresses an allocated cell, independent
// of the triangular shape.
func (b *Board) inStorage(pos Position) bool {
	if pos.Row < 0 || pos.Row >= len(b.rows) {
		return false
	}
	return pos.Col >= 0 && pos.Col < len(b.rows[pos.Row])
}

// AddPiece places a piece with the given id at pos.
//
// pos must lie within allocated storage; callers validate with InBounds
// first. Writing outside storage is a programming error and panics.
// Placing onto an occupied cell replaces its id without changing the count.
func (b *Board) AddPiece(pos Position, id Piece) {
	if !b.inStorage(pos) {
		panic(fmt.Sprintf("board: AddPiece at %v outside a board of size %d", pos, len(b.rows)))
	}
	c := &b.rows[pos.Row][pos.Col]
	if !c.occupied {
		b.count++
	}
	c.piece = id
	c.occupied = true
}

// Place is the bounds-checked form of AddPiece.
func (b *Board) Place(pos Position, id Piece) error {
	if !b.InBounds(pos) {
		return &errors.PositionError{Err: errors.ErrOutOfBounds, Row: pos.Row, Col: pos.Col, Size: len(b.rows)}
	}
	b.AddPiece(pos, id)
	return nil
}

// Peek returns the piece at pos and whether the cell is occupied. Positions
// with no backing cell read as empty.
func (b *Board) Peek(pos Position) (Piece, bool) {
	if !b.inStorage(pos) {
		return 0, false
	}
	c := b.rows[pos.Row][pos.Col]
	return c.piece, c.occupied
}

// PeekUnchecked is Peek without bounds checking. The caller must already
// know that pos is InBounds; otherwise it panics.
func (b *Board) PeekUnchecked(pos Position) (Piece, bool) {
	c := b.rows[pos.Row][pos.Col]
	return c.piece, c.occupied
}

// Take removes and returns the piece at pos. Out-of-bounds positions and
// empty cells return false and leave the board unchanged.
func (b *Board) Take(pos Position) (Piece, bool) {
	if !b.InBounds(pos) {
		return 0, false
	}
	return b.takeUnchecked(pos)
}

func (b *Board) takeUnchecked(pos Position) (Piece, bool) {
	c := &b.rows[pos.Row][pos.Col]
	if !c.occupied {
		return 0, false
	}
	id := c.piece
	*c = cell{}
	b.count--
	return id, true
}

// Clone creates a deep copy of the board.
func (b *Board) Clone() *Board {
	nb := &Board{
		rows:  make([][]cell, len(b.rows)),
		count: b.count,
	}
	for i, row := range b.rows {
		nb.rows[i] = make([]cell, len(row))
		copy(nb.rows[i], row)
	}
	return nb
}

// Equal reports whether b and other have the same row-length profile, the
// same piece count and the same occupied/empty pattern. Piece ids are not
// compared.
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	if len(b.rows) != len(other.rows) || b.count != other.count {
		return false
	}
	for i := range b.rows {
		if len(b.rows[i]) != len(other.rows[i]) {
			return false
		}
		for j := range b.rows[i] {
			if b.rows[i][j].occupied != other.rows[i][j].occupied {
				return false
			}
		}
	}
	return true
}

// Occupied returns the occupied cells in row-major order.
func (b *Board) Occupied() []Position {
	out := make([]Position, 0, b.count)
	for i, row := range b.rows {
		for j, c := range row {
			if c.occupied {
				out = append(out, Position{Row: i, Col: j})
			}
		}
	}
	return out
}

// Recount counts occupied cells from the grid, ignoring the cached count.
func (b *Board) Recount() int {
	n := 0
	for _, row := range b.rows {
		for _, c := range row {
			if c.occupied {
				n++
			}
		}
	}
	return n
}
