package board

import (
	"fmt"
	"strings"

	"github.com/lgbarn/peg-solitaire-go/internal/errors"
)

// Notation characters. Rows are separated by RowSeparator.
const (
	PegChar      = 'x'
	HoleChar     = '.'
	RowSeparator = '/'
)

// Parse builds a board from its notation, e.g. "./xx/xxx" for a size 3
// triangle with an empty apex. Row r must contain exactly r+1 cells.
// Pegs are numbered by row-major cell index starting at 1, so a cell keeps
// the same id whether or not its neighbours are occupied.
func Parse(s string) (*Board, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, &errors.ParseError{Err: errors.ErrInvalidNotation, Offset: -1, Msg: "empty notation"}
	}

	rows := strings.Split(s, string(RowSeparator))
	b := NewTriangle(len(rows))

	offset := 0
	id := Piece(1)
	for r, row := range rows {
		if len(row) != r+1 {
			return nil, &errors.ParseError{
				Err:    errors.ErrInvalidNotation,
				Input:  s,
				Offset: offset,
				Msg:    fmt.Sprintf("row %d has %d cells, want %d", r, len(row), r+1),
			}
		}
		for c := 0; c < len(row); c++ {
			switch row[c] {
			case PegChar:
				b.AddPiece(Position{Row: r, Col: c}, id)
			case HoleChar:
			default:
				return nil, &errors.ParseError{
					Err:    errors.ErrInvalidNotation,
					Input:  s,
					Offset: offset + c,
					Msg:    fmt.Sprintf("unexpected %q", row[c]),
				}
			}
			id++
		}
		offset += len(row) + 1
	}
	return b, nil
}

// Format returns the notation of b's occupancy.
func Format(b *Board) string {
	var sb strings.Builder
	for r := 0; r < b.Size(); r++ {
		if r > 0 {
			sb.WriteByte(RowSeparator)
		}
		for c := 0; c < b.RowLen(r); c++ {
			if _, ok := b.PeekUnchecked(Position{Row: r, Col: c}); ok {
				sb.WriteByte(PegChar)
			} else {
				sb.WriteByte(HoleChar)
			}
		}
	}
	return sb.String()
}

// Triangle returns a full triangle of the given size with the listed holes
// left empty. Ids follow the same numbering as Parse. Holes outside the
// triangle are ignored.
func Triangle(size int, holes ...Position) *Board {
	skip := make(map[Position]bool, len(holes))
	for _, h := range holes {
		skip[h] = true
	}

	b := NewTriangle(size)
	id := Piece(1)
	for r := 0; r < size; r++ {
		for c := 0; c <= r; c++ {
			pos := Position{Row: r, Col: c}
			if !skip[pos] {
				b.AddPiece(pos, id)
			}
			id++
		}
	}
	return b
}

// Target returns an empty triangle of the given size with a single piece
// at pos, the conventional goal configuration.
func Target(size int, pos Position) (*Board, error) {
	b := NewTriangle(size)
	if err := b.Place(pos, 1); err != nil {
		return nil, err
	}
	return b, nil
}
