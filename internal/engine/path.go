package engine

import (
	"github.com/lgbarn/peg-solitaire-go/internal/board"
	"github.com/lgbarn/peg-solitaire-go/internal/errors"
)

// JumpBetween finds the legal jump that turns before into after. Boards are
// compared by occupancy only, matching board.Equal.
func JumpBetween(before, after *board.Board) (Jump, bool) {
	if before.Size() != after.Size() || after.PieceCount() != before.PieceCount()-1 {
		return Jump{}, false
	}

	var vacated []board.Position
	var filled []board.Position
	for r := 0; r < before.Size(); r++ {
		for c := 0; c <= r; c++ {
			pos := board.Position{Row: r, Col: c}
			_, was := before.PeekUnchecked(pos)
			_, is := after.PeekUnchecked(pos)
			switch {
			case was && !is:
				vacated = append(vacated, pos)
			case !was && is:
				filled = append(filled, pos)
			}
		}
	}
	if len(filled) != 1 || len(vacated) != 2 {
		return Jump{}, false
	}

	to := filled[0]
	for i, from := range vacated {
		j, ok := Check(before, from, to)
		if ok && j.Over == vacated[1-i] {
			return j, true
		}
	}
	return Jump{}, false
}

// VerifyPath checks that every consecutive pair of boards in path differs
// by exactly one legal jump.
func VerifyPath(path []*board.Board) error {
	_, err := PathJumps(path)
	return err
}

// PathJumps returns the jumps that connect the boards of a verified path.
func PathJumps(path []*board.Board) ([]Jump, error) {
	jumps := make([]Jump, 0, len(path))
	for i := 1; i < len(path); i++ {
		j, ok := JumpBetween(path[i-1], path[i])
		if !ok {
			pos := firstChange(path[i-1], path[i])
			return nil, &errors.PositionError{
				Err:  errors.ErrIllegalJump,
				Row:  pos.Row,
				Col:  pos.Col,
				Size: path[i].Size(),
				Step: i,
			}
		}
		jumps = append(jumps, j)
	}
	return jumps, nil
}

// firstChange returns the first cell, in row-major order, whose occupancy
// differs between before and after. Boards of different sizes differ at
// the first row one of them lacks.
func firstChange(before, after *board.Board) board.Position {
	rows := before.Size()
	if after.Size() < rows {
		rows = after.Size()
	}
	for r := 0; r < rows; r++ {
		for c := 0; c <= r; c++ {
			pos := board.Position{Row: r, Col: c}
			_, was := before.PeekUnchecked(pos)
			_, is := after.PeekUnchecked(pos)
			if was != is {
				return pos
			}
		}
	}
	return board.Position{Row: rows, Col: 0}
}
