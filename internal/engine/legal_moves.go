package engine

import "github.com/lgbarn/peg-solitaire-go/internal/board"

// LegalJumps returns every legal jump on b, ordered by origin cell in
// row-major order and then by Directions.
func LegalJumps(b *board.Board) []Jump {
	var jumps []Jump
	for _, from := range b.Occupied() {
		for _, d := range Directions {
			if j, ok := Check(b, from, from.Add(d)); ok {
				jumps = append(jumps, j)
			}
		}
	}
	return jumps
}

// HasLegalJumps returns true if at least one jump is available on b.
func HasLegalJumps(b *board.Board) bool {
	for _, from := range b.Occupied() {
		for _, d := range Directions {
			if _, ok := validateJump(b, from, from.Add(d)); ok {
				return true
			}
		}
	}
	return false
}
