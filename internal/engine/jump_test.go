package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/peg-solitaire-go/internal/board"
)

// boardWith returns a triangle of the given size with pieces on the listed
// cells, ids starting at 1 in list order.
func boardWith(size int, cells ...board.Position) *board.Board {
	b := board.NewTriangle(size)
	for i, pos := range cells {
		b.AddPiece(pos, board.Piece(i+1))
	}
	return b
}

func TestSign(t *testing.T) {
	tests := []struct{ in, want int }{
		{-7, -1}, {-1, -1}, {0, 0}, {1, 1}, {2, 1},
	}
	for _, tt := range tests {
		if got := Sign(tt.in); got != tt.want {
			t.Errorf("Sign(%d) = %d; want %d", tt.in, got, tt.want)
		}
	}
}

func TestMove_AllDirections(t *testing.T) {
	tests := []struct {
		name string
		from board.Position
		over board.Position
		to   board.Position
	}{
		{"down column", board.Pos(0, 0), board.Pos(1, 0), board.Pos(2, 0)},
		{"up column", board.Pos(4, 1), board.Pos(3, 1), board.Pos(2, 1)},
		{"right along row", board.Pos(4, 0), board.Pos(4, 1), board.Pos(4, 2)},
		{"left along row", board.Pos(3, 3), board.Pos(3, 2), board.Pos(3, 1)},
		{"up diagonal", board.Pos(4, 4), board.Pos(3, 3), board.Pos(2, 2)},
		{"down diagonal", board.Pos(1, 0), board.Pos(2, 1), board.Pos(3, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardWith(5, tt.from, tt.over, board.Pos(4, 3))
			snapshot := board.Format(b)

			nb, ok := Move(b, tt.from, tt.to)
			if !ok {
				t.Fatalf("Move(%v -> %v) = false; want true", tt.from, tt.to)
			}

			// Input is untouched.
			if board.Format(b) != snapshot || b.PieceCount() != 3 {
				t.Errorf("input changed: %s (count %d); want %s (count 3)", board.Format(b), b.PieceCount(), snapshot)
			}
			if id, _ := b.Peek(tt.from); id != 1 {
				t.Errorf("input origin id = %d; want 1", id)
			}

			if nb.PieceCount() != b.PieceCount()-1 {
				t.Errorf("PieceCount() = %d; want %d", nb.PieceCount(), b.PieceCount()-1)
			}
			if nb.Recount() != nb.PieceCount() {
				t.Errorf("Recount() = %d; PieceCount() = %d", nb.Recount(), nb.PieceCount())
			}
			if id, ok := nb.Peek(tt.to); !ok || id != 1 {
				t.Errorf("destination = (%d, %v); want (1, true)", id, ok)
			}
			if _, ok := nb.Peek(tt.from); ok {
				t.Error("origin still occupied")
			}
			if _, ok := nb.Peek(tt.over); ok {
				t.Error("captured cell still occupied")
			}
			if id, ok := nb.Peek(board.Pos(4, 3)); !ok || id != 3 {
				t.Errorf("bystander = (%d, %v); want (3, true)", id, ok)
			}
		})
	}
}

func TestMove_Illegal(t *testing.T) {
	tests := []struct {
		name string
		b    *board.Board
		from board.Position
		to   board.Position
	}{
		{
			name: "destination out of bounds",
			b:    boardWith(3, board.Pos(2, 2), board.Pos(1, 1)),
			from: board.Pos(2, 2),
			to:   board.Pos(0, 2),
		},
		{
			name: "destination below the board",
			b:    boardWith(3, board.Pos(1, 0), board.Pos(2, 0)),
			from: board.Pos(1, 0),
			to:   board.Pos(3, 0),
		},
		{
			name: "destination occupied",
			b:    boardWith(3, board.Pos(0, 0), board.Pos(1, 0), board.Pos(2, 0)),
			from: board.Pos(0, 0),
			to:   board.Pos(2, 0),
		},
		{
			name: "origin empty",
			b:    boardWith(3, board.Pos(1, 0)),
			from: board.Pos(0, 0),
			to:   board.Pos(2, 0),
		},
		{
			name: "origin outside the board",
			b:    boardWith(3, board.Pos(1, 1)),
			from: board.Pos(0, 2),
			to:   board.Pos(2, 2),
		},
		{
			name: "anti-diagonal vector",
			b:    boardWith(5, board.Pos(2, 2), board.Pos(3, 1)),
			from: board.Pos(2, 2),
			to:   board.Pos(4, 0),
		},
		{
			name: "single step",
			b:    boardWith(3, board.Pos(1, 0)),
			from: board.Pos(1, 0),
			to:   board.Pos(2, 0),
		},
		{
			name: "three steps",
			b:    boardWith(4, board.Pos(0, 0), board.Pos(1, 0), board.Pos(2, 0)),
			from: board.Pos(0, 0),
			to:   board.Pos(3, 0),
		},
		{
			name: "knight-like vector",
			b:    boardWith(3, board.Pos(0, 0), board.Pos(1, 0)),
			from: board.Pos(0, 0),
			to:   board.Pos(2, 1),
		},
		{
			name: "zero vector",
			b:    boardWith(3, board.Pos(1, 1)),
			from: board.Pos(1, 1),
			to:   board.Pos(1, 1),
		},
		{
			name: "midpoint empty",
			b:    boardWith(3, board.Pos(0, 0)),
			from: board.Pos(0, 0),
			to:   board.Pos(2, 2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := board.Format(tt.b)
			count := tt.b.PieceCount()

			if nb, ok := Move(tt.b, tt.from, tt.to); ok || nb != nil {
				t.Errorf("Move(%v -> %v) = (%v, %v); want (nil, false)", tt.from, tt.to, nb, ok)
			}
			if MoveInPlace(tt.b, tt.from, tt.to) {
				t.Errorf("MoveInPlace(%v -> %v) = true; want false", tt.from, tt.to)
			}
			if _, ok := Check(tt.b, tt.from, tt.to); ok {
				t.Errorf("Check(%v -> %v) = true; want false", tt.from, tt.to)
			}
			if board.Format(tt.b) != snapshot || tt.b.PieceCount() != count {
				t.Errorf("rejected jump mutated the board: %s -> %s", snapshot, board.Format(tt.b))
			}
		})
	}
}

func TestMoveInPlace(t *testing.T) {
	b := board.Triangle(3, board.Pos(0, 0))

	if !MoveInPlace(b, board.Pos(2, 0), board.Pos(0, 0)) {
		t.Fatal("MoveInPlace((2,0) -> (0,0)) = false; want true")
	}
	if got, want := board.Format(b), "x/.x/.xx"; got != want {
		t.Errorf("board = %s; want %s", got, want)
	}
	if id, _ := b.Peek(board.Pos(0, 0)); id != 4 {
		t.Errorf("moved piece id = %d; want 4", id)
	}
	if b.PieceCount() != 4 || b.Recount() != 4 {
		t.Errorf("PieceCount() = %d, Recount() = %d; want 4, 4", b.PieceCount(), b.Recount())
	}
}

// TestMoveFormsAgree checks that the functional and in-place forms accept
// and reject the same jumps and produce the same board, over every
// occupancy pattern of a size 4 triangle.
func TestMoveFormsAgree(t *testing.T) {
	const size = 4
	cells := board.Triangle(size).Occupied()

	var targets []board.Position
	for r := -3; r < size+3; r++ {
		for c := -3; c < size+3; c++ {
			targets = append(targets, board.Pos(r, c))
		}
	}

	for mask := 0; mask < 1<<len(cells); mask++ {
		b := board.NewTriangle(size)
		for i, pos := range cells {
			if mask&(1<<i) != 0 {
				b.AddPiece(pos, board.Piece(i+1))
			}
		}

		for _, from := range cells {
			for _, to := range targets {
				functional, okF := Move(b, from, to)

				inPlace := b.Clone()
				okI := MoveInPlace(inPlace, from, to)

				if okF != okI {
					t.Fatalf("%s %v -> %v: Move = %v, MoveInPlace = %v", board.Format(b), from, to, okF, okI)
				}
				if !okF {
					continue
				}
				if board.Format(functional) != board.Format(inPlace) || functional.PieceCount() != inPlace.PieceCount() {
					t.Fatalf("%s %v -> %v: Move gives %s, MoveInPlace gives %s",
						board.Format(b), from, to, board.Format(functional), board.Format(inPlace))
				}
				fid, _ := functional.Peek(to)
				iid, _ := inPlace.Peek(to)
				if fid != iid {
					t.Fatalf("%s %v -> %v: landed ids differ %d vs %d", board.Format(b), from, to, fid, iid)
				}
				if functional.PieceCount() != functional.Recount() {
					t.Fatalf("%s %v -> %v: count invariant broken", board.Format(b), from, to)
				}
			}
		}
	}
}

func TestLegalJumps(t *testing.T) {
	b := board.Triangle(3, board.Pos(0, 0))

	want := []Jump{
		{From: board.Pos(2, 0), Over: board.Pos(1, 0), To: board.Pos(0, 0)},
		{From: board.Pos(2, 2), Over: board.Pos(1, 1), To: board.Pos(0, 0)},
	}
	if diff := cmp.Diff(want, LegalJumps(b)); diff != "" {
		t.Errorf("LegalJumps() mismatch (-want +got):\n%s", diff)
	}
	if !HasLegalJumps(b) {
		t.Error("HasLegalJumps() = false; want true")
	}

	stuck := boardWith(3, board.Pos(1, 0), board.Pos(1, 1))
	if got := LegalJumps(stuck); len(got) != 0 {
		t.Errorf("LegalJumps(stuck) = %v; want none", got)
	}
	if HasLegalJumps(stuck) {
		t.Error("HasLegalJumps(stuck) = true; want false")
	}
}
