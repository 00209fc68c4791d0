// Package testutil provides shared test helpers for peg-solitaire packages.
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/peg-solitaire-go/internal/board"
)

// BoardComparer makes cmp compare boards by occupancy, like board.Equal.
var BoardComparer = cmp.Comparer(func(a, b *board.Board) bool {
	return a.Equal(b)
})

// BoardTransformer reports boards by their notation in cmp diffs.
var BoardTransformer = cmp.Transformer("Notation", func(b *board.Board) string {
	if b == nil {
		return "<nil>"
	}
	return board.Format(b)
})

// AssertEqual compares got and want using cmp.Diff and reports differences.
func AssertEqual(t *testing.T, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got, BoardComparer); diff != "" {
		t.Errorf("%smismatch (-want +got):\n%s", prefix(msgAndArgs...), diff)
	}
}

// AssertPathEqual compares two board sequences by notation so that a
// failure shows exactly which steps differ.
func AssertPathEqual(t *testing.T, got, want []*board.Board) {
	t.Helper()
	if diff := cmp.Diff(want, got, BoardTransformer); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
}

// AssertCountInvariant fails if b's cached piece count disagrees with the
// number of occupied cells.
func AssertCountInvariant(t *testing.T, b *board.Board, msgAndArgs ...interface{}) {
	t.Helper()
	if b.PieceCount() != b.Recount() {
		t.Errorf("%spiece count %d, but %d cells occupied in %s",
			prefix(msgAndArgs...), b.PieceCount(), b.Recount(), board.Format(b))
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		t.Errorf("%sunexpected error: %v", prefix(msgAndArgs...), err)
	}
}

// prefix formats optional message arguments into "msg: ".
func prefix(msgAndArgs ...interface{}) string {
	msg := formatMessage(msgAndArgs...)
	if msg == "" {
		return ""
	}
	return msg + ": "
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if s, ok := msgAndArgs[0].(string); ok {
		if len(msgAndArgs) == 1 {
			return s
		}
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
