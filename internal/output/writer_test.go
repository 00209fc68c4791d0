package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/lgbarn/peg-solitaire-go/internal/board"
	"github.com/lgbarn/peg-solitaire-go/internal/config"
	"github.com/lgbarn/peg-solitaire-go/internal/solver"
	"github.com/lgbarn/peg-solitaire-go/internal/testutil"
)

func solveFixture(t *testing.T, p testutil.Puzzle) Solution {
	t.Helper()
	start := p.Start()
	target := board.NewTriangle(p.Size)
	res, _ := solver.New().Solve(start, target)
	return Solution{Label: p.Name, Start: start, Target: target, Result: res}
}

func TestRenderBoard(t *testing.T) {
	b := testutil.MustParse(t, "x/.x/xxx")
	want := "" +
		"    [ 1]\n" +
		"  [  ] [ 3]\n" +
		"[ 4] [ 5] [ 6]\n"
	if got := RenderBoard(b); got != want {
		t.Errorf("RenderBoard() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderBoard_TwoDigitIDs(t *testing.T) {
	b := board.Triangle(5)
	got := RenderBoard(b)
	if !strings.Contains(got, "[15]") {
		t.Errorf("RenderBoard() missing [15]:\n%s", got)
	}
	if lines := strings.Count(got, "\n"); lines != 5 {
		t.Errorf("RenderBoard() has %d lines; want 5", lines)
	}
}

func TestSummary(t *testing.T) {
	solved := solveFixture(t, testutil.SizeFourEdge)
	if got, want := Summary(solved.Result), "solved in 8 jumps, peg 8 left at (1,1)"; got != want {
		t.Errorf("Summary() = %q; want %q", got, want)
	}

	failed := solveFixture(t, testutil.SizeFourCentre)
	if got := Summary(failed.Result); got != "no solution" {
		t.Errorf("Summary() = %q; want %q", got, "no solution")
	}
}

func TestTextWriter_Verbosity(t *testing.T) {
	sol := solveFixture(t, testutil.SizeFourEdge)

	tests := []struct {
		name      string
		verbosity int
		contains  []string
		excludes  []string
	}{
		{
			name:      "summary only",
			verbosity: 0,
			contains:  []string{sol.Label + ": solved in 8 jumps"},
			excludes:  []string{"start (", "nodes="},
		},
		{
			name:      "boards",
			verbosity: 1,
			contains:  []string{"== " + sol.Label + " ==", "start (9 pegs)", "jump 1: ", "jump 8: ", "(1 pegs)", "[ 8]"},
			excludes:  []string{"nodes="},
		},
		{
			name:      "statistics",
			verbosity: 2,
			contains:  []string{"start (9 pegs)", "nodes=12 ", "dead_ends="},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewTextWriter(&buf, config.ColorNever, tt.verbosity)
			if err := w.WriteSolution(sol); err != nil {
				t.Fatalf("WriteSolution() error = %v", err)
			}
			out := buf.String()
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("output missing %q:\n%s", s, out)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(out, s) {
					t.Errorf("output should not contain %q:\n%s", s, out)
				}
			}
			if strings.Contains(out, "\x1b[") {
				t.Error("plain output contains escape sequences")
			}
		})
	}
}

func TestTextWriter_NoSolution(t *testing.T) {
	sol := solveFixture(t, testutil.SizeThreeApex)

	var buf bytes.Buffer
	w := NewTextWriter(&buf, config.ColorNever, 1)
	if err := w.WriteSolution(sol); err != nil {
		t.Fatalf("WriteSolution() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "start (5 pegs)") {
		t.Errorf("output missing starting board:\n%s", out)
	}
	if !strings.HasSuffix(out, "no solution\n") {
		t.Errorf("output should end with the summary:\n%s", out)
	}
}

func TestTextWriter_Color(t *testing.T) {
	sol := solveFixture(t, testutil.SizeFourEdge)

	var buf bytes.Buffer
	w := NewTextWriter(&buf, config.ColorAlways, 1)
	if err := w.WriteSolution(sol); err != nil {
		t.Fatalf("WriteSolution() error = %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Error("styled output has no escape sequences")
	}
	if !strings.Contains(buf.String(), "[ 8]") {
		t.Error("styled output lost the peg ids")
	}
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	tests := []struct {
		mode config.ColorMode
		want bool
	}{
		{config.ColorAlways, true},
		{config.ColorNever, false},
		{config.ColorAuto, false}, // a buffer is never a terminal
	}
	for _, tt := range tests {
		if got := UseColor(tt.mode, &buf); got != tt.want {
			t.Errorf("UseColor(%v) = %v; want %v", tt.mode, got, tt.want)
		}
	}
}

func TestJSONWriterSingle(t *testing.T) {
	sol := solveFixture(t, testutil.SizeFourEdge)

	var buf bytes.Buffer
	w := NewJSONWriterSingle(&buf)
	if err := w.WriteSolution(sol); err != nil {
		t.Fatalf("WriteSolution() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	var r Report
	if err := json.Unmarshal(buf.Bytes(), &r); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if _, err := uuid.Parse(r.RunID); err != nil {
		t.Errorf("RunID %q is not a uuid: %v", r.RunID, err)
	}
	if !r.Solved || r.Size != 4 {
		t.Errorf("Solved = %v, Size = %d; want true, 4", r.Solved, r.Size)
	}
	if r.Start != board.Format(sol.Start) {
		t.Errorf("Start = %q; want %q", r.Start, board.Format(sol.Start))
	}
	if len(r.Steps) != 9 {
		t.Fatalf("len(Steps) = %d; want 9", len(r.Steps))
	}
	if r.Steps[0].Jump != nil {
		t.Error("first step should have no jump")
	}
	for i, step := range r.Steps {
		if step.Index != i {
			t.Errorf("Steps[%d].Index = %d", i, step.Index)
		}
		if step.Remaining != 9-i {
			t.Errorf("Steps[%d].Remaining = %d; want %d", i, step.Remaining, 9-i)
		}
		if i > 0 && step.Jump == nil {
			t.Errorf("Steps[%d].Jump is nil", i)
		}
	}
	if r.Stats.Nodes != 12 || r.Stats.Remaining != 1 {
		t.Errorf("Stats = %+v; want 12 nodes, 1 remaining", r.Stats)
	}
}

func TestJSONWriter_Batch(t *testing.T) {
	solved := solveFixture(t, testutil.SizeFourEdge)
	failed := solveFixture(t, testutil.SizeFourCentre)

	var buf bytes.Buffer
	w := NewJSONWriter(&buf)
	for _, s := range []Solution{solved, failed} {
		if err := w.WriteSolution(s); err != nil {
			t.Fatalf("WriteSolution() error = %v", err)
		}
	}
	if buf.Len() != 0 {
		t.Error("batch writer wrote before Close")
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	var batch BatchReport
	if err := json.Unmarshal(buf.Bytes(), &batch); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(batch.Reports) != 2 {
		t.Fatalf("len(Reports) = %d; want 2", len(batch.Reports))
	}
	if batch.Reports[0].RunID == batch.Reports[1].RunID {
		t.Error("reports share a run id")
	}
	second := batch.Reports[1]
	if second.Solved || second.Steps != nil || second.Stats.Remaining != -1 {
		t.Errorf("unsolved report = %+v", second)
	}
	if second.Label != failed.Label {
		t.Errorf("Label = %q; want %q", second.Label, failed.Label)
	}
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.OutputConfig{Format: config.JSONFormat, Writer: &buf}

	if w, ok := NewWriter(cfg, true).(*JSONWriter); !ok || w.single {
		t.Error("batch JSON should use an array writer")
	}
	if w, ok := NewWriter(cfg, false).(*JSONWriter); !ok || !w.single {
		t.Error("single JSON should write immediately")
	}
	cfg.Format = config.TextFormat
	if _, ok := NewWriter(cfg, false).(*TextWriter); !ok {
		t.Error("text format should use TextWriter")
	}
}
