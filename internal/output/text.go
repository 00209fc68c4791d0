package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/lgbarn/peg-solitaire-go/internal/board"
	"github.com/lgbarn/peg-solitaire-go/internal/config"
	"github.com/lgbarn/peg-solitaire-go/internal/engine"
	"github.com/lgbarn/peg-solitaire-go/internal/solver"
)

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// UseColor resolves a colour mode against the destination writer.
func UseColor(mode config.ColorMode, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return IsTerminal(w)
}

type styles struct {
	peg    lipgloss.Style
	hole   lipgloss.Style
	header lipgloss.Style
	failed lipgloss.Style
}

func newStyles(w io.Writer) *styles {
	r := lipgloss.NewRenderer(w)
	if !IsTerminal(w) {
		// Colour was asked for explicitly; don't let detection strip it.
		r.SetColorProfile(termenv.ANSI256)
	}
	return &styles{
		peg:    r.NewStyle().Foreground(lipgloss.Color("42")),
		hole:   r.NewStyle().Foreground(lipgloss.Color("241")),
		header: r.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		failed: r.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// RenderBoard draws b as a row-indented triangle of [id] and [  ] cells.
func RenderBoard(b *board.Board) string {
	return renderBoard(b, nil)
}

func renderBoard(b *board.Board, st *styles) string {
	var sb strings.Builder
	size := b.Size()
	for r := 0; r < size; r++ {
		sb.WriteString(strings.Repeat("  ", size-1-r))
		for c := 0; c < b.RowLen(r); c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			id, ok := b.PeekUnchecked(board.Pos(r, c))
			var cell string
			if ok {
				cell = fmt.Sprintf("[%2d]", id)
				if st != nil {
					cell = st.peg.Render(cell)
				}
			} else {
				cell = "[  ]"
				if st != nil {
					cell = st.hole.Render(cell)
				}
			}
			sb.WriteString(cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatJump describes a jump as "(r,c) -> (r,c) over (r,c)".
func FormatJump(j engine.Jump) string {
	return fmt.Sprintf("%v -> %v over %v", j.From, j.To, j.Over)
}

// Summary is the one-line outcome of a search.
func Summary(res solver.Result) string {
	if !res.Solved() {
		return "no solution"
	}
	last := res.Path[len(res.Path)-1]
	steps := len(res.Path) - 1
	occupied := last.Occupied()
	if len(occupied) == 0 {
		return fmt.Sprintf("solved in %d jumps, no pegs left", steps)
	}
	id, _ := last.PeekUnchecked(occupied[0])
	return fmt.Sprintf("solved in %d jumps, peg %d left at %v", steps, id, occupied[0])
}

// FormatStats renders search statistics on one line.
func FormatStats(s solver.Stats) string {
	return fmt.Sprintf("nodes=%d attempts=%d jumps=%d dead_ends=%d max_depth=%d duration=%s",
		s.Nodes, s.Attempts, s.Jumps, s.DeadEnds, s.MaxDepth, s.Duration)
}

// TextWriter writes solutions as rendered boards.
type TextWriter struct {
	w         io.Writer
	verbosity int
	st        *styles
}

// NewTextWriter creates a text writer. Verbosity 0 writes the summary line
// only, 1 adds every board of the path, 2 adds search statistics.
func NewTextWriter(w io.Writer, mode config.ColorMode, verbosity int) *TextWriter {
	tw := &TextWriter{w: w, verbosity: verbosity}
	if UseColor(mode, w) {
		tw.st = newStyles(w)
	}
	return tw
}

// WriteSolution writes the path of s followed by its summary.
func (tw *TextWriter) WriteSolution(s Solution) error {
	var sb strings.Builder

	summary := Summary(s.Result)
	if tw.st != nil {
		if s.Result.Solved() {
			summary = tw.st.header.Render(summary)
		} else {
			summary = tw.st.failed.Render(summary)
		}
	}

	if tw.verbosity <= 0 {
		if s.Label != "" {
			sb.WriteString(s.Label)
			sb.WriteString(": ")
		}
		sb.WriteString(summary)
		sb.WriteByte('\n')
		_, err := io.WriteString(tw.w, sb.String())
		return err
	}

	if s.Label != "" {
		sb.WriteString(tw.headerText("== " + s.Label + " =="))
		sb.WriteByte('\n')
	}

	if s.Result.Solved() {
		jumps, err := engine.PathJumps(s.Result.Path)
		if err != nil {
			return err
		}
		for i, b := range s.Result.Path {
			if i == 0 {
				sb.WriteString(tw.headerText(fmt.Sprintf("start (%d pegs)", b.PieceCount())))
			} else {
				sb.WriteString(tw.headerText(fmt.Sprintf("jump %d: %s (%d pegs)", i, FormatJump(jumps[i-1]), b.PieceCount())))
			}
			sb.WriteByte('\n')
			sb.WriteString(renderBoard(b, tw.st))
			sb.WriteByte('\n')
		}
	} else if s.Start != nil {
		sb.WriteString(tw.headerText(fmt.Sprintf("start (%d pegs)", s.Start.PieceCount())))
		sb.WriteByte('\n')
		sb.WriteString(renderBoard(s.Start, tw.st))
		sb.WriteByte('\n')
	}

	sb.WriteString(summary)
	sb.WriteByte('\n')
	if tw.verbosity >= 2 {
		sb.WriteString(FormatStats(s.Result.Stats))
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(tw.w, sb.String())
	return err
}

func (tw *TextWriter) headerText(text string) string {
	if tw.st == nil {
		return text
	}
	return tw.st.header.Render(text)
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}
