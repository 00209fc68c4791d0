package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lgbarn/peg-solitaire-go/internal/board"
	"github.com/lgbarn/peg-solitaire-go/internal/engine"
	"github.com/lgbarn/peg-solitaire-go/internal/output"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "check <board>",
		Short:   "Show a board, its peg count and its legal jumps",
		Example: `  peg-solitaire check "./xx/xxx"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := board.Parse(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(opts.stdout, describeBoard(b))
			return err
		},
	}
}

func describeBoard(b *board.Board) string {
	var sb strings.Builder
	sb.WriteString(output.RenderBoard(b))
	fmt.Fprintf(&sb, "size: %d\n", b.Size())
	if n := b.Recount(); n != b.PieceCount() {
		fmt.Fprintf(&sb, "pegs: %d (cached count %d is stale)\n", n, b.PieceCount())
	} else {
		fmt.Fprintf(&sb, "pegs: %d\n", n)
	}

	jumps := engine.LegalJumps(b)
	switch {
	case b.PieceCount() <= 1:
		sb.WriteString("solved\n")
	case len(jumps) == 0:
		sb.WriteString("no legal jumps\n")
	default:
		fmt.Fprintf(&sb, "legal jumps: %d\n", len(jumps))
		for _, j := range jumps {
			fmt.Fprintf(&sb, "  %s\n", output.FormatJump(j))
		}
	}
	return sb.String()
}
