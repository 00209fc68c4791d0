// peg-solitaire solves triangular peg solitaire puzzles by exhaustive search.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const programVersion = "0.1.0"

// Exit codes.
const (
	exitSolved     = 0
	exitError      = 1
	exitNoSolution = 2
)

// errNoSolution is returned by commands whose search found nothing. The
// result has already been written, so main only turns it into an exit code.
var errNoSolution = errors.New("no solution")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	return exitCode(root.ExecuteContext(ctx), stderr)
}

func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return exitSolved
	case errors.Is(err, errNoSolution):
		return exitNoSolution
	}
	fmt.Fprintf(stderr, "peg-solitaire: %v\n", err)
	return exitError
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "peg-solitaire",
		Short: "Solve triangular peg solitaire boards",
		Long: `peg-solitaire searches for a sequence of jumps that clears a triangular
peg solitaire board down to a single peg.

Boards are written row by row with 'x' for a peg, '.' for a hole and '/'
between rows, e.g. "./xx/xxx" for a size 3 board with the apex empty.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	addGlobalFlags(root, opts)

	root.AddCommand(
		newSolveCmd(opts),
		newBatchCmd(opts),
		newCheckCmd(opts),
		newVersionCmd(opts),
	)
	return root
}

func newVersionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the program version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(opts.stdout, "peg-solitaire version %s\n", programVersion)
		},
	}
}
