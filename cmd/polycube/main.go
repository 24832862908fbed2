// Command polycube solves a 3D polycube packing puzzle. With no
// arguments it solves the classical Soma Cube; given a JSON file path
// it loads and solves that puzzle instead.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/nmartins/polycube/internal/geometry"
	"github.com/nmartins/polycube/internal/loader"
	"github.com/nmartins/polycube/internal/piece"
	"github.com/nmartins/polycube/internal/puzzle"
)

func main() {
	pieces, target := loadInput()

	solver, err := puzzle.NewSolver(pieces, target)
	if err != nil {
		fatal("invalid puzzle", err)
	}

	result, err := solver.Solve(context.Background(), puzzle.DefaultOptions())
	if err != nil {
		fatal("solve failed", err)
	}

	if len(result.Solutions) == 0 {
		color.HiRed("No solution found.")
		os.Exit(1)
	}

	color.HiWhite("Solution:")
	solver.PrintSolution(result.Solutions[0])
	fmt.Println()
	result.PrintStats()
}

// loadInput returns the Soma Cube when run with no arguments, the
// way the teacher's sudoku CLI prompts for stdin input with no
// arguments; otherwise it loads the JSON file named by os.Args[1].
func loadInput() ([]*piece.Piece, geometry.CellSet) {
	if len(os.Args) < 2 {
		if isStdinTTY() {
			fmt.Println("No puzzle file given; solving the built-in Soma Cube.")
			fmt.Println("Pass a JSON puzzle path to solve a custom puzzle instead.")
		}
		return puzzle.SomaPieces(), puzzle.SomaTarget()
	}

	p, err := loader.LoadFile(os.Args[1])
	if err != nil {
		fatal("load puzzle", err)
	}

	if total := p.CellTotal(); total != p.Target.Size() {
		fmt.Fprintf(os.Stderr,
			"warning: piece cell total (%d) != target size (%d); this puzzle likely has no solution\n",
			total, p.Target.Size())
	}

	return p.Pieces, p.Target
}

func fatal(context string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", context, err)
	os.Exit(1)
}

func isStdinTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
