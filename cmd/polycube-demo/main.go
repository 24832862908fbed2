// Command polycube-demo walks through a handful of packing scenarios —
// the Soma Cube and a small tetracube box — printing the solver's
// progress and statistics for each one. It mirrors the teacher's
// dancing-links demonstration program for sudoku.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/nmartins/polycube/internal/geometry"
	"github.com/nmartins/polycube/internal/piece"
	"github.com/nmartins/polycube/internal/puzzle"
)

func main() {
	fmt.Println("Polycube Packing — Dancing Links Demonstration")
	fmt.Println("===============================================")

	runScenario("Soma Cube (7 pieces -> 3x3x3)", puzzle.SomaPieces(), puzzle.SomaTarget(), true)
	runScenario("Tetracube Box (4 pieces -> 4x2x2)", tetracubePieces(), geometry.Box(4, 2, 2), true)
}

func runScenario(name string, pieces []*piece.Piece, target geometry.CellSet, findAll bool) {
	fmt.Printf("\n%s\n", color.HiBlueString("Scenario: %s", name))

	solver, err := puzzle.NewSolver(pieces, target)
	if err != nil {
		fmt.Println(color.HiRedString("  invalid puzzle: %v", err))
		return
	}

	start := time.Now()
	result, err := solver.Solve(context.Background(), puzzle.Options{FindAll: findAll})
	duration := time.Since(start)
	if err != nil {
		fmt.Println(color.HiRedString("  solve error: %v", err))
		return
	}

	if len(result.Solutions) == 0 {
		fmt.Printf("%s (%v)\n", color.HiRedString("  no solution found"), duration)
		return
	}

	fmt.Printf("%s %s (%v)\n", color.HiGreenString("  found"),
		color.HiGreenString("%d solution(s)", len(result.Solutions)), duration)
	fmt.Println("  first solution:")
	solver.PrintSolution(result.Solutions[0])
	result.PrintStats()
}

// tetracubePieces returns the four flat tetracubes (I, L, T, O) used
// in the 2x4x2-equivalent box demo scenario from the design notes.
func tetracubePieces() []*piece.Piece {
	shapes := []struct {
		name  string
		cells []geometry.Cell
	}{
		{"I", []geometry.Cell{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}}},
		{"L", []geometry.Cell{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {2, 1, 0}}},
		{"T", []geometry.Cell{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {1, 1, 0}}},
		{"O", []geometry.Cell{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}},
	}

	pieces := make([]*piece.Piece, len(shapes))
	for i, shape := range shapes {
		p, err := piece.New(shape.name, shape.cells, "")
		if err != nil {
			panic(err)
		}
		pieces[i] = p
	}
	return pieces
}
