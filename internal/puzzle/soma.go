package puzzle

import (
	"fmt"

	"github.com/nmartins/polycube/internal/geometry"
	"github.com/nmartins/polycube/internal/piece"
)

// somaShapes lists the seven classical Soma Cube pieces by their
// traditional letter names, each already translated so its own
// per-axis minima are zero. Colors mirror the default palette the
// original visualizer cycles through.
var somaShapes = []struct {
	name  string
	color string
	cells []geometry.Cell
}{
	{"V", "#e74c3c", []geometry.Cell{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}},
	{"L", "#3498db", []geometry.Cell{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {2, 1, 0}}},
	{"T", "#2ecc71", []geometry.Cell{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {1, 1, 0}}},
	{"S", "#f39c12", []geometry.Cell{{0, 1, 0}, {1, 1, 0}, {1, 0, 0}, {2, 0, 0}}},
	{"A", "#9b59b6", []geometry.Cell{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {1, 1, 1}}},
	{"B", "#1abc9c", []geometry.Cell{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 0, 1}}},
	{"P", "#e67e22", []geometry.Cell{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}},
}

// SomaPieces returns the seven standard Soma Cube pieces: V, L, T, S,
// A (the chiral tetracube), B, and P, totaling 27 cells.
func SomaPieces() []*piece.Piece {
	pieces := make([]*piece.Piece, len(somaShapes))
	for i, shape := range somaShapes {
		p, err := piece.New(shape.name, shape.cells, shape.color)
		if err != nil {
			panic(fmt.Errorf("puzzle: built-in Soma piece %q is malformed: %w", shape.name, err))
		}
		pieces[i] = p
	}
	return pieces
}

// SomaTarget returns the 3x3x3 cube the Soma pieces pack into.
func SomaTarget() geometry.CellSet {
	return geometry.Box(3, 3, 3)
}
