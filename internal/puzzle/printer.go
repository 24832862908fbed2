package puzzle

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/nmartins/polycube/internal/geometry"
)

var pieceColors = []*color.Color{
	color.New(color.FgHiRed),
	color.New(color.FgHiBlue),
	color.New(color.FgHiGreen),
	color.New(color.FgHiYellow),
	color.New(color.FgHiMagenta),
	color.New(color.FgHiCyan),
	color.New(color.FgRed),
	color.New(color.FgBlue),
}

var emptyCellColor = color.New(color.FgHiBlack)

// PrintSolution prints sol as a stack of z-layer grids, one cell per
// target position, each cell showing the first letter of the piece
// that covers it in that piece's cycled color.
func (s *Solver) PrintSolution(sol Solution) {
	owner := make(map[geometry.Cell]int, s.target.Size())
	for idx, covered := range sol {
		for _, c := range covered.Cells() {
			owner[c] = idx
		}
	}

	cells := s.target.Sorted()
	if len(cells) == 0 {
		return
	}
	maxX, maxY, maxZ := cells[0].X, cells[0].Y, cells[0].Z
	for _, c := range cells[1:] {
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y > maxY {
			maxY = c.Y
		}
		if c.Z > maxZ {
			maxZ = c.Z
		}
	}

	for z := 0; z <= maxZ; z++ {
		color.HiWhite("z=%d", z)
		for y := 0; y <= maxY; y++ {
			for x := 0; x <= maxX; x++ {
				c := geometry.Cell{X: x, Y: y, Z: z}
				idx, ok := owner[c]
				if !ok {
					if s.target.Contains(c) {
						emptyCellColor.Print(". ")
					} else {
						fmt.Print("  ")
					}
					continue
				}
				name := s.pieces[idx].Name()
				label := string(name[0])
				pieceColors[idx%len(pieceColors)].Printf("%s ", label)
			}
			fmt.Println()
		}
		fmt.Println()
	}
}

// PrintStats prints a solve Result's diagnostics, mirroring the
// Dancing Links statistics dump the solver's teacher prints for
// sudoku.
func (r Result) PrintStats() {
	color.HiCyan("Solve Statistics")
	color.HiCyan("================")
	fmt.Printf("  Nodes Visited:     %s\n", color.HiGreenString("%d", r.Stats.NodesVisited))
	fmt.Printf("  Backtracks:        %s\n", color.HiRedString("%d", r.Stats.BacktrackCount))
	fmt.Printf("  Solutions Found:   %s\n", color.HiGreenString("%d", r.Stats.SolutionsFound))
	fmt.Printf("  Truncated:         %s\n", color.HiYellowString("%v", r.Truncated))
	fmt.Printf("  Total Placements:  %s\n", color.HiYellowString("%d", r.TotalPlacements()))
	for i, n := range r.PlacementCounts {
		fmt.Printf("    piece %d: %d placements\n", i, n)
	}
}
