package geometry

// Box returns a CellSet containing every cell of a sx-by-sy-by-sz
// rectangular box with one corner at the origin.
func Box(sx, sy, sz int) CellSet {
	cells := make([]Cell, 0, sx*sy*sz)
	for x := 0; x < sx; x++ {
		for y := 0; y < sy; y++ {
			for z := 0; z < sz; z++ {
				cells = append(cells, Cell{X: x, Y: y, Z: z})
			}
		}
	}
	return NewCellSet(cells...)
}

// FromLayers builds a CellSet from a stack of 2D occupancy grids.
// layers[z][y][x] is true where a cell is occupied, so layers[0] is
// the z=0 slice, layers[1] is z=1, and so on.
func FromLayers(layers [][][]bool) CellSet {
	var cells []Cell
	for z, layer := range layers {
		for y, row := range layer {
			for x, occupied := range row {
				if occupied {
					cells = append(cells, Cell{X: x, Y: y, Z: z})
				}
			}
		}
	}
	return NewCellSet(cells...)
}
