package geometry

import (
	"sort"
	"strconv"
	"strings"
)

// Canonicalize translates the given cells so that the per-axis minima
// are zero, then returns them sorted by Cell.Less. It does not mutate
// its input. An empty input yields an empty (non-nil) slice.
//
// Canonicalization is idempotent: canonicalizing an already-canonical
// slice returns the same sequence.
func Canonicalize(cells []Cell) []Cell {
	out := make([]Cell, len(cells))
	if len(cells) == 0 {
		return out
	}

	minX, minY, minZ := cells[0].X, cells[0].Y, cells[0].Z
	for _, c := range cells[1:] {
		if c.X < minX {
			minX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
		if c.Z < minZ {
			minZ = c.Z
		}
	}

	offset := Cell{X: -minX, Y: -minY, Z: -minZ}
	for i, c := range cells {
		out[i] = c.Add(offset)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// canonicalKey encodes an already-canonical cell slice as a string key
// suitable for map lookups and equality comparisons. It assumes the
// input is sorted, as Canonicalize guarantees.
func canonicalKey(canonical []Cell) string {
	var b strings.Builder
	for i, c := range canonical {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(c.X))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(c.Y))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(c.Z))
	}
	return b.String()
}
