// Package placement enumerates the distinct legal placements of a
// piece against a target region: every way an oriented, translated
// copy of the piece can land entirely inside the target.
package placement

import (
	"fmt"

	"github.com/nmartins/polycube/internal/geometry"
	"github.com/nmartins/polycube/internal/piece"
)

// Placement is a single legal positioning of a piece: the set of
// target cells it would cover.
type Placement struct {
	Covered geometry.CellSet
}

// Enumerate returns the distinct legal placements of p against target.
//
// For each unique orientation of p, the orientation's first canonical
// cell is used as the translation reference; the orientation is tried
// anchored at every target cell, and kept if the translated shape is a
// subset of target. Results are deduplicated by their exact
// covered-cell set (not its translation-normalized form), so each set
// of target cells is returned at most once; since orientations are
// distinct shapes and each anchor gives a distinct offset, this check
// drops nothing in practice. Order is stable: orientations are tried
// in Piece.Orientations order, and for each orientation, anchors are
// tried in target.Sorted order.
func Enumerate(p *piece.Piece, target geometry.CellSet) []Placement {
	anchors := target.Sorted()
	seen := make(map[string]struct{})
	var placements []Placement

	for _, orientation := range p.Orientations() {
		cells := orientation.Sorted()
		ref := cells[0]

		for _, anchor := range anchors {
			offset := anchor.Sub(ref)
			translated := make([]geometry.Cell, len(cells))
			for i, c := range cells {
				translated[i] = c.Add(offset)
			}
			covered := geometry.NewCellSet(translated...)
			if !covered.IsSubsetOf(target) {
				continue
			}

			key := fmt.Sprint(covered.Sorted())
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			placements = append(placements, Placement{Covered: covered})
		}
	}

	return placements
}
