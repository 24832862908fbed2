package geometry

import "sort"

// CellSet is an unordered collection of Cells with set semantics: a
// piece shape or a target region. The zero value is an empty set.
type CellSet struct {
	cells map[Cell]struct{}
}

// NewCellSet builds a CellSet from the given cells, discarding
// duplicates.
func NewCellSet(cells ...Cell) CellSet {
	s := CellSet{cells: make(map[Cell]struct{}, len(cells))}
	for _, c := range cells {
		s.cells[c] = struct{}{}
	}
	return s
}

// Size returns the number of distinct cells in the set.
func (s CellSet) Size() int {
	return len(s.cells)
}

// Contains reports whether c belongs to the set.
func (s CellSet) Contains(c Cell) bool {
	_, ok := s.cells[c]
	return ok
}

// Cells returns the set's members in unspecified order. Callers that
// need determinism should sort the result or use Canonical.
func (s CellSet) Cells() []Cell {
	out := make([]Cell, 0, len(s.cells))
	for c := range s.cells {
		out = append(out, c)
	}
	return out
}

// IsSubsetOf reports whether every cell of s also belongs to other.
func (s CellSet) IsSubsetOf(other CellSet) bool {
	for c := range s.cells {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}

// Translate returns a new CellSet with every cell shifted by offset.
func (s CellSet) Translate(offset Cell) CellSet {
	out := make(map[Cell]struct{}, len(s.cells))
	for c := range s.cells {
		out[c.Add(offset)] = struct{}{}
	}
	return CellSet{cells: out}
}

// Rotate returns a new CellSet with every cell rotated by r. The
// result has the same size as s.
func (s CellSet) Rotate(r Rotation) CellSet {
	out := make(map[Cell]struct{}, len(s.cells))
	for c := range s.cells {
		out[r.Apply(c)] = struct{}{}
	}
	return CellSet{cells: out}
}

// Sorted returns the set's members sorted by Cell.Less, independent of
// translation. Use Canonical for a translation-normalized form.
func (s CellSet) Sorted() []Cell {
	out := s.Cells()
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Canonical returns the set's canonical form: the sorted sequence of
// cells after translating so that per-axis minima are zero. Two
// CellSets are shape-equivalent iff Canonical returns cell-for-cell
// identical slices. The empty set's canonical form is an empty slice.
func (s CellSet) Canonical() []Cell {
	return Canonicalize(s.Sorted())
}

// Key returns a comparable, hashable encoding of Canonical, suitable
// as a map key for deduplicating shapes.
func (s CellSet) Key() string {
	return canonicalKey(s.Canonical())
}
