// Package piece models a single rigid polycube piece: the cells that
// define its shape, and the set of unique orientations it can be
// rotated into.
package piece

import (
	"errors"
	"fmt"
	"sync"

	"github.com/nmartins/polycube/internal/geometry"
)

// ErrInvalidPiece is returned by New when a piece's defining cells are
// empty or contain a duplicate.
var ErrInvalidPiece = errors.New("piece: invalid piece")

// Piece is a named, immutable shape together with its memoized list of
// unique rotational orientations.
type Piece struct {
	name  string
	cells geometry.CellSet
	color string

	once         sync.Once
	orientations []geometry.CellSet
}

// New constructs a Piece from its name and defining cells. Display
// attributes beyond color are opaque to the solver and simply carried
// through for reporting.
//
// New fails with ErrInvalidPiece if cells is empty, or if it contains
// a duplicate cell; this module takes the strict, rejecting reading of
// the specification's duplicate-cell policy rather than the lenient
// silently-unique one.
func New(name string, cells []geometry.Cell, color string) (*Piece, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("piece %q: %w: no cells", name, ErrInvalidPiece)
	}

	set := geometry.NewCellSet(cells...)
	if set.Size() != len(cells) {
		return nil, fmt.Errorf("piece %q: %w: duplicate cell in input", name, ErrInvalidPiece)
	}

	return &Piece{name: name, cells: set, color: color}, nil
}

// Name returns the piece's reporting identifier.
func (p *Piece) Name() string { return p.name }

// Color returns the piece's display color, or "" if unset. It is an
// opaque passthrough never inspected by the solver.
func (p *Piece) Color() string { return p.color }

// Cells returns the piece's defining shape, translated to its
// canonical (min-zero) position.
func (p *Piece) Cells() geometry.CellSet {
	return geometry.NewCellSet(p.cells.Canonical()...)
}

// Size returns the number of cells that make up the piece.
func (p *Piece) Size() int {
	return p.cells.Size()
}

// Orientations returns the memoized list of unique canonical CellSets
// obtained by rotating the piece's cells through all 24 proper
// rotations and deduplicating by canonical form. It is computed at
// most once per Piece, guarded by a one-shot initializer, and is
// idempotent: repeated calls return the identical slice.
//
// The invariant 1 <= len(Orientations()) <= 24 always holds.
func (p *Piece) Orientations() []geometry.CellSet {
	p.once.Do(p.computeOrientations)
	return p.orientations
}

func (p *Piece) computeOrientations() {
	seen := make(map[string]struct{}, 24)
	orientations := make([]geometry.CellSet, 0, 24)

	for _, r := range geometry.AllRotations() {
		rotated := p.cells.Rotate(r)
		canonical := rotated.Canonical()
		key := geometry.NewCellSet(canonical...).Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		orientations = append(orientations, geometry.NewCellSet(canonical...))
	}

	p.orientations = orientations
}
