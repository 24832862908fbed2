// Package puzzle ties the rotation kit, piece model, and placement
// enumerator to the dlx engine: it builds the exact-cover matrix for a
// set of pieces against a target region, runs the search, and decodes
// the results back into piece-to-cells solutions.
package puzzle

import (
	"context"
	"fmt"

	"github.com/nmartins/polycube/internal/dlx"
	"github.com/nmartins/polycube/internal/geometry"
	"github.com/nmartins/polycube/internal/piece"
	"github.com/nmartins/polycube/internal/placement"
)

// Solution maps a piece's index in the Solver's piece list to the
// cells it covers. Every index in 0..len(pieces)-1 appears exactly once,
// and the union of all values equals the Target.
type Solution map[int]geometry.CellSet

// Solver holds an immutable puzzle instance: the pieces to place and
// the target region to fill. Pieces and Target are supplied by the
// caller and never mutated during a solve.
type Solver struct {
	pieces []*piece.Piece
	target geometry.CellSet
}

// NewSolver constructs a Solver for the given pieces against target.
// It fails with ErrInvalidTarget if target is empty. A mismatch
// between the sum of piece sizes and the target size is not rejected
// here: Solve simply returns no solutions in that case.
func NewSolver(pieces []*piece.Piece, target geometry.CellSet) (*Solver, error) {
	if target.Size() == 0 {
		return nil, fmt.Errorf("%w: empty target", ErrInvalidTarget)
	}
	return &Solver{pieces: pieces, target: target}, nil
}

// rowInfo records what a single DLX row represents, so a solution's
// row IDs can be decoded back into piece-to-cells assignments. This is
// the placement table described by the engine's ownership model: the
// matrix holds only row IDs, and this table is the single place that
// owns the covered-cell sets they refer to.
type rowInfo struct {
	pieceIndex int
	covered    geometry.CellSet
}

// matrixBuild is the per-solve scratch state: the DLX matrix plus the
// row table needed to decode its solutions. It is discarded once a
// Solve call returns.
type matrixBuild struct {
	matrix          *dlx.Matrix
	rows            []rowInfo
	placementCounts []int
}

// build constructs a fresh exact-cover matrix for the solver's pieces
// and target. Column order is piece columns first in input order, then
// cell columns in sorted coordinate order, matching the determinism
// contract in the design notes; row order is grouped by piece in input
// order, with each piece's placements in enumeration order.
func (s *Solver) build() matrixBuild {
	cells := s.target.Sorted()
	names := make([]string, 0, len(s.pieces)+len(cells))
	cellColumn := make(map[geometry.Cell]int, len(cells))

	for i, p := range s.pieces {
		names = append(names, fmt.Sprintf("P%d:%s", i, p.Name()))
	}
	for _, c := range cells {
		cellColumn[c] = len(names)
		names = append(names, fmt.Sprintf("C%s", c))
	}

	matrix := dlx.NewMatrix(names)
	var rows []rowInfo
	placementCounts := make([]int, len(s.pieces))

	for i, p := range s.pieces {
		placements := placement.Enumerate(p, s.target)
		placementCounts[i] = len(placements)

		for _, pl := range placements {
			covered := pl.Covered.Sorted()
			columns := make([]int, 0, 1+len(covered))
			columns = append(columns, i)
			for _, c := range covered {
				columns = append(columns, cellColumn[c])
			}

			rowID := matrix.AddRow(columns)
			if rowID != len(rows) {
				panic(fmt.Errorf("%w: row ID %d out of sync with row table", dlx.ErrInternal, rowID))
			}
			rows = append(rows, rowInfo{pieceIndex: i, covered: pl.Covered})
		}
	}

	return matrixBuild{matrix: matrix, rows: rows, placementCounts: placementCounts}
}

// Solve runs the exact-cover search and returns the resulting
// solutions. With opts.FindAll false, at most one solution is
// returned. With opts.FindAll true, every solution is returned, capped
// at opts.MaxSolutions if it is nonzero.
//
// Solve is side-effect free on the Solver: the DLX matrix is built
// fresh and discarded each call, so repeated calls with the same
// options return identical results in identical order.
func (s *Solver) Solve(ctx context.Context, opts Options) (Result, error) {
	if opts.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.TimeLimit)
		defer cancel()
	}

	b := s.build()

	searchResult := b.matrix.Search(ctx, dlx.SearchOptions{
		FindAll:      opts.FindAll,
		MaxSolutions: opts.MaxSolutions,
	})

	solutions := make([]Solution, 0, len(searchResult.Solutions))
	for _, rowIDs := range searchResult.Solutions {
		sol, err := s.decode(b, rowIDs)
		if err != nil {
			return Result{}, err
		}
		solutions = append(solutions, sol)
	}

	return Result{
		Solutions:       solutions,
		Truncated:       searchResult.Truncated,
		Stats:           searchResult.Stats,
		PlacementCounts: b.placementCounts,
	}, nil
}

func (s *Solver) decode(b matrixBuild, rowIDs []int) (Solution, error) {
	sol := make(Solution, len(s.pieces))
	for _, id := range rowIDs {
		if id < 0 || id >= len(b.rows) {
			return nil, fmt.Errorf("%w: solution row ID %d has no entry in the placement table", dlx.ErrInternal, id)
		}
		info := b.rows[id]
		if _, exists := sol[info.pieceIndex]; exists {
			return nil, fmt.Errorf("%w: piece %d assigned more than one placement", dlx.ErrInternal, info.pieceIndex)
		}
		sol[info.pieceIndex] = info.covered
	}
	if len(sol) != len(s.pieces) {
		return nil, fmt.Errorf("%w: solution covers %d pieces, want %d", dlx.ErrInternal, len(sol), len(s.pieces))
	}
	return sol, nil
}

// Pieces returns the solver's piece list, in input order.
func (s *Solver) Pieces() []*piece.Piece {
	return s.pieces
}

// Target returns the solver's target region.
func (s *Solver) Target() geometry.CellSet {
	return s.target
}

// sortedCellStrings is a small formatting helper that renders a
// CellSet's cells as strings in sorted order. Nothing in the module
// calls it.
func sortedCellStrings(cs geometry.CellSet) []string {
	cells := cs.Sorted()
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.String()
	}
	return out
}
