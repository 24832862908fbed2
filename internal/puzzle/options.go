package puzzle

import (
	"time"

	"github.com/nmartins/polycube/internal/dlx"
)

// Options configures a Solve call.
type Options struct {
	// FindAll searches for every solution instead of stopping at the
	// first one.
	FindAll bool

	// MaxSolutions caps the number of solutions collected. Zero means
	// unbounded. Only meaningful when FindAll is true.
	MaxSolutions int

	// TimeLimit, if nonzero, bounds how long Solve is allowed to run;
	// Solve derives a context.WithTimeout internally from it. A search
	// that hits the limit returns whatever solutions were found so far
	// with Result.Truncated set to true.
	TimeLimit time.Duration
}

// DefaultOptions returns sensible defaults: find one solution, no time
// limit.
func DefaultOptions() Options {
	return Options{FindAll: false, MaxSolutions: 0}
}

// Result is the outcome of a Solve call.
type Result struct {
	// Solutions holds one entry per exact cover found. The union of
	// its piece-index keys is always 0..len(pieces)-1 when non-empty.
	Solutions []Solution

	// Truncated is true if the search stopped early due to a time
	// limit or a cancelled context, rather than exhausting the search
	// space (or, in find-one mode, finding a solution).
	Truncated bool

	Stats dlx.Stats

	// PlacementCounts[i] is the number of legal placements piece i has
	// against the target, regardless of whether any were used in a
	// solution.
	PlacementCounts []int
}

// TotalPlacements sums PlacementCounts.
func (r Result) TotalPlacements() int {
	total := 0
	for _, n := range r.PlacementCounts {
		total += n
	}
	return total
}
