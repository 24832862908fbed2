package puzzle

import "errors"

// ErrInvalidTarget is returned by NewSolver when the target region is
// empty.
var ErrInvalidTarget = errors.New("puzzle: invalid target")
