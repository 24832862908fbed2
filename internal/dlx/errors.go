package dlx

import "errors"

// ErrInternal signals a Dancing Links invariant violation: AddRow
// panics with it for an empty row or an out-of-range column index, and
// package puzzle wraps it when a solution's row IDs cannot be decoded.
// cover and uncover perform no checks of their own. It is a
// programming error, never expected from valid input, and is not meant
// to be recovered from by a caller.
var ErrInternal = errors.New("dlx: internal invariant violation")
