package numtheory

import "errors"

// Sentinel errors returned by numtheory.
var (
	// ErrEmptyInput indicates that GCDMany was called with no values.
	ErrEmptyInput = errors.New("numtheory: at least one value is required")

	// ErrOverflow indicates that an intermediate or final result does not fit in int64.
	ErrOverflow = errors.New("numtheory: int64 overflow")
)
