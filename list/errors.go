package list

import "errors"

// Sentinel errors returned by list operations.
var (
	// ErrInvalidSliceLength is returned by SplitEvery when the group size
	// is smaller than 1.
	ErrInvalidSliceLength = errors.New("list: slice length must be at least 1")

	// ErrMismatchedLengths is returned by Combine when the key and value
	// slices have different lengths.
	ErrMismatchedLengths = errors.New("list: keys and values must have the same length")
)
