package list

import "github.com/hasbyte1/go-rambda-utils/deep"

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// Find returns the first element satisfying pred.
// Returns the zero value and false when no element matches.
func Find[T any](pred func(T) bool, xs []T) (T, bool) {
	for _, x := range xs {
		if pred(x) {
			return x, true
		}
	}
	var zero T
	return zero, false
}

// FindIndex returns the index of the first element satisfying pred, or -1.
func FindIndex[T any](pred func(T) bool, xs []T) int {
	for i, x := range xs {
		if pred(x) {
			return i
		}
	}
	return -1
}

// FindLast returns the last element satisfying pred.
// Returns the zero value and false when no element matches.
func FindLast[T any](pred func(T) bool, xs []T) (T, bool) {
	for i := len(xs) - 1; i >= 0; i-- {
		if pred(xs[i]) {
			return xs[i], true
		}
	}
	var zero T
	return zero, false
}

// FindLastIndex returns the index of the last element satisfying pred, or -1.
func FindLastIndex[T any](pred func(T) bool, xs []T) int {
	for i := len(xs) - 1; i >= 0; i-- {
		if pred(xs[i]) {
			return i
		}
	}
	return -1
}

// All reports whether pred holds for every element. True for an empty slice.
func All[T any](pred func(T) bool, xs []T) bool {
	for _, x := range xs {
		if !pred(x) {
			return false
		}
	}
	return true
}

// Any reports whether pred holds for at least one element.
func Any[T any](pred func(T) bool, xs []T) bool {
	for _, x := range xs {
		if pred(x) {
			return true
		}
	}
	return false
}

// None reports whether pred holds for no element.
func None[T any](pred func(T) bool, xs []T) bool {
	return !Any(pred, xs)
}

// Includes reports whether xs contains an element structurally equal to
// target.
func Includes[T any](target T, xs []T) bool {
	return IndexOf(target, xs) != -1
}

// IndexOf returns the index of the first element structurally equal to
// target, or -1.
func IndexOf[T any](target T, xs []T) int {
	for i, x := range xs {
		if deep.Equal(x, target) {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last element structurally equal to
// target, or -1.
func LastIndexOf[T any](target T, xs []T) int {
	for i := len(xs) - 1; i >= 0; i-- {
		if deep.Equal(xs[i], target) {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Positional accessors
// ─────────────────────────────────────────────────────────────────────────────

// Head returns the first element.
// Returns the zero value and false when xs is empty.
func Head[T any](xs []T) (T, bool) {
	if len(xs) == 0 {
		var zero T
		return zero, false
	}
	return xs[0], true
}

// Last returns the final element.
// Returns the zero value and false when xs is empty.
func Last[T any](xs []T) (T, bool) {
	if len(xs) == 0 {
		var zero T
		return zero, false
	}
	return xs[len(xs)-1], true
}

// Tail returns a copy of everything after the first element.
func Tail[T any](xs []T) []T {
	if len(xs) <= 1 {
		return []T{}
	}
	out := make([]T, len(xs)-1)
	copy(out, xs[1:])
	return out
}

// Init returns a copy of everything before the final element.
func Init[T any](xs []T) []T {
	if len(xs) <= 1 {
		return []T{}
	}
	out := make([]T, len(xs)-1)
	copy(out, xs[:len(xs)-1])
	return out
}

// Nth returns the element at index n; a negative n counts from the end.
// Returns the zero value and false when n is out of range.
func Nth[T any](n int, xs []T) (T, bool) {
	if n < 0 {
		n += len(xs)
	}
	if n < 0 || n >= len(xs) {
		var zero T
		return zero, false
	}
	return xs[n], true
}
