package list

import "golang.org/x/exp/constraints"

// Number is the constraint for numeric folds.
type Number interface {
	constraints.Integer | constraints.Float
}

// ─────────────────────────────────────────────────────────────────────────────
// Generation & numeric folds
// ─────────────────────────────────────────────────────────────────────────────

// Range returns the integers from start (inclusive) to end (exclusive).
// When end <= start the result is empty, never an error.
func Range[T constraints.Integer](start, end T) []T {
	if end <= start {
		return []T{}
	}
	out := make([]T, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, i)
	}
	return out
}

// Repeat returns a slice holding v n times.
func Repeat[T any](v T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	out := make([]T, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// Times builds a slice from fn applied to 0 … n-1.
func Times[T any](fn func(int) T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	out := make([]T, n)
	for i := range out {
		out[i] = fn(i)
	}
	return out
}

// Sum adds all elements. Zero for an empty slice.
func Sum[T Number](xs []T) T {
	var total T
	for _, x := range xs {
		total += x
	}
	return total
}

// Mean returns the arithmetic average, or 0 for an empty slice.
func Mean[T Number](xs []T) float64 {
	if len(xs) == 0 {
		return 0
	}
	return float64(Sum(xs)) / float64(len(xs))
}

// Min returns the smallest element.
// Returns the zero value and false when xs is empty.
func Min[T constraints.Ordered](xs []T) (T, bool) {
	if len(xs) == 0 {
		var zero T
		return zero, false
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m, true
}

// Max returns the largest element.
// Returns the zero value and false when xs is empty.
func Max[T constraints.Ordered](xs []T) (T, bool) {
	if len(xs) == 0 {
		var zero T
		return zero, false
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m, true
}

// MinBy returns the element with the smallest extracted key.
// Returns the zero value and false when xs is empty.
func MinBy[T any, K constraints.Ordered](fn func(T) K, xs []T) (T, bool) {
	if len(xs) == 0 {
		var zero T
		return zero, false
	}
	best, bestKey := xs[0], fn(xs[0])
	for _, x := range xs[1:] {
		if k := fn(x); k < bestKey {
			best, bestKey = x, k
		}
	}
	return best, true
}

// MaxBy returns the element with the largest extracted key.
// Returns the zero value and false when xs is empty.
func MaxBy[T any, K constraints.Ordered](fn func(T) K, xs []T) (T, bool) {
	if len(xs) == 0 {
		var zero T
		return zero, false
	}
	best, bestKey := xs[0], fn(xs[0])
	for _, x := range xs[1:] {
		if k := fn(x); k > bestKey {
			best, bestKey = x, k
		}
	}
	return best, true
}

// Clamp limits v into [low, high].
func Clamp[T constraints.Ordered](low, high, v T) T {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// SortOrdered returns an ascending copy of naturally ordered elements.
func SortOrdered[T constraints.Ordered](xs []T) []T {
	return Sort(func(a, b T) bool { return a < b }, xs)
}
