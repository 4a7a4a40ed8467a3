package list

import "github.com/hasbyte1/go-rambda-utils/deep"

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
//
// The unsuffixed variants compare with deep.Equal and therefore accept any
// element type, at quadratic cost. The By variants key elements through a
// comparable extractor and run in linear time.
// ─────────────────────────────────────────────────────────────────────────────

// Uniq removes structural duplicates, keeping first occurrences.
func Uniq[T any](xs []T) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if !Includes(x, out) {
			out = append(out, x)
		}
	}
	return out
}

// UniqBy removes duplicates using a comparable key.
func UniqBy[T any, K comparable](key func(T) K, xs []T) []T {
	seen := make(map[K]struct{}, len(xs))
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		k := key(x)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, x)
		}
	}
	return out
}

// DropRepeats removes consecutive structural duplicates.
func DropRepeats[T any](xs []T) []T {
	out := make([]T, 0, len(xs))
	for i, x := range xs {
		if i == 0 || !deep.Equal(x, xs[i-1]) {
			out = append(out, x)
		}
	}
	return out
}

// DropRepeatsBy removes consecutive elements whose keys repeat.
func DropRepeatsBy[T any, K comparable](key func(T) K, xs []T) []T {
	out := make([]T, 0, len(xs))
	for i, x := range xs {
		if i == 0 || key(x) != key(xs[i-1]) {
			out = append(out, x)
		}
	}
	return out
}

// Difference returns the elements of xs not structurally present in ys.
func Difference[T any](xs, ys []T) []T {
	out := make([]T, 0)
	for _, x := range xs {
		if !Includes(x, ys) {
			out = append(out, x)
		}
	}
	return out
}

// Intersection returns the distinct elements present in both xs and ys.
func Intersection[T any](xs, ys []T) []T {
	out := make([]T, 0)
	for _, x := range Uniq(xs) {
		if Includes(x, ys) {
			out = append(out, x)
		}
	}
	return out
}

// Union returns the distinct elements of xs followed by the elements of ys
// not already present.
func Union[T any](xs, ys []T) []T {
	out := Uniq(xs)
	for _, y := range ys {
		if !Includes(y, out) {
			out = append(out, y)
		}
	}
	return out
}

// Without returns xs with every element structurally present in targets
// removed.
func Without[T any](targets, xs []T) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if !Includes(x, targets) {
			out = append(out, x)
		}
	}
	return out
}
