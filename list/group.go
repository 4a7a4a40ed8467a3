package list

import "sort"

// ─────────────────────────────────────────────────────────────────────────────
// Grouping, pairing & ordering
// ─────────────────────────────────────────────────────────────────────────────

// Pair holds two values of possibly different types; the element type
// produced by Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip pairs elements of xs and ys at the same index, stopping at the
// shorter slice.
func Zip[A, B any](xs []A, ys []B) []Pair[A, B] {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: xs[i], Second: ys[i]}
	}
	return out
}

// ZipWith combines elements of xs and ys at the same index through fn,
// stopping at the shorter slice.
func ZipWith[A, B, C any](fn func(A, B) C, xs []A, ys []B) []C {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	out := make([]C, n)
	for i := 0; i < n; i++ {
		out[i] = fn(xs[i], ys[i])
	}
	return out
}

// Unzip splits pairs back into two slices.
func Unzip[A, B any](pairs []Pair[A, B]) ([]A, []B) {
	as := make([]A, len(pairs))
	bs := make([]B, len(pairs))
	for i, p := range pairs {
		as[i] = p.First
		bs[i] = p.Second
	}
	return as, bs
}

// Combine builds a map from equal-length key and value slices.
// Returns ErrMismatchedLengths when the lengths differ.
func Combine[K comparable, V any](keys []K, values []V) (map[K]V, error) {
	if len(keys) != len(values) {
		return nil, ErrMismatchedLengths
	}
	out := make(map[K]V, len(keys))
	for i, k := range keys {
		out[k] = values[i]
	}
	return out, nil
}

// Partition splits xs into the elements satisfying pred and the rest.
func Partition[T any](pred func(T) bool, xs []T) ([]T, []T) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	for _, x := range xs {
		if pred(x) {
			pass = append(pass, x)
		} else {
			fail = append(fail, x)
		}
	}
	return pass, fail
}

// GroupBy groups elements by the key extracted by fn.
func GroupBy[T any, K comparable](fn func(T) K, xs []T) map[K][]T {
	groups := make(map[K][]T)
	for _, x := range xs {
		k := fn(x)
		groups[k] = append(groups[k], x)
	}
	return groups
}

// IndexBy maps each key to the last element producing it.
func IndexBy[T any, K comparable](fn func(T) K, xs []T) map[K]T {
	out := make(map[K]T, len(xs))
	for _, x := range xs {
		out[fn(x)] = x
	}
	return out
}

// CountBy counts elements per extracted key.
func CountBy[T any, K comparable](fn func(T) K, xs []T) map[K]int {
	out := make(map[K]int)
	for _, x := range xs {
		out[fn(x)]++
	}
	return out
}

// Sort returns a stably sorted copy of xs ordered by less.
func Sort[T any](less func(a, b T) bool, xs []T) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// SortBy returns a copy of xs sorted ascending by the key extracted by fn.
func SortBy[T any](fn func(T) float64, xs []T) []T {
	return Sort(func(a, b T) bool { return fn(a) < fn(b) }, xs)
}
