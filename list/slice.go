package list

import (
	"fmt"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & structural edits (all copy-on-write)
// ─────────────────────────────────────────────────────────────────────────────

// Take returns a copy of the first n elements; all of xs when n exceeds its
// length, nothing when n <= 0.
func Take[T any](n int, xs []T) []T {
	if n <= 0 {
		return []T{}
	}
	if n > len(xs) {
		n = len(xs)
	}
	out := make([]T, n)
	copy(out, xs[:n])
	return out
}

// TakeLast returns a copy of the final n elements.
func TakeLast[T any](n int, xs []T) []T {
	if n <= 0 {
		return []T{}
	}
	if n > len(xs) {
		n = len(xs)
	}
	out := make([]T, n)
	copy(out, xs[len(xs)-n:])
	return out
}

// TakeWhile returns leading elements while pred holds.
func TakeWhile[T any](pred func(T) bool, xs []T) []T {
	out := make([]T, 0)
	for _, x := range xs {
		if !pred(x) {
			break
		}
		out = append(out, x)
	}
	return out
}

// Drop returns a copy of xs without the first n elements.
func Drop[T any](n int, xs []T) []T {
	if n <= 0 {
		n = 0
	}
	if n >= len(xs) {
		return []T{}
	}
	out := make([]T, len(xs)-n)
	copy(out, xs[n:])
	return out
}

// DropLast returns a copy of xs without the final n elements.
func DropLast[T any](n int, xs []T) []T {
	if n <= 0 {
		n = 0
	}
	if n >= len(xs) {
		return []T{}
	}
	out := make([]T, len(xs)-n)
	copy(out, xs[:len(xs)-n])
	return out
}

// DropWhile skips leading elements while pred holds and copies the rest.
func DropWhile[T any](pred func(T) bool, xs []T) []T {
	for i, x := range xs {
		if !pred(x) {
			out := make([]T, len(xs)-i)
			copy(out, xs[i:])
			return out
		}
	}
	return []T{}
}

// Adjust applies fn to the element at index n, counting from the end when n
// is negative. An out-of-range index returns an unchanged copy.
func Adjust[T any](n int, fn func(T) T, xs []T) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	if n < 0 {
		n += len(xs)
	}
	if n >= 0 && n < len(out) {
		out[n] = fn(out[n])
	}
	return out
}

// Update replaces the element at index n with v, counting from the end when
// n is negative. An out-of-range index returns an unchanged copy.
func Update[T any](n int, v T, xs []T) []T {
	return Adjust(n, func(T) T { return v }, xs)
}

// Insert places v at index n, clamping n into [0, len(xs)].
func Insert[T any](n int, v T, xs []T) []T {
	if n < 0 {
		n = 0
	}
	if n > len(xs) {
		n = len(xs)
	}
	out := make([]T, 0, len(xs)+1)
	out = append(out, xs[:n]...)
	out = append(out, v)
	out = append(out, xs[n:]...)
	return out
}

// Remove drops count elements starting at index start.
func Remove[T any](start, count int, xs []T) []T {
	if start < 0 {
		start = 0
	}
	if start > len(xs) {
		start = len(xs)
	}
	end := start + count
	if count < 0 {
		end = start
	}
	if end > len(xs) {
		end = len(xs)
	}
	out := make([]T, 0, len(xs)-(end-start))
	out = append(out, xs[:start]...)
	out = append(out, xs[end:]...)
	return out
}

// Append returns a copy of xs with v added at the end.
func Append[T any](v T, xs []T) []T {
	out := make([]T, len(xs)+1)
	copy(out, xs)
	out[len(xs)] = v
	return out
}

// Prepend returns a copy of xs with v added at the front.
func Prepend[T any](v T, xs []T) []T {
	out := make([]T, len(xs)+1)
	out[0] = v
	copy(out[1:], xs)
	return out
}

// Concat returns a new slice holding xs followed by ys.
func Concat[T any](xs, ys []T) []T {
	out := make([]T, len(xs)+len(ys))
	copy(out, xs)
	copy(out[len(xs):], ys)
	return out
}

// Reverse returns a reversed copy of xs.
func Reverse[T any](xs []T) []T {
	n := len(xs)
	out := make([]T, n)
	for i, x := range xs {
		out[n-1-i] = x
	}
	return out
}

// SplitAt splits xs into the first n elements and the rest, both copies.
// A negative n counts from the end.
func SplitAt[T any](n int, xs []T) ([]T, []T) {
	if n < 0 {
		n += len(xs)
		if n < 0 {
			n = 0
		}
	}
	return Take(n, xs), Drop(n, xs)
}

// SplitEvery splits xs into consecutive groups of size; the final group may
// be shorter. Returns ErrInvalidSliceLength when size < 1.
func SplitEvery[T any](size int, xs []T) ([][]T, error) {
	if size < 1 {
		return nil, ErrInvalidSliceLength
	}
	groups := make([][]T, 0, (len(xs)+size-1)/size)
	for i := 0; i < len(xs); i += size {
		end := i + size
		if end > len(xs) {
			end = len(xs)
		}
		group := make([]T, end-i)
		copy(group, xs[i:end])
		groups = append(groups, group)
	}
	return groups, nil
}

// Slice returns a copy of xs[from:to], with negative bounds counting from
// the end and out-of-range bounds clamped.
func Slice[T any](from, to int, xs []T) []T {
	total := len(xs)
	if from < 0 {
		from += total
	}
	if to < 0 {
		to += total
	}
	if from < 0 {
		from = 0
	}
	if to > total {
		to = total
	}
	if from >= to {
		return []T{}
	}
	out := make([]T, to-from)
	copy(out, xs[from:to])
	return out
}

// Join renders xs with sep between elements, in fmt %v form.
func Join[T any](sep string, xs []T) string {
	var b strings.Builder
	for i, x := range xs {
		if i > 0 {
			b.WriteString(sep)
		}
		fmt.Fprintf(&b, "%v", x)
	}
	return b.String()
}
