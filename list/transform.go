package list

// ─────────────────────────────────────────────────────────────────────────────
// Map / Filter / Reduce
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to every element and returns a new slice.
func Map[T, U any](fn func(T) U, xs []T) []U {
	out := make([]U, len(xs))
	for i, x := range xs {
		out[i] = fn(x)
	}
	return out
}

// MapIndexed is Map with the element index passed to fn.
func MapIndexed[T, U any](fn func(T, int) U, xs []T) []U {
	out := make([]U, len(xs))
	for i, x := range xs {
		out[i] = fn(x, i)
	}
	return out
}

// Filter returns the elements for which pred holds.
func Filter[T any](pred func(T) bool, xs []T) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if pred(x) {
			out = append(out, x)
		}
	}
	return out
}

// FilterIndexed is Filter with the element index passed to pred.
func FilterIndexed[T any](pred func(T, int) bool, xs []T) []T {
	out := make([]T, 0, len(xs))
	for i, x := range xs {
		if pred(x, i) {
			out = append(out, x)
		}
	}
	return out
}

// Reject returns the elements for which pred does not hold.
func Reject[T any](pred func(T) bool, xs []T) []T {
	return Filter(func(x T) bool { return !pred(x) }, xs)
}

// Reduce folds xs left to right into a single value.
func Reduce[T, U any](fn func(U, T) U, initial U, xs []T) U {
	acc := initial
	for _, x := range xs {
		acc = fn(acc, x)
	}
	return acc
}

// ReduceRight folds xs right to left.
func ReduceRight[T, U any](fn func(U, T) U, initial U, xs []T) U {
	acc := initial
	for i := len(xs) - 1; i >= 0; i-- {
		acc = fn(acc, xs[i])
	}
	return acc
}

// ForEach calls fn on every element, for side effects.
func ForEach[T any](fn func(T), xs []T) {
	for _, x := range xs {
		fn(x)
	}
}

// FlatMap applies fn to every element and concatenates the results.
func FlatMap[T, U any](fn func(T) []U, xs []T) []U {
	out := make([]U, 0, len(xs))
	for _, x := range xs {
		out = append(out, fn(x)...)
	}
	return out
}

// Flatten concatenates one level of nesting.
func Flatten[T any](xs [][]T) []T {
	total := 0
	for _, chunk := range xs {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range xs {
		out = append(out, chunk...)
	}
	return out
}

// FlattenDeep recursively flattens arbitrarily nested []any values.
func FlattenDeep(xs []any) []any {
	out := make([]any, 0, len(xs))
	var walk func(v any)
	walk = func(v any) {
		if nested, ok := v.([]any); ok {
			for _, e := range nested {
				walk(e)
			}
			return
		}
		out = append(out, v)
	}
	for _, x := range xs {
		walk(x)
	}
	return out
}
