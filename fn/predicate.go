package fn

// Complement negates a predicate.
func Complement[T any](pred func(T) bool) func(T) bool {
	return func(v T) bool { return !pred(v) }
}

// AllPass reports whether every predicate holds. With no predicates the
// result is always true.
func AllPass[T any](preds ...func(T) bool) func(T) bool {
	return func(v T) bool {
		for _, p := range preds {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// AnyPass reports whether at least one predicate holds. With no predicates
// the result is always false.
func AnyPass[T any](preds ...func(T) bool) func(T) bool {
	return func(v T) bool {
		for _, p := range preds {
			if p(v) {
				return true
			}
		}
		return false
	}
}

// Both is AllPass for exactly two predicates, short-circuiting on the first.
func Both[T any](a, b func(T) bool) func(T) bool {
	return func(v T) bool { return a(v) && b(v) }
}

// Either is AnyPass for exactly two predicates.
func Either[T any](a, b func(T) bool) func(T) bool {
	return func(v T) bool { return a(v) || b(v) }
}
