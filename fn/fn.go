package fn

// Identity returns v unchanged.
func Identity[T any](v T) T { return v }

// Always returns a function that always returns v.
func Always[T any](v T) func() T {
	return func() T { return v }
}

// Pipe threads v through fns left to right.
func Pipe[T any](v T, fns ...func(T) T) T {
	result := v
	for _, f := range fns {
		result = f(result)
	}
	return result
}

// Compose combines fns right to left, so the rightmost function is applied
// first: Compose(f, g)(x) == f(g(x)).
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		result := v
		for i := len(fns) - 1; i >= 0; i-- {
			result = fns[i](result)
		}
		return result
	}
}

// Pipe2 chains two functions of different types left to right.
func Pipe2[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Pipe3 chains three functions of different types left to right.
func Pipe3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return func(a A) D {
		return h(g(f(a)))
	}
}

// Compose2 is Pipe2 with the arguments in mathematical order:
// Compose2(f, g)(x) == f(g(x)).
func Compose2[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return Pipe2(g, f)
}

// Tap runs a side effect on v and passes v through, for inspection points in
// pipelines.
func Tap[T any](effect func(T)) func(T) T {
	return func(v T) T {
		effect(v)
		return v
	}
}

// IfElse applies onTrue or onFalse to v depending on pred.
func IfElse[T, R any](pred func(T) bool, onTrue, onFalse func(T) R) func(T) R {
	return func(v T) R {
		if pred(v) {
			return onTrue(v)
		}
		return onFalse(v)
	}
}

// When applies transform to v only if pred holds, otherwise returns v as is.
func When[T any](pred func(T) bool, transform func(T) T) func(T) T {
	return IfElse(pred, transform, Identity[T])
}

// Unless applies transform to v only if pred does not hold.
func Unless[T any](pred func(T) bool, transform func(T) T) func(T) T {
	return IfElse(pred, Identity[T], transform)
}
