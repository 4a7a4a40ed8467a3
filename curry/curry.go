// Package curry transforms multi-argument functions into chains of
// single-argument functions, plus the partial-application and
// argument-flipping helpers that go with them.
//
// The JS original inspects arity at runtime; in Go the arity is part of the
// function type, so the combinator comes in one variant per arity:
//
//	add := func(a, b, c int) int { return a + b + c }
//	curry.Three(add)(1)(2)(3)      // 6
//	curry.Partial2(add, 1, 2)(3)   // 6
//
// A curried wrapper never invokes the underlying function before the full
// chain has been applied, applies it exactly once per completed chain, and
// holds no shared state: intermediate stages are plain closures, so a stage
// such as addOne := curry.Two(add)(1) can be reused any number of times and
// independent chains never interfere.
package curry

// Two curries a binary function.
func Two[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return f(a, b)
		}
	}
}

// Three curries a ternary function.
func Three[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R {
				return f(a, b, c)
			}
		}
	}
}

// Four curries a four-argument function.
func Four[A, B, C, D, R any](f func(A, B, C, D) R) func(A) func(B) func(C) func(D) R {
	return func(a A) func(B) func(C) func(D) R {
		return func(b B) func(C) func(D) R {
			return func(c C) func(D) R {
				return func(d D) R {
					return f(a, b, c, d)
				}
			}
		}
	}
}

// TwoErr curries a binary function that can fail. The error surfaces only
// when the final argument is applied.
func TwoErr[A, B, R any](f func(A, B) (R, error)) func(A) func(B) (R, error) {
	return func(a A) func(B) (R, error) {
		return func(b B) (R, error) {
			return f(a, b)
		}
	}
}

// ThreeErr curries a ternary function that can fail.
func ThreeErr[A, B, C, R any](f func(A, B, C) (R, error)) func(A) func(B) func(C) (R, error) {
	return func(a A) func(B) func(C) (R, error) {
		return func(b B) func(C) (R, error) {
			return func(c C) (R, error) {
				return f(a, b, c)
			}
		}
	}
}

// Uncurry2 inverts Two.
func Uncurry2[A, B, R any](f func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R {
		return f(a)(b)
	}
}

// Uncurry3 inverts Three.
func Uncurry3[A, B, C, R any](f func(A) func(B) func(C) R) func(A, B, C) R {
	return func(a A, b B, c C) R {
		return f(a)(b)(c)
	}
}

// Partial binds the first argument of a binary function.
func Partial[A, B, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R {
		return f(a, b)
	}
}

// Partial1 binds the first argument of a ternary function, leaving a binary
// continuation.
func Partial1[A, B, C, R any](f func(A, B, C) R, a A) func(B, C) R {
	return func(b B, c C) R {
		return f(a, b, c)
	}
}

// Partial2 binds the first two arguments of a ternary function.
func Partial2[A, B, C, R any](f func(A, B, C) R, a A, b B) func(C) R {
	return func(c C) R {
		return f(a, b, c)
	}
}

// Flip swaps the arguments of a binary function.
func Flip[A, B, R any](f func(A, B) R) func(B, A) R {
	return func(b B, a A) R {
		return f(a, b)
	}
}

// Unary adapts an (item, index) callback to an item-only one, so that plain
// unary functions can be handed to the indexed helpers in package list.
func Unary[T, R any](f func(T) R) func(T, int) R {
	return func(v T, _ int) R {
		return f(v)
	}
}
