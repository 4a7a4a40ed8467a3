// Package lens implements composable getter/setter pairs for immutable
// updates of nested structures.
//
// A Lens[S, A] focuses on one A inside an S. View reads the focus, Set
// replaces it without mutating the source, and Over transforms it in place
// of the read-modify-write dance. Lenses compose with Compose, focusing
// deeper with every step:
//
//	type Address struct{ City string }
//	type User struct{ Addr Address }
//
//	addr := lens.Make(
//	    func(u User) Address { return u.Addr },
//	    func(a Address, u User) User { u.Addr = a; return u },
//	)
//	city := lens.Make(
//	    func(a Address) string { return a.City },
//	    func(c string, a Address) Address { a.City = c; return a },
//	)
//	userCity := lens.Compose(addr, city)
//	userCity.View(u)              // read
//	userCity.Set("London", u)     // immutable write
//
// The lens laws hold for every lens built from a lawful get/set pair:
// View after Set returns the written value, and Set of the viewed value is
// a structural no-op.
package lens

import "github.com/hasbyte1/go-rambda-utils/obj"

// Lens pairs a getter with an immutable setter for one focus point.
type Lens[S, A any] struct {
	get func(S) A
	set func(A, S) S
}

// Make builds a lens from a get and set function. set must return a new S
// and leave its input untouched for the lens laws to hold.
func Make[S, A any](get func(S) A, set func(A, S) S) Lens[S, A] {
	return Lens[S, A]{get: get, set: set}
}

// View reads the focused value.
func (l Lens[S, A]) View(s S) A {
	return l.get(s)
}

// Set replaces the focused value, returning a new S.
func (l Lens[S, A]) Set(v A, s S) S {
	return l.set(v, s)
}

// Over applies fn to the focused value and writes the result back.
func (l Lens[S, A]) Over(fn func(A) A, s S) S {
	return l.set(fn(l.get(s)), s)
}

// Compose chains two lenses into one focusing through both.
func Compose[S, A, B any](outer Lens[S, A], inner Lens[A, B]) Lens[S, B] {
	return Lens[S, B]{
		get: func(s S) B {
			return inner.get(outer.get(s))
		},
		set: func(b B, s S) S {
			return outer.set(inner.set(b, outer.get(s)), s)
		},
	}
}

// Identity focuses on the whole value.
func Identity[S any]() Lens[S, S] {
	return Lens[S, S]{
		get: func(s S) S { return s },
		set: func(v S, _ S) S { return v },
	}
}

// Index focuses on position i of a slice. Reading out of range yields the
// zero value; writing out of range is a no-op copy.
func Index[T any](i int) Lens[[]T, T] {
	return Lens[[]T, T]{
		get: func(xs []T) T {
			if i < 0 || i >= len(xs) {
				var zero T
				return zero
			}
			return xs[i]
		},
		set: func(v T, xs []T) []T {
			out := make([]T, len(xs))
			copy(out, xs)
			if i >= 0 && i < len(out) {
				out[i] = v
			}
			return out
		},
	}
}

// MapKey focuses on the value under key k. Reading a missing key yields the
// zero value; writing clones the map.
func MapKey[K comparable, V any](k K) Lens[map[K]V, V] {
	return Lens[map[K]V, V]{
		get: func(m map[K]V) V {
			return m[k]
		},
		set: func(v V, m map[K]V) map[K]V {
			out := make(map[K]V, len(m)+1)
			for key, val := range m {
				out[key] = val
			}
			out[k] = v
			return out
		},
	}
}

// Prop focuses on one key of a dynamic object.
func Prop(key string) Lens[map[string]any, any] {
	return MapKey[string, any](key)
}

// Path focuses on a dot path through a dynamic object tree, with the
// read/write semantics of obj.Path and obj.AssocPath.
func Path(path string) Lens[any, any] {
	return Lens[any, any]{
		get: func(o any) any {
			return obj.Path(path, o)
		},
		set: func(v, o any) any {
			return obj.AssocPath(path, v, o)
		},
	}
}
