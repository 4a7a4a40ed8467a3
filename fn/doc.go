// Package fn provides the small composition and control-flow combinators
// that glue the rest of the library together: identity and constant
// functions, pipe/compose in both same-type and typed-chain forms, predicate
// combinators, a single-invocation wrapper, and panic-safe fallback
// execution.
//
//	shout := fn.Compose(
//	    func(s string) string { return s + "!" },
//	    strings.ToUpper,
//	)
//	shout("hey")                       // "HEY!"
//
//	fn.Pipe(2,
//	    func(n int) int { return n * 2 },
//	    func(n int) int { return n + 1 },
//	)                                  // 5
//
// All combinators are pure except Once, whose per-wrapper memoization is the
// point, and Try/TryWith, which observe panics in the wrapped function.
package fn
