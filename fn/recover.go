package fn

import "sync"

// Once wraps f so that it runs at most one time; later calls return the
// memoized result. Each wrapper owns its closure state, so independent Once
// wrappers never share anything, and the wrapper is safe for concurrent use.
func Once[T any](f func() T) func() T {
	var (
		once   sync.Once
		result T
	)
	return func() T {
		once.Do(func() { result = f() })
		return result
	}
}

// Try invokes f and returns its value, substituting fallback when f returns
// an error or panics.
func Try[T any](f func() (T, error), fallback T) T {
	return TryWith(f, func(error) T { return fallback })
}

// TryWith invokes f and returns its value, passing any error to recoverFn
// and returning its result instead. A panic inside f is converted to an
// error and handled the same way.
func TryWith[T any](f func() (T, error), recoverFn func(error) T) (result T) {
	defer func() {
		if r := recover(); r != nil {
			result = recoverFn(panicError{value: r})
		}
	}()
	v, err := f()
	if err != nil {
		return recoverFn(err)
	}
	return v
}

// panicError carries a recovered panic value through the error channel of
// TryWith.
type panicError struct{ value any }

func (e panicError) Error() string {
	if err, ok := e.value.(error); ok {
		return err.Error()
	}
	if s, ok := e.value.(string); ok {
		return s
	}
	return "panic in wrapped function"
}
