// Package kind classifies arbitrary runtime values into a fixed, closed set
// of tags, providing the dynamic dispatch layer used by package deep and the
// dynamic object helpers in package obj.
//
// Classification is total and pure: Of accepts any value, never panics, and
// always returns exactly one Kind. Statically-typed call sites should not
// need this package at all; it exists for the true dynamic boundaries where
// values arrive as any.
//
//	kind.Of(nil)             // kind.Nil
//	kind.Of(3.14)            // kind.Number
//	kind.Of(math.NaN())      // kind.NaN
//	kind.Of([]int{1, 2, 3})  // kind.Slice
//	kind.Of(errors.New("x")) // kind.Error
package kind

import (
	"math"
	"math/big"
	"reflect"
	"regexp"
	"time"
)

// Kind is the classification tag for a runtime value.
type Kind int

// The closed set of classification tags.
//
// Every Go numeric kind maps to Number, except float values that are NaN,
// which get their own tag so that equality code can special-case them.
// Nil covers both a nil interface and typed nil pointers/slices/maps.
const (
	Invalid Kind = iota
	Nil
	Bool
	Number
	NaN
	String
	Slice
	Map
	Struct
	Func
	Chan
	Pointer
	Time
	Duration
	Regexp
	Error
	BigInt
	BigFloat
)

var kindNames = map[Kind]string{
	Invalid:  "Invalid",
	Nil:      "Nil",
	Bool:     "Bool",
	Number:   "Number",
	NaN:      "NaN",
	String:   "String",
	Slice:    "Slice",
	Map:      "Map",
	Struct:   "Struct",
	Func:     "Func",
	Chan:     "Chan",
	Pointer:  "Pointer",
	Time:     "Time",
	Duration: "Duration",
	Regexp:   "Regexp",
	Error:    "Error",
	BigInt:   "BigInt",
	BigFloat: "BigFloat",
}

// String returns the tag name, e.g. "Number".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Invalid"
}

// Of classifies v. It never panics and always returns exactly one Kind.
//
// Interface-level special cases (error, time.Time, time.Duration,
// *regexp.Regexp, *big.Int, *big.Float) are detected before the generic
// reflect-kind mapping, so an error implemented by a struct pointer
// classifies as Error rather than Pointer.
func Of(v any) Kind {
	if v == nil {
		return Nil
	}

	switch t := v.(type) {
	case error:
		// A typed nil pointer satisfying error is still nil-ish; calling
		// Error() on it would panic downstream.
		if rv := reflect.ValueOf(t); rv.Kind() == reflect.Ptr && rv.IsNil() {
			return Nil
		}
		return Error
	case time.Time:
		return Time
	case *time.Time:
		if t == nil {
			return Nil
		}
		return Time
	case time.Duration:
		return Duration
	case *regexp.Regexp:
		if t == nil {
			return Nil
		}
		return Regexp
	case *big.Int:
		if t == nil {
			return Nil
		}
		return BigInt
	case *big.Float:
		if t == nil {
			return Nil
		}
		return BigFloat
	case float32:
		if math.IsNaN(float64(t)) {
			return NaN
		}
		return Number
	case float64:
		if math.IsNaN(t) {
			return NaN
		}
		return Number
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return Bool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Complex64, reflect.Complex128:
		return Number
	case reflect.Float32, reflect.Float64:
		// Named float types land here rather than in the switch above.
		if math.IsNaN(rv.Float()) {
			return NaN
		}
		return Number
	case reflect.String:
		return String
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Nil
		}
		return Slice
	case reflect.Map:
		if rv.IsNil() {
			return Nil
		}
		return Map
	case reflect.Struct:
		return Struct
	case reflect.Func:
		if rv.IsNil() {
			return Nil
		}
		return Func
	case reflect.Chan:
		if rv.IsNil() {
			return Nil
		}
		return Chan
	case reflect.Ptr, reflect.UnsafePointer:
		if rv.Kind() == reflect.Ptr && rv.IsNil() {
			return Nil
		}
		return Pointer
	case reflect.Interface:
		if rv.IsNil() {
			return Nil
		}
		return Of(rv.Elem().Interface())
	default:
		return Invalid
	}
}

// IsNilish reports whether v classifies as Nil: a nil interface or a typed
// nil pointer, slice, map, func or chan.
func IsNilish(v any) bool {
	return Of(v) == Nil
}
