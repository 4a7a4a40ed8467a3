package deep

import (
	"math"
	"math/big"
	"reflect"
	"regexp"
	"runtime"
	"time"

	"github.com/hasbyte1/go-rambda-utils/kind"
)

// Equal reports whether a and b are structurally equal.
//
// The comparison is reflexive (including NaN against NaN), symmetric, and
// never panics. Values of different kinds are never equal; see the package
// documentation for the per-kind rules.
func Equal(a, b any) bool {
	ka, kb := kind.Of(a), kind.Of(b)
	if ka != kb {
		return false
	}

	switch ka {
	case kind.Nil, kind.NaN:
		// Degenerate kinds compare equal to themselves.
		return true
	case kind.Bool:
		return reflect.ValueOf(a).Bool() == reflect.ValueOf(b).Bool()
	case kind.Number:
		return numberEqual(reflect.ValueOf(a), reflect.ValueOf(b))
	case kind.String:
		return reflect.ValueOf(a).String() == reflect.ValueOf(b).String()
	case kind.Slice:
		return sliceEqual(reflect.ValueOf(a), reflect.ValueOf(b))
	case kind.Map:
		return mapEqual(reflect.ValueOf(a), reflect.ValueOf(b))
	case kind.Struct:
		return structEqual(reflect.ValueOf(a), reflect.ValueOf(b))
	case kind.Pointer:
		av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
		if av.Kind() != reflect.Ptr || bv.Kind() != reflect.Ptr {
			// unsafe.Pointer: identity is all we have.
			return a == b
		}
		return Equal(av.Elem().Interface(), bv.Elem().Interface())
	case kind.Time:
		return asTime(a).UnixMilli() == asTime(b).UnixMilli()
	case kind.Duration:
		return a.(time.Duration) == b.(time.Duration)
	case kind.Regexp:
		// Source and flags as one string; flag order matters.
		return a.(*regexp.Regexp).String() == b.(*regexp.Regexp).String()
	case kind.Error:
		return errorEqual(a.(error), b.(error))
	case kind.Func:
		return funcName(a) == funcName(b)
	case kind.BigInt:
		return a.(*big.Int).Cmp(b.(*big.Int)) == 0
	case kind.BigFloat:
		return a.(*big.Float).Cmp(b.(*big.Float)) == 0
	default:
		// Chan and anything unclassifiable: no structural comparison exists.
		return false
	}
}

func numberEqual(av, bv reflect.Value) bool {
	ac, aIsComplex := complexValue(av)
	bc, bIsComplex := complexValue(bv)
	if aIsComplex || bIsComplex {
		return aIsComplex && bIsComplex && complexEqual(ac, bc)
	}

	aInt, aIsInt := intValue(av)
	bInt, bIsInt := intValue(bv)
	if aIsInt && bIsInt {
		return aInt.Cmp(bInt) == 0
	}

	af, aNeg := floatValue(av)
	bf, bNeg := floatValue(bv)
	if af == 0 && bf == 0 {
		// +0 and -0 are distinct values.
		return aNeg == bNeg
	}
	return af == bf
}

func complexValue(v reflect.Value) (complex128, bool) {
	switch v.Kind() {
	case reflect.Complex64, reflect.Complex128:
		return v.Complex(), true
	}
	return 0, false
}

// complexEqual compares the real and imaginary parts with the same rules as
// plain floats, keeping Equal reflexive when a component is NaN.
func complexEqual(a, b complex128) bool {
	return floatPartEqual(real(a), real(b)) && floatPartEqual(imag(a), imag(b))
}

func floatPartEqual(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	if a == 0 && b == 0 {
		return math.Signbit(a) == math.Signbit(b)
	}
	return a == b
}

// intValue returns the exact integer value when v holds an integer kind,
// avoiding float64 rounding for magnitudes beyond 2^53.
func intValue(v reflect.Value) (*big.Int, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Int).SetUint64(v.Uint()), true
	}
	return nil, false
}

func floatValue(v reflect.Value) (f float64, negZero bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), false
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), false
	default:
		f = v.Float()
		return f, math.Signbit(f)
	}
}

func sliceEqual(av, bv reflect.Value) bool {
	if av.Len() != bv.Len() {
		return false
	}
	for i := 0; i < av.Len(); i++ {
		if !Equal(av.Index(i).Interface(), bv.Index(i).Interface()) {
			return false
		}
	}
	return true
}

func mapEqual(av, bv reflect.Value) bool {
	if av.Len() != bv.Len() {
		return false
	}
	bKeyType := bv.Type().Key()
	iter := av.MapRange()
	for iter.Next() {
		k := iter.Key()
		var bVal reflect.Value
		switch {
		case k.Type().AssignableTo(bKeyType):
			bVal = bv.MapIndex(k)
		case k.Type().ConvertibleTo(bKeyType):
			bVal = bv.MapIndex(k.Convert(bKeyType))
		}
		if !bVal.IsValid() {
			return false
		}
		if !Equal(iter.Value().Interface(), bVal.Interface()) {
			return false
		}
	}
	return true
}

func structEqual(av, bv reflect.Value) bool {
	if av.Type() != bv.Type() {
		return false
	}
	for i := 0; i < av.NumField(); i++ {
		if !av.Type().Field(i).IsExported() {
			continue
		}
		if !Equal(av.Field(i).Interface(), bv.Field(i).Interface()) {
			return false
		}
	}
	return true
}

func errorEqual(a, b error) bool {
	return reflect.TypeOf(a) == reflect.TypeOf(b) && a.Error() == b.Error()
}

func asTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case *time.Time:
		return *t
	}
	return time.Time{}
}

// funcName resolves the runtime symbol of a function value. Named functions
// compare by qualified name; each anonymous function gets its own per-site
// symbol, so unrelated closures are never equal.
func funcName(f any) string {
	return runtime.FuncForPC(reflect.ValueOf(f).Pointer()).Name()
}
