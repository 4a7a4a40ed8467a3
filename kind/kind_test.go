package kind_test

import (
	"errors"
	"math"
	"math/big"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-rambda-utils/kind"
)

func TestOfBasicValues(t *testing.T) {
	require := require.New(t)

	require.Equal(kind.Nil, kind.Of(nil))
	require.Equal(kind.Bool, kind.Of(true))
	require.Equal(kind.Bool, kind.Of(false))
	require.Equal(kind.String, kind.Of("hello"))
	require.Equal(kind.String, kind.Of(""))
}

func TestOfNumbers(t *testing.T) {
	require := require.New(t)

	require.Equal(kind.Number, kind.Of(42))
	require.Equal(kind.Number, kind.Of(int8(1)))
	require.Equal(kind.Number, kind.Of(uint64(1)))
	require.Equal(kind.Number, kind.Of(3.14))
	require.Equal(kind.Number, kind.Of(float32(3.14)))
	require.Equal(kind.Number, kind.Of(0.0))
	require.Equal(kind.Number, kind.Of(math.Inf(1)))
}

func TestOfNaN(t *testing.T) {
	require := require.New(t)

	require.Equal(kind.NaN, kind.Of(math.NaN()))
	require.Equal(kind.NaN, kind.Of(float32(math.NaN())))

	type myFloat float64
	require.Equal(kind.NaN, kind.Of(myFloat(math.NaN())))
	require.Equal(kind.Number, kind.Of(myFloat(1.5)))
}

func TestOfContainers(t *testing.T) {
	require := require.New(t)

	require.Equal(kind.Slice, kind.Of([]int{1, 2, 3}))
	require.Equal(kind.Slice, kind.Of([]any{}))
	require.Equal(kind.Slice, kind.Of([2]string{"a", "b"}))
	require.Equal(kind.Map, kind.Of(map[string]any{"a": 1}))
	require.Equal(kind.Map, kind.Of(map[int]int{}))
	require.Equal(kind.Struct, kind.Of(struct{ X int }{1}))
}

func TestOfNilish(t *testing.T) {
	require := require.New(t)

	var s []int
	var m map[string]int
	var p *int
	var f func()
	var c chan int
	var re *regexp.Regexp

	require.Equal(kind.Nil, kind.Of(s))
	require.Equal(kind.Nil, kind.Of(m))
	require.Equal(kind.Nil, kind.Of(p))
	require.Equal(kind.Nil, kind.Of(f))
	require.Equal(kind.Nil, kind.Of(c))
	require.Equal(kind.Nil, kind.Of(re))

	require.True(kind.IsNilish(nil))
	require.True(kind.IsNilish(s))
	require.False(kind.IsNilish([]int{}))
}

func TestOfSpecialTypes(t *testing.T) {
	require := require.New(t)

	require.Equal(kind.Error, kind.Of(errors.New("boom")))
	require.Equal(kind.Time, kind.Of(time.Now()))
	require.Equal(kind.Duration, kind.Of(time.Second))
	require.Equal(kind.Regexp, kind.Of(regexp.MustCompile(`a+`)))
	require.Equal(kind.BigInt, kind.Of(big.NewInt(7)))
	require.Equal(kind.BigFloat, kind.Of(big.NewFloat(1.5)))
}

func TestOfFuncAndPointer(t *testing.T) {
	require := require.New(t)

	require.Equal(kind.Func, kind.Of(func() {}))
	x := 5
	require.Equal(kind.Pointer, kind.Of(&x))
	require.Equal(kind.Chan, kind.Of(make(chan int)))
}

// Errors must classify as Error even when the concrete type is a struct
// pointer.
func TestErrorBeforeStructClassification(t *testing.T) {
	require := require.New(t)

	var err error = &customError{msg: "x"}
	require.Equal(kind.Error, kind.Of(err))
	require.Equal(kind.Error, kind.Of(&customError{msg: "y"}))
}

type customError struct{ msg string }

func (e *customError) Error() string { return e.msg }

func TestKindString(t *testing.T) {
	require := require.New(t)

	require.Equal("Number", kind.Number.String())
	require.Equal("NaN", kind.NaN.String())
	require.Equal("Nil", kind.Nil.String())
	require.Equal("Invalid", kind.Kind(999).String())
}
