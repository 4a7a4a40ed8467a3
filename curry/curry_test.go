package curry_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-rambda-utils/curry"
)

func add2(a, b int) int { return a + b }

func add3(a, b, c int) int { return a + b + c }

func cat(a, b, c string) string { return a + b + c }

func TestTwo(t *testing.T) {
	require := require.New(t)

	curried := curry.Two(add2)
	require.Equal(8, curried(5)(3))
	require.Equal(add2(5, 3), curried(5)(3))
}

func TestThreeAssociativity(t *testing.T) {
	require := require.New(t)

	// All call shapes must agree with the plain call for the same inputs.
	for _, in := range [][3]int{{1, 2, 3}, {0, 0, 0}, {-4, 9, 2}} {
		a, b, c := in[0], in[1], in[2]
		want := add3(a, b, c)
		require.Equal(want, curry.Three(add3)(a)(b)(c))
		require.Equal(want, curry.Partial2(add3, a, b)(c))
		require.Equal(want, curry.Partial1(add3, a)(b, c))
	}
}

func TestFour(t *testing.T) {
	sum := func(a, b, c, d int) int { return a + b + c + d }
	require.Equal(t, 10, curry.Four(sum)(1)(2)(3)(4))
}

func TestCurriedStagesAreIndependent(t *testing.T) {
	require := require.New(t)

	addOne := curry.Two(add2)(1)
	addTen := curry.Two(add2)(10)

	// Reuse of a stage must not accumulate state across calls.
	require.Equal(2, addOne(1))
	require.Equal(3, addOne(2))
	require.Equal(11, addTen(1))
	require.Equal(2, addOne(1))
}

func TestCurriedCallsUnderlyingOnce(t *testing.T) {
	require := require.New(t)

	calls := 0
	counted := func(a, b int) int {
		calls++
		return a + b
	}
	stage := curry.Two(counted)(1)
	require.Equal(0, calls, "no invocation before the chain completes")
	stage(2)
	require.Equal(1, calls)
	stage(3)
	require.Equal(2, calls)
}

func TestTwoErr(t *testing.T) {
	require := require.New(t)

	div := func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, errors.New("division by zero")
		}
		return a / b, nil
	}
	halve := curry.TwoErr(div)(10)

	v, err := halve(2)
	require.NoError(err)
	require.Equal(5.0, v)

	_, err = halve(0)
	require.Error(err)
}

func TestThreeErr(t *testing.T) {
	require := require.New(t)

	clamp := func(low, high, v int) (int, error) {
		if low > high {
			return 0, errors.New("empty range")
		}
		if v < low {
			return low, nil
		}
		if v > high {
			return high, nil
		}
		return v, nil
	}
	inRange := curry.ThreeErr(clamp)(1)(10)

	v, err := inRange(42)
	require.NoError(err)
	require.Equal(10, v)

	// The error surfaces only when the final argument is applied.
	bad := curry.ThreeErr(clamp)(10)(1)
	_, err = bad(5)
	require.Error(err)
}

func TestUncurry(t *testing.T) {
	require := require.New(t)

	require.Equal(7, curry.Uncurry2(curry.Two(add2))(3, 4))
	require.Equal("abc", curry.Uncurry3(curry.Three(cat))("a", "b", "c"))
}

func TestPartial(t *testing.T) {
	require := require.New(t)

	greet := curry.Partial(func(greeting, name string) string {
		return greeting + ", " + name
	}, "hello")
	require.Equal("hello, world", greet("world"))
}

func TestFlip(t *testing.T) {
	require := require.New(t)

	prefixed := curry.Flip(strings.HasPrefix)
	require.True(prefixed("un", "unfold"))
	require.False(prefixed("fold", "unfold"))
}

func TestUnary(t *testing.T) {
	double := curry.Unary(func(n int) int { return n * 2 })
	require.Equal(t, 6, double(3, 99))
}
