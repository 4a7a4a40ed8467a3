package list_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-rambda-utils/list"
)

func double(n int) int { return n * 2 }
func isEven(n int) bool { return n%2 == 0 }

func TestMap(t *testing.T) {
	require := require.New(t)

	require.Equal([]int{2, 4, 6}, list.Map(double, []int{1, 2, 3}))
	require.Equal([]string{"1", "2"}, list.Map(strconv.Itoa, []int{1, 2}))
	require.Equal([]int{}, list.Map(double, nil))
}

func TestMapIndexed(t *testing.T) {
	got := list.MapIndexed(func(s string, i int) string {
		return strconv.Itoa(i) + s
	}, []string{"a", "b"})
	require.Equal(t, []string{"0a", "1b"}, got)
}

func TestFilter(t *testing.T) {
	require := require.New(t)

	require.Equal([]int{2, 4}, list.Filter(isEven, []int{1, 2, 3, 4, 5}))
	require.Equal([]int{}, list.Filter(isEven, nil))
}

func TestFilterIndexed(t *testing.T) {
	got := list.FilterIndexed(func(_ string, i int) bool { return i%2 == 0 }, []string{"a", "b", "c"})
	require.Equal(t, []string{"a", "c"}, got)
}

func TestReject(t *testing.T) {
	require.Equal(t, []int{1, 3, 5}, list.Reject(isEven, []int{1, 2, 3, 4, 5}))
}

func TestReduce(t *testing.T) {
	require := require.New(t)

	sum := list.Reduce(func(acc, n int) int { return acc + n }, 0, []int{1, 2, 3, 4, 5})
	require.Equal(15, sum)

	joined := list.Reduce(func(acc string, n int) string { return acc + strconv.Itoa(n) }, "", []int{1, 2, 3})
	require.Equal("123", joined)
}

func TestReduceRight(t *testing.T) {
	joined := list.ReduceRight(func(acc string, n int) string { return acc + strconv.Itoa(n) }, "", []int{1, 2, 3})
	require.Equal(t, "321", joined)
}

func TestForEach(t *testing.T) {
	var collected []int
	list.ForEach(func(n int) { collected = append(collected, n) }, []int{1, 2, 3})
	require.Equal(t, []int{1, 2, 3}, collected)
}

func TestFlatMap(t *testing.T) {
	got := list.FlatMap(func(s string) []string { return strings.Fields(s) },
		[]string{"hello world", "foo bar"})
	require.Equal(t, []string{"hello", "world", "foo", "bar"}, got)
}

func TestFlatten(t *testing.T) {
	require := require.New(t)

	require.Equal([]int{1, 2, 3, 4, 5}, list.Flatten([][]int{{1, 2}, {3, 4}, {5}}))
	require.Equal([]int{}, list.Flatten[int](nil))
}

func TestFlattenDeep(t *testing.T) {
	nested := []any{1, []any{2, []any{3, []any{4}}}, 5}
	require.Equal(t, []any{1, 2, 3, 4, 5}, list.FlattenDeep(nested))
}
