package obj_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-rambda-utils/obj"
)

func TestKeysValues(t *testing.T) {
	require := require.New(t)

	m := map[string]any{"b": 2, "a": 1, "c": 3}
	require.Equal([]string{"a", "b", "c"}, obj.Keys(m))
	require.Equal([]any{1, 2, 3}, obj.Values(m))
}

func TestPick(t *testing.T) {
	require := require.New(t)

	m := map[string]any{"a": 1, "b": 2, "c": 3}
	require.Equal(map[string]any{"a": 1, "c": 3}, obj.Pick("a,c", m))
	require.Equal(map[string]any{"a": 1}, obj.Pick("a,zzz", m))
	require.Equal(map[string]any{}, obj.Pick("", m))
	require.Equal(map[string]any{"a": 1, "b": 2}, obj.Pick("a, b", m), "spaces around commas are tolerated")
}

func TestPickAll(t *testing.T) {
	m := map[string]any{"a": 1}
	require.Equal(t, map[string]any{"a": 1, "b": nil}, obj.PickAll("a,b", m))
}

func TestOmit(t *testing.T) {
	require := require.New(t)

	m := map[string]any{"a": 1, "b": 2, "c": 3}
	require.Equal(map[string]any{"b": 2}, obj.Omit("a,c", m))
	require.Equal(map[string]any{"a": 1, "b": 2, "c": 3}, obj.Omit("", m))
	require.Equal(map[string]any{"a": 1, "b": 2, "c": 3}, m, "input must not be mutated")
}

func TestMerge(t *testing.T) {
	require := require.New(t)

	a := map[string]any{"x": 1, "y": map[string]any{"deep": true}}
	b := map[string]any{"y": 2, "z": 3}

	require.Equal(map[string]any{"x": 1, "y": 2, "z": 3}, obj.Merge(a, b))
	require.Equal(map[string]any{"x": 1, "y": map[string]any{"deep": true}, "z": 3}, obj.MergeLeft(a, b))
	require.Equal(map[string]any{"x": 1, "y": map[string]any{"deep": true}}, a)
}

func TestMergeDeepRight(t *testing.T) {
	require := require.New(t)

	a := map[string]any{"a": map[string]any{"b": 1, "c": 2}}
	b := map[string]any{"a": map[string]any{"b": 3, "d": 4}}
	got := obj.MergeDeepRight(a, b)

	require.Equal(map[string]any{"a": map[string]any{"b": 3, "c": 2, "d": 4}}, got)
	require.Equal(map[string]any{"a": map[string]any{"b": 1, "c": 2}}, a, "left input must not be mutated")
	require.Equal(map[string]any{"a": map[string]any{"b": 3, "d": 4}}, b, "right input must not be mutated")
}

func TestMergeDeepRightScalarBeatsMap(t *testing.T) {
	a := map[string]any{"a": map[string]any{"b": 1}}
	b := map[string]any{"a": "flat"}
	require.Equal(t, map[string]any{"a": "flat"}, obj.MergeDeepRight(a, b))
}

func TestMapValues(t *testing.T) {
	m := map[string]any{"a": 1, "b": 2}
	got := obj.MapValues(func(v any) any { return v.(int) * 10 }, m)
	require.Equal(t, map[string]any{"a": 10, "b": 20}, got)
}

func TestWhereEq(t *testing.T) {
	require := require.New(t)

	o := map[string]any{"a": 1, "b": map[string]any{"c": 2}, "d": 3}

	require.True(obj.WhereEq(map[string]any{"a": 1}, o))
	require.True(obj.WhereEq(map[string]any{"b": map[string]any{"c": 2}}, o), "values compare structurally")
	require.False(obj.WhereEq(map[string]any{"a": 2}, o))
	require.False(obj.WhereEq(map[string]any{"zzz": 1}, o))
	require.True(obj.WhereEq(map[string]any{}, o))
}
