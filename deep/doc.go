// Package deep implements structural (value-based) equality over arbitrary
// runtime values.
//
// Equal dispatches on the classification tags from package kind and applies
// a per-kind comparison rule: numbers compare numerically (with +0 and -0
// kept distinct, and NaN equal to itself), slices element-wise, maps
// key-by-key regardless of iteration order, structs field-by-field, and so
// on. Two values of different kinds are never equal.
//
//	deep.Equal([]any{1, map[string]any{"a": 2}}, []any{1, map[string]any{"a": 2}})  // true
//	deep.Equal(0.0, math.Copysign(0, -1))                                           // false
//	deep.Equal(math.NaN(), math.NaN())                                              // true
//
// Equal is total: it accepts any pair of values and never panics. It is the
// equality used by the deep variants in package list (Includes, IndexOf,
// Uniq, Difference, Union, ...) and by obj.WhereEq.
package deep
