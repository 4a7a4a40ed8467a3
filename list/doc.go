// Package list provides generic, non-mutating transformation functions over
// plain Go slices: map/filter/reduce, slicing, set operations, grouping and
// numeric folds.
//
// Argument order follows the point-free surface this library ports: the
// function or configuration argument comes first and the data comes last,
// which keeps call sites readable when combined with package curry and
// package fn:
//
//	double := func(n int) int { return n * 2 }
//	list.Map(double, []int{1, 2, 3})                       // [2 4 6]
//	list.Filter(isEven, list.Range(0, 10))                 // [0 2 4 6 8]
//	list.Adjust(1, double, []int{1, 2, 3})                 // [1 4 3]
//
// Every function returns a fresh slice and never mutates its input. A nil
// slice is a valid empty input everywhere.
//
// Membership and set operations (Includes, IndexOf, Uniq, Difference,
// Union, Intersection, Without, DropRepeats) compare elements with
// deep.Equal, matching the structural-equality semantics of the original
// surface. The By-suffixed variants (UniqBy, DropRepeatsBy, ...) extract a
// comparable key instead and run in linear time.
package list
