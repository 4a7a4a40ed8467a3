package obj

import (
	"sort"
	"strings"

	"github.com/hasbyte1/go-rambda-utils/deep"
)

// ─────────────────────────────────────────────────────────────────────────────
// Whole-object helpers
// ─────────────────────────────────────────────────────────────────────────────

// Keys returns the map's keys in sorted order, for deterministic output.
func Keys(o map[string]any) []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Values returns the map's values ordered by sorted key.
func Values(o map[string]any) []any {
	keys := Keys(o)
	out := make([]any, len(keys))
	for i, k := range keys {
		out[i] = o[k]
	}
	return out
}

// Pick returns a new map holding only the named keys that exist in o.
// Keys are given comma-separated: "a,b,c".
func Pick(keys string, o map[string]any) map[string]any {
	names := splitKeys(keys)
	out := make(map[string]any, len(names))
	for _, k := range names {
		if v, ok := o[k]; ok {
			out[k] = v
		}
	}
	return out
}

// PickAll is Pick, but missing keys are present in the result with a nil
// value.
func PickAll(keys string, o map[string]any) map[string]any {
	names := splitKeys(keys)
	out := make(map[string]any, len(names))
	for _, k := range names {
		out[k] = o[k]
	}
	return out
}

// Omit returns a copy of o without the named keys (comma-separated).
func Omit(keys string, o map[string]any) map[string]any {
	drop := make(map[string]struct{})
	for _, k := range splitKeys(keys) {
		drop[k] = struct{}{}
	}
	out := make(map[string]any, len(o))
	for k, v := range o {
		if _, skip := drop[k]; !skip {
			out[k] = v
		}
	}
	return out
}

// Merge returns a new map with b's entries written over a's. Shallow: nested
// maps from b replace those from a wholesale.
func Merge(a, b map[string]any) map[string]any {
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// MergeLeft is Merge with a's entries winning conflicts.
func MergeLeft(a, b map[string]any) map[string]any {
	return Merge(b, a)
}

// MergeDeepRight merges b into a recursively: where both sides hold a map
// under the same key the maps are merged, otherwise b's value wins. Neither
// input is mutated.
func MergeDeepRight(a, b map[string]any) map[string]any {
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, bv := range b {
		if av, ok := out[k]; ok {
			aMap, aIsMap := av.(map[string]any)
			bMap, bIsMap := bv.(map[string]any)
			if aIsMap && bIsMap {
				out[k] = MergeDeepRight(aMap, bMap)
				continue
			}
		}
		out[k] = bv
	}
	return out
}

// MapValues applies fn to every value, returning a new map.
func MapValues(fn func(any) any, o map[string]any) map[string]any {
	out := make(map[string]any, len(o))
	for k, v := range o {
		out[k] = fn(v)
	}
	return out
}

// WhereEq reports whether o structurally matches every key/value pair in
// spec.
func WhereEq(spec, o map[string]any) bool {
	for k, want := range spec {
		got, ok := o[k]
		if !ok || !deep.Equal(got, want) {
			return false
		}
	}
	return true
}

func splitKeys(keys string) []string {
	if keys == "" {
		return nil
	}
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
