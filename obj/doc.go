// Package obj provides read and write access to dynamic object trees
// (map[string]any values that may contain nested maps and []any slices)
// using dot-notation key paths, plus the pick/omit/merge helpers that
// operate on whole objects.
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "tags": []any{"admin", "ops"},
//	    },
//	}
//
//	obj.Path("user.name", m)     // "Alice"
//	obj.Path("user.tags.1", m)   // "ops" (numeric segments index slices)
//	obj.Path("user.age", m)      // nil
//
// Writes never mutate their input: AssocPath clones only the maps and
// slices along the touched path and shares everything else, creating
// intermediate containers as needed: a []any when the next path segment
// looks numeric, a map[string]any otherwise.
//
//	m2 := obj.AssocPath("user.address.city", "London", m)
//	// m is unchanged; m2 shares m's untouched branches
//
// Missing or nil intermediates make reads return nil rather than fail; use
// Has/HasPath to distinguish a stored nil from an absent key.
package obj
