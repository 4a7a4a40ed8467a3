package obj

import (
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Reading
// ─────────────────────────────────────────────────────────────────────────────

// Prop returns the value stored under key, or nil when absent.
func Prop(key string, o map[string]any) any {
	return o[key]
}

// PropOr returns the value stored under key, or def when the key is absent
// or holds nil.
func PropOr(def any, key string, o map[string]any) any {
	if v, ok := o[key]; ok && v != nil {
		return v
	}
	return def
}

// Path walks o along a dot-separated key path and returns the value found,
// or nil as soon as any step is missing or not a container. Numeric-looking
// segments index into []any values. An empty path returns o itself.
func Path(path string, o any) any {
	return PathSeg(splitPath(path), o)
}

// PathSeg is Path with the segments already split.
func PathSeg(segs []string, o any) any {
	current := o
	for _, seg := range segs {
		switch node := current.(type) {
		case map[string]any:
			v, ok := node[seg]
			if !ok {
				return nil
			}
			current = v
		case []any:
			idx, ok := parseIndex(seg)
			if !ok || idx >= len(node) {
				return nil
			}
			current = node[idx]
		default:
			return nil
		}
	}
	return current
}

// PathOr returns the value at path, or def when the path is missing or
// resolves to nil.
func PathOr(def any, path string, o any) any {
	if v := Path(path, o); v != nil {
		return v
	}
	return def
}

// Paths resolves several dot paths against the same object.
func Paths(paths []string, o any) []any {
	out := make([]any, len(paths))
	for i, p := range paths {
		out[i] = Path(p, o)
	}
	return out
}

// Has reports whether key exists in o, even when its value is nil.
func Has(key string, o map[string]any) bool {
	_, ok := o[key]
	return ok
}

// HasPath reports whether the full dot path exists in o, even when the
// terminal value is nil.
func HasPath(path string, o any) bool {
	current := o
	for _, seg := range splitPath(path) {
		switch node := current.(type) {
		case map[string]any:
			v, ok := node[seg]
			if !ok {
				return false
			}
			current = v
		case []any:
			idx, ok := parseIndex(seg)
			if !ok || idx >= len(node) {
				return false
			}
			current = node[idx]
		default:
			return false
		}
	}
	return true
}

// splitPath splits a dot path into segments; the empty path has none.
func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

// parseIndex reports whether seg is a non-negative integer index.
func parseIndex(seg string) (int, bool) {
	idx, err := strconv.Atoi(seg)
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}
