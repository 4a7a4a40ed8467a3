package obj

// ─────────────────────────────────────────────────────────────────────────────
// Writing (copy-on-write along the touched spine)
// ─────────────────────────────────────────────────────────────────────────────

// Assoc returns a copy of o with key set to v.
func Assoc(key string, v any, o map[string]any) map[string]any {
	out := make(map[string]any, len(o)+1)
	for k, val := range o {
		out[k] = val
	}
	out[key] = v
	return out
}

// Dissoc returns a copy of o without key.
func Dissoc(key string, o map[string]any) map[string]any {
	out := make(map[string]any, len(o))
	for k, val := range o {
		if k != key {
			out[k] = val
		}
	}
	return out
}

// AssocPath returns a new tree with the value at the dot path replaced by v.
// Only the containers along the path are cloned; untouched siblings are
// shared with the input. Missing intermediates are created (a []any when
// the next segment looks numeric, a map[string]any otherwise) and a
// numeric write past the end of a slice extends it with nils. An empty path
// replaces the whole tree with v.
func AssocPath(path string, v any, o any) any {
	return assocSeg(splitPath(path), v, o)
}

func assocSeg(segs []string, v, o any) any {
	if len(segs) == 0 {
		return v
	}
	seg := segs[0]

	if idx, numeric := parseIndex(seg); numeric {
		src, _ := o.([]any)
		length := len(src)
		if idx+1 > length {
			length = idx + 1
		}
		out := make([]any, length)
		copy(out, src)
		var child any
		if idx < len(src) {
			child = src[idx]
		}
		out[idx] = assocSeg(segs[1:], v, child)
		return out
	}

	src, _ := o.(map[string]any)
	out := make(map[string]any, len(src)+1)
	for k, val := range src {
		out[k] = val
	}
	out[seg] = assocSeg(segs[1:], v, src[seg])
	return out
}

// DissocPath returns a new tree with the value at the dot path removed:
// the key is deleted from a map, the element spliced out of a slice. When
// the path does not exist the input is returned unchanged.
func DissocPath(path string, o any) any {
	segs := splitPath(path)
	if len(segs) == 0 || !HasPath(path, o) {
		return o
	}
	return dissocSeg(segs, o)
}

func dissocSeg(segs []string, o any) any {
	seg := segs[0]

	switch node := o.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		for k, val := range node {
			out[k] = val
		}
		if len(segs) == 1 {
			delete(out, seg)
		} else {
			out[seg] = dissocSeg(segs[1:], node[seg])
		}
		return out
	case []any:
		idx, ok := parseIndex(seg)
		if !ok || idx >= len(node) {
			return o
		}
		if len(segs) == 1 {
			out := make([]any, 0, len(node)-1)
			out = append(out, node[:idx]...)
			out = append(out, node[idx+1:]...)
			return out
		}
		out := make([]any, len(node))
		copy(out, node)
		out[idx] = dissocSeg(segs[1:], node[idx])
		return out
	default:
		return o
	}
}
