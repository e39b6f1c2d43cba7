// Package deepclone copies nested map[string]any / []any trees so that
// compiled option descriptors never alias caller-supplied data.
package deepclone

// Clone returns a deep copy of v. Maps and slices are copied recursively;
// every other value (including struct values) is returned as-is, since
// descriptor payloads are scalar or JSON-shaped trees.
func Clone(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, e := range val {
			out[k] = Clone(e)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = Clone(e)
		}
		return out
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	default:
		return v
	}
}

// Strings returns a copy of a string slice, nil for nil.
func Strings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
