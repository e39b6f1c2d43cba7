// Package dotpath reads and writes values at dotted/bracketed paths inside
// nested map[string]any / []any trees, creating intermediate containers on
// demand. A numeric path segment addresses a slice index; any other segment
// addresses a map key. Both "users[1].name" and "users.1.name" address the
// same location.
package dotpath

import (
	"fmt"
	"strconv"
	"strings"
)

// Split breaks a path into its segments. Bracket indices become their own
// segments: "users[1].name" -> ["users", "1", "name"].
func Split(path string) []string {
	if path == "" {
		return nil
	}
	segments := make([]string, 0, 4)
	var cur strings.Builder
	for i := 0; i < len(path); i++ {
		switch c := path[i]; c {
		case '.', '[', ']':
			if cur.Len() > 0 {
				segments = append(segments, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteByte(c)
		}
	}
	if cur.Len() > 0 {
		segments = append(segments, cur.String())
	}
	return segments
}

func index(segment string) (int, bool) {
	n, err := strconv.Atoi(segment)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Get returns the value stored at path, reporting whether the full path
// resolved. It never modifies the tree.
func Get(root map[string]any, path string) (any, bool) {
	segments := Split(path)
	if len(segments) == 0 {
		return nil, false
	}
	var cur any = root
	for _, seg := range segments {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[seg]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			idx, ok := index(seg)
			if !ok || idx >= len(node) {
				return nil, false
			}
			cur = node[idx]
		default:
			return nil, false
		}
	}
	return cur, true
}

// Set writes value at path, creating intermediate maps and slices as needed.
// The container created for a missing location is chosen by the *next*
// segment: numeric -> slice, otherwise -> map. Slices grow with nil fill up
// to the addressed index. The first segment must be a map key since the root
// is a map.
func Set(root map[string]any, path string, value any) error {
	segments := Split(path)
	if len(segments) == 0 {
		return fmt.Errorf("dotpath: empty path")
	}
	if _, numeric := index(segments[0]); numeric {
		return fmt.Errorf("dotpath: root segment %q cannot be a slice index", segments[0])
	}
	_, err := set(root, segments, value)
	return err
}

// set writes value under segments and returns the (possibly replaced) node.
// Slices are returned because appending may reallocate; the parent always
// re-stores the returned node.
func set(node any, segments []string, value any) (any, error) {
	seg := segments[0]
	if idx, numeric := index(seg); numeric {
		slice, ok := node.([]any)
		if !ok && node != nil {
			if _, isMap := node.(map[string]any); isMap {
				return nil, fmt.Errorf("dotpath: segment %q indexes a mapping", seg)
			}
		}
		for len(slice) <= idx {
			slice = append(slice, nil)
		}
		if len(segments) == 1 {
			slice[idx] = value
			return slice, nil
		}
		child, err := set(childFor(slice[idx]), segments[1:], value)
		if err != nil {
			return nil, err
		}
		slice[idx] = child
		return slice, nil
	}

	m, ok := node.(map[string]any)
	if !ok {
		if _, isSlice := node.([]any); isSlice {
			return nil, fmt.Errorf("dotpath: segment %q is not a slice index", seg)
		}
		m = map[string]any{}
	}
	if len(segments) == 1 {
		m[seg] = value
		return m, nil
	}
	child, err := set(childFor(m[seg]), segments[1:], value)
	if err != nil {
		return nil, err
	}
	m[seg] = child
	return m, nil
}

// childFor keeps an existing container, or signals creation by returning nil
// for scalars so set builds the container matching the next segment.
func childFor(child any) any {
	switch child.(type) {
	case map[string]any, []any:
		return child
	default:
		return nil
	}
}
