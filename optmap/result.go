package optmap

import (
	"math"

	"github.com/dzonerzy/go-optmap/internal/dotpath"
)

// Result is the path-addressable output of one parse call: a tree of
// mappings and slices built one target at a time. Accessors take the same
// dot/bracket paths used in option targets ("server.port", "users[1]").
//
// The Get variants report existence explicitly; the MustGet variants return
// a fallback when the path is missing or holds a different type, mirroring
// the descriptor's defaults for quick access.
type Result map[string]any

// Get returns the raw value at path.
func (r Result) Get(path string) (any, bool) {
	return dotpath.Get(r, path)
}

// GetString returns the string at path.
func (r Result) GetString(path string) (string, bool) {
	v, ok := r.Get(path)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// GetInt returns the integer at path. Whole-valued floats convert, so a
// target typed [float, integer] reads uniformly; fractional floats do not.
func (r Result) GetInt(path string) (int64, bool) {
	v, ok := r.Get(path)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		if math.Trunc(n) != n {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}

// GetFloat returns the float at path. Integer values convert, so a target
// typed [float, integer] reads uniformly.
func (r Result) GetFloat(path string) (float64, bool) {
	v, ok := r.Get(path)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

// GetBool returns the boolean at path.
func (r Result) GetBool(path string) (bool, bool) {
	v, ok := r.Get(path)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// GetSlice returns the accumulated slice at path.
func (r Result) GetSlice(path string) ([]any, bool) {
	v, ok := r.Get(path)
	if !ok {
		return nil, false
	}
	s, ok := v.([]any)
	return s, ok
}

// GetStringSlice returns the slice at path when every element is a string.
func (r Result) GetStringSlice(path string) ([]string, bool) {
	s, ok := r.GetSlice(path)
	if !ok {
		return nil, false
	}
	out := make([]string, len(s))
	for i, v := range s {
		str, isStr := v.(string)
		if !isStr {
			return nil, false
		}
		out[i] = str
	}
	return out, true
}

// MustGetString returns the string at path or fallback.
func (r Result) MustGetString(path, fallback string) string {
	if v, ok := r.GetString(path); ok {
		return v
	}
	return fallback
}

// MustGetInt returns the integer at path or fallback.
func (r Result) MustGetInt(path string, fallback int64) int64 {
	if v, ok := r.GetInt(path); ok {
		return v
	}
	return fallback
}

// MustGetFloat returns the float at path or fallback.
func (r Result) MustGetFloat(path string, fallback float64) float64 {
	if v, ok := r.GetFloat(path); ok {
		return v
	}
	return fallback
}

// MustGetBool returns the boolean at path or fallback.
func (r Result) MustGetBool(path string, fallback bool) bool {
	if v, ok := r.GetBool(path); ok {
		return v
	}
	return fallback
}
