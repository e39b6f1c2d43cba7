package optmap

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/dzonerzy/go-optmap/clamp"
)

// coerceValue tries raw against each type in order, first success wins. The
// type list is already precedence-sorted by Compile, which is what makes
// coercion deterministic. TypeNone never matches here: its meaning lives in
// the consumption loop, not in value interpretation.
func coerceValue(raw string, types []ValueType) (any, ValueType, bool) {
	for _, t := range types {
		switch t {
		case TypeFloat:
			if f, ok := parseFiniteFloat(raw); ok {
				return f, TypeFloat, true
			}
		case TypeInteger:
			if n, ok := parseInteger(raw); ok {
				return n, TypeInteger, true
			}
		case TypeBoolean:
			if b, ok := parseBoolean(raw); ok {
				return b, TypeBoolean, true
			}
		case TypeJSON:
			if v, ok := parseJSON(raw); ok {
				return v, TypeJSON, true
			}
		case TypeString:
			return raw, TypeString, true
		case TypeNone:
			// presence-only, handled by the consumption loop
		}
	}
	return nil, typeUnset, false
}

// parseFiniteFloat accepts a trimmed, non-empty string that parses as a
// finite number. strconv happily parses "inf" and "nan"; those are not
// values an option should receive.
func parseFiniteFloat(raw string) (float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// parseInteger accepts anything the float test accepts, minus literals with
// a decimal point. Plain base-10 literals keep full int64 precision; exotic
// forms ("1e3", out-of-range digits) go through the float value with a
// clamped conversion.
func parseInteger(raw string) (int64, bool) {
	trimmed := strings.TrimSpace(raw)
	f, ok := parseFiniteFloat(trimmed)
	if !ok || strings.ContainsRune(trimmed, '.') {
		return 0, false
	}
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return n, true
	}
	return clamp.Int(f), true
}

func parseBoolean(raw string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes":
		return true, true
	case "false", "0", "no":
		return false, true
	default:
		return false, false
	}
}

// parseJSON accepts only strings bracketed as an object or array that decode
// cleanly. Decode failure is not an error; the value just falls through to
// the next type in the list.
func parseJSON(raw string) (any, bool) {
	if len(raw) < 2 {
		return nil, false
	}
	first, last := raw[0], raw[len(raw)-1]
	if !(first == '{' && last == '}') && !(first == '[' && last == ']') {
		return nil, false
	}
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, false
	}
	return v, true
}
