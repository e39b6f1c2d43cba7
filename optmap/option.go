// Package optmap compiles declarative option descriptors into a trigger
// lookup and parses argument lines against it, producing a nested,
// path-addressable result map.
//
// A descriptor declares the triggers that activate it (e.g. "-f" and
// "--force"), the value types it accepts, and where in the result the value
// lands. Compilation happens once; the compiled set is read-only and safe to
// share across any number of concurrent Parse calls.
package optmap

import "strings"

// ValueType is one of the closed set of value interpretations an option can
// accept. The numeric order of the constants is the coercion precedence:
// when an option accepts several types, raw values are tried against them in
// this order regardless of how the descriptor listed them, so "2" with
// [String, Integer] always becomes an integer.
type ValueType uint8

const (
	typeUnset ValueType = iota // zero value, treated as "not declared"

	// TypeNone marks a pure flag: presence sets the target to true and no
	// value token is ever consumed.
	TypeNone

	// TypeFloat accepts any finite numeric literal.
	TypeFloat

	// TypeInteger accepts numeric literals without a decimal point.
	TypeInteger

	// TypeBoolean accepts true/1/yes and false/0/no, case-insensitively.
	TypeBoolean

	// TypeJSON accepts strings bracketed as {...} or [...] that decode as
	// structured data.
	TypeJSON

	// TypeString accepts anything. Placing it ahead of more specific types
	// in a descriptor has no effect on order (precedence is fixed), but an
	// option that includes it can never fail coercion.
	TypeString
)

// String returns the name used in error messages and diagnostics.
func (t ValueType) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeFloat:
		return "float"
	case TypeInteger:
		return "integer"
	case TypeBoolean:
		return "boolean"
	case TypeJSON:
		return "json"
	case TypeString:
		return "string"
	default:
		return "unknown"
	}
}

// ParseValueType resolves a type name as used in descriptor files. The
// boolean result reports whether the name is a member of the closed set.
func ParseValueType(name string) (ValueType, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none":
		return TypeNone, true
	case "float":
		return TypeFloat, true
	case "integer", "int":
		return TypeInteger, true
	case "boolean", "bool":
		return TypeBoolean, true
	case "json":
		return TypeJSON, true
	case "string":
		return TypeString, true
	default:
		return typeUnset, false
	}
}

// MapEntry is a whitelist entry carrying the stored value plus inert
// description metadata. Plain (non-MapEntry) map values are stored as-is.
type MapEntry struct {
	Value       any
	Description string
}

// Option is a single declarative parsing rule.
//
// Type and Types both declare accepted value types; Compile merges them into
// one precedence-sorted list (Types first, then Type if set). A descriptor
// declaring neither is normalized to [TypeString].
type Option struct {
	// Triggers are the literal tokens that activate this option. At least
	// one is required for the option to be reachable.
	Triggers []string

	// Type declares a single accepted value type.
	Type ValueType

	// Types declares several accepted value types.
	Types []ValueType

	// Target is the result path the value is written to (dot/bracket
	// notation, e.g. "server.port"). When empty it is derived from the
	// longest trigger with leading dashes stripped.
	Target string

	// Map restricts raw values to its keys. The stored value is the map
	// entry itself, or its Value field if the entry is a MapEntry. When Map
	// is set, type coercion is bypassed entirely.
	Map map[string]any

	// Default is written to Target after parsing when the target was never
	// touched during the call. A nil Default means no default.
	Default any

	// IsArray allows the option to be given multiple times (or with
	// comma-separated inline values), accumulating into a slice at Target.
	IsArray bool

	// Description is inert metadata for external help rendering.
	Description string
}

// derivedTarget returns the longest trigger stripped of leading dashes; ties
// keep the first declared.
func derivedTarget(triggers []string) string {
	longest := ""
	for _, trigger := range triggers {
		if len(trigger) > len(longest) {
			longest = trigger
		}
	}
	return strings.TrimLeft(longest, "-")
}
