package optmap

import (
	"fmt"
	"strings"
)

// ErrorType categorizes parse failures. Every category is a caller-input
// problem: the parse call aborts at the first one and returns no partial
// result.
type ErrorType string

const (
	ErrorTypeUnknownTrigger  ErrorType = "unknown_trigger"
	ErrorTypeDuplicateTarget ErrorType = "duplicate_target"
	ErrorTypeMissingValue    ErrorType = "missing_value"
	ErrorTypeTooManyValues   ErrorType = "too_many_values"
	ErrorTypeCoercion        ErrorType = "coercion_failed"
	ErrorTypeWhitelist       ErrorType = "invalid_value"
)

// ParseError describes a single terminal parse failure.
type ParseError struct {
	Type       ErrorType
	Message    string
	Trigger    string      // the token (or trigger candidate) that failed
	Target     string      // set for duplicate-target errors
	Value      string      // the offending raw value, when one exists
	Types      []ValueType // attempted types, for coercion failures
	Allowed    []string    // allowed whitelist keys, for invalid values
	Suggestion string      // closest known trigger, for unknown triggers
}

func (e *ParseError) Error() string {
	return e.Message
}

// Messages are the user-facing error templates, overridable per parser for
// localization or tone. Each is an fmt template; the verbs it receives are
// documented per field.
type Messages struct {
	// UnknownTrigger receives the unrecognized trigger token.
	UnknownTrigger string
	// CannotRepeat receives the target populated twice.
	CannotRepeat string
	// MissingValue receives the trigger missing its value.
	MissingValue string
	// TooManyValues receives the trigger that gathered several values.
	TooManyValues string
	// ParsingFailed receives the trigger, the raw value, and the
	// comma-joined list of attempted type names.
	ParsingFailed string
	// InvalidValue receives the trigger, the raw value, and the
	// comma-joined list of allowed whitelist keys.
	InvalidValue string
}

// DefaultMessages returns the built-in English templates.
func DefaultMessages() Messages {
	return Messages{
		UnknownTrigger: "unknown option: %s",
		CannotRepeat:   "option cannot be repeated: %s",
		MissingValue:   "missing value for option: %s",
		TooManyValues:  "too many values for option: %s",
		ParsingFailed:  "cannot parse %[2]q for option %[1]s (accepted types: %[3]s)",
		InvalidValue:   "invalid value %[2]q for option %[1]s (allowed: %[3]s)",
	}
}

func typeNames(types []ValueType) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}

func (m Messages) unknownTrigger(trigger, suggestion string) *ParseError {
	msg := fmt.Sprintf(m.UnknownTrigger, trigger)
	if suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
	}
	return &ParseError{
		Type:       ErrorTypeUnknownTrigger,
		Message:    msg,
		Trigger:    trigger,
		Suggestion: suggestion,
	}
}

func (m Messages) duplicateTarget(trigger, target string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeDuplicateTarget,
		Message: fmt.Sprintf(m.CannotRepeat, target),
		Trigger: trigger,
		Target:  target,
	}
}

func (m Messages) missingValue(trigger string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeMissingValue,
		Message: fmt.Sprintf(m.MissingValue, trigger),
		Trigger: trigger,
	}
}

func (m Messages) tooManyValues(trigger string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeTooManyValues,
		Message: fmt.Sprintf(m.TooManyValues, trigger),
		Trigger: trigger,
	}
}

func (m Messages) coercionFailed(trigger, raw string, types []ValueType) *ParseError {
	return &ParseError{
		Type:    ErrorTypeCoercion,
		Message: fmt.Sprintf(m.ParsingFailed, trigger, raw, typeNames(types)),
		Trigger: trigger,
		Value:   raw,
		Types:   types,
	}
}

func (m Messages) invalidValue(trigger, raw string, allowed []string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeWhitelist,
		Message: fmt.Sprintf(m.InvalidValue, trigger, raw, strings.Join(allowed, ", ")),
		Trigger: trigger,
		Value:   raw,
		Allowed: allowed,
	}
}
