package optmap

import (
	"fmt"
	"slices"
	"sort"

	"github.com/dzonerzy/go-optmap/internal/deepclone"
)

// DiagnosticCode identifies a non-fatal condition raised during compilation.
type DiagnosticCode string

// DiagnosticDuplicateTrigger is raised when a later descriptor re-registers
// a trigger already claimed by an earlier one. The later descriptor wins the
// mapping; compilation continues.
const DiagnosticDuplicateTrigger DiagnosticCode = "duplicate_trigger"

// Diagnostic is a non-fatal compile-time warning. It never affects the
// compiled result.
type Diagnostic struct {
	Code    DiagnosticCode
	Trigger string
	Message string
}

// DiagnosticSink receives compile-time diagnostics. Passing nil discards
// them.
type DiagnosticSink func(Diagnostic)

// compiledOption is the parser-facing form of a descriptor: cloned, with a
// single precedence-sorted type list and a resolved target. All triggers of
// one descriptor share one compiledOption.
type compiledOption struct {
	triggers    []string
	types       []ValueType
	target      string
	whitelist   map[string]any
	def         any
	isArray     bool
	description string
}

func (o *compiledOption) hasType(t ValueType) bool {
	return slices.Contains(o.types, t)
}

// allowedKeys returns the whitelist keys sorted, for deterministic error
// messages.
func (o *compiledOption) allowedKeys() []string {
	keys := make([]string, 0, len(o.whitelist))
	for k := range o.whitelist {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CompiledOptions is an immutable trigger lookup built once by Compile and
// reused across parse calls. Parsing never mutates it, so a single value is
// safe for concurrent use.
type CompiledOptions struct {
	byTrigger map[string]*compiledOption
	options   []*compiledOption // declaration order, drives the defaults pass
	triggers  []string          // registration order, drives suggestions
}

// Compile turns descriptors into a trigger lookup, discarding diagnostics.
func Compile(opts []Option) *CompiledOptions {
	return CompileWithDiagnostics(opts, nil)
}

// CompileWithDiagnostics compiles descriptors and reports non-fatal
// conditions to sink. Each descriptor is deep-cloned so neither later caller
// mutation nor compilation itself can alias the input; its type list is
// normalized to precedence order; its target is resolved. Compilation cannot
// fail: a duplicate trigger only raises DiagnosticDuplicateTrigger, with the
// later descriptor replacing the earlier mapping.
func CompileWithDiagnostics(opts []Option, sink DiagnosticSink) *CompiledOptions {
	compiled := &CompiledOptions{
		byTrigger: make(map[string]*compiledOption, len(opts)),
		options:   make([]*compiledOption, 0, len(opts)),
	}

	for _, opt := range opts {
		co := compileOne(opt)
		compiled.options = append(compiled.options, co)
		for _, trigger := range co.triggers {
			if _, exists := compiled.byTrigger[trigger]; exists {
				if sink != nil {
					sink(Diagnostic{
						Code:    DiagnosticDuplicateTrigger,
						Trigger: trigger,
						Message: fmt.Sprintf("duplicate trigger %q: later option replaces the earlier mapping", trigger),
					})
				}
			} else {
				compiled.triggers = append(compiled.triggers, trigger)
			}
			compiled.byTrigger[trigger] = co
		}
	}

	return compiled
}

func compileOne(opt Option) *compiledOption {
	types := make([]ValueType, 0, len(opt.Types)+1)
	for _, t := range opt.Types {
		if t != typeUnset {
			types = append(types, t)
		}
	}
	if opt.Type != typeUnset {
		types = append(types, opt.Type)
	}
	if len(types) == 0 {
		// Compilation cannot fail, so an undeclared type list falls back to
		// the universal type.
		types = append(types, TypeString)
	}
	slices.SortStableFunc(types, func(a, b ValueType) int { return int(a) - int(b) })

	target := opt.Target
	if target == "" {
		target = derivedTarget(opt.Triggers)
	}

	var whitelist map[string]any
	if opt.Map != nil {
		whitelist = make(map[string]any, len(opt.Map))
		for k, v := range opt.Map {
			switch e := v.(type) {
			case MapEntry:
				e.Value = deepclone.Clone(e.Value)
				whitelist[k] = e
			case *MapEntry:
				whitelist[k] = &MapEntry{Value: deepclone.Clone(e.Value), Description: e.Description}
			default:
				whitelist[k] = deepclone.Clone(v)
			}
		}
	}

	return &compiledOption{
		triggers:    deepclone.Strings(opt.Triggers),
		types:       types,
		target:      target,
		whitelist:   whitelist,
		def:         deepclone.Clone(opt.Default),
		isArray:     opt.IsArray,
		description: opt.Description,
	}
}

// Len returns the number of distinct registered triggers.
func (c *CompiledOptions) Len() int {
	return len(c.byTrigger)
}

// Has reports whether trigger is registered.
func (c *CompiledOptions) Has(trigger string) bool {
	_, ok := c.byTrigger[trigger]
	return ok
}

// Triggers returns the registered triggers in first-registration order.
func (c *CompiledOptions) Triggers() []string {
	return deepclone.Strings(c.triggers)
}
