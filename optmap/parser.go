package optmap

import (
	"fmt"
	"strings"

	"github.com/dzonerzy/go-optmap/internal/deepclone"
	"github.com/dzonerzy/go-optmap/internal/dotpath"
	"github.com/dzonerzy/go-optmap/internal/fuzzy"
)

// suggestionDistance is the maximum edit distance for "did you mean"
// suggestions on unknown triggers.
const suggestionDistance = 2

// Parser consumes token sequences against a compiled option set. It holds no
// per-call state, so one Parser may serve concurrent Parse calls.
type Parser struct {
	compiled *CompiledOptions
	messages Messages
}

// NewParser returns a parser over compiled with the default error messages.
func NewParser(compiled *CompiledOptions) *Parser {
	return &Parser{compiled: compiled, messages: DefaultMessages()}
}

// WithMessages overrides the error message templates and returns the parser
// for chaining.
func (p *Parser) WithMessages(m Messages) *Parser {
	p.messages = m
	return p
}

// Parse is shorthand for NewParser(compiled).Parse(args).
func Parse(compiled *CompiledOptions, args []string) (Result, error) {
	return NewParser(compiled).Parse(args)
}

// ParseLine is shorthand for NewParser(compiled).ParseLine(line).
func ParseLine(compiled *CompiledOptions, line string) (Result, error) {
	return NewParser(compiled).ParseLine(line)
}

// ParseLine tokenizes line (honoring quotes and backslash escapes) and
// parses the resulting tokens.
func (p *Parser) ParseLine(line string) (Result, error) {
	return p.Parse(Tokenize(line))
}

// Parse walks args left to right in a single pass. Each token must resolve
// to a compiled trigger (after splitting an inline "=value" off); its values
// are gathered, coerced or whitelist-checked, and written to the option's
// target path. The first failure aborts the call: no partial result is ever
// returned. After a clean pass, defaults are applied to every declared
// target that was never touched.
func (p *Parser) Parse(args []string) (Result, error) {
	result := Result{}
	touched := make(map[string]bool)

	for i := 0; i < len(args); {
		token := args[i]
		candidate, inline, hasInline := strings.Cut(token, "=")

		opt, ok := p.compiled.byTrigger[candidate]
		if !ok {
			suggestion := fuzzy.FindBestTrigger(candidate, p.compiled.triggers, suggestionDistance)
			return nil, p.messages.unknownTrigger(candidate, suggestion)
		}

		// Non-array targets accept exactly one assignment per call, no
		// matter which alias triggered them.
		if touched[opt.target] && !opt.isArray {
			return nil, p.messages.duplicateTarget(candidate, opt.target)
		}

		raws, consumed := p.gather(opt, args, i, inline, hasInline)

		switch {
		case opt.hasType(TypeNone):
			// Presence alone is the value; any inline raws are discarded.
			if err := p.write(result, opt, []any{true}, touched); err != nil {
				return nil, err
			}
		case len(raws) == 0 && opt.hasType(TypeBoolean):
			// Bare flag shorthand for booleans.
			if err := p.write(result, opt, []any{true}, touched); err != nil {
				return nil, err
			}
		case len(raws) == 0:
			return nil, p.messages.missingValue(candidate)
		case len(raws) > 1 && !opt.isArray:
			return nil, p.messages.tooManyValues(candidate)
		default:
			values, err := p.interpret(opt, candidate, raws)
			if err != nil {
				return nil, err
			}
			if err := p.write(result, opt, values, touched); err != nil {
				return nil, err
			}
		}

		i += consumed
	}

	if err := p.applyDefaults(result, touched); err != nil {
		return nil, err
	}
	return result, nil
}

// gather collects the raw value strings for the option at position i and
// reports how many tokens were consumed (including the trigger token
// itself).
//
//   - An inline value ("--opt=a,b") splits on commas; "--opt=" yields zero
//     raw values.
//   - Options whose type list contains none or boolean never scan forward:
//     presence is meaningful on its own.
//   - Everything else consumes following tokens until one resolves to a
//     known trigger (an "=" is split off before the lookahead, same as in
//     the main loop); non-array options stop after exactly one token.
func (p *Parser) gather(opt *compiledOption, args []string, i int, inline string, hasInline bool) ([]string, int) {
	if hasInline {
		if inline == "" {
			return nil, 1
		}
		return strings.Split(inline, ","), 1
	}

	if opt.hasType(TypeNone) || opt.hasType(TypeBoolean) {
		return nil, 1
	}

	var raws []string
	j := i + 1
	for j < len(args) {
		next, _, _ := strings.Cut(args[j], "=")
		if _, known := p.compiled.byTrigger[next]; known {
			break
		}
		raws = append(raws, args[j])
		j++
		if !opt.isArray {
			break
		}
	}
	return raws, j - i
}

// interpret turns raw strings into stored values, applying the whitelist
// when one is declared and the coercion pipeline otherwise.
func (p *Parser) interpret(opt *compiledOption, trigger string, raws []string) ([]any, error) {
	values := make([]any, 0, len(raws))
	for _, raw := range raws {
		if opt.whitelist != nil {
			entry, ok := opt.whitelist[raw]
			if !ok {
				return nil, p.messages.invalidValue(trigger, raw, opt.allowedKeys())
			}
			values = append(values, whitelistValue(entry))
			continue
		}
		v, _, ok := coerceValue(raw, opt.types)
		if !ok {
			return nil, p.messages.coercionFailed(trigger, raw, opt.types)
		}
		values = append(values, v)
	}
	return values, nil
}

// whitelistValue unwraps MapEntry pairs; plain entries are stored as-is.
func whitelistValue(entry any) any {
	switch e := entry.(type) {
	case MapEntry:
		return e.Value
	case *MapEntry:
		return e.Value
	default:
		return entry
	}
}

// write places values at the option's target: arrays append to any existing
// accumulation (cloning nothing, values are freshly built), everything else
// overwrites with the single value.
func (p *Parser) write(result Result, opt *compiledOption, values []any, touched map[string]bool) error {
	if opt.isArray {
		existing, _ := dotpath.Get(result, opt.target)
		arr, _ := existing.([]any)
		arr = append(arr, values...)
		if err := dotpath.Set(result, opt.target, arr); err != nil {
			return fmt.Errorf("optmap: write target %q: %w", opt.target, err)
		}
	} else {
		if err := dotpath.Set(result, opt.target, values[0]); err != nil {
			return fmt.Errorf("optmap: write target %q: %w", opt.target, err)
		}
	}
	touched[opt.target] = true
	return nil
}

// applyDefaults writes each untouched target's default. The pass is keyed by
// unique target in declaration order, so aliased triggers (which share one
// compiled descriptor) and later same-target descriptors contribute a single
// default application.
func (p *Parser) applyDefaults(result Result, touched map[string]bool) error {
	seen := make(map[string]bool, len(p.compiled.options))
	for _, opt := range p.compiled.options {
		if seen[opt.target] {
			continue
		}
		seen[opt.target] = true
		if touched[opt.target] || opt.def == nil {
			continue
		}
		// Clone so two results never share a mapping or slice default.
		if err := dotpath.Set(result, opt.target, deepclone.Clone(opt.def)); err != nil {
			return fmt.Errorf("optmap: default for target %q: %w", opt.target, err)
		}
	}
	return nil
}
