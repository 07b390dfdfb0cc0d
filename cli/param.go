package cli

import (
	"fmt"
	"strings"

	"github.com/lggruspe/climux/combin"
	"github.com/lggruspe/climux/infer"
)

// Count is an upper bound on how many immediately-following non-option
// tokens an option spelling may capture.
type Count int

// Unlimited captures tokens greedily until the next option-looking token
// or end of input.
const Unlimited Count = -1

// Resolver combines the running value with the value of a later occurrence
// when the same [Param] is satisfied more than once. It must be associative
// over the values the Param's parser produces.
type Resolver func(previous, next any) any

// KeepLast is the default [Resolver]: the last occurrence wins.
func KeepLast(_, next any) any { return next }

// KeepFirst keeps the first occurrence and ignores the rest.
func KeepFirst(previous, _ any) any { return previous }

// Param declares a logical parameter: a canonical name, its option or
// positional spellings, the parser applied to its captured tokens, a
// resolver for repeated occurrences, and a capture bound.
type Param struct {
	name        string
	spellings   []string
	parse       combin.Parser
	resolve     Resolver
	arity       Count
	description string
}

// NewParam declares a parameter. Spellings starting with "-" are options
// (short spellings must be a dash and a single character); any other
// spelling names a positional argument. With no spellings the parameter is
// positional under its own name.
//
// The default parser accepts a single string token, the default resolver is
// [KeepLast], and the default capture bound is [Unlimited]. NewParam panics
// on malformed spellings; the CLI tree is static declaration, so this is a
// programmer error, not an input error.
func NewParam(name string, parse combin.Parser, spellings ...string) *Param {
	if parse == nil {
		parse = combin.One("str", infer.ParseString)
	}
	if len(spellings) == 0 {
		spellings = []string{name}
	}
	for _, spelling := range spellings {
		if spelling == "" || strings.ContainsAny(spelling, "= \t\n") {
			panic(fmt.Sprintf("invalid option spelling %q", spelling))
		}
		if strings.HasPrefix(spelling, "-") && !strings.HasPrefix(spelling, "--") && len(spelling) != 2 {
			panic(fmt.Sprintf("short option %q must be a single character", spelling))
		}
	}
	return &Param{
		name:      name,
		spellings: spellings,
		parse:     parse,
		resolve:   KeepLast,
		arity:     Unlimited,
	}
}

// Flag declares a zero-argument option that emits true when present.
func Flag(name string, spellings ...string) *Param {
	return NewParam(name, combin.Emit(true), spellings...).WithArity(0)
}

// WithResolve sets the resolver for repeated occurrences.
func (p *Param) WithResolve(resolve Resolver) *Param {
	p.resolve = resolve
	return p
}

// WithArity bounds how many tokens the option may capture.
func (p *Param) WithArity(arity Count) *Param {
	p.arity = arity
	return p
}

// WithDescription sets the description shown in usage text.
func (p *Param) WithDescription(text string) *Param {
	p.description = strings.TrimSpace(text)
	return p
}

// Name returns the canonical parameter name.
func (p *Param) Name() string { return p.name }

// IsOption reports whether every spelling is dash-prefixed.
func (p *Param) IsOption() bool {
	for _, spelling := range p.spellings {
		if !strings.HasPrefix(spelling, "-") {
			return false
		}
	}
	return true
}
