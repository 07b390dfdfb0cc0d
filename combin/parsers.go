package combin

import (
	"fmt"
	"strings"
)

// ConvertFunc turns one raw token into a typed value.
// Errors are converted to [ErrCantParse] failures by [One], never propagated
// as crashes.
type ConvertFunc = func(token string) (any, error)

type oneParser struct {
	name    string
	convert ConvertFunc
}

// One pops exactly one token and converts it.
// It fails with [ErrCantParse] if the queue is empty or convert rejects the
// token. The name is used in diagnostics and usage text.
func One(name string, convert ConvertFunc) Parser {
	return &oneParser{name: name, convert: convert}
}

func (p *oneParser) Parse(tokens *Tokens) (Result, error) {
	token, ok := tokens.Pop()
	if !ok {
		return Result{}, fmt.Errorf("%w: %s: no tokens left", ErrCantParse, p.name)
	}
	value, err := p.convert(token)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s: %q", ErrCantParse, p.name, token)
	}
	return Result{Value: value}, nil
}

func (p *oneParser) String() string {
	return p.name
}

type emitParser struct {
	value any
}

// Emit consumes zero tokens and always succeeds with value.
// It is the building block for boolean flags and constant-valued options.
func Emit(value any) Parser {
	return &emitParser{value: value}
}

func (p *emitParser) Parse(*Tokens) (Result, error) {
	return Result{Value: p.value}, nil
}

func (p *emitParser) String() string {
	return "''"
}

type orParser struct {
	parsers []Parser
}

// Or tries each parser in order and returns the first success.
// Alternatives are tried strictly left to right; order is semantically
// significant. Fails with [ErrCantParse] when every alternative fails.
func Or(parsers ...Parser) Parser {
	return &orParser{parsers: parsers}
}

func (p *orParser) Parse(tokens *Tokens) (Result, error) {
	for _, parser := range p.parsers {
		result, err := Run(parser, tokens)
		if err == nil {
			return result, nil
		}
	}
	return Result{}, fmt.Errorf("%w: %s", ErrCantParse, p)
}

func (p *orParser) String() string {
	optional := false
	var exprs []string
	for _, parser := range p.parsers {
		if _, ok := parser.(*emitParser); ok {
			optional = true
			continue
		}
		exprs = append(exprs, parser.String())
	}
	switch len(exprs) {
	case 0:
		return "''"
	case 1:
		if optional {
			return "[" + exprs[0] + "]"
		}
		return exprs[0]
	}
	joined := strings.Join(exprs, " | ")
	if optional {
		return "[" + joined + "]"
	}
	return "(" + joined + ")"
}

type andParser struct {
	parsers []Parser
	then    ThenFunc
}

// And sequences parsers against the same queue, propagating the first
// failure. Success yields the ordered sub-results collected with [AsList].
func And(parsers ...Parser) Parser {
	return &andParser{parsers: parsers, then: AsList}
}

// AndThen is [And] with an explicit collector for the sub-results.
func AndThen(then ThenFunc, parsers ...Parser) Parser {
	return &andParser{parsers: parsers, then: then}
}

func (p *andParser) Parse(tokens *Tokens) (Result, error) {
	values := make([]any, 0, len(p.parsers))
	for _, parser := range p.parsers {
		result, err := Run(parser, tokens)
		if err != nil {
			return Result{}, err
		}
		if result.empty {
			continue
		}
		values = append(values, result.Value)
	}
	value, err := p.then(values)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s: %v", ErrCantParse, p, err)
	}
	return Result{Value: value}, nil
}

func (p *andParser) String() string {
	var exprs []string
	for _, parser := range p.parsers {
		if _, ok := parser.(*emitParser); ok {
			continue
		}
		exprs = append(exprs, parser.String())
	}
	switch len(exprs) {
	case 0:
		return "''"
	case 1:
		return exprs[0]
	}
	return "(" + strings.Join(exprs, " ") + ")"
}

type repeatParser struct {
	parser Parser
	then   ThenFunc
	until  func(next string) bool
}

// RepeatOption configures a [Repeat] parser.
type RepeatOption func(*repeatParser)

// Then sets the collector applied to the accumulated values.
func Then(then ThenFunc) RepeatOption {
	return func(p *repeatParser) {
		p.then = then
	}
}

// Until stops repetition when the next unconsumed token matches stop.
func Until(stop func(next string) bool) RepeatOption {
	return func(p *repeatParser) {
		p.until = stop
	}
}

// Repeat applies parser to the front of the queue as many times as it
// succeeds, accumulating the results. It stops at the first failure, at the
// [Until] terminator, or when the queue is exhausted, and never fails itself:
// zero repetitions is a valid empty result.
func Repeat(parser Parser, opts ...RepeatOption) Parser {
	p := &repeatParser{parser: parser, then: AsList}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *repeatParser) Parse(tokens *Tokens) (Result, error) {
	var values []any
	for !tokens.Empty() {
		if p.until != nil {
			if next, ok := tokens.Peek(); ok && p.until(next) {
				break
			}
		}
		before := tokens.Len()
		result, err := Run(p.parser, tokens)
		if err != nil {
			break
		}
		if !result.empty {
			values = append(values, result.Value)
		}
		if tokens.Len() == before {
			// Zero progress: keep the emitted value once and stop.
			break
		}
	}
	value, err := p.then(values)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s: %v", ErrCantParse, p, err)
	}
	return Result{Value: value}, nil
}

func (p *repeatParser) String() string {
	expr := p.parser.String()
	if expr == "''" {
		return "''"
	}
	return "[" + expr + "...]"
}

type eofParser struct{}

// Eof succeeds without a value only when no tokens remain.
func Eof() Parser {
	return eofParser{}
}

func (eofParser) Parse(tokens *Tokens) (Result, error) {
	if !tokens.Empty() {
		next, _ := tokens.Peek()
		return Result{}, fmt.Errorf("%w: expected end of input, got %q", ErrCantParse, next)
	}
	return Result{empty: true}, nil
}

func (eofParser) String() string {
	return "''"
}

type boolParser struct{}

// Bool pops one token and accepts exactly "true", "True" and "1" as true,
// and "false", "False" and "0" as false. Every other string, including case
// variants, fails with [ErrCantParse].
func Bool() Parser {
	return boolParser{}
}

func (boolParser) Parse(tokens *Tokens) (Result, error) {
	token, ok := tokens.Pop()
	if !ok {
		return Result{}, fmt.Errorf("%w: bool: no tokens left", ErrCantParse)
	}
	switch token {
	case "true", "True", "1":
		return Result{Value: true}, nil
	case "false", "False", "0":
		return Result{Value: false}, nil
	}
	return Result{}, fmt.Errorf("%w: bool: %q", ErrCantParse, token)
}

func (boolParser) String() string {
	return "bool"
}
