package combin

import "errors"

// ErrCantParse reports that a [Parser] was applied to a token queue whose
// prefix does not match. Errors wrapping ErrCantParse always name the parser
// and the offending token, so callers can render a diagnostic.
//
// ErrCantParse is a runtime failure: retrying with different input may
// succeed. Compare with CantInfer failures from the infer package, which are
// construction-time and never recoverable by different input.
var ErrCantParse = errors.New("can't parse")

// Tokens is an ordered, front-consumable queue of remaining raw tokens.
// Combinators only ever remove a prefix; tokens are never mutated in place
// or inspected beyond what is consumed.
//
// A Tokens value is owned exclusively by the in-progress parse, so it needs
// no synchronization.
type Tokens struct {
	items []string
	pos   int
}

// NewTokens builds a queue from raw tokens, front first.
func NewTokens(items ...string) *Tokens {
	return &Tokens{items: items}
}

// Len returns the number of tokens left in the queue.
func (t *Tokens) Len() int {
	return len(t.items) - t.pos
}

// Empty reports whether all tokens have been consumed.
func (t *Tokens) Empty() bool {
	return t.Len() == 0
}

// Peek returns the front token without consuming it.
func (t *Tokens) Peek() (string, bool) {
	if t.Empty() {
		return "", false
	}
	return t.items[t.pos], true
}

// Pop consumes and returns the front token.
func (t *Tokens) Pop() (string, bool) {
	token, ok := t.Peek()
	if ok {
		t.pos++
	}
	return token, ok
}

// Remaining returns a copy of the unconsumed tokens.
func (t *Tokens) Remaining() []string {
	rest := make([]string, t.Len())
	copy(rest, t.items[t.pos:])
	return rest
}

// Result is a successful parse result.
// Empty results carry no value and are skipped by sequencing combinators.
type Result struct {
	Value any
	empty bool
}

// Parser consumes a prefix of a token queue and produces a typed value.
//
// Parse may leave the queue partially consumed when it fails, so callers
// should apply parsers through [Run], which commits consumption only on
// success. String renders the parser's expected input for usage text.
type Parser interface {
	Parse(tokens *Tokens) (Result, error)
	String() string
}

// Run applies parser to tokens, consuming them only on success.
// On failure the queue is left exactly as it was.
func Run(parser Parser, tokens *Tokens) (Result, error) {
	scratch := *tokens
	result, err := parser.Parse(&scratch)
	if err != nil {
		return Result{}, err
	}
	*tokens = scratch
	return result, nil
}

// Pretty renders the parser type for usage text, e.g. "<int>".
func Pretty(parser Parser) string {
	return "<" + parser.String() + ">"
}
