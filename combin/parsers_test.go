package combin

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func parseInt(token string) (any, error) {
	return strconv.Atoi(token)
}

func parseStr(token string) (any, error) {
	return token, nil
}

func TestOne(t *testing.T) {
	parser := One("int", parseInt)

	tokens := NewTokens("42", "rest")
	result, err := Run(parser, tokens)
	assert.NoError(t, err)
	assert.Equal(t, 42, result.Value)
	assert.Equal(t, []string{"rest"}, tokens.Remaining())

	_, err = Run(parser, NewTokens("forty-two"))
	assert.ErrorIs(t, err, ErrCantParse)

	_, err = Run(parser, NewTokens())
	assert.ErrorIs(t, err, ErrCantParse, "empty queue should fail, not block")
}

func TestEmit(t *testing.T) {
	tokens := NewTokens("untouched")
	result, err := Run(Emit(true), tokens)
	assert.NoError(t, err)
	assert.Equal(t, true, result.Value)
	assert.Equal(t, 1, tokens.Len(), "Emit should consume nothing")
}

func TestOr_FirstSuccessWins(t *testing.T) {
	intFirst := Or(One("int", parseInt), Bool())
	boolFirst := Or(Bool(), One("int", parseInt))

	result, err := Run(intFirst, NewTokens("0"))
	assert.NoError(t, err)
	assert.Equal(t, 0, result.Value)

	result, err = Run(boolFirst, NewTokens("0"))
	assert.NoError(t, err)
	assert.Equal(t, false, result.Value)

	_, err = Run(intFirst, NewTokens("neither"))
	assert.ErrorIs(t, err, ErrCantParse)
}

func TestAnd(t *testing.T) {
	parser := And(One("int", parseInt), Bool())

	result, err := Run(parser, NewTokens("1", "false"))
	assert.NoError(t, err)
	assert.Equal(t, []any{1, false}, result.Value)

	_, err = Run(parser, NewTokens("1", "not-bool"))
	assert.ErrorIs(t, err, ErrCantParse)

	// Empty results are skipped by sequencing.
	result, err = Run(And(One("int", parseInt), Eof()), NewTokens("7"))
	assert.NoError(t, err)
	assert.Equal(t, []any{7}, result.Value)
}

func TestAndThen(t *testing.T) {
	point := AndThen(AsTuple, One("int", parseInt), One("int", parseInt))
	result, err := Run(point, NewTokens("3", "4"))
	assert.NoError(t, err)
	assert.Equal(t, []any{3, 4}, result.Value)

	sum := AndThen(func(values []any) (any, error) {
		total := 0
		for _, value := range values {
			total += value.(int)
		}
		return total, nil
	}, One("int", parseInt), One("int", parseInt))
	result, err = Run(sum, NewTokens("3", "4"))
	assert.NoError(t, err)
	assert.Equal(t, 7, result.Value)

	// AsMap wants two-element pairs, not loose values.
	_, err = Run(AndThen(AsMap, One("str", parseStr)), NewTokens("a"))
	assert.ErrorIs(t, err, ErrCantParse, "collector failures are parse failures")
}

func TestRepeat(t *testing.T) {
	parser := Repeat(One("int", parseInt))

	tests := map[string]struct {
		tokens []string
		want   []any
		left   []string
	}{
		"all tokens":     {[]string{"1", "2", "3"}, []any{1, 2, 3}, []string{}},
		"stops at first": {[]string{"1", "x", "2"}, []any{1}, []string{"x", "2"}},
		"zero is valid":  {[]string{"x"}, []any{}, []string{"x"}},
		"empty queue":    {nil, []any{}, []string{}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			tokens := NewTokens(tc.tokens...)
			result, err := Run(parser, tokens)
			assert.NoError(t, err, "Repeat should never fail")
			assert.Equal(t, tc.want, result.Value)
			assert.Equal(t, tc.left, tokens.Remaining())
		})
	}
}

func TestRepeat_ZeroProgressTerminates(t *testing.T) {
	tokens := NewTokens("a", "b")
	result, err := Run(Repeat(Emit(1)), tokens)
	assert.NoError(t, err)
	assert.Equal(t, []any{1}, result.Value)
	assert.Equal(t, 2, tokens.Len())
}

func TestRepeat_Until(t *testing.T) {
	parser := Repeat(One("str", parseStr), Until(func(next string) bool {
		return next == "--"
	}))
	tokens := NewTokens("a", "b", "--", "c")
	result, err := Run(parser, tokens)
	assert.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, result.Value)
	assert.Equal(t, []string{"--", "c"}, tokens.Remaining())
}

func TestEof(t *testing.T) {
	_, err := Run(Eof(), NewTokens("leftover"))
	assert.ErrorIs(t, err, ErrCantParse)

	result, err := Run(Eof(), NewTokens())
	assert.NoError(t, err)
	assert.Nil(t, result.Value)
}

func TestBool_ExactLiterals(t *testing.T) {
	truthy := []string{"true", "True", "1"}
	falsy := []string{"false", "False", "0"}
	rejected := []string{"TRue", "TRUE", "yes", "t", "", "2", "true "}

	for _, token := range truthy {
		result, err := Run(Bool(), NewTokens(token))
		assert.NoError(t, err, token)
		assert.Equal(t, true, result.Value, token)
	}
	for _, token := range falsy {
		result, err := Run(Bool(), NewTokens(token))
		assert.NoError(t, err, token)
		assert.Equal(t, false, result.Value, token)
	}
	for _, token := range rejected {
		_, err := Run(Bool(), NewTokens(token))
		assert.ErrorIs(t, err, ErrCantParse, token)
	}
}

func TestAsMap(t *testing.T) {
	parser := Repeat(And(One("str", parseStr), One("int", parseInt)), Then(AsMap))
	result, err := Run(parser, NewTokens("a", "1", "b", "2"))
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, result.Value)

	// A trailing key with no value is left unconsumed, not half-parsed.
	tokens := NewTokens("a", "1", "b")
	result, err = Run(parser, tokens)
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1}, result.Value)
	assert.Equal(t, []string{"b"}, tokens.Remaining())
}

func TestPretty(t *testing.T) {
	tests := map[string]struct {
		parser Parser
		want   string
	}{
		"one":           {One("int", parseInt), "int"},
		"emit":          {Emit(true), "''"},
		"flag":          {Or(Bool(), Emit(true)), "[bool]"},
		"union":         {Or(One("int", parseInt), Bool()), "(int | bool)"},
		"and":           {And(One("int", parseInt), Bool()), "(int bool)"},
		"repeat":        {Repeat(One("str", parseStr)), "[str...]"},
		"repeat emit":   {Repeat(Emit(1)), "''"},
		"single-alt or": {Or(Bool()), "bool"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.parser.String())
		})
	}
	assert.Equal(t, "<int>", Pretty(One("int", parseInt)))
}
