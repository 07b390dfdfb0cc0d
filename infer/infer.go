package infer

import (
	"errors"
	"fmt"

	"github.com/google/shlex"

	"github.com/lggruspe/climux/combin"
)

// ErrCantInfer reports that no parser could be derived from a [Shape].
// This is a construction-time failure: unlike [combin.ErrCantParse], no
// input could ever make the parse succeed.
var ErrCantInfer = errors.New("can't infer parser")

// Infer derives a token parser from shape, recursively.
//
// Inference is pure and runs once per declared parameter at startup; the
// returned function is what runs per input token.
func Infer(shape Shape) (combin.ConvertFunc, error) {
	switch s := shape.(type) {
	case nullShape:
		return ParseNull, nil
	case boolShape:
		return ParseBool, nil
	case scalarShape:
		return inferScalar(s), nil
	case wrappedShape:
		return Infer(s.inner)
	case optionShape:
		return Infer(OneOf(s.inner, Null()))
	case oneOfShape:
		return inferOneOf(s)
	case tupleShape:
		return inferTuple(s)
	case listShape:
		return inferList(s)
	case mapShape:
		return inferMap(s)
	}
	return nil, fmt.Errorf("%w: %s", ErrCantInfer, shape)
}

// Parser derives a single-token combinator from shape.
func Parser(shape Shape) (combin.Parser, error) {
	fn, err := Infer(shape)
	if err != nil {
		return nil, err
	}
	return combin.One(shape.String(), fn), nil
}

func inferScalar(s scalarShape) combin.ConvertFunc {
	return func(token string) (any, error) {
		value, err := s.make(token)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %q", combin.ErrCantParse, s.name, token)
		}
		return value, nil
	}
}

func inferOneOf(s oneOfShape) (combin.ConvertFunc, error) {
	alts := make([]combin.ConvertFunc, len(s.alts))
	for i, alt := range s.alts {
		fn, err := Infer(alt)
		if err != nil {
			return nil, err
		}
		alts[i] = fn
	}
	return func(token string) (any, error) {
		for _, fn := range alts {
			if value, err := fn(token); err == nil {
				return value, nil
			}
		}
		return nil, fmt.Errorf("%w: %s: %q", combin.ErrCantParse, s, token)
	}, nil
}

func inferTuple(s tupleShape) (combin.ConvertFunc, error) {
	elems := make([]combin.ConvertFunc, len(s.elems))
	for i, elem := range s.elems {
		fn, err := Infer(elem)
		if err != nil {
			return nil, err
		}
		elems[i] = fn
	}
	return func(token string) (any, error) {
		words, err := splitWords(token)
		if err != nil {
			return nil, err
		}
		if len(words) != len(elems) {
			return nil, fmt.Errorf("%w: %s: expected %d words, got %d in %q",
				combin.ErrCantParse, s, len(elems), len(words), token)
		}
		values := make([]any, len(words))
		for i, word := range words {
			value, err := elems[i](word)
			if err != nil {
				return nil, err
			}
			values[i] = value
		}
		return values, nil
	}, nil
}

func inferList(s listShape) (combin.ConvertFunc, error) {
	elem, err := Infer(s.elem)
	if err != nil {
		return nil, err
	}
	return func(token string) (any, error) {
		words, err := splitWords(token)
		if err != nil {
			return nil, err
		}
		values := make([]any, len(words))
		for i, word := range words {
			value, err := elem(word)
			if err != nil {
				return nil, err
			}
			values[i] = value
		}
		return values, nil
	}, nil
}

func inferMap(s mapShape) (combin.ConvertFunc, error) {
	parseKey, err := Infer(s.key)
	if err != nil {
		return nil, err
	}
	parseValue, err := Infer(s.value)
	if err != nil {
		return nil, err
	}
	return func(token string) (any, error) {
		words, err := splitWords(token)
		if err != nil {
			return nil, err
		}
		if len(words)%2 != 0 {
			return nil, fmt.Errorf("%w: %s: odd number of words in %q",
				combin.ErrCantParse, s, token)
		}
		m := make(map[string]any, len(words)/2)
		for i := 0; i < len(words); i += 2 {
			rawKey, err := parseKey(words[i])
			if err != nil {
				return nil, err
			}
			key, ok := rawKey.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s: key %q is not a string",
					combin.ErrCantParse, s, words[i])
			}
			value, err := parseValue(words[i+1])
			if err != nil {
				return nil, err
			}
			m[key] = value
		}
		return m, nil
	}, nil
}

// splitWords splits a token on whitespace, respecting single and double
// quoted spans. Quotes are stripped, not forwarded.
func splitWords(token string) ([]string, error) {
	words, err := shlex.Split(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", combin.ErrCantParse, token, err)
	}
	return words, nil
}
