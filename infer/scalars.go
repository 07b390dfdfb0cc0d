package infer

import (
	"fmt"
	"strconv"

	"github.com/lggruspe/climux/combin"
)

// ParseNull accepts exactly "" and "None" and produces nil.
func ParseNull(token string) (any, error) {
	switch token {
	case "", "None":
		return nil, nil
	}
	return nil, fmt.Errorf("%w: None: %q", combin.ErrCantParse, token)
}

// ParseBool accepts exactly "true", "True" and "1" as true, and "false",
// "False" and "0" as false. Acceptance is exact-literal: no case folding,
// no generic truthiness.
func ParseBool(token string) (any, error) {
	switch token {
	case "true", "True", "1":
		return true, nil
	case "false", "False", "0":
		return false, nil
	}
	return nil, fmt.Errorf("%w: bool: %q", combin.ErrCantParse, token)
}

// ParseInt parses a base-10 integer token.
func ParseInt(token string) (any, error) {
	value, err := strconv.Atoi(token)
	if err != nil {
		return nil, fmt.Errorf("%w: int: %q", combin.ErrCantParse, token)
	}
	return value, nil
}

// ParseFloat parses a floating-point token.
func ParseFloat(token string) (any, error) {
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: float: %q", combin.ErrCantParse, token)
	}
	return value, nil
}

// ParseString accepts any token unchanged.
func ParseString(token string) (any, error) {
	return token, nil
}
