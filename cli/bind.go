package cli

import "fmt"

type argKind int

const (
	argPositional argKind = iota
	argVarPositional
	argKeywordOnly
	argVarKeyword
)

// Arg declares one parameter of a callback's signature.
// Signatures are ordered: required positionals first, then an optional
// variadic-positional collector, keyword-only parameters, and an optional
// variadic-keyword collector.
type Arg struct {
	name       string
	kind       argKind
	def        any
	hasDefault bool
}

// Pos declares a required positional parameter.
func Pos(name string) Arg {
	return Arg{name: name, kind: argPositional}
}

// PosDefault declares a positional parameter with a default value.
func PosDefault(name string, def any) Arg {
	return Arg{name: name, kind: argPositional, def: def, hasDefault: true}
}

// VarPos declares a variadic-positional collector. Its bound value must be
// a slice; the elements are spread into the positional argument list.
func VarPos(name string) Arg {
	return Arg{name: name, kind: argVarPositional}
}

// Key declares a required keyword-only parameter.
func Key(name string) Arg {
	return Arg{name: name, kind: argKeywordOnly}
}

// KeyDefault declares a keyword-only parameter with a default value.
func KeyDefault(name string, def any) Arg {
	return Arg{name: name, kind: argKeywordOnly, def: def, hasDefault: true}
}

// VarKey declares a variadic-keyword collector. Its bound value must be a
// map[string]any; the entries are merged into the keyword arguments.
func VarKey(name string) Arg {
	return Arg{name: name, kind: argVarKeyword}
}

// Callback is the function a CLI context invokes with the bound arguments.
type Callback func(args []any, kwargs map[string]any) (any, error)

// bindArgs matches the final name-value mapping against a declared
// signature, producing the ordered positional arguments and the keyword
// argument mapping. A required parameter absent from names is an
// [ErrMissingArgument] naming it. Absent variadic collectors bind empty.
func bindArgs(names map[string]any, sig []Arg) ([]any, map[string]any, error) {
	var args []any
	kwargs := make(map[string]any)
	for _, a := range sig {
		value, ok := names[a.name]
		if !ok && a.hasDefault {
			value, ok = a.def, true
		}
		switch a.kind {
		case argPositional:
			if !ok {
				return nil, nil, fmt.Errorf("%w: %q", ErrMissingArgument, a.name)
			}
			args = append(args, value)
		case argKeywordOnly:
			if !ok {
				return nil, nil, fmt.Errorf("%w: %q", ErrMissingArgument, a.name)
			}
			kwargs[a.name] = value
		case argVarPositional:
			if !ok {
				continue
			}
			if values, isSlice := value.([]any); isSlice {
				args = append(args, values...)
			} else {
				args = append(args, value)
			}
		case argVarKeyword:
			if !ok {
				continue
			}
			values, isMap := value.(map[string]any)
			if !isMap {
				return nil, nil, fmt.Errorf("argument %q is not a map", a.name)
			}
			for k, v := range values {
				kwargs[k] = v
			}
		}
	}
	return args, kwargs, nil
}
