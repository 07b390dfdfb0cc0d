package infer

import "strings"

// Shape is the declared structural description of a desired result type.
// Shapes are built once at startup and fed to [Infer] to derive a parser.
type Shape interface {
	String() string
	shape()
}

// Factory converts one raw token into a value of some concrete type.
// Any error it returns is converted to a parse failure, never propagated.
type Factory func(token string) (any, error)

type nullShape struct{}

// Null is the shape of the null value, spelled "" or "None" on the
// command line.
func Null() Shape { return nullShape{} }

func (nullShape) String() string { return "None" }
func (nullShape) shape()         {}

type boolShape struct{}

// Bool is the boolean shape with exact-literal acceptance rules; see
// [ParseBool].
func Bool() Shape { return boolShape{} }

func (boolShape) String() string { return "bool" }
func (boolShape) shape()         {}

type scalarShape struct {
	name string
	make Factory
}

// Class is the shape of a type constructed from a single token by factory.
// The name is used in diagnostics and usage text.
func Class(name string, factory Factory) Shape {
	return scalarShape{name: name, make: factory}
}

// Int is the integer scalar shape.
func Int() Shape { return Class("int", ParseInt) }

// Float is the floating-point scalar shape.
func Float() Shape { return Class("float", ParseFloat) }

// Str is the string scalar shape. It accepts any token.
func Str() Shape { return Class("str", ParseString) }

func (s scalarShape) String() string { return s.name }
func (scalarShape) shape()           {}

type wrappedShape struct {
	inner Shape
}

// Wrapped marks a transparent annotation wrapper around inner.
// Inference unwraps it and recurses.
func Wrapped(inner Shape) Shape { return wrappedShape{inner: inner} }

func (s wrappedShape) String() string { return s.inner.String() }
func (wrappedShape) shape()           {}

type optionShape struct {
	inner Shape
}

// Option is the shape of an optional value: inner's parser is tried first,
// and on failure the token is parsed as null.
func Option(inner Shape) Shape { return optionShape{inner: inner} }

func (s optionShape) String() string { return "[" + s.inner.String() + "]" }
func (optionShape) shape()           {}

type oneOfShape struct {
	alts []Shape
}

// OneOf is an ordered union of shapes. Alternatives are tried strictly left
// to right and the first success wins, so OneOf(Int(), Bool()) parses "0" as
// the integer 0 while OneOf(Bool(), Int()) parses it as false.
func OneOf(alts ...Shape) Shape { return oneOfShape{alts: alts} }

func (s oneOfShape) String() string {
	exprs := make([]string, len(s.alts))
	for i, alt := range s.alts {
		exprs[i] = alt.String()
	}
	return "(" + strings.Join(exprs, " | ") + ")"
}
func (oneOfShape) shape() {}

type tupleShape struct {
	elems []Shape
}

// Tuple is a fixed-arity sequence of shapes, parsed from a single token by
// splitting it on whitespace with shell-style quoting.
func Tuple(elems ...Shape) Shape { return tupleShape{elems: elems} }

func (s tupleShape) String() string {
	exprs := make([]string, len(s.elems))
	for i, elem := range s.elems {
		exprs[i] = elem.String()
	}
	return "(" + strings.Join(exprs, " ") + ")"
}
func (tupleShape) shape() {}

type listShape struct {
	elem Shape
}

// List is a homogeneous sequence of any length (including zero), parsed
// from a single token by splitting it on whitespace with shell-style
// quoting.
func List(elem Shape) Shape { return listShape{elem: elem} }

func (s listShape) String() string { return "[" + s.elem.String() + "...]" }
func (listShape) shape()           {}

type mapShape struct {
	key   Shape
	value Shape
}

// Map is a string-keyed mapping parsed from a single token: the split words
// alternate between keys and values.
func Map(key, value Shape) Shape { return mapShape{key: key, value: value} }

func (s mapShape) String() string {
	return "[" + s.key.String() + " " + s.value.String() + "...]"
}
func (mapShape) shape() {}

type anyShape struct{}

// Any is the wildcard shape. No parser can be derived from it; [Infer]
// reports [ErrCantInfer].
func Any() Shape { return anyShape{} }

func (anyShape) String() string { return "any" }
func (anyShape) shape()         {}
