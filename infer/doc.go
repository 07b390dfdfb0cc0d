/*
Package infer derives token parsers from declared type shapes.

A [Shape] is an explicit tagged variant describing the desired result type:
scalars, optionals, ordered unions, fixed tuples, homogeneous lists, and
transparent wrappers. [Infer] walks the shape recursively and returns a
function from one raw token to a typed value.

The two failure kinds are never conflated: [ErrCantInfer] means no parser
could be derived from the shape (a construction-time error), while
[combin.ErrCantParse] means a derived parser rejected a specific token
(a runtime error that different input could fix).
*/
package infer
