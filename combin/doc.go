/*
Package combin provides small composable parsers over a queue of raw
command-line tokens.

Every [Parser] consumes a prefix of a [Tokens] queue and returns a typed
value, or fails with [ErrCantParse]. Apply parsers through [Run] so that
tokens are consumed only on success; this is what lets [Or] backtrack
between alternatives.

Typical parsers for CLI parameters:

	combin.One("int", infer.ParseInt)             // a single int argument
	combin.Or(combin.Bool(), combin.Emit(true))   // a flag with an optional value
	combin.Repeat(combin.One("str", infer.ParseString)) // all remaining arguments
*/
package combin
