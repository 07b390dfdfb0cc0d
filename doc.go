/*
Package climux turns raw command-line tokens into strongly-typed values and
binds them to a callback's declared parameters.

The work is split across three packages, leaves first:

  - [github.com/lggruspe/climux/combin] holds token-consuming parser
    combinators. Each combinator removes a prefix of the remaining token
    queue and produces a typed value, or fails without consuming anything.
  - [github.com/lggruspe/climux/infer] derives a token parser from a
    declared type shape: scalars, optionals, unions, fixed tuples,
    homogeneous lists, and wrapped types.
  - [github.com/lggruspe/climux/cli] classifies an argument vector into
    subcommands, options, and positional arguments, merges aliased option
    spellings, and checks the result against a callback's signature before
    invoking it.

A CLI tree is declared once at startup and is immutable afterwards, so
independent parses against the same tree are safe to run concurrently.
*/
package climux
