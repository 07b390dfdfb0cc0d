/*
Package cli classifies an argument vector into subcommands, options, and
positional arguments, and binds the parsed values to a callback's declared
signature.

There are a few deliberate policies for how this operates.

  - User-visible output goes to STDERR by default, through a configurable
    [Printer].
  - Short options stack ("-abc"), and a short option that takes arguments
    may claim the rest of its token ("-a4"). Long options expand from any
    unambiguous prefix ("--val" for "--value") and accept "--opt=value".
  - Repeated occurrences of aliased spellings merge into one value through
    the parameter's [Resolver].
  - The command tree is built once at startup with fluent declarations and
    is immutable afterwards; concurrent independent parses are safe.

# Invocation

Invoking a CLI with subcommands always follows this form:

	CLI_NAME [SUB-COMMAND...] [OPTIONS...] [ARGS...]

Parsing produces a [Namespace]; [CLI.Run] additionally binds it to the
routed command's callback, reporting [ErrMissingArgument] when a required
parameter has no value. All failures are typed error values that name the
fully-qualified command and the offending token. The library never exits
the process itself; [CLI.Main] is the thin wrapper that maps an error to an
exit code.
*/
package cli
