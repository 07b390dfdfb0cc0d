package cli

import (
	"fmt"
	"strings"

	"github.com/lggruspe/climux/combin"
)

// positional pairs a non-dash spelling with its owning Param. Positional
// parsers run in declaration order against the leftover tokens.
type positional struct {
	spelling string
	param    *Param
}

// CLI is one node of a command tree: a name, a description, declared
// parameters, named subcommands, and an optional callback with its declared
// signature.
//
// A CLI is constructed once at startup and is immutable afterwards.
// Independent parses against the same tree are safe to run concurrently;
// each parse owns its token queue exclusively.
type CLI struct {
	name        string
	description string
	params      []*Param
	subNames    []string
	subcommands map[string]*CLI
	signature   []Arg
	callback    Callback
	parent      *CLI
	printer     *Printer

	spec        *optArgSpec
	options     map[string]*Param
	positionals []positional
}

// New declares a command. The name may not contain whitespace; New panics
// otherwise, since the tree is static declaration.
func New(name, description string) *CLI {
	if name == "" || strings.ContainsAny(name, " \t\n") {
		panic(fmt.Sprintf("invalid command name %q", name))
	}
	return &CLI{
		name:        name,
		description: strings.TrimSpace(description),
		subcommands: make(map[string]*CLI),
		options:     make(map[string]*Param),
		spec:        newOptArgSpec(nil),
	}
}

// Add declares parameters on this command.
func (c *CLI) Add(params ...*Param) *CLI {
	for _, param := range params {
		c.params = append(c.params, param)
		for _, spelling := range param.spellings {
			if strings.HasPrefix(spelling, "-") {
				c.options[spelling] = param
			} else {
				c.positionals = append(c.positionals, positional{spelling: spelling, param: param})
			}
		}
	}
	c.spec = newOptArgSpec(c.params)
	return c
}

// AddCommand attaches a subcommand. The child keeps a back-reference to its
// parent, used only to build fully-qualified names for diagnostics.
func (c *CLI) AddCommand(sub *CLI) *CLI {
	sub.parent = c
	if _, exists := c.subcommands[sub.name]; !exists {
		c.subNames = append(c.subNames, sub.name)
	}
	c.subcommands[sub.name] = sub
	return c
}

// Takes declares the callback's parameter signature.
func (c *CLI) Takes(sig ...Arg) *CLI {
	c.signature = sig
	return c
}

// Does sets the callback invoked with the bound arguments.
func (c *CLI) Does(callback Callback) *CLI {
	c.callback = callback
	return c
}

// Name returns the command's own name.
func (c *CLI) Name() string { return c.name }

// Description returns the command's description.
func (c *CLI) Description() string { return c.description }

// Path returns the full invocation name, parents first.
func (c *CLI) Path() []string {
	if c.parent == nil {
		return []string{c.name}
	}
	return append(c.parent.Path(), c.name)
}

// FullName returns the space-joined invocation name for diagnostics.
func (c *CLI) FullName() string {
	return strings.Join(c.Path(), " ")
}

// Printer returns the cached [Printer] for this command tree.
func (c *CLI) Printer() *Printer {
	if c.parent != nil {
		return c.parent.Printer()
	}
	if c.printer == nil {
		c.printer = NewPrinter()
	}
	return c.printer
}

// Parse classifies argv into a subcommand route, options, and positional
// arguments, parses every captured token, merges aliased spellings, and
// trial-binds the result against the active command's signature.
//
// Errors are prefixed with the active command's fully-qualified name and
// match one of [ErrUnknownOption], [ErrMissingArgument], or
// [combin.ErrCantParse].
func (c *CLI) Parse(argv []string) (*Namespace, error) {
	active := c
	tokens := combin.NewTokens(argv...)
	for {
		next, ok := tokens.Peek()
		if !ok {
			break
		}
		sub, ok := active.subcommands[next]
		if !ok {
			break
		}
		active = sub
		tokens.Pop()
	}
	names, err := active.parseOptArgs(tokens.Remaining())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", active.FullName(), err)
	}
	return &Namespace{Names: names, cli: active}, nil
}

// parseOptArgs parses options and arguments from argv.
// Assumes the program name and subcommands have been removed.
func (c *CLI) parseOptArgs(argv []string) (map[string]any, error) {
	opts, args, err := classify(c.spec, argv)
	if err != nil {
		return nil, err
	}

	var optargs []optArg
	for _, opt := range opts {
		param := c.options[opt.spelling]
		tokens := combin.NewTokens(opt.args...)
		result, err := combin.Run(param.parse, tokens)
		if err != nil {
			return nil, fmt.Errorf("option %s: %w", opt.spelling, err)
		}
		optargs = append(optargs, optArg{name: opt.spelling, value: result.Value})
		// Captured tokens the parser didn't need become positionals.
		args = append(args, tokens.Remaining()...)
	}

	tokens := combin.NewTokens(args...)
	for _, pos := range c.positionals {
		result, err := combin.Run(pos.param.parse, tokens)
		if err != nil {
			if tokens.Empty() {
				// Ran out of tokens: leave the name unbound so binding
				// reports the missing parameter, not a parse failure.
				continue
			}
			return nil, fmt.Errorf("argument %s: %w", pos.spelling, err)
		}
		optargs = append(optargs, optArg{name: pos.spelling, value: result.Value})
	}
	if next, ok := tokens.Peek(); ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOption, next)
	}

	names := mergeOccurrences(c.params, optargs)
	if c.signature != nil {
		if _, _, err := bindArgs(names, c.signature); err != nil {
			return nil, err
		}
	}
	return names, nil
}

// Run parses argv and invokes the routed command's callback.
func (c *CLI) Run(argv []string) (any, error) {
	namespace, err := c.Parse(argv)
	if err != nil {
		return nil, err
	}
	return namespace.Call()
}

// Main runs argv and maps the outcome to a process exit code, rendering any
// error through the tree's [Printer]. It is a thin orchestration wrapper;
// library callers that want the typed error should use [CLI.Run].
func (c *CLI) Main(argv []string) int {
	if _, err := c.Run(argv); err != nil {
		c.Printer().Errorf("%v\n", err)
		return 1
	}
	return 0
}
