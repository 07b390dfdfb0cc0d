package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lggruspe/climux/combin"
)

// rawOption is one classified option occurrence: the canonical spelling
// (dashes included) and the argument tokens it captured.
type rawOption struct {
	spelling string
	args     []string
}

// optArgSpec is the set of recognized option spellings for a parsing
// context, with a capture bound per spelling.
type optArgSpec struct {
	short map[string]Count // keyed by the character after "-"
	long  map[string]Count // keyed by the name after "--"
}

func newOptArgSpec(params []*Param) *optArgSpec {
	spec := &optArgSpec{
		short: make(map[string]Count),
		long:  make(map[string]Count),
	}
	for _, param := range params {
		for _, spelling := range param.spellings {
			switch {
			case strings.HasPrefix(spelling, "--"):
				spec.long[spelling[2:]] = param.arity
			case strings.HasPrefix(spelling, "-"):
				spec.short[spelling[1:]] = param.arity
			}
		}
	}
	return spec
}

// expand resolves a possibly-abbreviated long option name to its unique
// full name. Zero matches is an unknown option; more than one is ambiguous.
func (s *optArgSpec) expand(prefix string) (string, error) {
	var candidates []string
	for name := range s.long {
		if strings.HasPrefix(name, prefix) {
			candidates = append(candidates, name)
		}
	}
	switch len(candidates) {
	case 0:
		return "", fmt.Errorf("%w: --%s", ErrUnknownOption, prefix)
	case 1:
		return candidates[0], nil
	}
	sort.Strings(candidates)
	for i, name := range candidates {
		candidates[i] = "--" + name
	}
	return "", &AmbiguousOptionError{Prefix: "--" + prefix, Choices: candidates}
}

// take pops up to count tokens that do not themselves look like options.
// Unlimited takes greedily until the next option-looking token.
func take(count Count, tokens *combin.Tokens) []string {
	var args []string
	for count != 0 {
		next, ok := tokens.Peek()
		if !ok || strings.HasPrefix(next, "-") {
			break
		}
		tokens.Pop()
		args = append(args, next)
		if count > 0 {
			count--
		}
	}
	return args
}

// classify makes one left-to-right pass over argv, producing the option
// occurrences with their captured tokens and the leftover positional
// tokens, both in encounter order.
func classify(spec *optArgSpec, argv []string) ([]rawOption, []string, error) {
	tokens := combin.NewTokens(argv...)
	var opts []rawOption
	var args []string

	for {
		current, ok := tokens.Pop()
		if !ok {
			break
		}
		switch {
		case strings.HasPrefix(current, "--"):
			opt, err := classifyLong(spec, current[2:], tokens)
			if err != nil {
				return nil, nil, err
			}
			opts = append(opts, opt)
		case strings.HasPrefix(current, "-") && len(current) > 1:
			stacked, err := classifyShort(spec, current[1:], tokens)
			if err != nil {
				return nil, nil, err
			}
			opts = append(opts, stacked...)
		default:
			args = append(args, current)
		}
	}
	return opts, args, nil
}

// classifyLong handles a token that began with "--". A "=" splits off a
// single pre-captured argument that short-circuits further capture.
func classifyLong(spec *optArgSpec, body string, tokens *combin.Tokens) (rawOption, error) {
	prefix, preArg, hasEq := strings.Cut(body, "=")
	name, err := spec.expand(prefix)
	if err != nil {
		return rawOption{}, err
	}
	spelling := "--" + name
	if hasEq {
		return rawOption{spelling: spelling, args: []string{preArg}}, nil
	}
	return rawOption{spelling: spelling, args: take(spec.long[name], tokens)}, nil
}

// classifyShort scans stacked short options left to right. A zero-bound
// spelling contributes a flag and the scan continues; a nonzero-bound
// spelling claims the rest of the token as its argument (or captures
// following tokens per its bound when nothing remains) and stops the scan.
func classifyShort(spec *optArgSpec, body string, tokens *combin.Tokens) ([]rawOption, error) {
	var opts []rawOption
	for i := 0; i < len(body); i++ {
		name := string(body[i])
		arity, ok := spec.short[name]
		if !ok {
			return nil, fmt.Errorf("%w: -%s", ErrUnknownOption, name)
		}
		spelling := "-" + name
		if arity == 0 {
			opts = append(opts, rawOption{spelling: spelling})
			continue
		}
		if rest := body[i+1:]; rest != "" {
			rest = strings.TrimPrefix(rest, "=")
			opts = append(opts, rawOption{spelling: spelling, args: []string{rest}})
		} else {
			opts = append(opts, rawOption{spelling: spelling, args: take(arity, tokens)})
		}
		break
	}
	return opts, nil
}
