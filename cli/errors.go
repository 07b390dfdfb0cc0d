package cli

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownOption reports a token classified as an option spelling
	// that no declared [Param] recognizes.
	ErrUnknownOption = errors.New("unknown option")

	// ErrMissingArgument reports that the parsed name-value mapping lacks
	// a value required by the callback's signature.
	ErrMissingArgument = errors.New("missing required argument")
)

// AmbiguousOptionError reports a long-option prefix that matches more than
// one declared option. It matches [ErrUnknownOption] with [errors.Is].
type AmbiguousOptionError struct {
	Prefix  string
	Choices []string
}

func (e *AmbiguousOptionError) Error() string {
	return fmt.Sprintf("ambiguous option %s (could be %s)",
		e.Prefix, strings.Join(e.Choices, ", "))
}

func (e *AmbiguousOptionError) Unwrap() error {
	return ErrUnknownOption
}
