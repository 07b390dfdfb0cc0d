package cli

import (
	"bufio"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/google/shlex"
	"golang.org/x/term"
)

var (
	// InteractiveFlag is the first process argument that triggers
	// [CLI.RespondInteractive].
	InteractiveFlag = "-i"

	// InteractiveQuitCommands are the inputs that leave interactive mode.
	InteractiveQuitCommands = []string{"quit", "exit"}
)

// RespondInteractive launches a read-run loop over the command tree if the
// [InteractiveFlag] is the first process argument and stdin is a terminal.
// Lines are split with shell-style quoting and dispatched through [CLI.Run].
// Returns false if interactive mode was not requested.
func (c *CLI) RespondInteractive() bool {
	args := os.Args[1:]
	if len(args) == 0 || args[0] != InteractiveFlag {
		return false
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false
	}
	c.interactiveLoop(os.Stdin)
	return true
}

func (c *CLI) interactiveLoop(in io.Reader) {
	scanner := bufio.NewScanner(in)
	p := c.Printer()
	p.Printf("Running %q interactively. Enter %s to exit, help for usage.\n",
		c.name, strings.Join(InteractiveQuitCommands, " or "))
	for {
		p.Printf("%s> ", c.name)
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if slices.Contains(InteractiveQuitCommands, strings.ToLower(line)) {
			return
		}
		if line == "help" {
			p.Print(Usage(c))
			continue
		}
		words, err := shlex.Split(line)
		if err != nil {
			p.Errorf("%v\n", err)
			continue
		}
		result, err := c.Run(words)
		if err != nil {
			p.Errorf("%v\n", err)
			continue
		}
		if result != nil {
			p.Println(result)
		}
	}
}
