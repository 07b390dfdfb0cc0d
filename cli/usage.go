package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lggruspe/climux/combin"
)

// Usage renders help text for c: the description, a usage line derived from
// the declared parameters, and aligned options and commands blocks.
// Rendering consumes the declarations only; it is an external collaborator
// of the parse pipeline.
func Usage(c *CLI) string {
	var buf strings.Builder
	if c.description != "" {
		buf.WriteString(c.description + "\n\n")
	}
	buf.WriteString("usage: " + c.FullName())
	if len(c.options) > 0 {
		buf.WriteString(" [options]")
	}
	for _, pos := range c.positionals {
		buf.WriteString(" " + combin.Pretty(pos.param.parse))
	}
	if len(c.subNames) > 0 {
		buf.WriteString(" <command> [<args>]")
	}
	buf.WriteString("\n")
	if block := optionsBlock(c.params); block != "" {
		buf.WriteString("\noptions:\n" + block)
	}
	if block := commandsBlock(c); block != "" {
		buf.WriteString("\ncommands:\n" + block)
	}
	return buf.String()
}

// optionsBlock lists option spellings (short before long), the expected
// argument form, and descriptions, aligned in columns.
func optionsBlock(params []*Param) string {
	type row struct {
		left, desc string
	}
	var rows []row
	maxLen := 0
	for _, param := range params {
		if !param.IsOption() {
			continue
		}
		spellings := make([]string, len(param.spellings))
		copy(spellings, param.spellings)
		sort.Slice(spellings, func(i, j int) bool {
			si, sj := spellings[i], spellings[j]
			li, lj := strings.HasPrefix(si, "--"), strings.HasPrefix(sj, "--")
			if li != lj {
				return !li
			}
			return si < sj
		})
		left := strings.Join(spellings, ", ")
		if arg := param.parse.String(); arg != "''" {
			left += " <" + arg + ">"
		}
		if len(left) > maxLen {
			maxLen = len(left)
		}
		rows = append(rows, row{left: left, desc: param.description})
	}
	var buf strings.Builder
	for _, r := range rows {
		line := fmt.Sprintf("  %-*s  %s", maxLen, r.left, r.desc)
		buf.WriteString(strings.TrimRight(line, " ") + "\n")
	}
	return buf.String()
}

// commandsBlock lists subcommands in declaration order with aligned
// descriptions.
func commandsBlock(c *CLI) string {
	if len(c.subNames) == 0 {
		return ""
	}
	maxLen := 0
	for _, name := range c.subNames {
		if len(name) > maxLen {
			maxLen = len(name)
		}
	}
	var buf strings.Builder
	for _, name := range c.subNames {
		sub := c.subcommands[name]
		line := fmt.Sprintf("  %-*s  %s", maxLen, name, sub.description)
		buf.WriteString(strings.TrimRight(line, " ") + "\n")
	}
	return buf.String()
}
