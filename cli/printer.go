package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Printer is the channel for user-visible output. It writes to STDERR by
// default so that command output and diagnostics stay separable.
type Printer struct {
	out      io.Writer
	errColor *color.Color
}

func NewPrinter() *Printer {
	return &Printer{out: os.Stderr, errColor: color.New(color.FgRed)}
}

// Redirect sends subsequent output to writer. Useful in tests.
func (p *Printer) Redirect(writer io.Writer) {
	p.out = writer
}

func (p *Printer) Print(msg ...any) {
	_, _ = fmt.Fprint(p.out, msg...)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(msg ...any) {
	_, _ = fmt.Fprintln(p.out, msg...)
}

// Errorf prints a diagnostic, colored red when the writer is a terminal.
func (p *Printer) Errorf(format string, args ...any) {
	_, _ = p.errColor.Fprintf(p.out, format, args...)
}
