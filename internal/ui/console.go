package ui

import (
	"fmt"
	"io"
)

// Console writes styled status lines. Out gets regular output, Err gets
// failures and warnings.
type Console struct {
	Out io.Writer
	Err io.Writer
}

func (c Console) OK(msg string) {
	t := Current()
	fmt.Fprintln(c.Out, t.Success.Render(t.SymOK+" "+msg))
}

func (c Console) Fail(msg string) {
	t := Current()
	fmt.Fprintln(c.Err, t.Error.Render(t.SymFail+" "+msg))
}

func (c Console) Warn(msg string) {
	t := Current()
	fmt.Fprintln(c.Err, t.Pending.Render(t.SymWarn+" "+msg))
}

// Hint prints a muted follow-up line under a failure.
func (c Console) Hint(msg string) {
	fmt.Fprintln(c.Err, Current().Muted.Render(msg))
}

func (c Console) Println(a ...any) {
	fmt.Fprintln(c.Out, a...)
}

func (c Console) Panel(lines []string) {
	fmt.Fprintln(c.Out, Panel(lines))
}
