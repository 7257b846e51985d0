package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/idilsaglam/attendance/internal/model"
	"github.com/idilsaglam/attendance/internal/ui"
)

// Stdio is the terminal the commands talk to.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// usageError marks bad invocations; they exit with code 2.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}

// Run executes the command line and returns an exit code (0 ok, 1 error,
// 2 usage or invalid input).
func Run(ctx context.Context, args []string, stdio Stdio) int {
	err := New(stdio).Run(ctx, args)
	if err == nil {
		return 0
	}
	console := ui.Console{Out: stdio.Out, Err: stdio.Err}
	console.Fail(err.Error())
	code := exitCode(err)
	if errors.Is(err, model.ErrIndexOutOfRange) {
		console.Hint("Hint: run `attendance members ls <roster>` to see valid indexes")
	}
	return code
}

func exitCode(err error) int {
	var ue usageError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &ue),
		errors.Is(err, model.ErrIndexOutOfRange),
		errors.Is(err, model.ErrInvalidDate),
		errors.Is(err, model.ErrEmptyField):
		return 2
	}
	return 1
}
