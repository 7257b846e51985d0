package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/idilsaglam/attendance/internal/attendance"
)

// LineInput reads answers one line at a time from a terminal or pipe. It
// serves both the menu prompts and, through Next, a roll call.
//
// Lines are read by a background goroutine so a waiting Ask can give up
// when its context is cancelled. A line read but not yet asked for stays
// queued for the next Ask.
type LineInput struct {
	in  *bufio.Reader
	out io.Writer

	once  sync.Once
	lines chan readResult
	err   error
}

type readResult struct {
	line string
	err  error
}

func NewLineInput(r io.Reader, w io.Writer) *LineInput {
	return &LineInput{in: bufio.NewReader(r), out: w, lines: make(chan readResult)}
}

func (l *LineInput) start() {
	l.once.Do(func() {
		go func() {
			for {
				line, err := l.in.ReadString('\n')
				if err != nil && errors.Is(err, io.EOF) && line != "" {
					l.lines <- readResult{line: line}
				}
				if err != nil {
					l.lines <- readResult{err: err}
					return
				}
				l.lines <- readResult{line: line}
			}
		}()
	})
}

// Ask prints prompt and returns the next line without its line ending.
// A final line with no newline is still returned; after that, io.EOF.
// Cancelling ctx makes Ask return ctx.Err() without waiting for input.
func (l *LineInput) Ask(ctx context.Context, prompt string) (string, error) {
	if l.err != nil {
		return "", l.err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if prompt != "" {
		fmt.Fprint(l.out, Current().Accent.Render(prompt)+" ")
	}
	l.start()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-l.lines:
		if r.err != nil {
			l.err = r.err
			return "", r.err
		}
		return strings.TrimRight(r.line, "\r\n"), nil
	}
}

// Next implements attendance.InputSource.
func (l *LineInput) Next(ctx context.Context, p attendance.Prompt) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	t := Current()
	if p.Retry {
		fmt.Fprintln(l.out, t.Error.Render(fmt.Sprintf("%s %q is not y or n", t.SymFail, p.Rejected)))
	}
	fmt.Fprintf(l.out, "%s %s\n", t.Muted.Render(fmt.Sprintf("[%d/%d]", p.Index+1, p.Total)), p.Member)
	return l.Ask(ctx, ">> Present? (y/n)")
}
