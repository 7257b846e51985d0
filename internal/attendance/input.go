package attendance

import (
	"context"
	"io"

	"github.com/idilsaglam/attendance/internal/model"
)

// Prompt describes the question put to an InputSource.
type Prompt struct {
	Member model.Member

	// Index is the member's zero-based position; Total the roll call size.
	Index, Total int

	// Retry is set when the previous answer for this member was not
	// accepted. Rejected then holds that answer, which may be blank.
	Retry    bool
	Rejected string
}

// InputSource supplies present/absent answers to a Recorder. Returning an
// error ends the roll call without committing anything.
type InputSource interface {
	Next(ctx context.Context, p Prompt) (string, error)
}

// InputFunc adapts a function to InputSource.
type InputFunc func(ctx context.Context, p Prompt) (string, error)

func (f InputFunc) Next(ctx context.Context, p Prompt) (string, error) { return f(ctx, p) }

// ScriptedInput replays canned answers and remembers each prompt it saw.
// When it runs out it returns io.EOF.
type ScriptedInput struct {
	responses []string
	prompts   []Prompt
}

func NewScriptedInput(responses ...string) *ScriptedInput {
	return &ScriptedInput{responses: responses}
}

func (s *ScriptedInput) Next(ctx context.Context, p Prompt) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.prompts = append(s.prompts, p)
	if len(s.responses) == 0 {
		return "", io.EOF
	}
	r := s.responses[0]
	s.responses = s.responses[1:]
	return r, nil
}

// Prompts returns every prompt received so far.
func (s *ScriptedInput) Prompts() []Prompt { return s.prompts }
