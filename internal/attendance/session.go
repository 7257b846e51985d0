package attendance

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/attendance/internal/model"
)

// State is where a single member stands within a roll call.
type State int

const (
	// Awaiting means no valid answer has been given yet.
	Awaiting State = iota
	// Recorded means the member has a record.
	Recorded
)

func (s State) String() string {
	switch s {
	case Awaiting:
		return "awaiting"
	case Recorded:
		return "recorded"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Session is one roll call over an ordered member list. Members are visited
// strictly in order and only a "y" or "n" answer moves to the next one.
type Session struct {
	members []model.Member
	records []model.AttendanceRecord
	present int
	absent  int
}

// NewSession starts a roll call over members. The slice is copied.
func NewSession(members []model.Member) *Session {
	return &Session{
		members: append([]model.Member(nil), members...),
		records: make([]model.AttendanceRecord, 0, len(members)),
	}
}

// Current returns the member awaiting an answer and its position.
// ok is false once the session is done.
func (s *Session) Current() (m model.Member, index int, ok bool) {
	if s.Done() {
		return model.Member{}, len(s.members), false
	}
	i := len(s.records)
	return s.members[i], i, true
}

// Answer applies a response to the current member. "y" and "n" are accepted
// in any case and with surrounding blanks; anything else returns
// model.ErrInvalidResponse and the current member stays Awaiting.
func (s *Session) Answer(response string) (State, error) {
	m, _, ok := s.Current()
	if !ok {
		return Recorded, fmt.Errorf("answer %q: %w", response, model.ErrIndexOutOfRange)
	}
	switch strings.ToLower(strings.TrimSpace(response)) {
	case "y":
		s.records = append(s.records, model.AttendanceRecord{Member: m, Attended: true})
		s.present++
	case "n":
		s.records = append(s.records, model.AttendanceRecord{Member: m, Attended: false})
		s.absent++
	default:
		return Awaiting, fmt.Errorf("%w: %q", model.ErrInvalidResponse, response)
	}
	return Recorded, nil
}

// Done reports whether every member has been recorded.
func (s *Session) Done() bool { return len(s.records) == len(s.members) }

// Len is the number of members in the roll call.
func (s *Session) Len() int { return len(s.members) }

// Records returns a copy of the records collected so far.
func (s *Session) Records() []model.AttendanceRecord {
	return append([]model.AttendanceRecord(nil), s.records...)
}

// Counts returns the running present and absent totals.
func (s *Session) Counts() (present, absent int) { return s.present, s.absent }
