package ui

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/attendance/internal/attendance"
	"github.com/idilsaglam/attendance/internal/model"
)

var (
	dawood = model.Member{Name: "Dawood", ID: "ws23r"}
	ahmed  = model.Member{Name: "Ahmed", ID: "9ikj7"}
	jan10  = model.Date{Year: 2024, Month: time.January, Day: 10}
	jan11  = model.Date{Year: 2024, Month: time.January, Day: 11}
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░  50%", ProgressBar(1, 2, 10))
	assert.Equal(t, "░░░░░   0%", ProgressBar(0, 0, 1))
	assert.Equal(t, "██████████ 100%", ProgressBar(3, 3, 10))
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme("classic") })
	SetTheme("MONO")
	assert.Equal(t, "[x]", Current().BoxChecked)
	SetTheme("neon")
	assert.Equal(t, "◼", Current().BoxChecked)
	SetTheme("unknown")
	assert.Equal(t, "☑", Current().BoxChecked)
}

func TestConsole(t *testing.T) {
	var out, errOut bytes.Buffer
	c := Console{Out: &out, Err: &errOut}
	c.OK("saved")
	c.Fail("boom")
	c.Warn("careful")
	assert.Contains(t, out.String(), "saved")
	assert.Contains(t, errOut.String(), "boom")
	assert.Contains(t, errOut.String(), "careful")
	assert.NotContains(t, out.String(), "boom")
}

func TestLineInputAsk(t *testing.T) {
	var out bytes.Buffer
	in := NewLineInput(strings.NewReader("club\r\nlast"), &out)

	got, err := in.Ask(context.Background(), ">> Roster name:")
	require.NoError(t, err)
	assert.Equal(t, "club", got)
	assert.Contains(t, out.String(), "Roster name")

	got, err = in.Ask(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	_, err = in.Ask(context.Background(), "")
	assert.ErrorIs(t, err, io.EOF)
}

func TestLineInputDrivesRecorder(t *testing.T) {
	var out bytes.Buffer
	in := NewLineInput(strings.NewReader("maybe\ny\nn\n"), &out)
	rec := attendance.NewRecorder(in, nil, nil)

	res, err := rec.Record(context.Background(), []model.Member{dawood, ahmed}, jan10, attendance.NewStore())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Present)
	assert.Equal(t, 1, res.Absent)

	transcript := out.String()
	assert.Equal(t, 2, strings.Count(transcript, "ws23r, Dawood"), "rejected answer re-asks the same member")
	assert.Contains(t, transcript, `"maybe" is not y or n`)
	assert.Contains(t, transcript, "[2/2] 9ikj7, Ahmed")
}

func TestLineInputExplainsBlankAnswer(t *testing.T) {
	var out bytes.Buffer
	in := NewLineInput(strings.NewReader("\ny\n"), &out)
	rec := attendance.NewRecorder(in, nil, nil)

	_, err := rec.Record(context.Background(), []model.Member{dawood}, jan10, attendance.NewStore())
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"" is not y or n`)
}

func TestLineInputAskStopsOnCancel(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	in := NewLineInput(r, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := in.Ask(ctx, ">>")
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Ask kept waiting for input after cancel")
	}

	// A line typed after the cancel is still delivered to the next Ask.
	go func() { _, _ = io.WriteString(w, "y\n") }()
	got, err := in.Ask(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "y", got)
}

func TestRollCallRecordsKeys(t *testing.T) {
	var m tea.Model = NewRollCall(jan10, []model.Member{dawood, ahmed})

	m, cmd := m.Update(runes("x"))
	assert.Nil(t, cmd)
	rc := m.(RollCall)
	assert.Contains(t, rc.View(), `"x" is not y or n`)
	_, idx, _ := rc.Session().Current()
	assert.Equal(t, 0, idx)

	m, cmd = m.Update(runes("Y"))
	assert.Nil(t, cmd)
	assert.NotContains(t, m.View(), "is not y or n")

	m, cmd = m.Update(runes("n"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	rc = m.(RollCall)
	assert.True(t, rc.Session().Done())
	assert.False(t, rc.Abandoned())
	assert.Equal(t, []model.AttendanceRecord{
		{Member: dawood, Attended: true},
		{Member: ahmed, Attended: false},
	}, rc.Session().Records())
}

func TestRollCallAbandon(t *testing.T) {
	var m tea.Model = NewRollCall(jan10, []model.Member{dawood, ahmed})
	m, _ = m.Update(runes("y"))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	rc := m.(RollCall)
	assert.True(t, rc.Abandoned())
	assert.False(t, rc.Session().Done())

	_, err := attendance.NewRecorder(nil, nil, nil).Commit(rc.Session(), jan10, attendance.NewStore())
	assert.ErrorIs(t, err, model.ErrCancelled)
}

func TestHistoryOpensDate(t *testing.T) {
	store := attendance.NewStore().
		RecordForDate(jan10, []model.AttendanceRecord{{Member: dawood, Attended: true}, {Member: ahmed}}).
		RecordForDate(jan11, []model.AttendanceRecord{{Member: ahmed, Attended: true}})

	var m tea.Model = NewHistory(store)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Contains(t, m.View(), "2024-01-11")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	d, ok := m.(History).Selected()
	require.True(t, ok)
	assert.Equal(t, jan11, d, "newest date is listed first")
	assert.Contains(t, m.View(), "9ikj7, Ahmed")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	_, ok = m.(History).Selected()
	assert.False(t, ok)
}

func TestRecordLines(t *testing.T) {
	lines := RecordLines(jan10, []model.AttendanceRecord{{Member: dawood, Attended: true}, {Member: ahmed}})
	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "2024-01-10")
	assert.Contains(t, joined, "ws23r, Dawood")
	assert.Contains(t, joined, "Not Attended")

	assert.Contains(t, strings.Join(RecordLines(jan10, nil), "\n"), "no records")
}

func TestMemberLines(t *testing.T) {
	lines := MemberLines([]model.Member{dawood, ahmed})
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], " 1.")
	assert.Contains(t, lines[1], "Ahmed")
	assert.Len(t, MemberLines(nil), 1)
}
