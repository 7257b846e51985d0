package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/attendance/internal/attendance"
	"github.com/idilsaglam/attendance/internal/model"
)

type rollCallKeys struct {
	Present key.Binding
	Absent  key.Binding
	Quit    key.Binding
}

func (k rollCallKeys) ShortHelp() []key.Binding { return []key.Binding{k.Present, k.Absent, k.Quit} }
func (k rollCallKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultRollCallKeys() rollCallKeys {
	return rollCallKeys{
		Present: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "present")),
		Absent:  key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "absent")),
		Quit:    key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "abandon")),
	}
}

// RollCall is a Bubble Tea model that walks an attendance.Session one
// keypress at a time. It quits by itself once every member is recorded.
type RollCall struct {
	date     model.Date
	session  *attendance.Session
	keys     rollCallKeys
	help     help.Model
	rejected string
	quit     bool
}

func NewRollCall(date model.Date, members []model.Member) RollCall {
	return RollCall{
		date:    date,
		session: attendance.NewSession(members),
		keys:    defaultRollCallKeys(),
		help:    help.New(),
	}
}

// Session exposes the underlying session for committing.
func (m RollCall) Session() *attendance.Session { return m.session }

// Abandoned reports whether the user quit before the end.
func (m RollCall) Abandoned() bool { return m.quit && !m.session.Done() }

func (m RollCall) Init() tea.Cmd {
	if m.session.Done() {
		return tea.Quit
	}
	return nil
}

func (m RollCall) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Present):
			return m.answer("y")
		case key.Matches(msg, m.keys.Absent):
			return m.answer("n")
		default:
			m.rejected = msg.String()
			return m, nil
		}
	}
	return m, nil
}

func (m RollCall) answer(resp string) (tea.Model, tea.Cmd) {
	if _, err := m.session.Answer(resp); err != nil {
		m.rejected = resp
		return m, nil
	}
	m.rejected = ""
	if m.session.Done() {
		m.quit = true
		return m, tea.Quit
	}
	return m, nil
}

func (m RollCall) View() string {
	t := Current()
	present, absent := m.session.Counts()
	recorded := present + absent

	lines := []string{
		fmt.Sprintf("%s  %s %d  %s %d  %s %d",
			t.Title.Render("Roll call "+m.date.String()),
			t.Success.Render(t.SymOK), present,
			t.Pending.Render("•"), absent,
			t.Accent.Render("Total"), m.session.Len()),
		t.Muted.Render(ProgressBar(recorded, m.session.Len(), 28)),
		"",
	}
	if member, i, ok := m.session.Current(); ok {
		lines = append(lines,
			t.Muted.Render(fmt.Sprintf("[%d/%d]", i+1, m.session.Len()))+" "+t.Selected.Render(member.String()),
			"Present? (y/n)")
	} else {
		lines = append(lines, t.Success.Render("all members recorded"))
	}
	if m.rejected != "" {
		lines = append(lines, t.Error.Render(fmt.Sprintf("%s %q is not y or n", t.SymFail, m.rejected)))
	}
	lines = append(lines, "", m.help.View(m.keys))
	return Panel(lines) + "\n"
}

// RunRollCall runs the roll call full screen and returns the session. If
// the user abandons it the error is model.ErrCancelled.
func RunRollCall(date model.Date, members []model.Member, opts ...tea.ProgramOption) (*attendance.Session, error) {
	p := tea.NewProgram(NewRollCall(date, members), opts...)
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("roll call: %w", err)
	}
	fm, ok := final.(RollCall)
	if !ok {
		return nil, fmt.Errorf("roll call: unexpected model %T", final)
	}
	if !fm.session.Done() {
		return fm.session, model.ErrCancelled
	}
	return fm.session, nil
}
