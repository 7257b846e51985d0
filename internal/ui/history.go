package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/attendance/internal/attendance"
	"github.com/idilsaglam/attendance/internal/model"
)

// dateItem adapts one store entry to bubbles/list.Item
type dateItem struct {
	date            model.Date
	present, absent int
}

func (i dateItem) Title() string { return i.date.String() }
func (i dateItem) Description() string {
	return fmt.Sprintf("%d present · %d absent", i.present, i.absent)
}
func (i dateItem) FilterValue() string { return i.date.String() }

var (
	openKey = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open"))
	backKey = key.NewBinding(key.WithKeys("esc", "q", "backspace"), key.WithHelp("esc", "back"))
)

// History browses recorded dates, newest first, and shows one date's
// records on enter.
type History struct {
	store  attendance.Store
	list   list.Model
	detail *model.Date
}

func NewHistory(store attendance.Store) History {
	dates := store.Dates()
	items := make([]list.Item, 0, len(dates))
	for i := len(dates) - 1; i >= 0; i-- {
		records, _ := store.RecordsForDate(dates[i])
		present, absent := attendance.Tally(records)
		items = append(items, dateItem{date: dates[i], present: present, absent: absent})
	}

	l := list.New(items, list.NewDefaultDelegate(), 40, 20)
	l.Title = "Attendance"
	l.Styles.Title = Current().Title
	l.SetStatusBarItemName("date", "dates")
	l.SetFilteringEnabled(true)
	l.FilterInput.Prompt = "/ "
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{openKey} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{openKey} }

	return History{store: store, list: l}
}

// Selected returns the date whose records are open.
func (m History) Selected() (model.Date, bool) {
	if m.detail == nil {
		return model.Date{}, false
	}
	return *m.detail, true
}

func (m History) Init() tea.Cmd { return nil }

func (m History) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-4)
		return m, nil
	case tea.KeyMsg:
		if m.detail != nil {
			if key.Matches(msg, backKey) {
				m.detail = nil
			}
			return m, nil
		}
		if m.list.FilterState() != list.Filtering && key.Matches(msg, openKey) {
			if it, ok := m.list.SelectedItem().(dateItem); ok {
				d := it.date
				m.detail = &d
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m History) View() string {
	if m.detail != nil {
		records, _ := m.store.RecordsForDate(*m.detail)
		lines := append(RecordLines(*m.detail, records), "", Current().Muted.Render("esc back"))
		return Panel(lines)
	}
	return Panel([]string{m.list.View()})
}

// RunHistory runs the browser until the user quits.
func RunHistory(store attendance.Store, opts ...tea.ProgramOption) error {
	if _, err := tea.NewProgram(NewHistory(store), opts...).Run(); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	return nil
}
