// Package teaui hosts the Bubble Tea program for the journali TUI.
package teaui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textarea"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/journali/pkg/calendar"
	"tableflip.dev/journali/pkg/entry"
	"tableflip.dev/journali/pkg/journal"
	"tableflip.dev/journali/pkg/tui/theme"
	"tableflip.dev/journali/pkg/ui/grid"
)

type mode int

const (
	modeGrid mode = iota
	modePanel
)

// Model drives the year grid with an entry panel overlay. All edits flow
// through the journal's optimistic update path, so the grid and footer
// reflect a keystroke before its persistence round-trip completes.
type Model struct {
	j      *journal.Journal
	months [][]calendar.Day
	today  time.Time
	year   int

	mode     mode
	month    int // cursor row, 0..11
	day      int // cursor column, 0..30
	editor   textarea.Model
	editKey  string
	lastSent string

	width  int
	height int
	th     theme.Theme
}

// New builds the UI over an already-loaded journal.
func New(j *journal.Journal, year int, today time.Time) *Model {
	ta := textarea.New()
	ta.Placeholder = "What happened today?"
	ta.CharLimit = 0
	ta.SetWidth(46)
	ta.SetHeight(8)

	m := &Model{
		j:      j,
		months: calendar.Year(year, today),
		today:  today,
		year:   year,
		editor: ta,
		th:     theme.Default(),
	}
	m.jumpToday()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyPressMsg:
		if m.mode == modePanel {
			return m.updatePanel(msg)
		}
		return m.updateGrid(msg)
	}

	if m.mode == modePanel {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateGrid(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.month > 0 {
			m.month--
		}
	case "down", "j":
		if m.month < calendar.Months-1 {
			m.month++
		}
	case "left", "h":
		if m.day > 0 {
			m.day--
		}
	case "right", "l":
		if m.day < calendar.Slots-1 {
			m.day++
		}
	case "t":
		m.jumpToday()
	case "enter":
		return m, m.openPanel()
	}
	return m, nil
}

func (m *Model) updatePanel(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePanel()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)

	// Push every edit through the optimistic update path so the grid and
	// stats reflect it immediately; persistence trails behind.
	if value := m.editor.Value(); value != m.lastSent {
		m.lastSent = value
		m.j.UpdateEntry(context.Background(), m.editKey, value)
	}
	return m, cmd
}

// openPanel opens the editor on the cursor's day. Placeholder and future
// days are not editable.
func (m *Model) openPanel() tea.Cmd {
	d := m.cursorDay()
	if d.IsEmpty || d.IsFuture || d.Key == "" {
		return nil
	}
	m.mode = modePanel
	m.editKey = d.Key
	content := ""
	if e, ok := m.j.Entry(d.Key); ok {
		content = e.Content
	}
	m.editor.SetValue(content)
	m.lastSent = content
	return m.editor.Focus()
}

func (m *Model) closePanel() {
	m.mode = modeGrid
	m.editKey = ""
	m.editor.Blur()
}

func (m *Model) cursorDay() calendar.Day {
	return m.months[m.month][m.day]
}

func (m *Model) jumpToday() {
	for mi, days := range m.months {
		for di, d := range days {
			if d.IsToday {
				m.month, m.day = mi, di
				return
			}
		}
	}
	m.month, m.day = 0, 0
}

// View implements tea.Model.
func (m *Model) View() string {
	entries := m.j.Entries()

	var b strings.Builder
	b.WriteString(m.th.Header.Render(fmt.Sprintf("journali %d", m.year)))
	b.WriteString("\n\n")

	selected := ""
	if m.mode == modeGrid {
		selected = m.cursorDay().Key
	} else {
		selected = m.editKey
	}
	b.WriteString(grid.Render(m.months, func(key string) bool {
		_, ok := entries[key]
		return ok
	}, selected, grid.Options{
		LabelStyle:    m.th.Label,
		OpenStyle:     m.th.Open,
		EntryStyle:    m.th.Entry,
		TodayStyle:    m.th.Today,
		FutureStyle:   m.th.Future,
		SelectedStyle: m.th.Selected,
		ShowLabels:    true,
	}))
	b.WriteString("\n\n")

	s := m.j.Stats(m.today)
	b.WriteString(m.th.Footer.Render(fmt.Sprintf(
		"%d entries · %d streak · %d days", s.Entries, s.Streak, s.DaysPassed)))

	if m.mode == modePanel {
		b.WriteString("\n\n")
		b.WriteString(m.panelView())
	} else {
		b.WriteString("\n\n")
		b.WriteString(m.th.Footer.Render("↑↓←→ move · enter edit · t today · q quit"))
	}
	return b.String()
}

func (m *Model) panelView() string {
	day, err := entry.ParseKey(m.editKey)
	title := m.editKey
	if err == nil {
		title = day.Format("Monday, January 2")
	}

	status := "No entry yet"
	if !entry.Blank(m.editor.Value()) {
		status = fmt.Sprintf("Saved · %d chars", len(m.editor.Value()))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.th.Panel.Title.Render(title),
		m.editor.View(),
		m.th.Panel.Status.Render(status+" · esc close"),
	)
	return m.th.Panel.Frame.Render(body)
}

// Run launches the program and drains pending persistence before returning.
func Run(j *journal.Journal, year int, today time.Time) error {
	p := tea.NewProgram(New(j, year, today), tea.WithAltScreen())
	_, err := p.Run()
	j.Wait()
	return err
}
