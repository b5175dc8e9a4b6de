// Package grid renders the 12×31 year grid for the terminal UI.
package grid

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/journali/pkg/calendar"
)

// Options controls the styling of the rendered grid.
type Options struct {
	LabelStyle    lipgloss.Style
	EmptyStyle    lipgloss.Style
	OpenStyle     lipgloss.Style
	EntryStyle    lipgloss.Style
	TodayStyle    lipgloss.Style
	FutureStyle   lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowLabels    bool
}

var monthLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Render produces a multi-line grid, one row per month. hasEntry reports
// whether a date key has content; selected is the date key under the cursor
// (empty for none).
func Render(months [][]calendar.Day, hasEntry func(key string) bool, selected string, opts Options) string {
	var lines []string
	for m, days := range months {
		var row strings.Builder
		if opts.ShowLabels && m < len(monthLabels) {
			row.WriteString(opts.LabelStyle.Render(monthLabels[m]))
			row.WriteString(" ")
		}
		var cells []string
		for _, d := range days {
			cells = append(cells, renderDay(d, hasEntry, selected, opts))
		}
		row.WriteString(strings.Join(cells, " "))
		lines = append(lines, strings.TrimRight(row.String(), " "))
	}
	return strings.Join(lines, "\n")
}

func renderDay(d calendar.Day, hasEntry func(key string) bool, selected string, opts Options) string {
	if d.IsEmpty {
		return opts.EmptyStyle.Render(" ")
	}

	glyph := "·"
	style := opts.OpenStyle
	if hasEntry != nil && hasEntry(d.Key) {
		glyph = "■"
		style = opts.EntryStyle
	}
	if d.IsFuture {
		style = opts.FutureStyle
	}
	if d.IsToday {
		glyph = "◆"
		style = style.Inherit(opts.TodayStyle)
	}
	if selected != "" && d.Key == selected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(glyph)
}
