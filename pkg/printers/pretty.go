package printers

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/journali/pkg/entry"
	"tableflip.dev/journali/pkg/stats"
)

type PrettyPrint struct{}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Stats prints the entries/streak/days footer.
func (pp *PrettyPrint) Stats(s stats.Stats) {
	table := uitable.New()
	table.AddRow("entries", "streak", "days")
	table.AddRow(s.Entries, s.Streak, s.DaysPassed)
	fmt.Fprintln(color.Output, table)
}

// Entries lists entries sorted by date.
func (pp *PrettyPrint) Entries(entries map[string]entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	table := uitable.New()
	table.MaxColWidth = 60
	table.Wrap = true
	for _, k := range keys {
		table.AddRow(k, entries[k].Content)
	}
	fmt.Fprintln(color.Output, table)
	fmt.Println("")
}
