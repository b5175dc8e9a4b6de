package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/journali/pkg/calendar"
	"tableflip.dev/journali/pkg/entry"
)

var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Grid prints the full year as 12 month rows of 31 day cells. Filled days
// render bright, open days faint, today stands out, future days are dimmed
// and placeholders stay blank.
func (pp *PrettyPrint) Grid(months [][]calendar.Day, entries map[string]entry.Entry) {
	label := color.New(color.FgWhite, color.Italic)
	header := color.New(color.Faint)

	// Day-number header, tens then ones, over the 31 columns.
	var tens, ones strings.Builder
	for day := 1; day <= calendar.Slots; day++ {
		if day >= 10 {
			tens.WriteString(fmt.Sprintf("%d ", day/10))
		} else {
			tens.WriteString("  ")
		}
		ones.WriteString(fmt.Sprintf("%d ", day%10))
	}
	_, _ = header.Printf("    %s\n", tens.String())
	_, _ = header.Printf("    %s\n", ones.String())

	open := color.New(color.Faint, color.FgWhite)
	filled := color.New(color.Bold, color.FgHiGreen)
	today := color.New(color.Bold, color.FgBlack, color.BgHiWhite)
	future := color.New(color.Faint)

	for m, days := range months {
		_, _ = label.Printf("%s ", monthNames[m])
		for _, d := range days {
			switch {
			case d.IsEmpty:
				fmt.Print("  ")
			case d.IsToday:
				_, _ = today.Print("◆ ")
			case d.IsFuture:
				_, _ = future.Print("· ")
			default:
				if _, ok := entries[d.Key]; ok {
					_, _ = filled.Print("■ ")
				} else {
					_, _ = open.Print("· ")
				}
			}
		}
		fmt.Print("\n")
	}
	fmt.Print("\n")
}
