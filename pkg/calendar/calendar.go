// Package calendar derives the fixed 12×31 day grid for a journal year.
package calendar

import (
	"time"

	"tableflip.dev/journali/pkg/entry"
)

const (
	// Months is the number of month rows in the grid.
	Months = 12
	// Slots is the number of day slots per month row. Months shorter than 31
	// days pad the tail of their row with empty placeholder days.
	Slots = 31
)

// Day is one slot in the year grid.
type Day struct {
	Date     time.Time
	Key      string
	Month    int // 0..11
	Day      int // 1..31
	IsToday  bool
	IsFuture bool
	IsEmpty  bool
}

// Year builds the 12×31 grid for the given year. The reference day is passed
// in rather than read from the clock so the result is pure: identical
// (year, today) inputs always yield an identical grid.
func Year(year int, today time.Time) [][]Day {
	ref := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local)

	months := make([][]Day, 0, Months)
	for month := 0; month < Months; month++ {
		days := make([]Day, 0, Slots)
		length := DaysInMonth(year, month)
		for day := 1; day <= Slots; day++ {
			if day > length {
				days = append(days, Day{Month: month, Day: day, IsEmpty: true})
				continue
			}
			date := time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.Local)
			days = append(days, Day{
				Date:     date,
				Key:      entry.Key(date),
				Month:    month,
				Day:      day,
				IsToday:  date.Equal(ref),
				IsFuture: date.After(ref),
			})
		}
		months = append(months, days)
	}
	return months
}

// DaysInMonth returns the true Gregorian length of month (0..11) in year,
// computed as the day-of-month of the 0th day of the following month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}
