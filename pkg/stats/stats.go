// Package stats derives journal statistics from the entry map.
package stats

import (
	"time"

	"tableflip.dev/journali/pkg/entry"
)

// maxDaysPassed caps the elapsed-day counter. Year rollover or clock skew
// could otherwise push the count past a full year.
const maxDaysPassed = 365

// Stats summarizes a year of journaling as of a reference day.
type Stats struct {
	Entries    int
	DaysPassed int
	Streak     int
}

// Derive recomputes all statistics from scratch. The reference day is
// injected so the computation stays pure; callers must re-derive after every
// mutation rather than cache across one.
func Derive(entries map[string]entry.Entry, today time.Time) Stats {
	return Stats{
		Entries:    len(entries),
		DaysPassed: daysPassed(today),
		Streak:     streak(entries, today),
	}
}

// daysPassed counts calendar days from January 1 of today's year through
// today, inclusive, clamped to maxDaysPassed.
func daysPassed(today time.Time) int {
	// Normalized to UTC midnights so daylight saving shifts in the local
	// zone cannot skew the division.
	start := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	days := int(day.Sub(start).Hours()/24) + 1
	if days > maxDaysPassed {
		days = maxDaysPassed
	}
	if days < 1 {
		days = 1
	}
	return days
}

// streak walks backward from today counting consecutive days with entries.
// The streak is the currently active one: a missing entry for today yields
// zero no matter what came before.
func streak(entries map[string]entry.Entry, today time.Time) int {
	n := 0
	for day := today; ; day = day.AddDate(0, 0, -1) {
		if _, ok := entries[entry.Key(day)]; !ok {
			break
		}
		n++
	}
	return n
}
