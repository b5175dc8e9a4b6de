package stats

import (
	"testing"
	"time"

	"tableflip.dev/journali/pkg/entry"
)

func mapOf(keys ...string) map[string]entry.Entry {
	m := make(map[string]entry.Entry, len(keys))
	for _, k := range keys {
		m[k] = entry.New(k, "note")
	}
	return m
}

func TestStreakThreeDays(t *testing.T) {
	today := time.Date(2024, time.March, 10, 18, 0, 0, 0, time.Local)
	m := mapOf("2024-03-10", "2024-03-09", "2024-03-08", "2024-03-06")
	if got := Derive(m, today).Streak; got != 3 {
		t.Fatalf("expected streak 3, got %d", got)
	}
}

func TestStreakZeroWithoutToday(t *testing.T) {
	today := time.Date(2024, time.March, 10, 18, 0, 0, 0, time.Local)
	m := mapOf("2024-03-09", "2024-03-08")
	if got := Derive(m, today).Streak; got != 0 {
		t.Fatalf("expected streak 0, got %d", got)
	}
}

func TestStreakReflectsFreshEntry(t *testing.T) {
	today := time.Date(2024, time.March, 10, 18, 0, 0, 0, time.Local)
	m := mapOf("2024-03-09")
	if got := Derive(m, today).Streak; got != 0 {
		t.Fatalf("expected streak 0 before today's entry, got %d", got)
	}
	m["2024-03-10"] = entry.New("2024-03-10", "just written")
	if got := Derive(m, today).Streak; got != 2 {
		t.Fatalf("expected streak 2 after today's entry, got %d", got)
	}
}

func TestStreakCrossesYearBoundary(t *testing.T) {
	today := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.Local)
	m := mapOf("2024-01-01", "2023-12-31", "2023-12-30")
	if got := Derive(m, today).Streak; got != 3 {
		t.Fatalf("expected streak 3, got %d", got)
	}
}

func TestEntriesCount(t *testing.T) {
	today := time.Date(2024, time.March, 10, 18, 0, 0, 0, time.Local)
	m := mapOf("2024-01-01", "2024-02-14", "2024-03-10")
	if got := Derive(m, today).Entries; got != 3 {
		t.Fatalf("expected 3 entries, got %d", got)
	}
	if got := Derive(nil, today).Entries; got != 0 {
		t.Fatalf("expected 0 entries for nil map, got %d", got)
	}
}

func TestDaysPassed(t *testing.T) {
	cases := []struct {
		name  string
		today time.Time
		want  int
	}{
		{"january first", time.Date(2024, time.January, 1, 10, 0, 0, 0, time.Local), 1},
		{"tenth of march leap year", time.Date(2024, time.March, 10, 10, 0, 0, 0, time.Local), 70},
		{"last day clamps in leap year", time.Date(2024, time.December, 31, 10, 0, 0, 0, time.Local), 365},
		{"last day plain year", time.Date(2023, time.December, 31, 10, 0, 0, 0, time.Local), 365},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Derive(nil, tc.today).DaysPassed; got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}
