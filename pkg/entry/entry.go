// Package entry defines the journal entry record and its date-key format.
package entry

import (
	"strings"
	"time"
)

// LayoutKey is the canonical date key layout, YYYY-MM-DD with zero padding.
// The same string is used as the in-memory map key and as the remote store
// key; the two must stay byte-identical or lookups silently miss.
const LayoutKey = "2006-01-02"

// Entry associates one calendar date with free-text content.
type Entry struct {
	Date    string `json:"date"`
	Content string `json:"content"`
}

// New builds an entry for the given date key.
func New(date, content string) Entry {
	return Entry{Date: date, Content: content}
}

// Key formats t as a date key at calendar-day granularity.
func Key(t time.Time) string {
	return t.Format(LayoutKey)
}

// ParseKey parses a date key back into a local midnight time. It rejects
// anything that is not a real calendar date in strict YYYY-MM-DD form.
func ParseKey(key string) (time.Time, error) {
	return time.ParseInLocation(LayoutKey, key, time.Local)
}

// Blank reports whether content trims to empty. Blank entries are never
// persisted; writing blank content deletes the entry instead.
func Blank(content string) bool {
	return strings.TrimSpace(content) == ""
}
