package stats

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/journali/pkg/journal"
	"tableflip.dev/journali/pkg/remote"
)

// fixedStore serves a canned set of rows.
type fixedStore struct {
	rows []remote.Row
}

func (f *fixedStore) FetchEntries(context.Context, string, string, string) ([]remote.Row, error) {
	return f.rows, nil
}

func (f *fixedStore) UpsertEntry(context.Context, string, string, string) error { return nil }
func (f *fixedStore) DeleteEntry(context.Context, string, string) error         { return nil }

func TestDoRequiresJournal(t *testing.T) {
	n := &Stats{Year: 2024, User: "scott"}
	if err := n.Do(context.Background()); err == nil {
		t.Fatalf("expected an error without a journal")
	}
}

func TestDoJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	prev := color.Output
	color.Output = &buf
	defer func() { color.Output = prev }()

	store := &fixedStore{rows: []remote.Row{
		{Date: "2024-03-09", Content: "rain"},
		{Date: "2024-03-10", Content: "sun"},
	}}
	n := &Stats{
		Year:    2024,
		User:    "scott",
		JSON:    true,
		Journal: journal.New(store),
	}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}

	var got statsPayload
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if got.Year != 2024 {
		t.Fatalf("expected the loaded year in the payload, got %d", got.Year)
	}
	if got.Entries != 2 {
		t.Fatalf("expected 2 entries, got %d", got.Entries)
	}
	if got.DaysPassed < 1 || got.DaysPassed > 365 {
		t.Fatalf("daysPassed out of range: %d", got.DaysPassed)
	}
}
