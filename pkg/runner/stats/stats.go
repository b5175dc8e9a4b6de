package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/journali/pkg/journal"
	"tableflip.dev/journali/pkg/printers"
)

// Stats prints the entries/streak/days summary for a year.
type Stats struct {
	Year    int
	User    string
	List    bool // also list the entries themselves
	JSON    bool // machine-readable output instead of the pretty table
	Journal *journal.Journal
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not show stats, no journal")
	}
	now := time.Now()
	if n.Year == 0 {
		n.Year = now.Year()
	}

	if err := n.Journal.Load(ctx, n.Year, n.User); err != nil {
		return err
	}

	if n.JSON {
		return n.printJSON(now)
	}

	pp := printers.PrettyPrint{}
	pp.Title(fmt.Sprintf("%d", n.Journal.Year()))
	pp.Stats(n.Journal.Stats(now))
	if n.List {
		pp.NewLine()
		pp.Entries(n.Journal.Entries())
	}
	return nil
}

// statsPayload is the JSON shape of the summary.
type statsPayload struct {
	Year       int `json:"year"`
	Entries    int `json:"entriesCount"`
	DaysPassed int `json:"daysPassed"`
	Streak     int `json:"streak"`
}

func (n *Stats) printJSON(now time.Time) error {
	s := n.Journal.Stats(now)
	b, err := json.Marshal(statsPayload{
		Year:       n.Journal.Year(),
		Entries:    s.Entries,
		DaysPassed: s.DaysPassed,
		Streak:     s.Streak,
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(color.Output, string(b))
	return err
}
