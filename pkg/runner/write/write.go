package write

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/journali/pkg/entry"
	"tableflip.dev/journali/pkg/journal"
	"tableflip.dev/journali/pkg/printers"
)

// Write records (or, with blank content, removes) the entry for one date.
type Write struct {
	Date    string // date key; empty means today
	Content string
	User    string
	Journal *journal.Journal
}

func (n *Write) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not write, no journal")
	}
	if n.User == "" {
		return errors.New("can not write, no user configured")
	}

	day := time.Now()
	if n.Date != "" {
		parsed, err := entry.ParseKey(n.Date)
		if err != nil {
			return fmt.Errorf("bad date %q: %w", n.Date, err)
		}
		day = parsed
	}
	key := entry.Key(day)

	now := time.Now()
	if key > entry.Key(now) {
		return fmt.Errorf("can not write the future (%s)", key)
	}

	if err := n.Journal.Load(ctx, day.Year(), n.User); err != nil {
		return err
	}

	n.Journal.UpdateEntry(ctx, key, n.Content)
	// A CLI process exits right after the command; drain the
	// fire-and-forget persistence before it does.
	n.Journal.Wait()

	pp := printers.PrettyPrint{}
	if entry.Blank(n.Content) {
		pp.Title(key + " cleared")
		return nil
	}
	pp.Title(key)
	fmt.Println(n.Content)
	return nil
}
