package ui

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/journali/pkg/journal"
	teaui "tableflip.dev/journali/pkg/tui/app"
)

// UI launches the interactive year grid.
type UI struct {
	Year    int
	User    string
	Journal *journal.Journal
}

func (n *UI) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not start ui, no journal")
	}
	now := time.Now()
	if n.Year == 0 {
		n.Year = now.Year()
	}

	if err := n.Journal.Load(ctx, n.Year, n.User); err != nil {
		return err
	}

	return teaui.Run(n.Journal, n.Year, now)
}
