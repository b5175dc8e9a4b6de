package grid

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/journali/pkg/calendar"
	"tableflip.dev/journali/pkg/journal"
	"tableflip.dev/journali/pkg/printers"
)

// Grid prints the year grid with the stats footer.
type Grid struct {
	Year    int
	User    string
	Journal *journal.Journal
}

func (n *Grid) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not show grid, no journal")
	}
	now := time.Now()
	if n.Year == 0 {
		n.Year = now.Year()
	}

	if err := n.Journal.Load(ctx, n.Year, n.User); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Grid(calendar.Year(n.Year, now), n.Journal.Entries())
	pp.Stats(n.Journal.Stats(now))
	return nil
}
