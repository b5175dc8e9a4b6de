package watch

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/journali/pkg/remote/diskstore"
)

// Watch tails the local store and prints a line per change. Useful when an
// external sync agent is writing the same directory.
type Watch struct {
	Store *diskstore.Store
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not watch, no local store")
	}

	events, err := n.Store.Watch(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("watching %s\n", n.Store.BasePath())
	for ev := range events {
		if ev.Date == "" {
			fmt.Println("store changed")
			continue
		}
		fmt.Printf("%s changed\n", ev.Date)
	}
	return ctx.Err()
}
