// Package journal holds the in-memory entry map for one (year, user) and
// reconciles optimistic local edits against the remote store.
package journal

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"tableflip.dev/journali/pkg/entry"
	"tableflip.dev/journali/pkg/remote"
	"tableflip.dev/journali/pkg/stats"
)

// Journal is the only component that mutates the entry map. Edits land in
// the map synchronously and are persisted fire-and-forget; the local view is
// authoritative until the next successful Load.
type Journal struct {
	mu      sync.Mutex
	remote  remote.Store
	user    string
	year    int
	entries map[string]entry.Entry

	// gen invalidates in-flight loads: every Load and SignOut bumps it, and
	// a fetch result is only applied while its generation is still current.
	// Without this a slow load for a previous year could overwrite a freshly
	// loaded map for the new one.
	gen uint64

	wg sync.WaitGroup
}

// New builds a journal over the given remote store with nobody signed in.
func New(store remote.Store) *Journal {
	return &Journal{
		remote:  store,
		entries: make(map[string]entry.Entry),
	}
}

// Load fetches every entry for user in year and replaces the entry map
// wholesale. On remote failure the map, the signed-in user and the loaded
// year are all left as they were, the failure is logged and returned, and no
// retry is attempted.
func (j *Journal) Load(ctx context.Context, year int, user string) error {
	j.mu.Lock()
	j.gen++
	gen := j.gen
	j.mu.Unlock()

	start := fmt.Sprintf("%04d-01-01", year)
	end := fmt.Sprintf("%04d-12-31", year)
	rows, err := j.remote.FetchEntries(ctx, user, start, end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "journal: load %d: %v\n", year, err)
		return err
	}

	loaded := make(map[string]entry.Entry, len(rows))
	for _, row := range rows {
		loaded[row.Date] = entry.New(row.Date, row.Content)
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.gen != gen {
		// Superseded by a newer Load or SignOut while fetching.
		return nil
	}
	j.year = year
	j.user = user
	j.entries = loaded
	return nil
}

// UpdateEntry records content for date. Without a signed-in user it is a
// no-op. The map mutation happens synchronously before this returns: blank
// content removes the entry, anything else stores the untrimmed content so
// in-progress whitespace stays visible while typing. Persistence then runs
// in the background; a failure there is logged but never rolled back, so the
// local view can run ahead of the remote until the next Load.
//
// Calls for the same date apply to the map in call order. Their persistence
// requests may still race each other; the store's keyed replace makes the
// outcome eventually consistent with the last request the network delivers.
func (j *Journal) UpdateEntry(ctx context.Context, date, content string) {
	j.mu.Lock()
	user := j.user
	if user == "" {
		j.mu.Unlock()
		return
	}
	blank := entry.Blank(content)
	if blank {
		delete(j.entries, date)
	} else {
		j.entries[date] = entry.New(date, content)
	}
	j.mu.Unlock()

	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		var err error
		if blank {
			err = j.remote.DeleteEntry(ctx, user, date)
		} else {
			err = j.remote.UpsertEntry(ctx, user, date, content)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "journal: persist %s: %v\n", date, err)
		}
	}()
}

// SignOut forgets the user and clears the map. Any in-flight load result
// arriving afterwards is discarded.
func (j *Journal) SignOut() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.gen++
	j.user = ""
	j.entries = make(map[string]entry.Entry)
}

// Wait blocks until all background persistence has settled. Call before
// process exit so fire-and-forget writes are not lost.
func (j *Journal) Wait() {
	j.wg.Wait()
}

// Entries returns a read-only snapshot of the entry map.
func (j *Journal) Entries() map[string]entry.Entry {
	j.mu.Lock()
	defer j.mu.Unlock()
	snapshot := make(map[string]entry.Entry, len(j.entries))
	for k, v := range j.entries {
		snapshot[k] = v
	}
	return snapshot
}

// Entry looks up the entry at date.
func (j *Journal) Entry(date string) (entry.Entry, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	e, ok := j.entries[date]
	return e, ok
}

// Stats derives the statistics for the current map as of today.
func (j *Journal) Stats(today time.Time) stats.Stats {
	return stats.Derive(j.Entries(), today)
}

// Year reports the currently loaded year.
func (j *Journal) Year() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.year
}

// User reports who is signed in, empty when nobody is.
func (j *Journal) User() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.user
}
