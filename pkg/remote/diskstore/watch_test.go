package diskstore

import (
	"context"
	"testing"
	"time"
)

func TestWatchSeesUpsert(t *testing.T) {
	s := New(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Seed the user bucket so the directory exists before watching starts.
	if err := s.UpsertEntry(ctx, "scott", "2024-03-09", "seed"); err != nil {
		t.Fatalf("seed upsert: %v", err)
	}

	events, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	if err := s.UpsertEntry(ctx, "scott", "2024-03-10", "hello"); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				t.Fatalf("event channel closed before change arrived")
			}
			if ev.User == "scott" && ev.Date == "2024-03-10" {
				return
			}
			// Bucket-level or unrelated events may arrive first; keep
			// draining until the row change shows up.
		case <-deadline:
			t.Fatalf("timed out waiting for change event")
		}
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	s := New(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())

	events, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	select {
	case _, ok := <-events:
		if ok {
			// Drain anything buffered before the close.
			for range events {
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for channel close")
	}
}
