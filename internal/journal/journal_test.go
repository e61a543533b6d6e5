package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	entries := []Entry{
		{RunID: "run-1", Source: "/a.png", Destination: "/a_full.png", Target: "full", Outcome: "converted"},
		{RunID: "run-1", Source: "/b.png", Target: "full", Outcome: "skipped_exists"},
		{RunID: "run-2", Source: "/c.png", Target: "limited", Outcome: "failed", Error: "decode failed"},
	}
	for _, entry := range entries {
		if err := store.Record(ctx, entry); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	got, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// Most recent first.
	if got[0].Source != "/c.png" {
		t.Errorf("got[0].Source = %s, want /c.png", got[0].Source)
	}
	if got[0].Error != "decode failed" {
		t.Errorf("got[0].Error = %q", got[0].Error)
	}
	if got[1].Outcome != "skipped_exists" {
		t.Errorf("got[1].Outcome = %s", got[1].Outcome)
	}
	if got[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}

	all, err := store.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent(0) failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("unlimited len = %d, want 3", len(all))
	}
}

func TestPrune(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	old := Entry{RunID: "r", Source: "/old.png", Target: "full", Outcome: "converted",
		CreatedAt: time.Now().UTC().AddDate(0, 0, -90)}
	fresh := Entry{RunID: "r", Source: "/new.png", Target: "full", Outcome: "converted"}
	if err := store.Record(ctx, old); err != nil {
		t.Fatalf("Record old failed: %v", err)
	}
	if err := store.Record(ctx, fresh); err != nil {
		t.Fatalf("Record fresh failed: %v", err)
	}

	removed, err := store.Prune(ctx, 30)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}

	remaining, err := store.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Source != "/new.png" {
		t.Errorf("unexpected remaining entries: %+v", remaining)
	}
}

func TestReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "journal.db")
	ctx := context.Background()

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := store.Record(ctx, Entry{RunID: "r", Source: "/x.png", Target: "full", Outcome: "converted"}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	entries, err := reopened.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("len = %d, want 1", len(entries))
	}
}
