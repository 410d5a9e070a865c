package prefs

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/lkho/lrc-maker/internal/logging"
	"github.com/lkho/lrc-maker/internal/lrc"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	clearLocale(t)
	return Open(filepath.Join(t.TempDir(), "config", "prefs.json"), logging.NewNop())
}

func TestStoreLoadMissingFileUsesDefaults(t *testing.T) {
	store := newTestStore(t)
	if got := store.Load(); got != Defaults() {
		t.Fatalf("Load = %+v, want defaults", got)
	}
}

func TestStoreLoadCorruptFileUsesDefaults(t *testing.T) {
	store := newTestStore(t)
	if err := os.MkdirAll(filepath.Dir(store.Path()), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(store.Path(), []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := store.Load(); got != Defaults() {
		t.Fatalf("Load = %+v, want defaults", got)
	}
}

func TestStoreSaveAndUpdate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	p := Defaults()
	p.SpaceStart = 0
	if err := store.Save(ctx, p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	updated, err := store.Update(ctx, KeyFixed, "2")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.SpaceStart != 0 || updated.Precision != lrc.PrecisionHundredths {
		t.Fatalf("unexpected updated prefs %+v", updated)
	}
	if got := store.Load(); got != updated {
		t.Fatalf("Load after Update = %+v, want %+v", got, updated)
	}

	if _, err := store.Update(ctx, KeyFixed, "5"); err == nil {
		t.Fatal("expected invalid update to fail")
	}
	if got := store.Load(); got != updated {
		t.Fatalf("failed update changed stored prefs: %+v", got)
	}
}

func TestStoreReset(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.Update(ctx, KeySpaceEnd, "3"); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := store.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if got := store.Load(); got != Defaults() {
		t.Fatalf("Load after Reset = %+v", got)
	}
	if err := store.Reset(ctx); err != nil {
		t.Fatalf("Reset of missing file: %v", err)
	}
}

func TestStoreConcurrentUpdates(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for _, kv := range [][2]string{{KeySpaceStart, "4"}, {KeySpaceEnd, "5"}} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Separate handles contend on the lock file like separate processes.
			other := Open(store.Path(), logging.NewNop())
			if _, err := other.Update(ctx, kv[0], kv[1]); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent update failed: %v", err)
	}

	got := store.Load()
	if got.SpaceStart != 4 || got.SpaceEnd != 5 {
		t.Fatalf("lost update: %+v", got)
	}
}
