package testsupport

import (
	"testing"

	"github.com/lkho/lrc-maker/internal/config"
	"github.com/lkho/lrc-maker/internal/drafts"
	"github.com/lkho/lrc-maker/internal/logging"
)

// MustOpenStore opens a drafts.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *drafts.Store {
	t.Helper()

	store, err := drafts.Open(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("drafts.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
