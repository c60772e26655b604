package testsupport

import (
	"testing"

	"tubescribe/internal/catalog"
	"tubescribe/internal/config"
	"tubescribe/internal/logging"
)

// NewStore opens a catalog store rooted at the test config's output
// directory.
func NewStore(t testing.TB, cfg *config.Config) *catalog.Store {
	t.Helper()
	return catalog.NewStore(cfg.Paths.OutputDir, logging.NewNop())
}

// SeedEntry inserts a catalog entry for tests.
func SeedEntry(t testing.TB, store *catalog.Store, id string, entry catalog.Entry) {
	t.Helper()
	if err := store.Put(id, entry); err != nil {
		t.Fatalf("store.Put: %v", err)
	}
}
