package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/zoneline/internal/storage"
)

var _ storage.Provider = (*Store)(nil)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "state", "state.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSelectionRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	got, err := store.GetSelection()
	if err != nil {
		t.Fatalf("GetSelection() error = %v", err)
	}
	if got != "" {
		t.Errorf("GetSelection() = %q on fresh store, want empty", got)
	}

	for _, label := range []string{"JST", "PDT"} {
		if err := store.SaveSelection(label); err != nil {
			t.Fatalf("SaveSelection(%q) error = %v", label, err)
		}
	}
	if got, _ := store.GetSelection(); got != "PDT" {
		t.Errorf("GetSelection() = %q, want PDT", got)
	}
}

func TestLoadedAt(t *testing.T) {
	store := setupTestStore(t)

	if got, err := store.GetLoadedAt(); err != nil || !got.IsZero() {
		t.Errorf("GetLoadedAt() = %v, %v, want zero time", got, err)
	}

	at := time.Date(2024, time.March, 9, 23, 45, 30, 0, time.FixedZone("JST", 9*3600))
	if err := store.SaveLoadedAt(at); err != nil {
		t.Fatalf("SaveLoadedAt() error = %v", err)
	}
	got, err := store.GetLoadedAt()
	if err != nil {
		t.Fatalf("GetLoadedAt() error = %v", err)
	}
	if !got.Equal(at) {
		t.Errorf("GetLoadedAt() = %v, want %v", got, at)
	}
}

func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := store.SaveSelection("JST"); err != nil {
		t.Fatal(err)
	}
	store.Close()

	again := NewStore(path)
	if err := again.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	defer again.Close()
	if got, _ := again.GetSelection(); got != "JST" {
		t.Errorf("GetSelection() = %q after reopen, want JST", got)
	}
	if again.Path() != path {
		t.Errorf("Path() = %q, want %q", again.Path(), path)
	}
}

func TestLoadMissing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("Load() on missing file should fail")
	}
}

func TestClosedStore(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "state.db"))
	if _, err := store.GetSelection(); err == nil {
		t.Error("GetSelection() on unopened store should fail")
	}
	if err := store.SaveSelection("UTC"); err == nil {
		t.Error("SaveSelection() on unopened store should fail")
	}
}
