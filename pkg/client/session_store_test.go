package client

import (
	"path/filepath"
	"testing"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	store := NewSessionStore(filepath.Join(t.TempDir(), "session.yaml"))

	token, err := store.Load()
	if err != nil {
		t.Fatalf("Load() on a fresh store: %v", err)
	}
	if token != "" {
		t.Errorf("fresh store holds token %q", token)
	}

	if err := store.Save("t1"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if token, err = store.Load(); err != nil || token != "t1" {
		t.Errorf("Load() after Save = %q, %v; want \"t1\"", token, err)
	}

	// Overwrite keeps only the newest token.
	if err := store.Save("t2"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if token, err = store.Load(); err != nil || token != "t2" {
		t.Errorf("Load() after second Save = %q, %v; want \"t2\"", token, err)
	}
}

func TestSessionStoreClear(t *testing.T) {
	store := NewSessionStore(filepath.Join(t.TempDir(), "session.yaml"))

	if err := store.Save("t1"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if token, err := store.Load(); err != nil || token != "" {
		t.Errorf("Load() after Clear = %q, %v; want empty", token, err)
	}

	// Clearing again is a no-op, not an error.
	if err := store.Clear(); err != nil {
		t.Errorf("Clear() on an empty store: %v", err)
	}
}
