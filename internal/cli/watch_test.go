package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestWatchCatalog(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := t.TempDir()
	nested := filepath.Join(root, "skills", "react")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	changed := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- watchCatalog(ctx, root, 20*time.Millisecond, func() { changed <- struct{}{} })
	}()

	// Give the watcher time to register the directories.
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(nested, "metadata.yaml"), []byte("id: a\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Error("onChange was not called after a write in a nested directory")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watchCatalog() error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watchCatalog did not return after cancel")
	}
}

func TestWatchCatalog_MissingRoot(t *testing.T) {
	err := watchCatalog(context.Background(), filepath.Join(t.TempDir(), "missing"), time.Millisecond, func() {})
	if err == nil {
		t.Error("expected error for missing root")
	}
}
