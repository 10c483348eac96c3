//go:build linux || darwin

package watching

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestWatchDetectsChange verifies that a watch on a directory strobes its
// events channel when an entry is created, and that cancellation terminates
// the watch.
func TestWatchDetectsChange(t *testing.T) {
	// Create a watch root.
	root := t.TempDir()

	// Start watching with a short polling interval so that the fallback path
	// also reacts quickly.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, root, events, 100*time.Millisecond)
	}()

	// Give the watch a moment to establish.
	time.Sleep(250 * time.Millisecond)

	// Create an entry beneath the root.
	if err := os.WriteFile(filepath.Join(root, "entry"), []byte("contents"), 0600); err != nil {
		t.Fatal("unable to create entry:", err)
	}

	// Await the change strobe.
	select {
	case <-events:
	case <-time.After(5 * time.Second):
		t.Fatal("no change event delivered")
	}

	// Cancel watching and verify termination.
	cancel()
	select {
	case err := <-done:
		if err == nil {
			t.Error("watch terminated without error despite cancellation")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not terminate after cancellation")
	}
}
