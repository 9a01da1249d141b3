package dataset

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReload(t *testing.T) {
	path := writeDataset(t, testDataset)
	loader := NewLoader(path)

	_, err := loader.Load()
	require.NoError(t, err)

	watcher, err := NewWatcher(loader)
	require.NoError(t, err)
	defer watcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *Store, 1)
	done := make(chan error, 1)
	go func() {
		done <- watcher.Run(ctx, func(store *Store) {
			select {
			case reloaded <- store:
			default:
			}
		})
	}()

	// Give the watcher a moment to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(testDataset+"\n  "), 0644))

	select {
	case store := <-reloaded:
		assert.Equal(t, uint64(2), store.Version)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not report a reload")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop on cancel")
	}
}
