package dataset

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/perfviz/netcompare/internal/util"
)

// Watcher reloads the dataset when its file changes on disk and hands each
// new store version to the registered callback.
type Watcher struct {
	loader  *Loader
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the loader's dataset file. The parent
// directory is watched rather than the file itself so atomic replace
// (write-to-temp-then-rename) is picked up too.
func NewWatcher(loader *Loader) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(loader.Path())); err != nil {
		watcher.Close()
		return nil, err
	}

	return &Watcher{loader: loader, watcher: watcher}, nil
}

// Run blocks, invoking onReload with the new store after every change to the
// dataset file, until the context is cancelled. Touches that do not change
// the file fingerprint keep the current store version and are not reported.
func (w *Watcher) Run(ctx context.Context, onReload func(*Store)) error {
	lastVersion := w.loader.Version()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.loader.Path()) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			store, err := w.loader.Load()
			if err != nil {
				util.LogErrorf("Dataset reload failed: %v", err)
				continue
			}
			if store.Version == lastVersion {
				continue
			}
			lastVersion = store.Version
			onReload(store)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			util.LogError("Dataset watch error: " + err.Error())
		}
	}
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
