package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// Watch reloads dir/content.yaml into catalog whenever it changes on disk,
// until ctx is cancelled. A document that fails validation is logged and the
// previous one stays in place.
func Watch(ctx context.Context, catalog *Catalog, fs afero.Fs, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}
	// Watch the directory rather than the file so editors that replace the
	// file on save keep triggering events.
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	logger := slog.Default().With("service", "content", "dir", dir)
	logger.Info("Watching content for changes")

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != FileName {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				doc, err := Load(fs, dir)
				if err != nil {
					logger.Error("Failed to reload content, keeping previous version", "error", err)
					continue
				}
				catalog.Replace(doc)
				logger.Info("Reloaded content", "games", len(doc.Games), "team", len(doc.Team))
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Error("Content watcher error", "error", err)
			}
		}
	}()
	return nil
}
