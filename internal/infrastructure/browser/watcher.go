package browser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/theme-control/internal/domain/theme"
	"github.com/bnema/theme-control/internal/logging"
	"github.com/fsnotify/fsnotify"
)

// StateWatcher reports every new version of the state file.
// The parent directory is watched so atomic replaces are seen.
type StateWatcher struct {
	store *StateFile
}

// NewStateWatcher creates a watcher for store's file.
func NewStateWatcher(store *StateFile) *StateWatcher {
	return &StateWatcher{store: store}
}

// Watch blocks until ctx is cancelled, calling handle with each state that
// parses. The same state may be reported more than once.
func (w *StateWatcher) Watch(ctx context.Context, handle func(theme.State)) error {
	log := logging.FromContext(ctx)

	path := filepath.Clean(w.store.Path())
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	log.Debug().Str("dir", dir).Msg("watching theme state")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			state, err := w.store.Load(ctx)
			if err != nil {
				log.Debug().Err(err).Str("op", event.Op.String()).Msg("skipping unreadable theme state")
				continue
			}
			handle(state)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("theme state watcher error")
		}
	}
}
