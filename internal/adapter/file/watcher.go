package file

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"mesa-pacing/internal/core/port"
)

// Watcher implements port.ConfigWatcher for a ConfigStore. Bursts of file
// events are coalesced; each settled change reloads the store and syncs
// every campaign.
type Watcher struct {
	store    *ConfigStore
	debounce time.Duration
	logger   *slog.Logger
}

// NewWatcher returns a watcher of store's file.
func NewWatcher(store *ConfigStore, debounce time.Duration, logger *slog.Logger) *Watcher {
	return &Watcher{store: store, debounce: debounce, logger: logger}
}

// Watch blocks until ctx is done.
func (w *Watcher) Watch(ctx context.Context, h port.ConfigChangeHandler) error {
	path, err := filepath.Abs(w.store.Path())
	if err != nil {
		return fmt.Errorf("resolve %s: %w", w.store.Path(), err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	// Editors replace files by rename, so the directory is watched.
	if err = fsw.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}
	w.logger.Info("watching budgets file", slog.String("path", path))

	settled := make(chan struct{}, 1)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case settled <- struct{}{}:
				default:
				}
			})
		case <-settled:
			w.reload(ctx, h)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("budgets watcher error", slog.Any("error", err))
		}
	}
}

func (w *Watcher) reload(ctx context.Context, h port.ConfigChangeHandler) {
	if err := w.store.Load(); err != nil {
		w.logger.Warn("budgets file reloaded with errors", slog.String("path", w.store.Path()), slog.Any("error", err))
	}
	if err := h.SyncConfigs(ctx); err != nil {
		w.logger.Warn("config sync incomplete", slog.Any("error", err))
	}
}
