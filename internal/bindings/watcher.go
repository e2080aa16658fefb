// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package bindings

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jeranaias/cmdbind/internal/config"
)

// DefaultDebounce is how long the config file must stay quiet before a
// reload. Editors often write a file in several steps.
const DefaultDebounce = 200 * time.Millisecond

// Update reports one reload attempt. On failure Err is set and the table
// keeps its previous bindings.
type Update struct {
	Table *Table
	Err   error
}

// =============================================================================
// CONFIG WATCHER
// =============================================================================

// Watcher reloads a Table when its config file changes.
type Watcher struct {
	path     string
	table    *Table
	load     func(path string) (*config.Config, error)
	debounce time.Duration
	watcher  *fsnotify.Watcher
	updates  chan Update

	mu      sync.Mutex
	pending time.Time // last change not yet reloaded, zero when none
}

// NewWatcher watches path and reloads table through config.LoadFromPath.
// The parent directory is watched so that files replaced by rename are
// still seen.
func NewWatcher(path string, table *Table, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		path:     abs,
		table:    table,
		load:     config.LoadFromPath,
		debounce: debounce,
		watcher:  fsw,
		updates:  make(chan Update, 1),
	}, nil
}

// Updates delivers one Update per reload. It is closed when Run returns.
func (w *Watcher) Updates() <-chan Update {
	return w.updates
}

// Run processes file events until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.updates)
	defer w.watcher.Close()

	tick := w.debounce / 2
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	logger := w.table.Registry().Logger()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.mu.Lock()
			w.pending = time.Now()
			w.mu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Printf("WATCH_ERROR | path=%s error=%v", w.path, err)

		case <-ticker.C:
			if !w.due(time.Now()) {
				continue
			}
			u := w.reload()
			select {
			case w.updates <- u:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// due reports whether a pending change has been quiet long enough, and
// clears it if so.
func (w *Watcher) due(now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending.IsZero() || now.Sub(w.pending) < w.debounce {
		return false
	}
	w.pending = time.Time{}
	return true
}

func (w *Watcher) reload() Update {
	logger := w.table.Registry().Logger()
	cfg, err := w.load(w.path)
	if err != nil {
		logger.Printf("CONFIG_RELOAD_FAILED | path=%s error=%v", w.path, err)
		return Update{Table: w.table, Err: err}
	}
	w.table.Reload(cfg)
	logger.Printf("CONFIG_RELOADED | path=%s shortcuts=%d", w.path, len(cfg.Shortcuts))
	return Update{Table: w.table}
}
