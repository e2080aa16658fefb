// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package bindings

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jeranaias/cmdbind/internal/commands"
	"github.com/jeranaias/cmdbind/internal/config"
)

func startWatcher(t *testing.T, content string) (string, *Table, *Watcher) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := config.LoadFromPath(path)
	require.NoError(t, err)
	reg, _ := newRegistry()
	table := Build(cfg, reg)

	w, err := NewWatcher(path, table, 20*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return path, table, w
}

func nextUpdate(t *testing.T, w *Watcher) Update {
	t.Helper()
	select {
	case u, ok := <-w.Updates():
		require.True(t, ok, "updates closed")
		return u
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
	return Update{}
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path, table, w := startWatcher(t, "[[shortcuts]]\ncmd = \"ScrollUp 1\"\nkey = \"k\"\n")

	_, ok := table.Lookup("j")
	require.False(t, ok)

	require.NoError(t, os.WriteFile(path, []byte("[[shortcuts]]\ncmd = \"ScrollDown 3\"\nkey = \"j\"\n"), 0644))
	u := nextUpdate(t, w)
	require.NoError(t, u.Err)
	require.Same(t, table, u.Table)

	id, ok := table.Lookup("j")
	require.True(t, ok)
	inst, found := table.Registry().Find(id)
	require.True(t, found)
	require.Equal(t, commands.ScrollDown, inst.OrigID)
	_, ok = table.Lookup("k")
	require.False(t, ok)
}

func TestWatcher_BrokenFileKeepsTable(t *testing.T) {
	path, table, w := startWatcher(t, "[[shortcuts]]\ncmd = \"ScrollUp 1\"\nkey = \"k\"\n")

	require.NoError(t, os.WriteFile(path, []byte("[[shortcuts]\n"), 0644))
	u := nextUpdate(t, w)
	require.Error(t, u.Err)

	_, ok := table.Lookup("k")
	require.True(t, ok)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	path, _, w := startWatcher(t, "[[shortcuts]]\ncmd = \"ScrollUp 1\"\nkey = \"k\"\n")

	other := filepath.Join(filepath.Dir(path), "notes.txt")
	require.NoError(t, os.WriteFile(other, []byte("hello"), 0644))

	select {
	case u := <-w.Updates():
		t.Fatalf("unexpected update: %+v", u)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_StopsOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, nil, 0644))
	reg, _ := newRegistry()
	w, err := NewWatcher(path, Build(config.Default(), reg), 0)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- w.Run(ctx) }()
	cancel()

	select {
	case err := <-errc:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop")
	}
	_, ok := <-w.Updates()
	require.False(t, ok)
}

func TestWatcher_Debounce(t *testing.T) {
	w := &Watcher{debounce: 100 * time.Millisecond}
	now := time.Now()
	require.False(t, w.due(now))

	w.pending = now
	require.False(t, w.due(now.Add(50*time.Millisecond)))
	require.True(t, w.due(now.Add(100*time.Millisecond)))
	require.False(t, w.due(now.Add(200*time.Millisecond)), "pending must be cleared")
}
