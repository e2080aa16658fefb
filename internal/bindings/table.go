// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package bindings

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/cmdbind/internal/commands"
	"github.com/jeranaias/cmdbind/internal/config"
)

// =============================================================================
// BINDING TYPES
// =============================================================================

// Binding is a shortcut whose definition resolved to a command id.
type Binding struct {
	// ID is a built-in id or a registry instance id.
	ID commands.ID

	// Definition is the configured command text.
	Definition string

	// Key is the normalized key, empty for palette-only shortcuts.
	Key string

	// Name is the palette label, empty when not shown in the palette.
	Name string

	// Binding matches tea.KeyMsg values and carries help text.
	Binding key.Binding
}

// Broken is a shortcut whose definition did not resolve.
type Broken struct {
	Index    int
	Shortcut config.Shortcut
	Err      error
}

func (b Broken) Error() string {
	return fmt.Sprintf("shortcuts[%d] %q: %v", b.Index, b.Shortcut.Cmd, b.Err)
}

func (b Broken) Unwrap() error {
	return b.Err
}

// =============================================================================
// TABLE
// =============================================================================

// Table maps keys to the command ids of the configured shortcuts.
// It is safe for concurrent use.
type Table struct {
	mu       sync.RWMutex
	registry *commands.Registry
	bindings []Binding
	byKey    map[string]int
	broken   []Broken
}

// Build parses every shortcut of cfg through reg. Broken shortcuts are
// logged and skipped; see Table.Broken.
func Build(cfg *config.Config, reg *commands.Registry) *Table {
	t := &Table{registry: reg}
	t.rebuild(cfg)
	return t
}

// Reload clears the registry and rebuilds the table from cfg. Ids handed
// out before the reload are no longer valid.
func (t *Table) Reload(cfg *config.Config) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.registry.Clear()
	t.rebuildLocked(cfg)
}

func (t *Table) rebuild(cfg *config.Config) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rebuildLocked(cfg)
}

func (t *Table) rebuildLocked(cfg *config.Config) {
	logger := t.registry.Logger()
	t.bindings = nil
	t.byKey = make(map[string]int)
	t.broken = nil

	for i, s := range cfg.Shortcuts {
		id, err := t.registry.ParseDefinition(s.Cmd)
		if err != nil {
			logger.Printf("BINDING_BROKEN | index=%d key=%q error=%v", i, s.Key, err)
			t.broken = append(t.broken, Broken{Index: i, Shortcut: s, Err: err})
			continue
		}
		k := config.NormalizeKey(s.Key)
		if _, dup := t.byKey[k]; dup && k != "" {
			err := fmt.Errorf("key %q is already bound", s.Key)
			logger.Printf("BINDING_BROKEN | index=%d key=%q error=%v", i, s.Key, err)
			t.broken = append(t.broken, Broken{Index: i, Shortcut: s, Err: err})
			continue
		}

		b := Binding{ID: id, Definition: s.Cmd, Key: k, Name: s.Name}
		if k != "" {
			help := s.Name
			if help == "" {
				help = s.Cmd
			}
			b.Binding = key.NewBinding(key.WithKeys(k), key.WithHelp(k, help))
			t.byKey[k] = len(t.bindings)
		} else {
			b.Binding = key.NewBinding(key.WithDisabled())
		}
		t.bindings = append(t.bindings, b)
	}
	logger.Printf("BINDINGS_BUILT | bound=%d broken=%d", len(t.bindings), len(t.broken))
}

// Lookup resolves a key description such as "ctrl+h".
func (t *Table) Lookup(k string) (commands.ID, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	i, ok := t.byKey[config.NormalizeKey(k)]
	if !ok {
		return commands.InvalidID, false
	}
	return t.bindings[i].ID, true
}

// Match resolves a key press.
func (t *Table) Match(msg tea.KeyMsg) (commands.ID, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, b := range t.bindings {
		if key.Matches(msg, b.Binding) {
			return b.ID, true
		}
	}
	return commands.InvalidID, false
}

// Bindings returns the resolved shortcuts in config order.
func (t *Table) Bindings() []Binding {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Binding, len(t.bindings))
	copy(out, t.bindings)
	return out
}

// Named returns the shortcuts that carry a palette label.
func (t *Table) Named() []Binding {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var out []Binding
	for _, b := range t.bindings {
		if b.Name != "" {
			out = append(out, b)
		}
	}
	return out
}

// KeyBindings returns the enabled key bindings, for help views.
func (t *Table) KeyBindings() []key.Binding {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var out []key.Binding
	for _, b := range t.bindings {
		if b.Binding.Enabled() {
			out = append(out, b.Binding)
		}
	}
	return out
}

// Broken returns the shortcuts that failed to resolve.
func (t *Table) Broken() []Broken {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Broken, len(t.broken))
	copy(out, t.broken)
	return out
}

// Err joins the errors of every broken shortcut, or returns nil.
func (t *Table) Err() error {
	broken := t.Broken()
	if len(broken) == 0 {
		return nil
	}
	errs := make([]error, len(broken))
	for i, b := range broken {
		errs[i] = b
	}
	return errors.Join(errs...)
}

// Registry returns the registry the table parses into.
func (t *Table) Registry() *commands.Registry {
	return t.registry
}
