// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/jeranaias/cmdbind/internal/color"
)

// =============================================================================
// COMMAND INSTANCES
// =============================================================================

// CommandWithArg is a command bound to parsed arguments under a fresh id.
// Instances are immutable once registered.
type CommandWithArg struct {
	// ID is unique for the life of the Registry that minted it.
	ID ID

	// OrigID is the resolved command before family canonicalization.
	OrigID ID

	// Definition is the source text, kept for diagnostics.
	Definition string

	// args are in parse order; lookups scan from the end so the most
	// recently parsed duplicate wins.
	args []Arg

	logger *log.Logger
}

// Args returns a copy of the parsed arguments in parse order.
func (c *CommandWithArg) Args() []Arg {
	if c == nil {
		return nil
	}
	out := make([]Arg, len(c.args))
	copy(out, c.args)
	return out
}

// Arg returns the argument with the given name, compared case-insensitively.
func (c *CommandWithArg) Arg(name string) (Arg, bool) {
	if c == nil {
		return Arg{}, false
	}
	for i := len(c.args) - 1; i >= 0; i-- {
		if strings.EqualFold(c.args[i].Name, name) {
			return c.args[i], true
		}
	}
	return Arg{}, false
}

// findArg returns the argument named name with type typ. Same-named
// arguments of another type are reported and skipped.
func (c *CommandWithArg) findArg(name string, typ ArgType) (Arg, bool) {
	if c == nil {
		return Arg{}, false
	}
	for i := len(c.args) - 1; i >= 0; i-- {
		a := c.args[i]
		if !nameMatches(a.Name, name) {
			continue
		}
		if a.Type() == typ {
			return a, true
		}
		if c.logger != nil {
			c.logger.Printf("ARG_TYPE_MISMATCH | def=%q arg=%s want=%s got=%s", c.Definition, name, typ, a.Type())
		}
	}
	return Arg{}, false
}

// IntArg returns the named int argument, or def when absent.
func (c *CommandWithArg) IntArg(name string, def int) int {
	if a, ok := c.findArg(name, ArgInt); ok {
		return int(a.Value.(IntValue))
	}
	return def
}

// BoolArg returns the named bool argument, or def when absent.
func (c *CommandWithArg) BoolArg(name string, def bool) bool {
	if a, ok := c.findArg(name, ArgBool); ok {
		return bool(a.Value.(BoolValue))
	}
	return def
}

// StringArg returns the named string argument, or def when absent.
func (c *CommandWithArg) StringArg(name string, def string) string {
	if a, ok := c.findArg(name, ArgString); ok {
		return string(a.Value.(StringValue))
	}
	return def
}

// ColorArg returns the named color argument.
func (c *CommandWithArg) ColorArg(name string) (color.Color, bool) {
	if a, ok := c.findArg(name, ArgColor); ok {
		return a.Value.(ColorValue).Color, true
	}
	return color.Color{}, false
}

// =============================================================================
// REGISTRY
// =============================================================================

// Registry mints ids for parsed definitions and keeps the resulting
// instances for lookup. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	nextID    ID
	instances map[ID]*CommandWithArg
	logger    *log.Logger
}

// NewRegistry creates an empty registry. A nil logger selects log.Default().
func NewRegistry(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Default()
	}
	return &Registry{
		nextID:    FirstInstanceID,
		instances: make(map[ID]*CommandWithArg),
		logger:    logger,
	}
}

// ParseDefinition resolves a definition such as "ScrollUp 5" or
// "CreateAnnotText color=#ff0000 openedit" to a command id.
//
// A definition without arguments resolves to the built-in id and creates
// nothing. Otherwise a new instance is registered and its fresh id is
// returned. On failure InvalidID is returned along with a *ParseError.
func (r *Registry) ParseDefinition(definition string) (ID, error) {
	name, rest, hasRest := strings.Cut(strings.TrimSpace(definition), " ")

	id := IDByName(name)
	if id == InvalidID {
		return r.fail(definition, "unknown command "+name, ErrNotFound)
	}
	if !hasRest {
		return id, nil
	}

	group, ok := GroupOf(id)
	if !ok {
		return r.fail(definition, name+" takes no arguments", ErrNoArguments)
	}
	specs := SpecsFor(group)
	if len(specs) == 0 {
		return r.fail(definition, fmt.Sprintf("no argument specs for group %d", group), ErrNoArguments)
	}

	args := scanArgs(specs, rest, definition, r.logger)
	if len(args) == 0 {
		return r.fail(definition, "no valid arguments", ErrMalformedDefinition)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	inst := &CommandWithArg{
		ID:         r.nextID,
		OrigID:     id,
		Definition: definition,
		args:       args,
		logger:     r.logger,
	}
	r.nextID++
	r.instances[inst.ID] = inst
	return inst.ID, nil
}

// Logger returns the logger diagnostics are written to.
func (r *Registry) Logger() *log.Logger {
	return r.logger
}

func (r *Registry) fail(definition, reason string, err error) (ID, error) {
	r.logger.Printf("PARSE_FAILED | def=%q reason=%s", definition, reason)
	return InvalidID, &ParseError{Definition: definition, Reason: reason, Err: err}
}

// Find returns the instance registered under id.
func (r *Registry) Find(id ID) (*CommandWithArg, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inst, ok := r.instances[id]
	return inst, ok
}

// Resolve returns the command id an instance was parsed from, or id
// itself for built-in commands. Unknown ids yield InvalidID.
func (r *Registry) Resolve(id ID) ID {
	if IsBuiltin(id) {
		return id
	}
	if inst, ok := r.Find(id); ok {
		return inst.OrigID
	}
	return InvalidID
}

// All returns the live instances ordered by id.
func (r *Registry) All() []*CommandWithArg {
	r.mu.RLock()
	out := make([]*CommandWithArg, 0, len(r.instances))
	for _, inst := range r.instances {
		out = append(out, inst)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of live instances.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.instances)
}

// Clear drops every instance. The id counter is not reset, so ids stay
// unique across clears.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.instances = make(map[ID]*CommandWithArg)
}
