// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands resolves command definitions used by key bindings and
// the command palette.
//
// A definition is a command name optionally followed by arguments:
//
//	ScrollUp
//	ScrollUp 5
//	CreateAnnotHighlight color=#ffff00 openedit
//	Exec filter=*.pdf notepad.exe --flag
//
// # Key Types
//
//   - Command: an entry of the built-in catalog (id, name, description)
//   - ArgSpec: an argument accepted by an argument group
//   - Registry: mints ids for definitions that carry arguments
//   - CommandWithArg: a registered instance with typed accessors
//   - Context: palette availability rules
//
// # Usage
//
//	reg := commands.NewRegistry(nil)
//	id, err := reg.ParseDefinition("ScrollDown n=3")
//	if err != nil {
//	    return err
//	}
//	if inst, ok := reg.Find(id); ok {
//	    lines := inst.IntArg(commands.ArgNameN, 1)
//	}
//
// Plain definitions resolve to the built-in id and never touch the
// registry. Arguments are looked up by name; their order is not part of
// the contract.
package commands
