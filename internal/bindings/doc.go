// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package bindings turns configured shortcuts into command ids.
//
// A Table parses every shortcut definition through a commands.Registry
// and indexes the result by key. Reload clears the registry before
// parsing again, so ids from an older table must not be kept. Watcher
// reloads a table whenever its config file changes.
//
//	reg := commands.NewRegistry(nil)
//	table := bindings.Build(cfg, reg)
//	if id, ok := table.Lookup("ctrl+h"); ok {
//	    inst, _ := reg.Find(id)
//	    ...
//	}
package bindings
