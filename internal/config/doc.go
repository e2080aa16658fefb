// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads the cmdbind configuration: palette settings and the
// shortcut definitions that the bindings package turns into command ids.
//
// Supports both TOML and JSON configuration formats, with defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: palette settings plus the shortcut list
//   - Shortcut: one command definition with its key and palette label
//   - ValidateErrors: every problem Validate found, by field
//
// # Configuration Precedence
//
// The file is chosen from (first match wins):
//   - $CMDBIND_CONFIG
//   - ~/.cmdbind/config.toml
//   - ~/.cmdbind/config.json
//   - Built-in defaults
//
// CMDBIND_* environment variables, optionally loaded from a .env file,
// override values from the file.
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, s := range cfg.Shortcuts {
//	    fmt.Println(s.Key, s.Cmd)
//	}
package config
