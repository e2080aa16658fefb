// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the cmdbind subcommands.
//
// Run parses the command line, dispatches to a Handle* function and maps
// the returned error onto an exit code:
//
//	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
//
// # Commands
//
//   - parse: resolve definitions through a fresh registry
//   - list: print the catalog, optionally fuzzy-filtered
//   - check: build the shortcut table of a config file and report broken entries
//   - palette: interactive Bubble Tea command palette
//   - repl: liner-based definition loop with tab completion
//   - watch: rebuild the shortcut table on config changes
//   - init: write a sample config
//
// Every command accepts --json for machine-readable output.
package cli
