// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util holds small helpers shared by the cmdbind packages.
//
// String Utilities:
//   - HasPrefixFold: case-insensitive prefix test used by the definition grammar
//   - TruncateRunes, TruncateWidth, PadWidth, StringWidth: display helpers
//
// Conversion:
//   - ParseInt: lenient decimal prefix parsing ("12px" is 12)
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
//
// # Usage
//
//	if util.HasPrefixFold(rest, "color") { ... }
//	n := util.ParseInt("-3") // -3
//	err := util.AtomicWriteFile(path, data, 0644)
package util
