// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the command palette overlay and the fuzzy
matcher behind it.

# Command Palette

CommandPalette lists PaletteItem rows built by PaletteItems: the catalog
commands allowed by a commands.Context plus the named shortcuts of a
bindings.Table. Typing filters the rows with FuzzyMatch; Enter emits an
ExecuteCommandMsg carrying the command id.

	items := components.PaletteItems(commands.Context{DocumentLoaded: true}, reg, table)
	palette := components.NewCommandPalette(items, reg, cfg.Palette.MaxItems)
	palette.Show()

A query made of a command name followed by arguments, such as
"ScrollDown 5", is parsed through the registry on Enter and the resulting
instance id is executed instead. Argument names of the typed command are
shown as a hint line; Tab accepts the first.

# Fuzzy Matching

FuzzyMatch scores in-order, case-insensitive subsequence matches with
bonuses for word boundaries and consecutive runs. FuzzyFilter ranks a list
of targets and HighlightMatch reports the matched rune positions.
*/
package components
