// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles holds the colors and lipgloss styles used by the palette
// and the CLI. Colors are lipgloss.AdaptiveColor values, so they follow
// the terminal's light or dark background.
package styles
