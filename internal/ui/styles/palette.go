// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

// PaletteStyles holds the styles of the command palette overlay.
type PaletteStyles struct {
	Box       lipgloss.Style
	Header    lipgloss.Style
	Separator lipgloss.Style
	Prompt    lipgloss.Style
	Input     lipgloss.Style
	Hint      lipgloss.Style
	Label     lipgloss.Style
	Detail    lipgloss.Style
	Key       lipgloss.Style
	Recent    lipgloss.Style
	Selected  lipgloss.Style
	Empty     lipgloss.Style
	Help      lipgloss.Style
}

// DefaultPaletteStyles returns the palette styles for the adaptive colors.
func DefaultPaletteStyles() PaletteStyles {
	return PaletteStyles{
		Box: lipgloss.NewStyle().
			Background(Surface).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Purple).
			Padding(1, 2),
		Header:    lipgloss.NewStyle().Foreground(Purple).Bold(true).Padding(0, 1),
		Separator: lipgloss.NewStyle().Foreground(Overlay),
		Prompt:    lipgloss.NewStyle().Foreground(Cyan).Bold(true),
		Input:     lipgloss.NewStyle().Foreground(TextPrimary),
		Hint:      lipgloss.NewStyle().Foreground(TextMuted).Italic(true),
		Label:     lipgloss.NewStyle().Foreground(Cyan).Bold(true),
		Detail:    lipgloss.NewStyle().Foreground(TextMuted),
		Key:       lipgloss.NewStyle().Foreground(Amber),
		Recent:    lipgloss.NewStyle().Foreground(Emerald),
		Selected: lipgloss.NewStyle().
			Background(Purple).
			Foreground(TextInverse).
			Padding(0, 1),
		Empty: lipgloss.NewStyle().Foreground(TextMuted).Italic(true).Padding(1, 0),
		Help:  lipgloss.NewStyle().Foreground(TextMuted).Padding(1, 0, 0, 0),
	}
}
