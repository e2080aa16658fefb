// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/cmdbind/internal/bindings"
	"github.com/jeranaias/cmdbind/internal/commands"
	"github.com/jeranaias/cmdbind/internal/ui/components"
	"github.com/jeranaias/cmdbind/internal/ui/styles"
)

// =============================================================================
// PALETTE MODEL
// =============================================================================

// paletteModel hosts the command palette full screen. Bound keys execute
// their command directly; ctrl+c quits without a choice.
type paletteModel struct {
	palette *components.CommandPalette
	table   *bindings.Table

	chosen   *components.ExecuteCommandMsg
	err      error
	quitting bool
}

func newPaletteModel(ctx commands.Context, table *bindings.Table, maxItems int) *paletteModel {
	reg := table.Registry()
	p := components.NewCommandPalette(components.PaletteItems(ctx, reg, table), reg, maxItems)
	p.Show()
	return &paletteModel{palette: p, table: table}
}

func (m *paletteModel) Init() tea.Cmd {
	return m.palette.Init()
}

func (m *paletteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.palette.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace {
			if id, ok := m.table.Match(msg); ok {
				m.chosen = &components.ExecuteCommandMsg{ID: id, Label: msg.String()}
				m.quitting = true
				return m, tea.Quit
			}
		}

	case components.ExecuteCommandMsg:
		m.chosen = &msg
		m.quitting = true
		return m, tea.Quit

	case components.PaletteErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	var cmd tea.Cmd
	m.palette, cmd = m.palette.Update(msg)
	if !m.palette.IsVisible() && m.chosen == nil && cmd == nil {
		m.quitting = true
		return m, tea.Quit
	}
	if m.palette.IsVisible() {
		m.err = nil
	}
	return m, cmd
}

func (m *paletteModel) View() string {
	if m.quitting {
		return ""
	}
	view := m.palette.View()
	if m.err != nil {
		view += "\n" + styles.RenderError(m.err.Error())
	}
	return view
}

// =============================================================================
// PALETTE COMMAND
// =============================================================================

// paletteContext builds the availability context from flags and config.
func paletteContext(args Args, debug bool) commands.Context {
	p := args.Parser
	file := p.Flag("file")
	return commands.Context{
		Debug:               debug || p.BoolFlag("debug"),
		DocumentLoaded:      p.BoolFlag("document") || file != "",
		SupportsAnnotations: p.BoolFlag("annotations"),
		HasSelection:        p.BoolFlag("selection"),
		FilePath:            file,
	}
}

// HandlePalette runs the interactive palette and prints the chosen command.
func HandlePalette(args Args, stdout, stderr io.Writer) error {
	if err := RequiresTTY("pick a command"); err != nil {
		return err
	}

	cfg, _, err := loadConfig(args.ConfigPath)
	if err != nil {
		return err
	}
	logger, closeLog, err := openLogger(false, cfg.LogFile, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	table := bindings.Build(cfg, commands.NewRegistry(logger))
	m := newPaletteModel(paletteContext(args, cfg.Palette.Debug), table, cfg.Palette.MaxItems)

	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(stderr)).Run()
	if err != nil {
		return &CommandError{Command: "palette", Action: "run", Reason: "program failed", Err: err}
	}

	chosen := final.(*paletteModel).chosen
	if chosen == nil {
		return nil
	}
	reg := table.Registry()
	if args.JSON {
		return NewJSONResponse("palette", BindingData{
			Definition: chosen.Label,
			ID:         int(chosen.ID),
			Command:    commandName(reg, chosen.ID),
		}).Print(stdout)
	}
	fmt.Fprintf(stdout, "%d %s\n", chosen.ID, commandName(reg, chosen.ID))
	return nil
}
