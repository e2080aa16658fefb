// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/cmdbind/internal/bindings"
	"github.com/jeranaias/cmdbind/internal/commands"
	"github.com/jeranaias/cmdbind/internal/ui/styles"
	"github.com/jeranaias/cmdbind/internal/util"
)

// =============================================================================
// PALETTE ITEMS
// =============================================================================

// PaletteItem is one selectable row of the palette.
type PaletteItem struct {
	// ID is executed when the row is chosen.
	ID commands.ID

	// Label is the text matched against the query.
	Label string

	// Detail is shown dimmed after the label.
	Detail string

	// Key is the bound key, if any.
	Key string
}

// PaletteItems collects the rows offered under ctx: every catalog command
// the context allows, followed by the named shortcuts of table. table may
// be nil.
func PaletteItems(ctx commands.Context, reg *commands.Registry, table *bindings.Table) []PaletteItem {
	keys := make(map[commands.ID]string)
	var named []bindings.Binding
	if table != nil {
		for _, b := range table.Bindings() {
			if b.Key != "" && commands.IsBuiltin(b.ID) {
				if _, ok := keys[b.ID]; !ok {
					keys[b.ID] = b.Key
				}
			}
		}
		named = table.Named()
	}

	var items []PaletteItem
	for _, cmd := range commands.Catalog() {
		if !ctx.Allows(cmd.ID, nil) {
			continue
		}
		items = append(items, PaletteItem{
			ID:     cmd.ID,
			Label:  cmd.Description,
			Detail: cmd.Name,
			Key:    keys[cmd.ID],
		})
	}

	for _, b := range named {
		var inst *commands.CommandWithArg
		if reg != nil {
			inst, _ = reg.Find(b.ID)
		}
		if !ctx.Allows(b.ID, inst) {
			continue
		}
		items = append(items, PaletteItem{
			ID:     b.ID,
			Label:  b.Name,
			Detail: b.Definition,
			Key:    b.Key,
		})
	}
	return items
}

// =============================================================================
// COMMAND PALETTE
// =============================================================================

// CommandPalette is an overlay for searching and executing commands.
type CommandPalette struct {
	input    textinput.Model
	styles   styles.PaletteStyles
	registry *commands.Registry

	items    []PaletteItem
	filtered []scoredItem
	selected int

	// hints are argument completions for a typed definition
	hints []commands.Completion

	width   int
	height  int
	visible bool

	maxItems int

	// recent labels, most recent first
	recent    []string
	maxRecent int
}

type scoredItem struct {
	item  PaletteItem
	score int
}

// NewCommandPalette creates a palette over items. reg parses typed
// definitions and may be nil, in which case only listed rows execute.
func NewCommandPalette(items []PaletteItem, reg *commands.Registry, maxItems int) *CommandPalette {
	st := styles.DefaultPaletteStyles()

	ti := textinput.New()
	ti.Placeholder = "Type a command..."
	ti.Prompt = "> "
	ti.CharLimit = 200
	ti.Width = 50
	ti.PromptStyle = st.Prompt
	ti.TextStyle = st.Input
	ti.PlaceholderStyle = st.Hint

	if maxItems <= 0 {
		maxItems = 10
	}

	cp := &CommandPalette{
		input:     ti,
		styles:    st,
		registry:  reg,
		items:     items,
		maxItems:  maxItems,
		recent:    make([]string, 0, 10),
		maxRecent: 10,
	}
	cp.updateFiltered()
	return cp
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init initializes the command palette.
func (cp *CommandPalette) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the command palette.
func (cp *CommandPalette) Update(msg tea.Msg) (*CommandPalette, tea.Cmd) {
	if !cp.visible {
		return cp, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			cp.Hide()
			return cp, nil

		case "enter":
			return cp, cp.choose()

		case "up", "ctrl+p":
			cp.move(-1)
			return cp, nil

		case "down", "ctrl+n":
			cp.move(1)
			return cp, nil

		case "tab":
			if len(cp.hints) > 0 {
				cp.acceptHint()
				return cp, nil
			}
			cp.move(1)
			return cp, nil
		}
	}

	previous := cp.input.Value()
	var cmd tea.Cmd
	cp.input, cmd = cp.input.Update(msg)
	if cp.input.Value() != previous {
		cp.updateFiltered()
		cp.selected = 0
	}
	return cp, cmd
}

// View renders the command palette.
func (cp *CommandPalette) View() string {
	if !cp.visible {
		return ""
	}

	boxWidth := 64
	if cp.width > 0 && cp.width < boxWidth+10 {
		boxWidth = cp.width - 10
	}
	if boxWidth < 40 {
		boxWidth = 40
	}
	inner := boxWidth - 6

	header := cp.styles.Header.Render("Commands")
	separator := cp.styles.Separator.Render(strings.Repeat("-", boxWidth-4))

	cp.input.Width = inner
	parts := []string{header, separator, cp.input.View()}
	if hint := cp.hintView(inner); hint != "" {
		parts = append(parts, hint)
	}
	parts = append(parts, separator)

	var rows []string
	for i, sc := range cp.filtered {
		if i >= cp.maxItems {
			remaining := len(cp.filtered) - cp.maxItems
			rows = append(rows, cp.styles.Hint.Render("  ... "+strconv.Itoa(remaining)+" more"))
			break
		}
		rows = append(rows, cp.renderItem(sc.item, i == cp.selected, inner))
	}
	list := strings.Join(rows, "\n")
	if len(cp.filtered) == 0 && !cp.isDefinition() {
		list = cp.styles.Empty.Render("No matching commands")
	}
	parts = append(parts, list, cp.styles.Help.Render("Up/Down navigate | Tab complete | Enter select | Esc close"))

	box := cp.styles.Box.Width(boxWidth).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))

	if cp.width > 0 && cp.height > 0 {
		return lipgloss.Place(
			cp.width, cp.height,
			lipgloss.Center, lipgloss.Center,
			box,
			lipgloss.WithWhitespaceChars(" "),
		)
	}
	return box
}

// =============================================================================
// INTERNAL METHODS
// =============================================================================

func (cp *CommandPalette) move(delta int) {
	n := len(cp.filtered)
	if n == 0 {
		return
	}
	cp.selected = (cp.selected + delta + n) % n
}

// choose executes the selected row, or the typed definition when the query
// carries arguments.
func (cp *CommandPalette) choose() tea.Cmd {
	if cp.isDefinition() && cp.registry != nil {
		def := strings.TrimSpace(cp.input.Value())
		id, err := cp.registry.ParseDefinition(def)
		if err != nil {
			return func() tea.Msg { return PaletteErrorMsg{Definition: def, Err: err} }
		}
		cp.recordRecent(def)
		cp.Hide()
		return executeCommand(id, def)
	}
	if cp.selected < 0 || cp.selected >= len(cp.filtered) {
		return nil
	}
	item := cp.filtered[cp.selected].item
	cp.recordRecent(item.Label)
	cp.Hide()
	return executeCommand(item.ID, item.Label)
}

// isDefinition reports whether the query is a command name followed by
// arguments.
func (cp *CommandPalette) isDefinition() bool {
	name, rest, ok := strings.Cut(strings.TrimSpace(cp.input.Value()), " ")
	return ok && strings.TrimSpace(rest) != "" && commands.IDByName(name) != commands.InvalidID
}

func (cp *CommandPalette) acceptHint() {
	value := cp.input.Value()
	head := ""
	if i := strings.LastIndexByte(value, ' '); i >= 0 {
		head = value[:i+1]
	}
	next := head + cp.hints[0].Value
	if !strings.HasSuffix(next, "=") {
		next += " "
	}
	cp.input.SetValue(next)
	cp.input.CursorEnd()
	cp.updateFiltered()
	cp.selected = 0
}

func (cp *CommandPalette) hintView(width int) string {
	if len(cp.hints) == 0 {
		return ""
	}
	names := make([]string, 0, len(cp.hints))
	for _, h := range cp.hints {
		names = append(names, h.Value)
	}
	return cp.styles.Hint.Render(util.TruncateWidth("args: "+strings.Join(names, " "), width))
}

func (cp *CommandPalette) renderItem(item PaletteItem, selected bool, width int) string {
	indicator := "  "
	if selected {
		indicator = "> "
	}

	recentMark := ""
	if cp.isRecent(item.Label) {
		recentMark = cp.styles.Recent.Render(" *")
	}

	keyText := ""
	if item.Key != "" {
		keyText = "  " + cp.styles.Key.Render(item.Key)
	}

	label := cp.styles.Label.Render(util.TruncateWidth(item.Label, width/2))
	used := lipgloss.Width(indicator) + lipgloss.Width(label) + lipgloss.Width(recentMark) + lipgloss.Width(keyText) + 2
	detailWidth := width - used
	if detailWidth < 10 {
		detailWidth = 10
	}
	detail := cp.styles.Detail.Render(util.TruncateWidth(item.Detail, detailWidth))

	row := indicator + label + recentMark + "  " + detail + keyText
	if selected {
		return cp.styles.Selected.Width(width).Render(row)
	}
	return row
}

// updateFiltered rescores the rows for the current query. An empty query
// lists every row with recent ones first.
func (cp *CommandPalette) updateFiltered() {
	query := strings.TrimSpace(cp.input.Value())

	cp.hints = nil
	if _, _, hasArgs := strings.Cut(strings.TrimLeft(cp.input.Value(), " "), " "); hasArgs {
		cp.hints = commands.Complete(cp.input.Value())
	}
	if cp.isDefinition() {
		cp.filtered = nil
		return
	}

	scored := make([]scoredItem, 0, len(cp.items))
	for _, item := range cp.items {
		if query == "" {
			score := 0
			if i := cp.recentIndex(item.Label); i >= 0 {
				score = 1000 - i
			}
			scored = append(scored, scoredItem{item: item, score: score})
			continue
		}

		best, matched := FuzzyMatch(query, item.Label)
		if s, ok := FuzzyMatch(query, item.Detail); ok && (!matched || s/2 > best) {
			best, matched = s/2, true
		}
		if !matched {
			continue
		}
		if cp.isRecent(item.Label) {
			best += 100
		}
		scored = append(scored, scoredItem{item: item, score: best})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	cp.filtered = scored
}

func (cp *CommandPalette) isRecent(label string) bool {
	return cp.recentIndex(label) >= 0
}

func (cp *CommandPalette) recentIndex(label string) int {
	for i, r := range cp.recent {
		if r == label {
			return i
		}
	}
	return -1
}

func (cp *CommandPalette) recordRecent(label string) {
	if i := cp.recentIndex(label); i >= 0 {
		cp.recent = append(cp.recent[:i], cp.recent[i+1:]...)
	}
	cp.recent = append([]string{label}, cp.recent...)
	if len(cp.recent) > cp.maxRecent {
		cp.recent = cp.recent[:cp.maxRecent]
	}
}

func executeCommand(id commands.ID, label string) tea.Cmd {
	return func() tea.Msg {
		return ExecuteCommandMsg{ID: id, Label: label}
	}
}

// =============================================================================
// PUBLIC METHODS
// =============================================================================

// Show shows the palette with an empty query.
func (cp *CommandPalette) Show() {
	cp.visible = true
	cp.input.Reset()
	cp.input.Focus()
	cp.updateFiltered()
	cp.selected = 0
}

// Hide hides the palette.
func (cp *CommandPalette) Hide() {
	cp.visible = false
	cp.input.Blur()
}

// Toggle toggles the visibility of the palette.
func (cp *CommandPalette) Toggle() {
	if cp.visible {
		cp.Hide()
	} else {
		cp.Show()
	}
}

// IsVisible returns true if the palette is visible.
func (cp *CommandPalette) IsVisible() bool {
	return cp.visible
}

// SetSize sets the dimensions for centering the palette.
func (cp *CommandPalette) SetSize(width, height int) {
	cp.width = width
	cp.height = height
}

// SetItems replaces the rows, e.g. after a config reload.
func (cp *CommandPalette) SetItems(items []PaletteItem) {
	cp.items = items
	cp.updateFiltered()
	if cp.selected >= len(cp.filtered) {
		cp.selected = 0
	}
}

// Filtered returns the rows matching the current query, best first.
func (cp *CommandPalette) Filtered() []PaletteItem {
	out := make([]PaletteItem, len(cp.filtered))
	for i, sc := range cp.filtered {
		out[i] = sc.item
	}
	return out
}

// Hints returns the argument completions for the typed definition.
func (cp *CommandPalette) Hints() []commands.Completion {
	return cp.hints
}

// Selected returns the index of the highlighted row.
func (cp *CommandPalette) Selected() int {
	return cp.selected
}

// Recent returns the labels of recently executed rows, most recent first.
func (cp *CommandPalette) Recent() []string {
	out := make([]string, len(cp.recent))
	copy(out, cp.recent)
	return out
}

// SetQuery replaces the query text.
func (cp *CommandPalette) SetQuery(q string) {
	cp.input.SetValue(q)
	cp.input.CursorEnd()
	cp.updateFiltered()
	cp.selected = 0
}

// =============================================================================
// MESSAGES
// =============================================================================

// ExecuteCommandMsg is sent when a row or typed definition is chosen.
type ExecuteCommandMsg struct {
	ID    commands.ID
	Label string
}

// PaletteErrorMsg is sent when a typed definition fails to parse. The
// palette stays open.
type PaletteErrorMsg struct {
	Definition string
	Err        error
}
