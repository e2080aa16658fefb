// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"path/filepath"
	"strings"
)

// =============================================================================
// PALETTE AVAILABILITY
// =============================================================================

// Context describes the application state the palette is opened in.
type Context struct {
	Debug               bool
	DocumentLoaded      bool
	SupportsAnnotations bool
	HasSelection        bool
	FilePath            string
}

// hiddenFromPalette are never offered in the palette; they only make sense
// bound to a key or from a context menu.
var hiddenFromPalette = idSet(
	CommandPalette,
	SmartTabSwitch,
	OpenSelectedDocument,
	PinSelectedDocument,
	ForgetSelectedDocument,
	ExpandAll,
	CollapseAll,
	MoveFrameFocus,
	FavoriteDel,
	PresentationWhiteBackground,
	PresentationBlackBackground,
	SaveEmbeddedFile,
	OpenEmbeddedPDF,
	SaveAttachment,
	OpenAttachment,
	CreateShortcutToFile,
)

// debugOnly are offered only in debug mode.
var debugOnly = idSet(
	DebugCrashMe,
	DebugCorruptMemory,
	DebugDownloadSymbols,
	DebugShowNotif,
	DebugStartStressTest,
	DebugTestApp,
)

// noDocumentNeeded are offered even when no document is open.
var noDocumentNeeded = idSet(
	OpenFile,
	OpenFolder,
	Exit,
	NewWindow,
	ContributeTranslation,
	Options,
	AdvancedOptions,
	AdvancedSettings,
	ChangeLanguage,
	CheckUpdate,
	HelpOpenManual,
	HelpOpenManualOnWebsite,
	HelpOpenKeyboardShortcuts,
	HelpVisitWebsite,
	HelpAbout,
	FavoriteToggle,
	ToggleFullscreen,
	ToggleMenuBar,
	ToggleToolbar,
	ShowLog,
	ClearHistory,
	ReopenLastClosedFile,
	SelectNextTheme,
	SetTheme,
	ToggleFrequentlyRead,
)

// needsSelection are offered only while something is selected.
var needsSelection = idSet(
	CopySelection,
	TranslateSelectionWithGoogle,
	SelectionHandler,
)

func idSet(ids ...ID) map[ID]bool {
	m := make(map[ID]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

// Allows reports whether the command, or the instance inst when it is
// non-nil, should be offered in the palette under ctx.
func (ctx Context) Allows(id ID, inst *CommandWithArg) bool {
	if id <= None {
		return false
	}
	orig := id
	if inst != nil {
		orig = inst.OrigID
	}
	if orig == SetTheme {
		return true
	}
	if debugOnly[orig] {
		return ctx.Debug
	}
	if hiddenFromPalette[orig] {
		return false
	}
	if noDocumentNeeded[orig] {
		return true
	}
	if !ctx.DocumentLoaded {
		return false
	}
	if orig == ViewWithExternalViewer {
		return PathMatchesFilter(ctx.FilePath, inst.StringArg(ArgNameFilter, ""))
	}
	if needsSelection[orig] {
		return ctx.HasSelection
	}
	if orig >= CreateAnnotText && orig <= CreateAnnotFileAttachment {
		return ctx.SupportsAnnotations
	}
	if orig == DeleteAnnotation || orig == SaveAnnotations || orig == SaveAnnotationsNewFile {
		return ctx.SupportsAnnotations
	}
	return true
}

// PathMatchesFilter matches the base name of path against a ';'-separated
// list of glob patterns such as "*.pdf;*.epub". An empty filter matches
// everything; an empty path matches nothing.
func PathMatchesFilter(path, filter string) bool {
	if filter == "" {
		return true
	}
	if path == "" {
		return false
	}
	base := strings.ToLower(filepath.Base(path))
	for _, pattern := range strings.Split(filter, ";") {
		pattern = strings.ToLower(strings.TrimSpace(pattern))
		if pattern == "" {
			continue
		}
		if ok, err := filepath.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}
