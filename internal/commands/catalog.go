// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"strings"

	"github.com/jeranaias/cmdbind/internal/util"
)

// ID identifies a command. Built-in commands use the constants below;
// ids at or above FirstInstanceID are minted by a Registry.
type ID int

// InvalidID is returned by every lookup that fails.
const InvalidID ID = -1

// Built-in command ids. Order matters only for display; ids are never persisted.
const (
	None ID = iota

	// File
	OpenFile
	OpenFolder
	Close
	CloseCurrentDocument
	SaveAs
	Print
	ShowInFolder
	RenameFile
	DeleteFile
	ReloadDocument
	CreateShortcutToFile
	SendByEmail
	Properties
	NewWindow
	DuplicateInNewWindow
	ReopenLastClosedFile
	Exit

	// View
	SinglePageView
	FacingView
	BookView
	ToggleContinuousView
	ToggleMangaMode
	RotateLeft
	RotateRight
	ToggleBookmarks
	ToggleTableOfContents
	ToggleFullscreen
	TogglePresentationMode
	PresentationWhiteBackground
	PresentationBlackBackground
	ToggleToolbar
	ToggleScrollbars
	ToggleMenuBar
	SelectNextTheme
	SetTheme
	ToggleFrequentlyRead
	MoveFrameFocus

	// Navigation
	ScrollUp
	ScrollDown
	ScrollUpPage
	ScrollDownPage
	ScrollLeft
	ScrollRight
	GoToNextPage
	GoToPrevPage
	GoToFirstPage
	GoToLastPage
	GoToPage
	NavigateBack
	NavigateForward

	// Zoom
	ZoomIn
	ZoomOut
	ZoomFitPage
	ZoomActualSize
	ZoomFitWidth
	ZoomFitContent
	ZoomCustom

	// Search and selection
	FindFirst
	FindNext
	FindPrev
	FindMatch
	CopySelection
	SelectAll
	TranslateSelectionWithGoogle
	SelectionHandler
	CopyLinkTarget
	CopyComment
	CopyImage

	// Tabs
	NextTab
	PrevTab
	CloseOtherTabs
	CloseTabsToTheRight
	CloseTabsToTheLeft
	SmartTabSwitch

	// Annotations
	SaveAnnotations
	SaveAnnotationsNewFile
	DeleteAnnotation
	CreateAnnotText
	CreateAnnotLink
	CreateAnnotFreeText
	CreateAnnotLine
	CreateAnnotSquare
	CreateAnnotCircle
	CreateAnnotPolygon
	CreateAnnotPolyLine
	CreateAnnotHighlight
	CreateAnnotUnderline
	CreateAnnotSquiggly
	CreateAnnotStrikeOut
	CreateAnnotRedact
	CreateAnnotStamp
	CreateAnnotCaret
	CreateAnnotInk
	CreateAnnotPopup
	CreateAnnotFileAttachment

	// Favorites and home page
	FavoriteAdd
	FavoriteDel
	FavoriteToggle
	ExpandAll
	CollapseAll
	OpenSelectedDocument
	PinSelectedDocument
	ForgetSelectedDocument
	ClearHistory

	// Attachments
	SaveEmbeddedFile
	OpenEmbeddedPDF
	SaveAttachment
	OpenAttachment

	// External programs
	Exec
	ViewWithExternalViewer

	// Application
	CommandPalette
	Options
	AdvancedOptions
	AdvancedSettings
	ChangeLanguage
	CheckUpdate
	ShowLog
	ContributeTranslation
	HelpOpenManual
	HelpOpenManualOnWebsite
	HelpOpenKeyboardShortcuts
	HelpVisitWebsite
	HelpAbout

	// Debug
	DebugCrashMe
	DebugCorruptMemory
	DebugDownloadSymbols
	DebugShowNotif
	DebugStartStressTest
	DebugTestApp

	lastBuiltin
)

// FirstInstanceID is the first id handed out by a Registry. It is a
// reserved boundary strictly above every built-in id.
const FirstInstanceID ID = 20000

// Command is one entry of the built-in catalog.
type Command struct {
	ID          ID
	Name        string
	Description string
}

var catalog = []Command{
	{OpenFile, "OpenFile", "Open File..."},
	{OpenFolder, "OpenFolder", "Open Folder..."},
	{Close, "Close", "Close Document"},
	{CloseCurrentDocument, "CloseCurrentDocument", "Close Current Document"},
	{SaveAs, "SaveAs", "Save As..."},
	{Print, "Print", "Print..."},
	{ShowInFolder, "ShowInFolder", "Show in Folder"},
	{RenameFile, "RenameFile", "Rename File..."},
	{DeleteFile, "DeleteFile", "Delete File"},
	{ReloadDocument, "ReloadDocument", "Reload Document"},
	{CreateShortcutToFile, "CreateShortcutToFile", "Create .lnk Shortcut"},
	{SendByEmail, "SendByEmail", "Send Document By Email..."},
	{Properties, "Properties", "Show Document Properties..."},
	{NewWindow, "NewWindow", "Open New Window"},
	{DuplicateInNewWindow, "DuplicateInNewWindow", "Open Current Document In New Window"},
	{ReopenLastClosedFile, "ReopenLastClosedFile", "Reopen Last Closed File"},
	{Exit, "Exit", "Exit Application"},

	{SinglePageView, "SinglePageView", "Single Page"},
	{FacingView, "FacingView", "Facing"},
	{BookView, "BookView", "Book View"},
	{ToggleContinuousView, "ToggleContinuousView", "Toggle Continuous View"},
	{ToggleMangaMode, "ToggleMangaMode", "Toggle Manga Mode"},
	{RotateLeft, "RotateLeft", "Rotate Left"},
	{RotateRight, "RotateRight", "Rotate Right"},
	{ToggleBookmarks, "ToggleBookmarks", "Toggle Bookmarks"},
	{ToggleTableOfContents, "ToggleTableOfContents", "Toggle Table Of Contents"},
	{ToggleFullscreen, "ToggleFullscreen", "Toggle Fullscreen"},
	{TogglePresentationMode, "TogglePresentationMode", "View: Presentation Mode"},
	{PresentationWhiteBackground, "PresentationWhiteBackground", "Presentation White Background"},
	{PresentationBlackBackground, "PresentationBlackBackground", "Presentation Black Background"},
	{ToggleToolbar, "ToggleToolbar", "Toggle Toolbar"},
	{ToggleScrollbars, "ToggleScrollbars", "Toggle Scrollbars"},
	{ToggleMenuBar, "ToggleMenuBar", "Toggle Menu Bar"},
	{SelectNextTheme, "SelectNextTheme", "Select Next Theme"},
	{SetTheme, "SetTheme", "Set Theme"},
	{ToggleFrequentlyRead, "ToggleFrequentlyRead", "Toggle Frequently Read"},
	{MoveFrameFocus, "MoveFrameFocus", "Move Frame Focus"},

	{ScrollUp, "ScrollUp", "Scroll Up"},
	{ScrollDown, "ScrollDown", "Scroll Down"},
	{ScrollUpPage, "ScrollUpPage", "Scroll Up By Page"},
	{ScrollDownPage, "ScrollDownPage", "Scroll Down By Page"},
	{ScrollLeft, "ScrollLeft", "Scroll Left"},
	{ScrollRight, "ScrollRight", "Scroll Right"},
	{GoToNextPage, "GoToNextPage", "Next Page"},
	{GoToPrevPage, "GoToPrevPage", "Previous Page"},
	{GoToFirstPage, "GoToFirstPage", "First Page"},
	{GoToLastPage, "GoToLastPage", "Last Page"},
	{GoToPage, "GoToPage", "Go to Page..."},
	{NavigateBack, "NavigateBack", "Navigate: Back"},
	{NavigateForward, "NavigateForward", "Navigate: Forward"},

	{ZoomIn, "ZoomIn", "Zoom In"},
	{ZoomOut, "ZoomOut", "Zoom Out"},
	{ZoomFitPage, "ZoomFitPage", "Zoom: Fit Page"},
	{ZoomActualSize, "ZoomActualSize", "Zoom: Actual Size"},
	{ZoomFitWidth, "ZoomFitWidth", "Zoom: Fit Width"},
	{ZoomFitContent, "ZoomFitContent", "Zoom: Fit Content"},
	{ZoomCustom, "ZoomCustom", "Zoom: Custom..."},

	{FindFirst, "FindFirst", "Find"},
	{FindNext, "FindNext", "Find Next"},
	{FindPrev, "FindPrev", "Find Previous"},
	{FindMatch, "FindMatch", "Find: Match Case"},
	{CopySelection, "CopySelection", "Copy Selection"},
	{SelectAll, "SelectAll", "Select All"},
	{TranslateSelectionWithGoogle, "TranslateSelectionWithGoogle", "Translate Selection With Google"},
	{SelectionHandler, "SelectionHandler", "Run Selection Handler"},
	{CopyLinkTarget, "CopyLinkTarget", "Copy Link Target"},
	{CopyComment, "CopyComment", "Copy Comment"},
	{CopyImage, "CopyImage", "Copy Image"},

	{NextTab, "NextTab", "Next Tab"},
	{PrevTab, "PrevTab", "Previous Tab"},
	{CloseOtherTabs, "CloseOtherTabs", "Close Other Tabs"},
	{CloseTabsToTheRight, "CloseTabsToTheRight", "Close Tabs To The Right"},
	{CloseTabsToTheLeft, "CloseTabsToTheLeft", "Close Tabs To The Left"},
	{SmartTabSwitch, "SmartTabSwitch", "Smart Tab Switch"},

	{SaveAnnotations, "SaveAnnotations", "Save Annotations to existing PDF"},
	{SaveAnnotationsNewFile, "SaveAnnotationsNewFile", "Save Annotations to a new PDF"},
	{DeleteAnnotation, "DeleteAnnotation", "Delete Annotation"},
	{CreateAnnotText, "CreateAnnotText", "Create Text Annotation"},
	{CreateAnnotLink, "CreateAnnotLink", "Create Link Annotation"},
	{CreateAnnotFreeText, "CreateAnnotFreeText", "Create Free Text Annotation"},
	{CreateAnnotLine, "CreateAnnotLine", "Create Line Annotation"},
	{CreateAnnotSquare, "CreateAnnotSquare", "Create Square Annotation"},
	{CreateAnnotCircle, "CreateAnnotCircle", "Create Circle Annotation"},
	{CreateAnnotPolygon, "CreateAnnotPolygon", "Create Polygon Annotation"},
	{CreateAnnotPolyLine, "CreateAnnotPolyLine", "Create Poly Line Annotation"},
	{CreateAnnotHighlight, "CreateAnnotHighlight", "Create Highlight Annotation"},
	{CreateAnnotUnderline, "CreateAnnotUnderline", "Create Underline Annotation"},
	{CreateAnnotSquiggly, "CreateAnnotSquiggly", "Create Squiggly Annotation"},
	{CreateAnnotStrikeOut, "CreateAnnotStrikeOut", "Create Strike Out Annotation"},
	{CreateAnnotRedact, "CreateAnnotRedact", "Create Redact Annotation"},
	{CreateAnnotStamp, "CreateAnnotStamp", "Create Stamp Annotation"},
	{CreateAnnotCaret, "CreateAnnotCaret", "Create Caret Annotation"},
	{CreateAnnotInk, "CreateAnnotInk", "Create Ink Annotation"},
	{CreateAnnotPopup, "CreateAnnotPopup", "Create Popup Annotation"},
	{CreateAnnotFileAttachment, "CreateAnnotFileAttachment", "Create File Attachment Annotation"},

	{FavoriteAdd, "FavoriteAdd", "Add Favorite"},
	{FavoriteDel, "FavoriteDel", "Delete Favorite"},
	{FavoriteToggle, "FavoriteToggle", "Toggle Favorites"},
	{ExpandAll, "ExpandAll", "Expand All"},
	{CollapseAll, "CollapseAll", "Collapse All"},
	{OpenSelectedDocument, "OpenSelectedDocument", "Open Selected Document"},
	{PinSelectedDocument, "PinSelectedDocument", "Pin Selected Document"},
	{ForgetSelectedDocument, "ForgetSelectedDocument", "Remove Selected Document From History"},
	{ClearHistory, "ClearHistory", "Clear History"},

	{SaveEmbeddedFile, "SaveEmbeddedFile", "Save Embedded File..."},
	{OpenEmbeddedPDF, "OpenEmbeddedPDF", "Open Embedded PDF"},
	{SaveAttachment, "SaveAttachment", "Save Attachment..."},
	{OpenAttachment, "OpenAttachment", "Open Attachment"},

	{Exec, "Exec", "Execute a program"},
	{ViewWithExternalViewer, "ViewWithExternalViewer", "View With Custom External Viewer"},

	{CommandPalette, "CommandPalette", "Command Palette"},
	{Options, "Options", "Options..."},
	{AdvancedOptions, "AdvancedOptions", "Advanced Options..."},
	{AdvancedSettings, "AdvancedSettings", "Edit Advanced Settings..."},
	{ChangeLanguage, "ChangeLanguage", "Change Language..."},
	{CheckUpdate, "CheckUpdate", "Check For Updates"},
	{ShowLog, "ShowLog", "Show Log"},
	{ContributeTranslation, "ContributeTranslation", "Contribute Translation"},
	{HelpOpenManual, "HelpOpenManual", "Help: Manual"},
	{HelpOpenManualOnWebsite, "HelpOpenManualOnWebsite", "Help: Manual On Website"},
	{HelpOpenKeyboardShortcuts, "HelpOpenKeyboardShortcuts", "Help: Keyboard Shortcuts"},
	{HelpVisitWebsite, "HelpVisitWebsite", "Help: Visit Website"},
	{HelpAbout, "HelpAbout", "Help: About"},

	{DebugCrashMe, "DebugCrashMe", "Debug: Crash Me"},
	{DebugCorruptMemory, "DebugCorruptMemory", "Debug: Corrupt Memory"},
	{DebugDownloadSymbols, "DebugDownloadSymbols", "Debug: Download Symbols"},
	{DebugShowNotif, "DebugShowNotif", "Debug: Show Notification"},
	{DebugStartStressTest, "DebugStartStressTest", "Debug: Start Stress Test"},
	{DebugTestApp, "DebugTestApp", "Debug: Test App"},
}

// Catalog returns a copy of the built-in command table in display order.
func Catalog() []Command {
	out := make([]Command, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the catalog entry for a built-in id.
func Lookup(id ID) (Command, bool) {
	for _, c := range catalog {
		if c.ID == id {
			return c, true
		}
	}
	return Command{}, false
}

// IsBuiltin reports whether id names a catalog command.
func IsBuiltin(id ID) bool {
	return id > None && id < lastBuiltin
}

// IDByName resolves a command name, case-insensitively.
// Returns InvalidID if no command matches.
func IDByName(name string) ID {
	for _, c := range catalog {
		if nameMatches(name, c.Name) {
			return c.ID
		}
	}
	return InvalidID
}

// IDByDescription resolves a human description, case-insensitively.
// Returns InvalidID if no command matches.
func IDByDescription(desc string) ID {
	for _, c := range catalog {
		if nameMatches(desc, c.Description) {
			return c.ID
		}
	}
	return InvalidID
}

// nameMatches reports whether s names name: either equal to it, or name
// followed immediately by '='. Comparison is case-insensitive.
// Shared by catalog lookup and argument lookup.
func nameMatches(s, name string) bool {
	if strings.EqualFold(s, name) {
		return true
	}
	if !util.HasPrefixFold(s, name) {
		return false
	}
	return s[len(name)] == '='
}
