// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

// =============================================================================
// ARGUMENT TYPES
// =============================================================================

// ArgType is the declared value type of a command argument.
type ArgType int

const (
	ArgNone ArgType = iota
	ArgString
	ArgInt
	ArgBool
	ArgColor
)

func (t ArgType) String() string {
	switch t {
	case ArgString:
		return "string"
	case ArgInt:
		return "int"
	case ArgBool:
		return "bool"
	case ArgColor:
		return "color"
	default:
		return "none"
	}
}

// Argument names accepted by the built-in argument groups.
const (
	ArgNameCmdLine         = "cmdline"
	ArgNameFilter          = "filter"
	ArgNameColor           = "color"
	ArgNameOpenEdit        = "openedit"
	ArgNameCopyToClipboard = "copytoclipboard"
	ArgNameSetContent      = "setcontent"
	ArgNameN               = "n"
	ArgNameTheme           = "theme"
	ArgNameURL             = "url"
	ArgNameLevel           = "level"
)

// =============================================================================
// ARGUMENT SPEC TABLE
// =============================================================================

// ArgSpec declares one accepted argument of a group.
type ArgSpec struct {
	Group ID
	Name  string
	Type  ArgType
}

// Specs of one group are contiguous; the first spec of a group is its
// default argument and may be given without a name. A default of type
// String swallows the rest of the definition, so it must be the only way
// the group is used positionally. Default specs are never ArgBool.
var argSpecs = []ArgSpec{
	{Exec, ArgNameCmdLine, ArgString}, // default
	{Exec, ArgNameFilter, ArgString},

	{CreateAnnotText, ArgNameColor, ArgColor}, // default
	{CreateAnnotText, ArgNameOpenEdit, ArgBool},
	{CreateAnnotText, ArgNameCopyToClipboard, ArgBool},
	{CreateAnnotText, ArgNameSetContent, ArgBool},

	{ScrollUp, ArgNameN, ArgInt}, // default

	{SetTheme, ArgNameTheme, ArgString}, // default

	{SelectionHandler, ArgNameURL, ArgString}, // default

	{ZoomCustom, ArgNameLevel, ArgString}, // default
}

// families maps a concrete command onto the representative id of the group
// whose argument specs it shares.
var families = map[ID]ID{
	CreateAnnotText:           CreateAnnotText,
	CreateAnnotLink:           CreateAnnotText,
	CreateAnnotFreeText:       CreateAnnotText,
	CreateAnnotLine:           CreateAnnotText,
	CreateAnnotSquare:         CreateAnnotText,
	CreateAnnotCircle:         CreateAnnotText,
	CreateAnnotPolygon:        CreateAnnotText,
	CreateAnnotPolyLine:       CreateAnnotText,
	CreateAnnotHighlight:      CreateAnnotText,
	CreateAnnotUnderline:      CreateAnnotText,
	CreateAnnotSquiggly:       CreateAnnotText,
	CreateAnnotStrikeOut:      CreateAnnotText,
	CreateAnnotRedact:         CreateAnnotText,
	CreateAnnotStamp:          CreateAnnotText,
	CreateAnnotCaret:          CreateAnnotText,
	CreateAnnotInk:            CreateAnnotText,
	CreateAnnotPopup:          CreateAnnotText,
	CreateAnnotFileAttachment: CreateAnnotText,

	ScrollUp:     ScrollUp,
	ScrollDown:   ScrollUp,
	GoToNextPage: ScrollUp,
	GoToPrevPage: ScrollUp,

	Exec:                   Exec,
	ViewWithExternalViewer: Exec,

	SetTheme:         SetTheme,
	SelectionHandler: SelectionHandler,
	ZoomCustom:       ZoomCustom,
}

// GroupOf returns the representative id of the argument group id belongs
// to. ok is false for commands that accept no arguments; the returned id
// is then id itself.
func GroupOf(id ID) (group ID, ok bool) {
	if g, found := families[id]; found {
		return g, true
	}
	return id, false
}

// firstSpecIndex returns the index of the group's default spec, or -1.
func firstSpecIndex(group ID) int {
	for i, s := range argSpecs {
		if s.Group == group {
			return i
		}
	}
	return -1
}

// SpecsFor returns the specs of group, default first. Nil when the group
// owns no specs.
func SpecsFor(group ID) []ArgSpec {
	start := firstSpecIndex(group)
	if start < 0 {
		return nil
	}
	end := start
	for end < len(argSpecs) && argSpecs[end].Group == group {
		end++
	}
	out := make([]ArgSpec, end-start)
	copy(out, argSpecs[start:end])
	return out
}

// AcceptedArgs returns the specs a concrete command accepts, resolving its
// family first. Nil when the command takes no arguments.
func AcceptedArgs(id ID) []ArgSpec {
	group, ok := GroupOf(id)
	if !ok {
		return nil
	}
	return SpecsFor(group)
}
