// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jeranaias/cmdbind/internal/commands"
	"github.com/jeranaias/cmdbind/internal/ui/components"
	"github.com/jeranaias/cmdbind/internal/util"
)

const nameColumn = 28

// listEntries returns the catalog in display order, or ranked by fuzzy
// match against name and description when query is set.
func listEntries(query string, withArgs bool) []ListEntry {
	catalog := commands.Catalog()
	entry := func(c commands.Command, score int) ListEntry {
		e := ListEntry{ID: int(c.ID), Name: c.Name, Description: c.Description, Score: score}
		if withArgs {
			for _, spec := range commands.AcceptedArgs(c.ID) {
				e.Args = append(e.Args, spec.Name+":"+spec.Type.String())
			}
		}
		return e
	}

	if query == "" {
		out := make([]ListEntry, len(catalog))
		for i, c := range catalog {
			out[i] = entry(c, 0)
		}
		return out
	}

	targets := make([]string, len(catalog))
	for i, c := range catalog {
		targets[i] = c.Name + " " + c.Description
	}
	matches := components.FuzzyFilter(query, targets)
	out := make([]ListEntry, len(matches))
	for i, m := range matches {
		out[i] = entry(catalog[m.Index], m.Score)
	}
	return out
}

// HandleList prints the catalog.
func HandleList(args Args, stdout io.Writer) error {
	query := strings.Join(args.Positional, " ")
	entries := listEntries(query, args.Parser.BoolFlag("args"))
	if limit := args.Parser.FlagIntOrDefault("limit", 0); limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	if args.JSON {
		return NewJSONResponse("list", entries).Print(stdout)
	}

	if len(entries) == 0 {
		fmt.Fprintln(stdout, DimStyle.Render("No matching commands"))
		return nil
	}

	descWidth := GetTerminalWidth() - nameColumn - 2
	for _, e := range entries {
		line := NameStyle.Render(util.PadWidth(e.Name, nameColumn)) + "  " + util.TruncateWidth(e.Description, descWidth)
		fmt.Fprintln(stdout, line)
		if len(e.Args) > 0 {
			fmt.Fprintln(stdout, strings.Repeat(" ", nameColumn+2)+DimStyle.Render("args: "+strings.Join(e.Args, " ")))
		}
	}
	return nil
}
