// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"

	"github.com/jeranaias/cmdbind/internal/bindings"
	"github.com/jeranaias/cmdbind/internal/commands"
)

// checkTable converts a built table into its report form.
func checkTable(path string, table *bindings.Table) CheckData {
	reg := table.Registry()
	data := CheckData{Path: path, Bindings: []BindingData{}, Broken: []BrokenData{}}
	for _, b := range table.Bindings() {
		data.Bindings = append(data.Bindings, BindingData{
			Key:        b.Key,
			Name:       b.Name,
			Definition: b.Definition,
			ID:         int(b.ID),
			Command:    commandName(reg, b.ID),
		})
	}
	for _, b := range table.Broken() {
		data.Broken = append(data.Broken, BrokenData{
			Index:      b.Index,
			Key:        b.Shortcut.Key,
			Definition: b.Shortcut.Cmd,
			Error:      b.Err.Error(),
		})
	}
	return data
}

// HandleCheck loads the config, builds the shortcut table and reports every
// shortcut. Broken shortcuts make it fail with ExitParseError.
func HandleCheck(args Args, stdout, stderr io.Writer) error {
	cfg, path, err := loadConfig(args.ConfigPath)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(args.Verbose, cfg.LogFile, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	table := bindings.Build(cfg, commands.NewRegistry(logger))
	data := checkTable(path, table)

	var result error
	if n := len(data.Broken); n > 0 {
		result = &BrokenShortcutsError{Count: n, Total: len(cfg.Shortcuts)}
	}

	if args.JSON {
		resp := NewJSONResponse("check", data)
		if result != nil {
			resp = NewJSONErrorResponse("check", data, result)
		}
		if err := resp.Print(stdout); err != nil {
			return err
		}
		if result != nil {
			return reportedError{result}
		}
		return nil
	}

	source := path
	if source == "" {
		source = "built-in defaults"
	}
	if !args.Quiet {
		fmt.Fprintln(stdout, TitleStyle.Render("Shortcuts")+" "+DimStyle.Render(source))
		fmt.Fprintln(stdout, RenderSeparator(50))
		for _, b := range data.Bindings {
			key := b.Key
			if key == "" {
				key = "(palette)"
			}
			line := fmt.Sprintf("%s %s %s id=%d", RenderStatus("ok"), KeyStyle.Render(fmt.Sprintf("%-12s", key)), b.Definition, b.ID)
			if b.Name != "" {
				line += " " + DimStyle.Render("\""+b.Name+"\"")
			}
			fmt.Fprintln(stdout, line)
		}
	}
	for _, b := range data.Broken {
		fmt.Fprintf(stdout, "%s shortcuts[%d] %q: %s\n", RenderStatus("fail"), b.Index, b.Definition, b.Error)
	}
	if !args.Quiet || result != nil {
		fmt.Fprintf(stdout, "%d bound, %d broken\n", len(data.Bindings), len(data.Broken))
	}

	if result != nil {
		return reportedError{result}
	}
	return nil
}
