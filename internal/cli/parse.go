// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jeranaias/cmdbind/internal/commands"
	"github.com/jeranaias/cmdbind/internal/config"
)

// HandleParse resolves each positional definition and prints the result.
// A single failing definition is returned as is; several failures are
// summarized in a BrokenShortcutsError.
func HandleParse(args Args, stdout, stderr io.Writer) error {
	defs := args.Positional
	if len(defs) == 0 {
		return ErrMissingArgument("definition", `cmdbind parse "ScrollDown 5"`)
	}

	logger, closeLog, err := openLogger(args.Verbose, config.Global().LogFile, stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	reg := commands.NewRegistry(logger)

	results := make([]ParseData, 0, len(defs))
	var failures []error
	for _, def := range defs {
		data, err := describe(reg, def)
		results = append(results, data)
		if err != nil {
			failures = append(failures, err)
		}
	}

	var result error
	switch len(failures) {
	case 0:
	case 1:
		result = failures[0]
	default:
		result = &BrokenShortcutsError{Count: len(failures), Total: len(defs)}
	}

	if args.JSON {
		resp := NewJSONResponse("parse", results)
		if result != nil {
			resp = NewJSONErrorResponse("parse", results, result)
		}
		if err := resp.Print(stdout); err != nil {
			return err
		}
		if result != nil {
			return reportedError{result}
		}
		return nil
	}

	for _, d := range results {
		if d.Error == "" && args.Quiet {
			continue
		}
		fmt.Fprintln(stdout, formatParse(d))
		if d.Error != "" {
			if hint := suggestFor(d.Definition, failures); hint != "" {
				fmt.Fprintln(stdout, DimStyle.Render("       did you mean "+hint+"?"))
			}
		}
	}
	if result != nil {
		return reportedError{result}
	}
	return nil
}

// suggestFor offers a catalog name when def failed because its command
// name is unknown.
func suggestFor(def string, failures []error) string {
	name, _, _ := strings.Cut(strings.TrimSpace(def), " ")
	for _, err := range failures {
		var pe *commands.ParseError
		if errors.As(err, &pe) && pe.Definition == def && errors.Is(err, commands.ErrNotFound) {
			return SuggestCommandName(name)
		}
	}
	return ""
}
