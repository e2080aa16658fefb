// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/cmdbind/internal/commands"
	"github.com/jeranaias/cmdbind/internal/config"
)

// =============================================================================
// LINE EDITOR
// =============================================================================

// lineEditor wraps liner with history persisted under the config dir.
type lineEditor struct {
	line        *liner.State
	historyFile string
}

func newLineEditor() *lineEditor {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	line.SetCompleter(commands.CompleteLine)

	dir, err := config.ConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	e := &lineEditor{line: line, historyFile: filepath.Join(dir, "repl_history")}
	if f, err := os.Open(e.historyFile); err == nil {
		e.line.ReadHistory(f)
		f.Close()
	}
	return e
}

func (e *lineEditor) readLine(prompt string) (string, error) {
	input, err := e.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		e.line.AppendHistory(input)
	}
	return input, nil
}

// close saves history with owner-only permissions and restores the terminal.
func (e *lineEditor) close() {
	if err := os.MkdirAll(filepath.Dir(e.historyFile), 0o700); err == nil {
		if f, err := os.OpenFile(e.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600); err == nil {
			e.line.WriteHistory(f)
			f.Close()
		}
	}
	e.line.Close()
}

// =============================================================================
// REPL
// =============================================================================

// evalLine handles one REPL line. It reports false when the session should
// end.
func evalLine(reg *commands.Registry, line string, w io.Writer) bool {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return true
	case strings.EqualFold(line, ":quit"), strings.EqualFold(line, ":q"):
		return false
	case strings.EqualFold(line, ":clear"):
		reg.Clear()
		fmt.Fprintln(w, DimStyle.Render("registry cleared"))
		return true
	case strings.EqualFold(line, ":list"):
		for _, inst := range reg.All() {
			fmt.Fprintf(w, "%d %s\n", inst.ID, inst.Definition)
		}
		return true
	case strings.HasPrefix(line, ":"):
		fmt.Fprintln(w, WarningStyle.Render("commands: :list :clear :quit"))
		return true
	}

	data, err := describe(reg, line)
	fmt.Fprintln(w, formatParse(data))
	var pe *commands.ParseError
	if errors.As(err, &pe) && errors.Is(err, commands.ErrNotFound) {
		name, _, _ := strings.Cut(line, " ")
		if s := SuggestCommandName(name); s != "" {
			fmt.Fprintln(w, DimStyle.Render("       did you mean "+s+"?"))
		}
	}
	return true
}

// HandleRepl reads definitions line by line until EOF, ctrl+c or :quit.
func HandleRepl(args Args, stdout, stderr io.Writer) error {
	if err := RequiresTTY("run the repl"); err != nil {
		return err
	}

	logger, closeLog, err := openLogger(args.Verbose, config.Global().LogFile, stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	reg := commands.NewRegistry(logger)

	editor := newLineEditor()
	defer editor.close()

	fmt.Fprintln(stdout, DimStyle.Render("Type a definition, Tab completes, :quit exits."))
	for {
		input, err := editor.readLine("cmdbind> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(stdout)
				return nil
			}
			return &CommandError{Command: "repl", Action: "read", Reason: "line editor failed", Err: err}
		}
		if !evalLine(reg, input, stdout) {
			return nil
		}
	}
}
