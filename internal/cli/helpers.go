// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jeranaias/cmdbind/internal/commands"
	"github.com/jeranaias/cmdbind/internal/config"
	"github.com/jeranaias/cmdbind/internal/ui/styles"
)

// commandName returns the catalog name behind id, following instances to
// the command they were parsed from.
func commandName(reg *commands.Registry, id commands.ID) string {
	if cmd, ok := commands.Lookup(reg.Resolve(id)); ok {
		return cmd.Name
	}
	return ""
}

// describe resolves def through reg into its JSON form.
func describe(reg *commands.Registry, def string) (ParseData, error) {
	data := ParseData{Definition: def, ID: int(commands.InvalidID)}
	id, err := reg.ParseDefinition(def)
	if err != nil {
		data.Error = err.Error()
		return data, err
	}
	data.ID = int(id)
	data.Command = commandName(reg, id)
	if inst, ok := reg.Find(id); ok {
		data.Instance = true
		data.OrigID = int(inst.OrigID)
		for _, a := range inst.Args() {
			data.Args = append(data.Args, ArgData{Name: a.Name, Type: a.Type().String(), Value: a.Value.String()})
		}
	}
	return data, nil
}

// formatParse renders one resolved definition on a single line.
func formatParse(d ParseData) string {
	if d.Error != "" {
		return fmt.Sprintf("%s %q: %s", RenderStatus("fail"), d.Definition, d.Error)
	}
	line := fmt.Sprintf("%s %s id=%d", RenderStatus("ok"), NameStyle.Render(d.Command), d.ID)
	if d.Instance {
		args := make([]string, len(d.Args))
		for i, a := range d.Args {
			args[i] = a.Name + "=" + a.Value
			if a.Type == commands.ArgColor.String() && len(a.Value) == 7 {
				args[i] += styles.Swatch(a.Value)
			}
		}
		line += fmt.Sprintf(" orig=%d args=[%s]", d.OrigID, strings.Join(args, " "))
	}
	return line
}

// openLogger returns the logger for registry diagnostics: stderr when
// verbose, else the configured log file, else nothing. The returned func
// closes the file.
func openLogger(verbose bool, logFile string, stderr io.Writer) (*log.Logger, func(), error) {
	if verbose {
		return log.New(stderr, "", 0), func() {}, nil
	}
	if logFile == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.New(f, "", log.LstdFlags), func() { f.Close() }, nil
}

// loadConfig loads path, or the default location when path is empty. The
// returned path is empty when defaults were used.
func loadConfig(path string) (*config.Config, string, error) {
	if path == "" {
		resolved, err := config.ResolvePath()
		if err != nil {
			return nil, "", &ConfigError{Err: err}
		}
		path = resolved
	}
	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, "", &ConfigError{Err: err}
		}
		return cfg, "", nil
	}
	cfg, err := config.LoadFromPath(path)
	if err != nil {
		return nil, path, &ConfigError{Path: path, Err: err}
	}
	return cfg, path, nil
}
