// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/jeranaias/cmdbind/internal/config"
)

// HandleInit writes the sample config to --config or the default TOML path.
// An existing file is only replaced with --force.
func HandleInit(args Args, stdout io.Writer) error {
	path := args.ConfigPath
	if path == "" {
		p, err := config.ConfigPathTOML()
		if err != nil {
			return &ConfigError{Err: err}
		}
		path = p
	}

	if _, err := os.Stat(path); err == nil && !args.Parser.BoolFlag("force") {
		return &ValidationError{
			Field:   "config",
			Value:   path,
			Reason:  "file already exists",
			Example: "cmdbind init --force",
		}
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &ConfigError{Path: path, Err: err}
	}

	if err := config.SaveTOML(config.Sample(), path); err != nil {
		return &CommandError{Command: "init", Action: "write", Reason: path, Err: err}
	}

	if args.JSON {
		return NewJSONResponse("init", map[string]string{"path": path}).Print(stdout)
	}
	fmt.Fprintf(stdout, "%s wrote %s\n", RenderStatus("ok"), path)
	return nil
}
