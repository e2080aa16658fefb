// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jeranaias/cmdbind/internal/bindings"
	"github.com/jeranaias/cmdbind/internal/commands"
)

// HandleWatch rebuilds the shortcut table whenever the config file changes
// and reports each rebuild, until interrupted.
func HandleWatch(args Args, stdout, stderr io.Writer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watch(ctx, args, stdout, stderr)
}

func watch(ctx context.Context, args Args, stdout, stderr io.Writer) error {
	cfg, path, err := loadConfig(args.ConfigPath)
	if err != nil {
		return err
	}
	if path == "" {
		return ErrMissingArgument("config", "cmdbind watch --config ~/.cmdbind/config.toml")
	}

	logger, closeLog, err := openLogger(args.Verbose, cfg.LogFile, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	table := bindings.Build(cfg, commands.NewRegistry(logger))
	debounce := time.Duration(args.Parser.FlagIntOrDefault("debounce", 0)) * time.Millisecond
	w, err := bindings.NewWatcher(path, table, debounce)
	if err != nil {
		return &CommandError{Command: "watch", Action: "start", Reason: path, Err: err}
	}

	report := func(prefix string) {
		data := checkTable(path, table)
		if args.JSON {
			_ = NewJSONResponse("watch", data).Print(stdout)
			return
		}
		fmt.Fprintf(stdout, "%s %s: %d bound, %d broken\n", prefix, path, len(data.Bindings), len(data.Broken))
		for _, b := range data.Broken {
			fmt.Fprintf(stdout, "  %s shortcuts[%d] %q: %s\n", RenderStatus("fail"), b.Index, b.Definition, b.Error)
		}
	}
	report(RenderStatus("ok"))

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	for u := range w.Updates() {
		if u.Err != nil {
			if args.JSON {
				_ = NewJSONErrorResponse("watch", nil, u.Err).Print(stdout)
			} else {
				fmt.Fprintf(stdout, "%s reload failed, keeping previous shortcuts: %v\n", RenderStatus("warn"), u.Err)
			}
			continue
		}
		report(RenderStatus("reloaded"))
	}

	if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
