// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - argument routing and the subcommand table for cmdbind.
package cli

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/jeranaias/cmdbind/internal/config"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdHelp Command = iota
	CmdParse
	CmdList
	CmdCheck
	CmdPalette
	CmdRepl
	CmdWatch
	CmdInit
	CmdVersion
	CmdUnknown
)

// boolFlags never consume the argument that follows them.
var boolFlags = []string{
	"json", "verbose", "v", "quiet", "q", "help", "h", "version",
	"args", "force", "debug", "document", "selection", "annotations",
}

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	JSON       bool
	Verbose    bool
	Quiet      bool
	ConfigPath string

	// Name is the subcommand as typed
	Name string

	// Positional are the arguments after the subcommand
	Positional []string

	// Parser gives access to subcommand flags
	Parser *ArgParser
}

const usageText = `cmdbind - resolve command definitions and keyboard shortcuts

Usage:
  cmdbind parse <definition>...     Resolve definitions such as "ScrollDown 5"
  cmdbind list [query]              List commands, fuzzy-filtered by query
    --args                          Show the arguments each command accepts
    --limit N                       Show at most N commands
  cmdbind check                     Validate the shortcuts of a config file
  cmdbind palette                   Pick a command interactively
    --document                      Pretend a document is open
    --file PATH                     Path of the open document (implies --document)
    --selection                     Pretend text is selected
    --annotations                   Pretend the document supports annotations
    --debug                         Offer debug commands
  cmdbind repl                      Parse definitions line by line
  cmdbind watch                     Rebuild the shortcut table whenever the config changes
    --debounce MS                   Quiet period before a reload (default 200)
  cmdbind init [--force]            Write a sample config file
  cmdbind version                   Show version information
  cmdbind help                      Show this help

Global flags:
  --config FILE                     Config file (default $CMDBIND_CONFIG, ~/.cmdbind/config.toml)
  --json                            Machine-readable output
  -v, --verbose                     Log parser diagnostics to stderr
  -q, --quiet                       Only report failures

Definitions:
  <Command> [<value>] [<arg> <value>] [<arg>: <value>] [<arg>=<value>] [<boolarg>]

  cmdbind parse "ScrollDown 5" "CreateAnnotHighlight color=#ffff00 openedit"
  cmdbind parse "Exec filter=*.pdf;*.epub xdg-open"

Environment:
  CMDBIND_CONFIG, CMDBIND_PALETTE_DEBUG, CMDBIND_PALETTE_MAX_ITEMS, CMDBIND_LOG_FILE
  A .env file in the working directory is loaded first.

Version: %s
`

// PrintUsage writes the usage/help text.
func PrintUsage(w io.Writer) {
	fmt.Fprintf(w, usageText, Version)
}

// PrintVersion writes version information.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "cmdbind version %s\n", Version)
	fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
	fmt.Fprintf(w, "  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments, without the program name.
func Parse(argv []string) (Command, Args) {
	p := NewArgParser(argv, boolFlags...)
	args := Args{
		JSON:       p.BoolFlag("json"),
		Verbose:    p.BoolFlag("verbose") || p.BoolFlag("v"),
		Quiet:      p.BoolFlag("quiet") || p.BoolFlag("q"),
		ConfigPath: p.Flag("config"),
		Name:       p.Positional(0),
		Positional: p.PositionalFrom(1),
		Parser:     p,
	}

	if p.BoolFlag("version") {
		return CmdVersion, args
	}
	if p.BoolFlag("help") || p.BoolFlag("h") {
		return CmdHelp, args
	}

	switch strings.ToLower(args.Name) {
	case "", "help":
		return CmdHelp, args
	case "parse", "p":
		return CmdParse, args
	case "list", "ls":
		return CmdList, args
	case "check":
		return CmdCheck, args
	case "palette":
		return CmdPalette, args
	case "repl":
		return CmdRepl, args
	case "watch":
		return CmdWatch, args
	case "init":
		return CmdInit, args
	case "version":
		return CmdVersion, args
	default:
		return CmdUnknown, args
	}
}

// reportedError marks an error whose details the handler already wrote.
// Run only uses it for the exit code.
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error {
	return e.error
}

// Run executes the command line and returns the process exit code.
func Run(argv []string, stdout, stderr io.Writer) int {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(stderr, "%s %v\n", WarningStyle.Render("[WARN]"), err)
	}

	cmd, args := Parse(argv)
	err := dispatch(cmd, args, stdout, stderr)
	if err == nil {
		return ExitSuccess
	}

	var reported reportedError
	if !errors.As(err, &reported) {
		if args.JSON {
			DisplayError(stdout, err, true)
		} else {
			DisplayError(stderr, err, false)
		}
	}
	return GetExitCode(err)
}

func dispatch(cmd Command, args Args, stdout, stderr io.Writer) error {
	switch cmd {
	case CmdParse:
		return HandleParse(args, stdout, stderr)
	case CmdList:
		return HandleList(args, stdout)
	case CmdCheck:
		return HandleCheck(args, stdout, stderr)
	case CmdPalette:
		return HandlePalette(args, stdout, stderr)
	case CmdRepl:
		return HandleRepl(args, stdout, stderr)
	case CmdWatch:
		return HandleWatch(args, stdout, stderr)
	case CmdInit:
		return HandleInit(args, stdout)
	case CmdVersion:
		return HandleVersion(args, stdout)
	case CmdUnknown:
		return unknownCommand(args.Name)
	default:
		PrintUsage(stdout)
		return nil
	}
}

func unknownCommand(name string) error {
	err := &ValidationError{Field: "command", Value: name, Reason: "unknown command"}
	if s := SuggestCommand(name); s != "" {
		err.Example = "cmdbind " + s
	} else {
		err.Example = "cmdbind help"
	}
	return err
}

// HandleVersion handles the "version" command.
func HandleVersion(args Args, stdout io.Writer) error {
	if args.JSON {
		data := VersionData{
			Version:   Version,
			GitCommit: GitCommit,
			BuildDate: BuildDate,
			GoVersion: runtime.Version(),
		}
		return NewJSONResponse("version", data).Print(stdout)
	}
	PrintVersion(stdout)
	return nil
}
