// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/cmdbind/internal/bindings"
	"github.com/jeranaias/cmdbind/internal/commands"
	"github.com/jeranaias/cmdbind/internal/config"
	"github.com/jeranaias/cmdbind/internal/ui/components"
)

func useDefaultConfig(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CMDBIND_CONFIG", "")
	config.SetGlobal(config.Default())
	t.Cleanup(config.ResetGlobalForTesting)
}

func run(t *testing.T, argv ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = Run(argv, &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// =============================================================================
// ARG PARSER TESTS (args.go)
// =============================================================================

func TestArgParser_BasicParsing(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(*testing.T, *ArgParser)
	}{
		{
			name: "flag with value",
			args: []string{"check", "--config", "a.toml"},
			validate: func(t *testing.T, p *ArgParser) {
				if p.Flag("config") != "a.toml" {
					t.Errorf("Flag(config) = %q, want a.toml", p.Flag("config"))
				}
				if p.PositionalCount() != 1 {
					t.Errorf("PositionalCount() = %d, want 1", p.PositionalCount())
				}
			},
		},
		{
			name: "flag with equals",
			args: []string{"list", "--limit=5"},
			validate: func(t *testing.T, p *ArgParser) {
				if got := p.FlagIntOrDefault("limit", 0); got != 5 {
					t.Errorf("FlagIntOrDefault(limit) = %d, want 5", got)
				}
			},
		},
		{
			name: "declared bool flag does not swallow positional",
			args: []string{"parse", "--json", "ScrollDown 5"},
			validate: func(t *testing.T, p *ArgParser) {
				if !p.BoolFlag("json") {
					t.Error("BoolFlag(json) should be true")
				}
				if p.Positional(1) != "ScrollDown 5" {
					t.Errorf("Positional(1) = %q, want %q", p.Positional(1), "ScrollDown 5")
				}
			},
		},
		{
			name: "explicit bool value",
			args: []string{"--json=false"},
			validate: func(t *testing.T, p *ArgParser) {
				if p.BoolFlag("json") {
					t.Error("BoolFlag(json) should be false")
				}
				if !p.HasFlag("json") {
					t.Error("HasFlag(json) should be true")
				}
			},
		},
		{
			name: "double dash ends flags",
			args: []string{"parse", "--", "--json"},
			validate: func(t *testing.T, p *ArgParser) {
				if p.BoolFlag("json") {
					t.Error("--json after -- is positional")
				}
				if got := strings.Join(p.PositionalFrom(1), ","); got != "--json" {
					t.Errorf("PositionalFrom(1) = %q", got)
				}
			},
		},
		{
			name: "trailing undeclared flag is bool",
			args: []string{"list", "--whatever"},
			validate: func(t *testing.T, p *ArgParser) {
				if !p.BoolFlag("whatever") {
					t.Error("BoolFlag(whatever) should be true")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, NewArgParser(tt.args, "json"))
		})
	}
}

func TestArgParser_OutOfRange(t *testing.T) {
	p := NewArgParser(nil)
	if p.Positional(0) != "" || p.Positional(-1) != "" {
		t.Error("out of range positionals should be empty")
	}
	if len(p.PositionalFrom(3)) != 0 {
		t.Error("PositionalFrom past the end should be empty")
	}
	if _, err := p.FlagInt("limit"); err == nil {
		t.Error("FlagInt on a missing flag should fail")
	}
	if p.FlagOrDefault("config", "x") != "x" {
		t.Error("FlagOrDefault should return the default")
	}
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"true", "YES", "y", "1", "on"} {
		b, err := ParseBoolString(s)
		require.NoError(t, err)
		require.True(t, b, s)
	}
	for _, s := range []string{"false", "No", "n", "0", "off"} {
		b, err := ParseBoolString(s)
		require.NoError(t, err)
		require.False(t, b, s)
	}
	_, err := ParseBoolString("maybe")
	require.Error(t, err)
}

// =============================================================================
// ROUTING TESTS (cli.go)
// =============================================================================

func TestParseRouting(t *testing.T) {
	tests := []struct {
		argv []string
		want Command
	}{
		{nil, CmdHelp},
		{[]string{"help"}, CmdHelp},
		{[]string{"list", "--help"}, CmdHelp},
		{[]string{"parse", "Exit"}, CmdParse},
		{[]string{"p", "Exit"}, CmdParse},
		{[]string{"LS"}, CmdList},
		{[]string{"check"}, CmdCheck},
		{[]string{"palette"}, CmdPalette},
		{[]string{"repl"}, CmdRepl},
		{[]string{"watch"}, CmdWatch},
		{[]string{"init"}, CmdInit},
		{[]string{"version"}, CmdVersion},
		{[]string{"--version"}, CmdVersion},
		{[]string{"frobnicate"}, CmdUnknown},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.argv, " "), func(t *testing.T) {
			got, _ := Parse(tt.argv)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseGlobalFlags(t *testing.T) {
	_, args := Parse([]string{"-v", "check", "--config", "x.toml", "--json", "-q"})
	require.True(t, args.Verbose)
	require.True(t, args.JSON)
	require.True(t, args.Quiet)
	require.Equal(t, "x.toml", args.ConfigPath)
	require.Equal(t, "check", args.Name)
	require.Empty(t, args.Positional)
}

func TestRunHelpAndVersion(t *testing.T) {
	code, out, _ := run(t, "help")
	require.Equal(t, ExitSuccess, code)
	require.Contains(t, out, "cmdbind parse")

	code, out, _ = run(t, "version")
	require.Equal(t, ExitSuccess, code)
	require.Contains(t, out, "cmdbind version "+Version)

	code, out, _ = run(t, "version", "--json")
	require.Equal(t, ExitSuccess, code)
	var resp struct {
		Success bool        `json:"success"`
		Data    VersionData `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.True(t, resp.Success)
	require.Equal(t, Version, resp.Data.Version)
	require.NotEmpty(t, resp.Data.GoVersion)
}

func TestRunUnknownCommand(t *testing.T) {
	code, _, errOut := run(t, "chekc")
	require.Equal(t, ExitUsageError, code)
	require.Contains(t, errOut, "unknown command")
	require.Contains(t, errOut, "cmdbind check")
}

// =============================================================================
// PARSE COMMAND TESTS
// =============================================================================

func TestRunParse(t *testing.T) {
	useDefaultConfig(t)

	code, out, _ := run(t, "parse", "ToggleFullscreen", "ScrollDown 5", "CreateAnnotHighlight color=#ffff00 openedit")
	require.Equal(t, ExitSuccess, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, fmt.Sprintf("[OK] ToggleFullscreen id=%d", commands.ToggleFullscreen), lines[0])
	require.Equal(t, fmt.Sprintf("[OK] ScrollDown id=%d orig=%d args=[n=5]", commands.FirstInstanceID, commands.ScrollDown), lines[1])
	require.Contains(t, lines[2], "CreateAnnotHighlight")
	require.Contains(t, lines[2], "color=#ffff00")
	require.Contains(t, lines[2], "openedit=true")
}

func TestRunParseJSON(t *testing.T) {
	useDefaultConfig(t)

	code, out, _ := run(t, "parse", "--json", "ScrollUp 3", "SetTheme dark")
	require.Equal(t, ExitSuccess, code)

	var resp struct {
		Success bool        `json:"success"`
		Data    []ParseData `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.True(t, resp.Success)
	require.Len(t, resp.Data, 2)

	require.True(t, resp.Data[0].Instance)
	require.Equal(t, int(commands.ScrollUp), resp.Data[0].OrigID)
	require.Equal(t, []ArgData{{Name: "n", Type: "int", Value: "3"}}, resp.Data[0].Args)

	require.Equal(t, "SetTheme", resp.Data[1].Command)
	require.Equal(t, resp.Data[0].ID+1, resp.Data[1].ID)
}

func TestRunParseFailures(t *testing.T) {
	useDefaultConfig(t)

	code, out, _ := run(t, "parse", "ScrlUp 5")
	require.Equal(t, ExitNotFoundError, code)
	require.Contains(t, out, "[FAIL]")
	require.Contains(t, out, "did you mean ScrollUp?")

	code, _, _ = run(t, "parse", "Exit now")
	require.Equal(t, ExitParseError, code)

	code, out, _ = run(t, "parse", "-q", "Exit", "Nope", "Exit now")
	require.Equal(t, ExitParseError, code)
	require.NotContains(t, out, "[OK]")
	require.Equal(t, 2, strings.Count(out, "[FAIL]"))

	code, _, errOut := run(t, "parse")
	require.Equal(t, ExitUsageError, code)
	require.Contains(t, errOut, "definition")
}

func TestRunParseVerboseLogsDiagnostics(t *testing.T) {
	useDefaultConfig(t)

	code, _, errOut := run(t, "parse", "-v", "ScrollUp abc")
	require.Equal(t, ExitParseError, code)
	require.Contains(t, errOut, "ARG_DROPPED")
	require.Contains(t, errOut, "PARSE_FAILED")
}

func TestRunParseLogFile(t *testing.T) {
	useDefaultConfig(t)
	logPath := filepath.Join(t.TempDir(), "cmdbind.log")
	cfg := config.Default()
	cfg.LogFile = logPath
	config.SetGlobal(cfg)

	code, _, errOut := run(t, "parse", "Nope")
	require.Equal(t, ExitNotFoundError, code)
	require.NotContains(t, errOut, "PARSE_FAILED")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "PARSE_FAILED")
}

// =============================================================================
// LIST COMMAND TESTS
// =============================================================================

func TestListEntries(t *testing.T) {
	all := listEntries("", false)
	require.Len(t, all, len(commands.Catalog()))
	require.Equal(t, "OpenFile", all[0].Name)
	require.Empty(t, all[0].Args)

	ranked := listEntries("zoom in", true)
	require.NotEmpty(t, ranked)
	require.Equal(t, "ZoomIn", ranked[0].Name)

	scroll := listEntries("ScrollDown", true)
	require.Equal(t, "ScrollDown", scroll[0].Name)
	require.Equal(t, []string{"n:int"}, scroll[0].Args)

	require.Empty(t, listEntries("qqqqqq", false))
}

func TestRunList(t *testing.T) {
	code, out, _ := run(t, "list", "--args", "--limit", "1", "createannothighlight")
	require.Equal(t, ExitSuccess, code)
	require.Contains(t, out, "CreateAnnotHighlight")
	require.Contains(t, out, "args: color:color openedit:bool copytoclipboard:bool setcontent:bool")
	require.Equal(t, 2, strings.Count(strings.TrimSpace(out), "\n")+1)

	code, out, _ = run(t, "list", "qqqqqq")
	require.Equal(t, ExitSuccess, code)
	require.Contains(t, out, "No matching commands")

	code, out, _ = run(t, "list", "--json", "--limit=3")
	require.Equal(t, ExitSuccess, code)
	var resp struct {
		Data []ListEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Data, 3)
}

// =============================================================================
// CHECK AND INIT COMMAND TESTS
// =============================================================================

const checkConfig = `
[palette]
max_items = 5

[[shortcuts]]
cmd = "ScrollDown 5"
key = "ctrl+d"

[[shortcuts]]
cmd = "SetTheme dark"
name = "Dark theme"

[[shortcuts]]
cmd = "NoSuchCommand"
key = "x"
`

func TestRunCheck(t *testing.T) {
	useDefaultConfig(t)
	path := writeConfig(t, checkConfig)

	code, out, _ := run(t, "check", "--config", path)
	require.Equal(t, ExitParseError, code)
	require.Contains(t, out, "ctrl+d")
	require.Contains(t, out, "(palette)")
	require.Contains(t, out, `"Dark theme"`)
	require.Contains(t, out, `shortcuts[2] "NoSuchCommand"`)
	require.Contains(t, out, "2 bound, 1 broken")

	code, out, _ = run(t, "check", "--config", path, "--json")
	require.Equal(t, ExitParseError, code)
	var resp struct {
		Success bool      `json:"success"`
		Error   *string   `json:"error"`
		Data    CheckData `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	require.Len(t, resp.Data.Bindings, 2)
	require.Equal(t, "ScrollDown", resp.Data.Bindings[0].Command)
	require.Len(t, resp.Data.Broken, 1)
	require.Equal(t, 2, resp.Data.Broken[0].Index)
}

func TestRunCheckClean(t *testing.T) {
	useDefaultConfig(t)
	path := writeConfig(t, "[[shortcuts]]\ncmd = \"ToggleFullscreen\"\nkey = \"f11\"\n")

	code, out, _ := run(t, "check", "--config", path, "-q")
	require.Equal(t, ExitSuccess, code)
	require.Empty(t, out)
}

func TestRunCheckDefaults(t *testing.T) {
	useDefaultConfig(t)

	code, out, _ := run(t, "check")
	require.Equal(t, ExitSuccess, code)
	require.Contains(t, out, "built-in defaults")
	require.Contains(t, out, "0 bound, 0 broken")
}

func TestRunCheckInvalidConfig(t *testing.T) {
	useDefaultConfig(t)

	path := writeConfig(t, "[palette]\nmax_items = 1000\n")
	code, _, errOut := run(t, "check", "--config", path)
	require.Equal(t, ExitConfigError, code)
	require.Contains(t, errOut, "max_items")

	code, _, _ = run(t, "check", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	require.Equal(t, ExitConfigError, code)
}

func TestRunInit(t *testing.T) {
	useDefaultConfig(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	code, out, _ := run(t, "init", "--config", path)
	require.Equal(t, ExitSuccess, code)
	require.Contains(t, out, path)

	cfg, err := config.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, config.Sample().Shortcuts, cfg.Shortcuts)

	code, _, errOut := run(t, "init", "--config", path)
	require.Equal(t, ExitUsageError, code)
	require.Contains(t, errOut, "already exists")

	code, _, _ = run(t, "init", "--config", path, "--force")
	require.Equal(t, ExitSuccess, code)

	// the sample resolves cleanly
	code, _, _ = run(t, "check", "--config", path, "-q")
	require.Equal(t, ExitSuccess, code)
}

// =============================================================================
// WATCH TESTS
// =============================================================================

// syncBuffer is a bytes.Buffer safe for one writer and one reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchReportsReloads(t *testing.T) {
	useDefaultConfig(t)
	path := writeConfig(t, "[[shortcuts]]\ncmd = \"ToggleFullscreen\"\nkey = \"f11\"\n")

	_, args := Parse([]string{"watch", "--config", path, "--debounce", "20"})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out, errOut syncBuffer
	done := make(chan error, 1)
	go func() { done <- watch(ctx, args, &out, &errOut) }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "1 bound, 0 broken")
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte(checkConfig), 0o644))
	require.Eventually(t, func() bool {
		s := out.String()
		return strings.Contains(s, "[RELOADED]") && strings.Contains(s, "2 bound, 1 broken")
	}, 2*time.Second, 10*time.Millisecond)
	require.Contains(t, out.String(), `shortcuts[2] "NoSuchCommand"`)

	require.NoError(t, os.WriteFile(path, []byte("[[shortcuts]\n"), 0o644))
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "reload failed")
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatchNeedsConfigFile(t *testing.T) {
	useDefaultConfig(t)
	code, _, errOut := run(t, "watch")
	require.Equal(t, ExitUsageError, code)
	require.Contains(t, errOut, "config")
}

// =============================================================================
// PALETTE MODEL TESTS
// =============================================================================

func testPaletteModel(t *testing.T) (*paletteModel, *bindings.Table) {
	t.Helper()
	cfg := config.Default()
	cfg.Shortcuts = []config.Shortcut{
		{Cmd: "ScrollDown 5", Key: "ctrl+d"},
		{Cmd: "ToggleFullscreen", Key: "f11"},
	}
	table := bindings.Build(cfg, commands.NewRegistry(nil))
	require.NoError(t, table.Err())
	ctx := commands.Context{DocumentLoaded: true}
	return newPaletteModel(ctx, table, 5), table
}

func TestPaletteModelBoundKeys(t *testing.T) {
	m, table := testPaletteModel(t)
	want, ok := table.Lookup("ctrl+d")
	require.True(t, ok)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	require.NotNil(t, cmd)
	require.NotNil(t, m.chosen)
	require.Equal(t, want, m.chosen.ID)
	require.Equal(t, "ctrl+d", m.chosen.Label)
	require.Empty(t, m.View())

	m, _ = testPaletteModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyF11})
	require.NotNil(t, m.chosen)
	require.Equal(t, commands.ToggleFullscreen, m.chosen.ID)
}

func TestPaletteModelQuit(t *testing.T) {
	m, _ := testPaletteModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.True(t, m.quitting)
	require.Nil(t, m.chosen)

	m, _ = testPaletteModel(t)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	require.True(t, m.quitting)
	require.Nil(t, m.chosen)
}

func TestPaletteModelChooseRow(t *testing.T) {
	m, _ := testPaletteModel(t)
	m.palette.SetQuery("zoom in")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd()
	exec, ok := msg.(components.ExecuteCommandMsg)
	require.True(t, ok)
	require.Equal(t, commands.ZoomIn, exec.ID)

	m.Update(msg)
	require.True(t, m.quitting)
	require.Equal(t, commands.ZoomIn, m.chosen.ID)
}

func TestPaletteModelShowsDefinitionErrors(t *testing.T) {
	m, _ := testPaletteModel(t)
	m.Update(components.PaletteErrorMsg{Definition: "Exit now", Err: commands.ErrNoArguments})
	require.False(t, m.quitting)
	require.Contains(t, m.View(), commands.ErrNoArguments.Error())
}

func TestPaletteContext(t *testing.T) {
	_, args := Parse([]string{"palette", "--file", "a.pdf", "--selection"})
	ctx := paletteContext(args, false)
	require.True(t, ctx.DocumentLoaded)
	require.True(t, ctx.HasSelection)
	require.False(t, ctx.SupportsAnnotations)
	require.False(t, ctx.Debug)
	require.Equal(t, "a.pdf", ctx.FilePath)

	_, args = Parse([]string{"palette"})
	require.True(t, paletteContext(args, true).Debug)
	require.False(t, paletteContext(args, false).DocumentLoaded)
}

// =============================================================================
// REPL TESTS
// =============================================================================

func TestEvalLine(t *testing.T) {
	reg := commands.NewRegistry(nil)
	var out bytes.Buffer

	require.True(t, evalLine(reg, "", &out))
	require.Empty(t, out.String())

	require.True(t, evalLine(reg, "ScrollUp 2", &out))
	require.Contains(t, out.String(), "args=[n=2]")
	require.Equal(t, 1, reg.Len())

	out.Reset()
	require.True(t, evalLine(reg, ":list", &out))
	require.Contains(t, out.String(), "ScrollUp 2")

	out.Reset()
	require.True(t, evalLine(reg, ":clear", &out))
	require.Equal(t, 0, reg.Len())

	out.Reset()
	require.True(t, evalLine(reg, "ZomIn", &out))
	require.Contains(t, out.String(), "did you mean ZoomIn?")

	out.Reset()
	require.True(t, evalLine(reg, ":help", &out))
	require.Contains(t, out.String(), ":quit")

	require.False(t, evalLine(reg, ":quit", &out))
	require.False(t, evalLine(reg, ":Q", &out))
}

// =============================================================================
// SUGGESTION AND ERROR TESTS
// =============================================================================

func TestSuggestCommand(t *testing.T) {
	tests := map[string]string{
		"chek":     "check",
		"parse":    "",
		"palete":   "palette",
		"x":        "",
		"zzzzzzzz": "",
	}
	for in, want := range tests {
		require.Equal(t, want, SuggestCommand(in), in)
	}
}

func TestSuggestCommandName(t *testing.T) {
	require.Equal(t, "ScrollUp", SuggestCommandName("scrlup"))
	require.Equal(t, "ZoomIn", SuggestCommandName("ZomIn"))
	require.Equal(t, "", SuggestCommandName("zoomin"))
	require.Equal(t, "", SuggestCommandName("Completely Different"))
}

func TestLevenshteinDistance(t *testing.T) {
	require.Equal(t, 0, levenshteinDistance("abc", "abc"))
	require.Equal(t, 3, levenshteinDistance("", "abc"))
	require.Equal(t, 1, levenshteinDistance("check", "chek"))
	require.Equal(t, 2, levenshteinDistance("hepl", "help"))
	require.Equal(t, 1, levenshteinDistance("über", "uber"))
}

func TestGetExitCode(t *testing.T) {
	parseErr := &commands.ParseError{Definition: "Exit now", Reason: "no args", Err: commands.ErrNoArguments}
	notFound := &commands.ParseError{Definition: "Nope", Reason: "unknown", Err: commands.ErrNotFound}

	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitSuccess},
		{errors.New("boom"), ExitGeneralError},
		{&ValidationError{Field: "x", Reason: "bad"}, ExitUsageError},
		{&ConfigError{Path: "a", Err: errors.New("bad")}, ExitConfigError},
		{fmt.Errorf("wrapped: %w", config.ValidateErrors{{Field: "f", Message: "m"}}), ExitConfigError},
		{notFound, ExitNotFoundError},
		{parseErr, ExitParseError},
		{&BrokenShortcutsError{Count: 1, Total: 2}, ExitParseError},
		{reportedError{parseErr}, ExitParseError},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, GetExitCode(tt.err), fmt.Sprint(tt.err))
	}
}

func TestDisplayErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	DisplayError(&buf, &ConfigError{Path: "a.toml", Err: errors.New("bad")}, true)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Equal(t, "config_error", out["error_type"])
	require.Equal(t, "a.toml", out["path"])
	require.Equal(t, float64(ExitConfigError), out["exit_code"])

	buf.Reset()
	DisplayError(&buf, nil, false)
	require.Empty(t, buf.String())

	DisplayError(&buf, errors.New("boom"), false)
	require.Equal(t, "[ERROR] boom\n", buf.String())
}

func TestRequiresTTYError(t *testing.T) {
	err := &TTYRequiredError{Operation: "pick a command"}
	require.Contains(t, err.Error(), "cannot pick a command")
	require.Contains(t, (&TTYRequiredError{}).Error(), "not available")
}
