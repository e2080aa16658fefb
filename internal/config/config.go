// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/jeranaias/cmdbind/internal/util"
)

// EnvPrefix prefixes every environment variable read by this package.
const EnvPrefix = "CMDBIND_"

// Palette item limits accepted by Validate.
const (
	MinPaletteItems     = 1
	MaxPaletteItems     = 100
	DefaultPaletteItems = 10
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the cmdbind configuration file.
type Config struct {
	// Palette configures the command palette.
	Palette PaletteConfig `toml:"palette" json:"palette"`

	// Shortcuts are command definitions bound to keys or palette labels.
	Shortcuts []Shortcut `toml:"shortcuts" json:"shortcuts"`

	// LogFile receives diagnostics instead of stderr when set.
	LogFile string `toml:"log_file,omitempty" json:"log_file,omitempty"`
}

// PaletteConfig contains command palette settings.
type PaletteConfig struct {
	// Debug offers debug-only commands.
	Debug bool `toml:"debug" json:"debug"`

	// MaxItems is the number of visible palette rows.
	MaxItems int `toml:"max_items" json:"max_items"`
}

// Shortcut binds a command definition such as "ScrollUp 5" to a key,
// a palette label, or both.
type Shortcut struct {
	Cmd  string `toml:"cmd" json:"cmd"`
	Key  string `toml:"key,omitempty" json:"key,omitempty"`
	Name string `toml:"name,omitempty" json:"name,omitempty"`
}

// envOverrides mirrors the settings that may come from the environment.
// Nil fields were not set.
type envOverrides struct {
	PaletteDebug    *bool   `env:"PALETTE_DEBUG"`
	PaletteMaxItems *int    `env:"PALETTE_MAX_ITEMS"`
	LogFile         *string `env:"LOG_FILE"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with no shortcuts.
func Default() *Config {
	return &Config{
		Palette: PaletteConfig{
			Debug:    false,
			MaxItems: DefaultPaletteItems,
		},
	}
}

// Sample returns the configuration written by "cmdbind init".
func Sample() *Config {
	cfg := Default()
	cfg.Shortcuts = []Shortcut{
		{Cmd: "ScrollDown 5", Key: "ctrl+d", Name: "Scroll down 5 lines"},
		{Cmd: "ScrollUp 5", Key: "ctrl+u", Name: "Scroll up 5 lines"},
		{Cmd: "CreateAnnotHighlight color=#ffff00 openedit", Key: "ctrl+h", Name: "Highlight yellow"},
		{Cmd: "Exec filter=*.pdf;*.epub xdg-open", Name: "Open with system viewer"},
		{Cmd: "SetTheme dark", Name: "Dark theme"},
		{Cmd: "ToggleFullscreen", Key: "f11"},
	}
	return cfg
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the cmdbind configuration directory.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".cmdbind"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// ResolvePath returns the file Load would read: $CMDBIND_CONFIG when set,
// else the first existing of config.toml and config.json. An empty path
// means built-in defaults.
func ResolvePath() (string, error) {
	if p := os.Getenv(EnvPrefix + "CONFIG"); p != "" {
		return p, nil
	}
	for _, candidate := range []func() (string, error){ConfigPathTOML, ConfigPathJSON} {
		p, err := candidate()
		if err != nil {
			return "", err
		}
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}

// LoadDotEnv loads KEY=value pairs from path into the process environment
// without overriding variables that are already set. A missing file is
// not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load reads the configuration from ResolvePath, or starts from defaults
// when no file exists. Environment overrides, defaults and validation are
// applied in that order.
func Load() (*Config, error) {
	path, err := ResolvePath()
	if err != nil {
		return nil, err
	}
	if path != "" {
		return LoadFromPath(path)
	}
	cfg := Default()
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromPath loads a specific TOML or JSON file, chosen by extension.
func LoadFromPath(path string) (*Config, error) {
	cfg := &Config{}
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = LoadJSON(cfg, path)
	} else {
		err = LoadTOML(cfg, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) finish() error {
	if err := c.ApplyEnvOverrides(); err != nil {
		return err
	}
	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadTOML decodes a TOML file into cfg. Unknown keys are rejected.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// LoadJSON decodes a JSON file into cfg. Unknown keys are rejected.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// SaveTOML writes cfg to path atomically.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "# cmdbind configuration file")
	fmt.Fprintln(&buf, "#")
	fmt.Fprintln(&buf, "# Each [[shortcuts]] entry binds a command definition, for example")
	fmt.Fprintln(&buf, "# \"ScrollUp 5\" or \"CreateAnnotText color=#ff0000 openedit\".")
	fmt.Fprintln(&buf, "# Run 'cmdbind list --args' for the commands and their arguments.")
	fmt.Fprintln(&buf, "")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks settings and the shape of each shortcut. It does not
// resolve command definitions.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.Palette.MaxItems < MinPaletteItems || c.Palette.MaxItems > MaxPaletteItems {
		errs = append(errs, ValidationError{
			Field:   "palette.max_items",
			Message: fmt.Sprintf("must be between %d and %d (got %d)", MinPaletteItems, MaxPaletteItems, c.Palette.MaxItems),
		})
	}

	seen := make(map[string]int)
	for i, s := range c.Shortcuts {
		field := fmt.Sprintf("shortcuts[%d]", i)
		if strings.TrimSpace(s.Cmd) == "" {
			errs = append(errs, ValidationError{Field: field + ".cmd", Message: "must not be empty"})
		}
		if strings.TrimSpace(s.Key) == "" && strings.TrimSpace(s.Name) == "" {
			errs = append(errs, ValidationError{Field: field, Message: "needs a key or a name"})
		}
		key := NormalizeKey(s.Key)
		if key == "" {
			continue
		}
		if prev, dup := seen[key]; dup {
			errs = append(errs, ValidationError{
				Field:   field + ".key",
				Message: fmt.Sprintf("%q already bound by shortcuts[%d]", s.Key, prev),
			})
			continue
		}
		seen[key] = i
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NormalizeKey lower-cases a key description and strips spaces, so
// "Ctrl + H" and "ctrl+h" name the same key.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.ReplaceAll(key, " ", ""))
}

// SetDefaults fills zero values with defaults.
func (c *Config) SetDefaults() {
	if c.Palette.MaxItems == 0 {
		c.Palette.MaxItems = DefaultPaletteItems
	}
	for i := range c.Shortcuts {
		c.Shortcuts[i].Cmd = strings.TrimSpace(c.Shortcuts[i].Cmd)
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides:
//   - CMDBIND_PALETTE_DEBUG: overrides palette.debug
//   - CMDBIND_PALETTE_MAX_ITEMS: overrides palette.max_items
//   - CMDBIND_LOG_FILE: overrides log_file
func (c *Config) ApplyEnvOverrides() error {
	return c.applyEnv(env.Options{Prefix: EnvPrefix})
}

func (c *Config) applyEnv(opts env.Options) error {
	var o envOverrides
	if err := env.ParseWithOptions(&o, opts); err != nil {
		return fmt.Errorf("environment overrides: %w", err)
	}
	if o.PaletteDebug != nil {
		c.Palette.Debug = *o.PaletteDebug
	}
	if o.PaletteMaxItems != nil {
		c.Palette.MaxItems = *o.PaletteMaxItems
	}
	if o.LogFile != nil {
		c.LogFile = *o.LogFile
	}
	return nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Shortcuts != nil {
		clone.Shortcuts = make([]Shortcut, len(c.Shortcuts))
		copy(clone.Shortcuts, c.Shortcuts)
	}
	return &clone
}

// String returns the config as indented JSON for debugging.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			log.Printf("CONFIG_LOAD_FAILED | error=%v fallback=defaults", err)
			cfg = Default()
		}
		globalConfigMu.Lock()
		globalConfig = cfg
		globalConfigMu.Unlock()
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// ReloadGlobal reloads the global configuration from disk. Thread-safe.
// On error the previous configuration stays in place.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	SetGlobal(cfg)
	return nil
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigOnce.Do(func() {})
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
