// Package config loads the prompt configuration from starship.toml. The
// renderer must never fail because of configuration problems, so every load
// error degrades to the built-in defaults with a logged diagnostic.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/mjeffryes/starship/pkg/logging"
)

// Config is the root prompt configuration.
type Config struct {
	// Format is the prompt template. Variables reference modules: "$all",
	// "$directory", "$custom.foo". Defaults to "$all".
	Format string `toml:"format"`
	// AddNewline prepends a blank line before the prompt. Defaults to true.
	AddNewline *bool `toml:"add_newline"`
	// Palette selects a named color palette for style strings.
	Palette string `toml:"palette"`
	// Custom holds the user-defined command modules, keyed by id.
	Custom map[string]CustomConfig `toml:"custom"`

	// modules holds the per-builtin-module tables ([directory], [character],
	// ...), extracted from the raw document since their keys are open-ended.
	modules map[string]ModuleConfig
}

// ModuleConfig is the per-module table shared by all builtin modules. Module
// specific options beyond the common keys are available through Options.
type ModuleConfig struct {
	Disabled *bool
	Style    string
	Symbol   string
	Options  map[string]any
}

// CustomConfig defines a user-provided command module referenced in the
// template as custom.<id>.
type CustomConfig struct {
	Command     string `toml:"command"`
	When        string `toml:"when"`
	Shell       string `toml:"shell"`
	Description string `toml:"description"`
	Style       string `toml:"style"`
	Symbol      string `toml:"symbol"`
	Disabled    bool   `toml:"disabled"`
}

// rootKeys are the top-level keys that are not module tables.
var rootKeys = map[string]bool{
	"format":      true,
	"add_newline": true,
	"palette":     true,
	"custom":      true,
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{Format: "$all"}
}

// Path returns the configuration file location: $STARSHIP_CONFIG when set,
// otherwise starship.toml in the XDG config home.
func Path() string {
	if p := os.Getenv("STARSHIP_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(xdg.ConfigHome, "starship.toml")
}

// Load reads the configuration at path. A missing file yields the defaults
// silently; an unreadable or malformed file yields the defaults with a logged
// diagnostic. Load never returns nil.
func Load(path string) *Config {
	logger := logging.GetLogger("config")

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn().Err(err).Str("path", path).Msg("could not read config file, using defaults")
		}
		return Default()
	}

	cfg, err := Parse(data)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("could not parse config file, using defaults")
		return Default()
	}
	return cfg
}

// Parse decodes a TOML document into a Config.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Format == "" {
		cfg.Format = "$all"
	}

	// Per-module tables have open-ended keys, so they come from a second
	// generic decode rather than struct tags.
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	cfg.modules = make(map[string]ModuleConfig)
	for key, value := range raw {
		if rootKeys[key] {
			continue
		}
		table, ok := value.(map[string]any)
		if !ok {
			continue
		}
		cfg.modules[key] = moduleConfigFromTable(table)
	}
	return cfg, nil
}

func moduleConfigFromTable(table map[string]any) ModuleConfig {
	mc := ModuleConfig{Options: table}
	if v, ok := table["disabled"].(bool); ok {
		mc.Disabled = &v
	}
	if v, ok := table["style"].(string); ok {
		mc.Style = v
	}
	if v, ok := table["symbol"].(string); ok {
		mc.Symbol = v
	}
	return mc
}

// Module returns the configuration table for a builtin module. The zero
// value is returned when the user configured nothing.
func (c *Config) Module(name string) ModuleConfig {
	return c.modules[name]
}

// IsModuleDisabled reports whether the user explicitly disabled a builtin
// module; defaultDisabled applies when the config is silent.
func (c *Config) IsModuleDisabled(name string, defaultDisabled bool) bool {
	if mc, ok := c.modules[name]; ok && mc.Disabled != nil {
		return *mc.Disabled
	}
	return defaultDisabled
}

// IsCustomDisabled reports whether the custom module with the given id is
// disabled. The second return value is false when no such module is
// configured.
func (c *Config) IsCustomDisabled(id string) (disabled, found bool) {
	cc, ok := c.Custom[id]
	if !ok {
		return false, false
	}
	return cc.Disabled, true
}

// NewlineBeforePrompt reports whether a blank line precedes the prompt.
func (c *Config) NewlineBeforePrompt() bool {
	if c.AddNewline == nil {
		return true
	}
	return *c.AddNewline
}

// OptionString returns a string-valued module option, or fallback.
func (mc ModuleConfig) OptionString(key, fallback string) string {
	if v, ok := mc.Options[key].(string); ok {
		return v
	}
	return fallback
}

// OptionInt returns an integer-valued module option, or fallback. TOML
// integers decode as int64.
func (mc ModuleConfig) OptionInt(key string, fallback int) int {
	if v, ok := mc.Options[key].(int64); ok {
		return int(v)
	}
	return fallback
}

// OptionBool returns a boolean-valued module option, or fallback.
func (mc ModuleConfig) OptionBool(key string, fallback bool) bool {
	if v, ok := mc.Options[key].(bool); ok {
		return v
	}
	return fallback
}
