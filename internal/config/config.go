package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. DEVFOLIO_UI_THEME.
const EnvPrefix = "DEVFOLIO"

// Config holds application configuration.
type Config struct {
	UI          UIConfig           `mapstructure:"ui"`
	Log         LogConfig          `mapstructure:"log"`
	Keybindings []KeybindingConfig `mapstructure:"keybindings"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme        string `mapstructure:"theme"`
	LineNumbers  bool   `mapstructure:"line_numbers"`
	TabWidth     int    `mapstructure:"tab_width"`
	NerdFonts    bool   `mapstructure:"nerd_fonts"`
	SidebarWidth int    `mapstructure:"sidebar_width"`
	CopilotWidth int    `mapstructure:"copilot_width"`
	PanelHeight  int    `mapstructure:"panel_height"`
	Mouse        bool   `mapstructure:"mouse"`
	AltScreen    bool   `mapstructure:"alt_screen"`
	Workspace    string `mapstructure:"workspace"`
}

// LogConfig holds logger settings. An empty Path disables logging.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
	Path        string `mapstructure:"path"`
}

// KeybindingConfig overrides the keys of one action in one scope.
type KeybindingConfig struct {
	Scope  string   `mapstructure:"scope"`
	Action string   `mapstructure:"action"`
	Keys   []string `mapstructure:"keys"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ui.theme", "github-dark")
	v.SetDefault("ui.line_numbers", true)
	v.SetDefault("ui.tab_width", 4)
	v.SetDefault("ui.nerd_fonts", false)
	v.SetDefault("ui.sidebar_width", 26)
	v.SetDefault("ui.copilot_width", 30)
	v.SetDefault("ui.panel_height", 9)
	v.SetDefault("ui.mouse", true)
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.workspace", "portfolio")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("log.path", "")
}

// Default returns the built-in configuration.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

// DefaultPath returns $DEVFOLIO_CONFIG or the per-user config.toml location.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvPrefix + "_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "devfolio", "config.toml"), nil
}

// Load reads configuration from path (or the default location when empty)
// and the environment. A missing file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func isNotExist(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, os.ErrNotExist)
}

// Validate rejects settings the UI cannot lay out.
func (c Config) Validate() error {
	if c.UI.TabWidth < 1 || c.UI.TabWidth > 16 {
		return fmt.Errorf("ui.tab_width must be between 1 and 16, got %d", c.UI.TabWidth)
	}
	if c.UI.SidebarWidth < 10 {
		return fmt.Errorf("ui.sidebar_width must be at least 10, got %d", c.UI.SidebarWidth)
	}
	if c.UI.CopilotWidth < 10 {
		return fmt.Errorf("ui.copilot_width must be at least 10, got %d", c.UI.CopilotWidth)
	}
	if c.UI.PanelHeight < 3 {
		return fmt.Errorf("ui.panel_height must be at least 3, got %d", c.UI.PanelHeight)
	}
	for i, kb := range c.Keybindings {
		if strings.TrimSpace(kb.Scope) == "" || strings.TrimSpace(kb.Action) == "" {
			return fmt.Errorf("keybindings[%d]: scope and action are required", i)
		}
	}
	return nil
}

// WriteDefault writes the default configuration to path, creating the
// directory if needed. Keys, when given, are written as the keybindings
// table so every binding can be edited in place. It refuses to overwrite an
// existing file.
func WriteDefault(path string, keys []KeybindingConfig) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	setDefaults(v)
	if len(keys) > 0 {
		rows := make([]map[string]any, 0, len(keys))
		for _, kb := range keys {
			rows = append(rows, map[string]any{
				"scope":  kb.Scope,
				"action": kb.Action,
				"keys":   kb.Keys,
			})
		}
		v.Set("keybindings", rows)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
