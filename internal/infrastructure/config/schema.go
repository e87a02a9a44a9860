package config

import "slices"

// App names as they appear in apps.enabled.
const (
	AppMacOS   = "macos"
	AppBat     = "bat"
	AppDelta   = "delta"
	AppHelix   = "helix"
	AppKitty   = "kitty"
	AppBrowser = "browser"
)

// SupportedApps returns every app theme-control can drive, in apply order.
func SupportedApps() []string {
	return []string{AppMacOS, AppBat, AppDelta, AppHelix, AppKitty, AppBrowser}
}

// Config represents the complete configuration for theme-control.
type Config struct {
	// LogLevel is the verbosity: 1=error, 2=warn, 3=info, 4=debug.
	LogLevel int `mapstructure:"log_level" toml:"log_level" json:"log_level" jsonschema:"minimum=1,maximum=4,default=2"`
	// Apps selects which applications are themed and where their files live.
	Apps AppsConfig `mapstructure:"apps" toml:"apps" json:"apps"`
}

// AppsConfig holds the enabled app list and per-app overrides.
type AppsConfig struct {
	Enabled []string      `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	Bat     BatConfig     `mapstructure:"bat" toml:"bat" json:"bat"`
	Delta   DeltaConfig   `mapstructure:"delta" toml:"delta" json:"delta"`
	Helix   HelixConfig   `mapstructure:"helix" toml:"helix" json:"helix"`
	Browser BrowserConfig `mapstructure:"browser" toml:"browser" json:"browser"`
}

// BatConfig locates bat's config file and custom themes directory.
type BatConfig struct {
	ConfigPath string `mapstructure:"configPath" toml:"configPath" json:"configPath"`
	ThemesPath string `mapstructure:"themesPath" toml:"themesPath" json:"themesPath"`
}

// DeltaConfig locates the git config holding delta.syntax-theme.
// ThemesPath defaults to bat's themes directory since delta reads bat's syntax set.
type DeltaConfig struct {
	ConfigPath string `mapstructure:"configPath" toml:"configPath" json:"configPath"`
	ThemesPath string `mapstructure:"themesPath" toml:"themesPath,omitempty" json:"themesPath,omitempty"`
}

// HelixConfig locates helix's config.toml.
type HelixConfig struct {
	ConfigPath string `mapstructure:"configPath" toml:"configPath" json:"configPath"`
}

// BrowserConfig locates the theme state file and the helper socket.
type BrowserConfig struct {
	StatePath  string `mapstructure:"statePath" toml:"statePath" json:"statePath"`
	SocketPath string `mapstructure:"socketPath" toml:"socketPath" json:"socketPath"`
}

// IsEnabled reports whether app is listed in apps.enabled.
func (a AppsConfig) IsEnabled(app string) bool {
	return slices.Contains(a.Enabled, app)
}

// Clone returns a deep copy so callers can never mutate shared state.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	out := *c
	out.Apps.Enabled = slices.Clone(c.Apps.Enabled)
	return &out
}
