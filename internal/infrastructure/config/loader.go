// Package config loads theme-control's TOML configuration with Viper.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// File permission constants
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Manager handles configuration loading.
type Manager struct {
	config      *Config
	viper       *viper.Viper
	configFile  string
	fileFound   bool
	defaultKeys []string
	mu          sync.RWMutex
}

// NewManager creates a configuration manager reading configFile.
// An empty configFile resolves to TC_CONFIG_PATH or the XDG default.
func NewManager(configFile string) (*Manager, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config file: %w\nCheck XDG_CONFIG_HOME or TC_CONFIG_PATH environment variables", err)
		}
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(configFile)

	if err := v.BindEnv("log_level", EnvLogLevel); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", EnvLogLevel, err)
	}

	return &Manager{
		viper:      v,
		configFile: configFile,
	}, nil
}

// Load reads the config file (if present) and merges it over the defaults.
// A missing file is not an error; an unreadable or malformed one is.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	return m.resolve()
}

// LoadFrom merges TOML read from r over the defaults. Used for tests and
// for piping a config on stdin.
func (m *Manager) LoadFrom(r io.Reader) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.viper.ReadConfig(r); err != nil {
		return fmt.Errorf("failed to parse config: %w\nCheck the file format (must be valid TOML)", err)
	}
	m.fileFound = true

	return m.resolve()
}

func (m *Manager) readConfigFile() error {
	if _, err := os.Stat(m.configFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			m.fileFound = false
			return nil
		}
		return fmt.Errorf("failed to stat config file at %s: %w", m.configFile, err)
	}

	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to load config from %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile, err)
	}
	m.fileFound = true
	return nil
}

func (m *Manager) resolve() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFile,
			err,
		)
	}

	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func normalizeConfig(config *Config) {
	config.Apps.Bat.ConfigPath = ExpandHome(strings.TrimSpace(config.Apps.Bat.ConfigPath))
	config.Apps.Bat.ThemesPath = ExpandHome(strings.TrimSpace(config.Apps.Bat.ThemesPath))
	config.Apps.Delta.ConfigPath = ExpandHome(strings.TrimSpace(config.Apps.Delta.ConfigPath))
	config.Apps.Delta.ThemesPath = ExpandHome(strings.TrimSpace(config.Apps.Delta.ThemesPath))
	config.Apps.Helix.ConfigPath = ExpandHome(strings.TrimSpace(config.Apps.Helix.ConfigPath))
	config.Apps.Browser.StatePath = ExpandHome(strings.TrimSpace(config.Apps.Browser.StatePath))
	config.Apps.Browser.SocketPath = ExpandHome(strings.TrimSpace(config.Apps.Browser.SocketPath))

	// Delta shares bat's syntax set unless told otherwise.
	if config.Apps.Delta.ThemesPath == "" {
		config.Apps.Delta.ThemesPath = config.Apps.Bat.ThemesPath
	}

	enabled := make([]string, 0, len(config.Apps.Enabled))
	for _, app := range config.Apps.Enabled {
		app = strings.TrimSpace(app)
		if app == "" || slices.Contains(enabled, app) {
			continue
		}
		enabled = append(enabled, app)
	}
	config.Apps.Enabled = enabled
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	return m.config.Clone()
}

// ConfigFile returns the path of the configuration file in use.
func (m *Manager) ConfigFile() string {
	return m.configFile
}

// FileFound reports whether a config file was read during Load.
func (m *Manager) FileFound() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.fileFound
}

// UnknownKeys lists keys present in the config file that theme-control does
// not recognise. They are ignored.
func (m *Manager) UnknownKeys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var unknown []string
	for _, key := range m.viper.AllKeys() {
		if !slices.Contains(m.defaultKeys, key) {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.defaultKeys = m.defaultKeys[:0]
	m.setDefault("log_level", defaults.LogLevel)
	m.setDefault("apps.enabled", defaults.Apps.Enabled)
	m.setDefault("apps.bat.configPath", defaults.Apps.Bat.ConfigPath)
	m.setDefault("apps.bat.themesPath", defaults.Apps.Bat.ThemesPath)
	m.setDefault("apps.delta.configPath", defaults.Apps.Delta.ConfigPath)
	m.setDefault("apps.delta.themesPath", defaults.Apps.Delta.ThemesPath)
	m.setDefault("apps.helix.configPath", defaults.Apps.Helix.ConfigPath)
	m.setDefault("apps.browser.statePath", defaults.Apps.Browser.StatePath)
	m.setDefault("apps.browser.socketPath", defaults.Apps.Browser.SocketPath)
}

func (m *Manager) setDefault(key string, value any) {
	m.viper.SetDefault(key, value)
	// Viper keys are case-insensitive and reported lower-cased.
	m.defaultKeys = append(m.defaultKeys, strings.ToLower(key))
}

// Load is a convenience wrapper: create a manager for configFile and load it.
func Load(configFile string) (*Manager, error) {
	m, err := NewManager(configFile)
	if err != nil {
		return nil, err
	}
	if err := m.Load(); err != nil {
		return nil, err
	}
	return m, nil
}
