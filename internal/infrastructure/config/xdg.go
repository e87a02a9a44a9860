package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	appName = "theme-control"

	configFileName = "config.toml"
	stateFileName  = "current-theme.json"

	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "TC_CONFIG_PATH"
	// EnvLogLevel overrides log_level.
	EnvLogLevel = "TC_LOG_LEVEL"

	// DefaultSocketPath is where the browser helper listens for pushes.
	DefaultSocketPath = "/tmp/themecontrol.sock"
)

// GetConfigDir returns $XDG_CONFIG_HOME/theme-control (default: ~/.config/theme-control).
func GetConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, appName), nil
}

// GetConfigFile returns the config file path, honouring TC_CONFIG_PATH.
func GetConfigFile() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return ExpandHome(p), nil
	}
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// GetStateFile returns the default theme state file consumed by the browser host.
func GetStateFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, stateFileName), nil
}

// GetManDir returns $XDG_DATA_HOME/man/man1 so 'man theme-control' works
// without a custom MANPATH.
func GetManDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "man", "man1"), nil
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
