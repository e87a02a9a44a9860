package config

import (
	"os"
	"path/filepath"

	"github.com/bnema/theme-control/internal/logging"
)

// DefaultConfig returns the default configuration values for theme-control.
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	statePath, err := GetStateFile()
	if err != nil {
		statePath = filepath.Join(home, ".config", appName, stateFileName)
	}

	batThemes := filepath.Join(home, ".config", "bat", "themes")

	return &Config{
		LogLevel: logging.DefaultLevel,
		Apps: AppsConfig{
			Enabled: SupportedApps(),
			Bat: BatConfig{
				ConfigPath: filepath.Join(home, ".config", "bat", "config"),
				ThemesPath: batThemes,
			},
			Delta: DeltaConfig{
				ConfigPath: filepath.Join(home, ".gitconfig"),
			},
			Helix: HelixConfig{
				ConfigPath: filepath.Join(home, ".config", "helix", "config.toml"),
			},
			Browser: BrowserConfig{
				StatePath:  statePath,
				SocketPath: DefaultSocketPath,
			},
		},
	}
}
