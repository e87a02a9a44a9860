package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/theme-control/internal/logging"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogLevel(config)...)
	validationErrors = append(validationErrors, validateEnabledApps(config)...)
	validationErrors = append(validationErrors, validatePaths(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogLevel(config *Config) []string {
	if config.LogLevel < logging.LevelError || config.LogLevel > logging.LevelDebug {
		return []string{fmt.Sprintf("log_level must be between %d and %d (got %d)",
			logging.LevelError, logging.LevelDebug, config.LogLevel)}
	}
	return nil
}

func validateEnabledApps(config *Config) []string {
	var validationErrors []string
	supported := SupportedApps()
	for _, app := range config.Apps.Enabled {
		if !slices.Contains(supported, app) {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"apps.enabled contains unknown app %q (supported: %s)", app, strings.Join(supported, ", ")))
		}
	}
	return validationErrors
}

func validatePaths(config *Config) []string {
	var validationErrors []string
	required := []struct {
		key   string
		app   string
		value string
	}{
		{"apps.bat.configPath", AppBat, config.Apps.Bat.ConfigPath},
		{"apps.bat.themesPath", AppBat, config.Apps.Bat.ThemesPath},
		{"apps.delta.configPath", AppDelta, config.Apps.Delta.ConfigPath},
		{"apps.helix.configPath", AppHelix, config.Apps.Helix.ConfigPath},
		{"apps.browser.statePath", AppBrowser, config.Apps.Browser.StatePath},
		{"apps.browser.socketPath", AppBrowser, config.Apps.Browser.SocketPath},
	}
	for _, r := range required {
		if config.Apps.IsEnabled(r.app) && r.value == "" {
			validationErrors = append(validationErrors, r.key+" must not be empty")
		}
	}
	return validationErrors
}
