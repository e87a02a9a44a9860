package colorscheme

import (
	"context"
	"strings"

	"github.com/bnema/theme-control/internal/application/port"
)

const (
	detectorNameGsettings = "gsettings"
	priorityGsettings     = 10
)

// GsettingsDetector detects color scheme from GNOME gsettings.
type GsettingsDetector struct {
	runner port.CommandRunner
}

// NewGsettingsDetector creates a new gsettings-based detector.
func NewGsettingsDetector(runner port.CommandRunner) *GsettingsDetector {
	return &GsettingsDetector{runner: runner}
}

// Name implements port.ColorSchemeDetector.
func (*GsettingsDetector) Name() string {
	return detectorNameGsettings
}

// Priority implements port.ColorSchemeDetector.
func (*GsettingsDetector) Priority() int {
	return priorityGsettings
}

// Available implements port.ColorSchemeDetector.
// Returns true if gsettings command is available.
func (d *GsettingsDetector) Available() bool {
	_, err := d.runner.LookPath("gsettings")
	return err == nil
}

// Detect implements port.ColorSchemeDetector.
// Queries org.gnome.desktop.interface color-scheme.
func (d *GsettingsDetector) Detect() (prefersDark, ok bool) {
	res, err := d.runner.Run(context.Background(), "gsettings", "get", "org.gnome.desktop.interface", "color-scheme")
	if err != nil || !res.Success() {
		return false, false
	}

	// Output is like "'prefer-dark'\n", strip quotes and whitespace
	result := strings.Trim(strings.TrimSpace(res.Stdout), "'\"")

	switch result {
	case "prefer-dark":
		return true, true
	case "prefer-light":
		return false, true
	default:
		// "default" follows the desktop, which we cannot see from here
		return false, false
	}
}
