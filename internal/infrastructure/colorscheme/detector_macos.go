package colorscheme

import (
	"context"
	"strings"

	"github.com/bnema/theme-control/internal/application/port"
)

const (
	detectorNameMacOS = "AppleInterfaceStyle"
	priorityMacOS     = 30
)

// MacOSDetector reads the global AppleInterfaceStyle default.
type MacOSDetector struct {
	runner port.CommandRunner
	goos   string
}

// NewMacOSDetector creates a detector that is only available on darwin.
func NewMacOSDetector(runner port.CommandRunner, goos string) *MacOSDetector {
	return &MacOSDetector{runner: runner, goos: goos}
}

// Name implements port.ColorSchemeDetector.
func (*MacOSDetector) Name() string {
	return detectorNameMacOS
}

// Priority implements port.ColorSchemeDetector.
func (*MacOSDetector) Priority() int {
	return priorityMacOS
}

// Available implements port.ColorSchemeDetector.
func (d *MacOSDetector) Available() bool {
	return d.goos == "darwin"
}

// Detect implements port.ColorSchemeDetector.
// The key only exists in dark mode; `defaults read` exits 1 when it is absent.
func (d *MacOSDetector) Detect() (prefersDark, ok bool) {
	res, err := d.runner.Run(context.Background(), "defaults", "read", "-g", "AppleInterfaceStyle")
	if err != nil {
		return false, false
	}
	switch res.ExitCode {
	case 0:
		return strings.EqualFold(strings.TrimSpace(res.Stdout), "dark"), true
	case 1:
		return false, true
	default:
		return false, false
	}
}
