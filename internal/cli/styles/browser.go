package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// BrowserRenderer renders native messaging host setup output.
type BrowserRenderer struct {
	theme *Theme
}

// NewBrowserRenderer creates a new browser renderer with the given theme.
func NewBrowserRenderer(theme *Theme) *BrowserRenderer {
	return &BrowserRenderer{theme: theme}
}

// RenderManifest renders the result of a manifest install.
func (r *BrowserRenderer) RenderManifest(path, hostPath string, written bool) string {
	pathStyle := r.theme.Subtle

	if !written {
		return fmt.Sprintf(
			"\n  %s Manifest %s already exists\n  %s\n",
			lipgloss.NewStyle().Foreground(r.theme.Warning).Render(IconWarning),
			pathStyle.Render(path),
			pathStyle.Render("Use --force to overwrite it."),
		)
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf(
		"\n  %s Installed native messaging manifest %s\n    %s %s\n",
		iconStyle.Render(IconCheck),
		pathStyle.Render(path),
		lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconArrow),
		r.theme.Normal.Render(hostPath),
	)
}
