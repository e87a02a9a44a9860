package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/theme-control/internal/domain/theme"
)

// ApplyRenderer renders the result of applying a theme.
type ApplyRenderer struct {
	theme *Theme
}

// NewApplyRenderer creates a new apply renderer with the given theme.
func NewApplyRenderer(theme *Theme) *ApplyRenderer {
	return &ApplyRenderer{theme: theme}
}

// RenderApplied renders the selection and every app it was applied to.
func (r *ApplyRenderer) RenderApplied(sel theme.Selection, apps []string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		"\n  %s %s %s\n",
		lipgloss.NewStyle().Foreground(r.theme.Accent).Render(AppearanceIcon(sel.Appearance.IsDark())),
		r.theme.Title.Render(string(sel.Theme)),
		r.theme.BadgeMuted.Render(string(sel.Appearance)),
	))

	for _, app := range apps {
		sb.WriteString(fmt.Sprintf("    %s %s\n", iconStyle.Render(IconCheck), r.theme.Normal.Render(app)))
	}

	return sb.String()
}

// RenderError renders a failed apply.
func (r *ApplyRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf("\n  %s %v\n", iconStyle.Render(IconX), err)
}
