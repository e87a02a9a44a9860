package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/theme-control/internal/domain/theme"
)

// StatusView is everything the status command shows.
type StatusView struct {
	State *theme.State
	// StateError is set when a state file exists but cannot be used.
	StateError error
	StatePath  string

	System       theme.Appearance
	SystemSource string

	EnabledApps []string
	ConfigFile  string
	ConfigFound bool
}

// StatusRenderer renders the status command output.
type StatusRenderer struct {
	theme *Theme
}

// NewStatusRenderer creates a new status renderer with the given theme.
func NewStatusRenderer(theme *Theme) *StatusRenderer {
	return &StatusRenderer{theme: theme}
}

// Render renders the current theme, system appearance, apps and config.
func (r *StatusRenderer) Render(v StatusView) string {
	sections := []string{
		r.renderCurrent(v),
		r.renderSystem(v),
		r.renderApps(v.EnabledApps),
		r.renderConfig(v),
	}
	return strings.Join(sections, "\n")
}

func (r *StatusRenderer) renderCurrent(v StatusView) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Subtle

	if v.State == nil {
		if v.StateError != nil {
			return fmt.Sprintf(
				"\n  %s State unreadable: %v\n",
				lipgloss.NewStyle().Foreground(r.theme.Warning).Render(IconWarning),
				v.StateError,
			)
		}
		return fmt.Sprintf("\n  %s %s\n", iconStyle.Render(IconInfo), keyStyle.Render("No theme applied yet"))
	}

	s := v.State
	out := fmt.Sprintf(
		"\n  %s %s %s %s\n",
		iconStyle.Render(IconPalette),
		keyStyle.Render("Theme"),
		r.theme.Highlight.Render(string(s.Theme)),
		r.theme.BadgeMuted.Render(string(s.Appearance)),
	)
	if !s.Timestamp.IsZero() {
		out += fmt.Sprintf(
			"  %s %s %s\n",
			iconStyle.Render(IconClock),
			keyStyle.Render("Applied"),
			r.theme.Normal.Render(s.Timestamp.Local().Format(time.DateTime)),
		)
	}
	if v.StatePath != "" {
		out += fmt.Sprintf("  %s %s %s\n", iconStyle.Render(IconFolder), keyStyle.Render("State"), keyStyle.Render(v.StatePath))
	}
	return out
}

func (r *StatusRenderer) renderSystem(v StatusView) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Subtle

	if v.System == "" {
		return fmt.Sprintf("  %s %s %s\n", iconStyle.Render(IconDesktop), keyStyle.Render("System"), keyStyle.Render("unknown"))
	}

	line := fmt.Sprintf(
		"  %s %s %s %s",
		iconStyle.Render(AppearanceIcon(v.System.IsDark())),
		keyStyle.Render("System"),
		r.theme.Normal.Render(string(v.System)),
		keyStyle.Render("("+v.SystemSource+")"),
	)
	if v.State != nil && v.State.Appearance != v.System {
		line += " " + r.theme.WarningStyle.Render("differs from applied theme")
	}
	return line + "\n"
}

func (r *StatusRenderer) renderApps(apps []string) string {
	keyStyle := r.theme.Subtle

	if len(apps) == 0 {
		return fmt.Sprintf("  %s %s\n", r.theme.WarningStyle.Render(IconWarning), keyStyle.Render("No apps enabled"))
	}

	badges := make([]string, len(apps))
	for i, app := range apps {
		badges[i] = r.theme.Badge.Render(app)
	}
	return fmt.Sprintf(
		"  %s %s %s\n",
		lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconPlug),
		keyStyle.Render("Apps"),
		strings.Join(badges, " "),
	)
}

func (r *StatusRenderer) renderConfig(v StatusView) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	suffix := ""
	if !v.ConfigFound {
		suffix = " " + pathStyle.Render("(not found, using defaults)")
	}
	return fmt.Sprintf("  %s Config %s%s\n", iconStyle.Render(IconConfig), pathStyle.Render(v.ConfigFile), suffix)
}
