package styles_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/theme-control/internal/cli/styles"
	"github.com/bnema/theme-control/internal/domain/build"
	"github.com/bnema/theme-control/internal/domain/theme"
)

func TestPaletteFor_UsesBrowserColors(t *testing.T) {
	sel := theme.Selection{Appearance: theme.Dark, Theme: theme.Nord}
	colors, ok := theme.BrowserColors(sel)
	require.True(t, ok)

	p := styles.PaletteFor(sel)
	assert.Equal(t, colors.Frame, p.Background)
	assert.Equal(t, colors.ToolbarFieldBorderFocus, p.Accent)
}

func TestPaletteFor_FallsBackToDefault(t *testing.T) {
	p := styles.PaletteFor(theme.Selection{Appearance: theme.Light, Theme: theme.Nord})
	assert.Equal(t, styles.DefaultPalette(), p)
}

func TestApplyRenderer_RenderApplied(t *testing.T) {
	r := styles.NewApplyRenderer(styles.NewTheme())

	out := r.RenderApplied(theme.Selection{Appearance: theme.Light, Theme: theme.RosePine}, []string{"bat", "helix"})
	assert.Contains(t, out, "rosepine")
	assert.Contains(t, out, "light")
	assert.Contains(t, out, "bat")
	assert.Contains(t, out, "helix")
}

func TestStatusRenderer_Render(t *testing.T) {
	r := styles.NewStatusRenderer(styles.NewTheme())

	t.Run("applied state", func(t *testing.T) {
		out := r.Render(styles.StatusView{
			State: &theme.State{
				Theme:      theme.Nord,
				Appearance: theme.Dark,
				Timestamp:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			},
			StatePath:    "/tmp/current-theme.json",
			System:       theme.Light,
			SystemSource: "gsettings",
			EnabledApps:  []string{"bat", "kitty"},
			ConfigFile:   "/tmp/config.toml",
			ConfigFound:  true,
		})
		assert.Contains(t, out, "nord")
		assert.Contains(t, out, "current-theme.json")
		assert.Contains(t, out, "gsettings")
		assert.Contains(t, out, "differs from applied theme")
		assert.Contains(t, out, "kitty")
		assert.NotContains(t, out, "using defaults")
	})

	t.Run("nothing applied", func(t *testing.T) {
		out := r.Render(styles.StatusView{ConfigFile: "/tmp/config.toml"})
		assert.Contains(t, out, "No theme applied yet")
		assert.Contains(t, out, "unknown")
		assert.Contains(t, out, "No apps enabled")
		assert.Contains(t, out, "using defaults")
	})

	t.Run("unreadable state", func(t *testing.T) {
		out := r.Render(styles.StatusView{StateError: errors.New("bad json")})
		assert.Contains(t, out, "State unreadable: bad json")
	})
}

func TestConfigRenderer(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	assert.Contains(t, r.RenderConfigInfo("/tmp/tc/config.toml", true), "config.toml")
	assert.Contains(t, r.RenderConfigInfo("/tmp/tc/config.toml", false), "config init")
	assert.Empty(t, r.RenderUnknownKeys(nil))
	assert.Contains(t, r.RenderUnknownKeys([]string{"apps.vim"}), "apps.vim")
	assert.Contains(t, r.RenderExists("/tmp/tc/config.toml"), "--force")
}

func TestAboutRenderer_Render(t *testing.T) {
	r := styles.NewAboutRenderer(styles.NewTheme())

	out := r.Render(build.Info{Version: "v1.2.3", Commit: "abc123"})
	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, "unknown")
	assert.Contains(t, out, build.RepoURL())
}
