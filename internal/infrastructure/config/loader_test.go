package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	mgr, err := NewManager(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	return mgr
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	mgr := newTestManager(t)

	require.NoError(t, mgr.Load())

	assert.False(t, mgr.FileFound())
	cfg := mgr.Get()
	assert.Equal(t, DefaultConfig().LogLevel, cfg.LogLevel)
	assert.Equal(t, SupportedApps(), cfg.Apps.Enabled)
	assert.Equal(t, DefaultSocketPath, cfg.Apps.Browser.SocketPath)
	assert.Equal(t, cfg.Apps.Bat.ThemesPath, cfg.Apps.Delta.ThemesPath)
	assert.Empty(t, mgr.UnknownKeys())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `log_level = 4

[apps]
enabled = ["bat", "helix"]

[apps.bat]
configPath = "` + filepath.Join(dir, "bat.conf") + `"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	mgr, err := Load(path)
	require.NoError(t, err)

	cfg := mgr.Get()
	assert.True(t, mgr.FileFound())
	assert.Equal(t, 4, cfg.LogLevel)
	assert.Equal(t, []string{AppBat, AppHelix}, cfg.Apps.Enabled)
	assert.Equal(t, filepath.Join(dir, "bat.conf"), cfg.Apps.Bat.ConfigPath)
	assert.False(t, cfg.Apps.IsEnabled(AppKitty))
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("log_level = = 3\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestLoadFrom_UnknownKeysIgnored(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	mgr := newTestManager(t)

	err := mgr.LoadFrom(strings.NewReader(`
colour = "blue"

[apps.kitty]
socket = "/tmp/kitty"
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"apps.kitty.socket", "colour"}, mgr.UnknownKeys())
	assert.Equal(t, SupportedApps(), mgr.Get().Apps.Enabled)
}

func TestLoadFrom_UnknownAppRejected(t *testing.T) {
	mgr := newTestManager(t)

	err := mgr.LoadFrom(strings.NewReader(`
[apps]
enabled = ["bat", "vim"]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown app "vim"`)
}

func TestLoad_EnvLogLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "3")
	mgr := newTestManager(t)

	require.NoError(t, mgr.Load())
	assert.Equal(t, 3, mgr.Get().LogLevel)
}

func TestLoadFrom_ExpandsHomeAndDedupesApps(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	mgr := newTestManager(t)

	err = mgr.LoadFrom(strings.NewReader(`
[apps]
enabled = ["kitty", " kitty ", "browser"]

[apps.helix]
configPath = "~/hx/config.toml"
`))
	require.NoError(t, err)

	cfg := mgr.Get()
	assert.Equal(t, []string{AppKitty, AppBrowser}, cfg.Apps.Enabled)
	assert.Equal(t, filepath.Join(home, "hx", "config.toml"), cfg.Apps.Helix.ConfigPath)
}

func TestGet_ReturnsCopy(t *testing.T) {
	mgr := newTestManager(t)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Apps.Enabled[0] = "mutated"

	assert.Equal(t, AppMacOS, mgr.Get().Apps.Enabled[0])
}

func TestGetConfigFile_EnvOverride(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/tc.toml")

	path, err := GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, "/etc/tc.toml", path)
}

func TestGetConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/xdg/theme-control", dir)
}
