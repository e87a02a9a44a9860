package apps

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/theme-control/internal/application/port"
	"github.com/bnema/theme-control/internal/application/port/mocks"
	"github.com/bnema/theme-control/internal/domain/theme"
	"github.com/bnema/theme-control/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testEnv(t *testing.T, runner port.CommandRunner, goos string, enabled ...string) Env {
	t.Helper()
	dir := t.TempDir()

	cfg := config.DefaultConfig()
	if len(enabled) > 0 {
		cfg.Apps.Enabled = enabled
	}
	cfg.Apps.Bat.ConfigPath = filepath.Join(dir, "bat", "config")
	cfg.Apps.Bat.ThemesPath = filepath.Join(dir, "bat", "themes")
	cfg.Apps.Delta.ConfigPath = filepath.Join(dir, "gitconfig")
	cfg.Apps.Delta.ThemesPath = cfg.Apps.Bat.ThemesPath
	cfg.Apps.Helix.ConfigPath = filepath.Join(dir, "helix", "config.toml")

	return Env{Config: cfg, OS: goos, Runner: runner}
}

func request(t *testing.T, appearance theme.Appearance, name string) port.ApplyRequest {
	t.Helper()
	sel, err := theme.NewSelection(appearance, name)
	require.NoError(t, err)
	return port.ApplyRequest{Selection: sel}
}

func expectCacheBuild(runner *mocks.MockCommandRunner) {
	runner.EXPECT().
		Run(mock.Anything, "bat", "cache", "--build").
		Return(port.CommandResult{}, nil).
		Maybe()
}

func readString(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestThemeMaps_FallBackToDefault(t *testing.T) {
	assert.Equal(t, "base16", batThemes().Resolve(theme.Light, theme.Nord))
	assert.Equal(t, "base16", batThemes().Resolve(theme.Dark, theme.Name("solarized")))
	assert.Equal(t, "nord", helixThemes().Resolve(theme.Dark, theme.Name("solarized")))
	assert.Equal(t, "Rosé Pine Dawn", kittyThemes().Resolve(theme.Light, theme.Nord))

	for _, m := range []theme.Map{batThemes(), helixThemes(), kittyThemes()} {
		require.NoError(t, m.Validate())
	}
}

func TestBat_DarkNordReplacesExistingTheme(t *testing.T) {
	runner := mocks.NewMockCommandRunner(t)
	expectCacheBuild(runner)
	env := testEnv(t, runner, "linux", config.AppBat)

	require.NoError(t, writeFile(env.Config.Apps.Bat.ConfigPath, "--style=numbers\n--theme=\"base16\"\n--paging=never\n"))

	bat := NewBat(env, NewThemeInstaller(runner))
	req := request(t, theme.Dark, "nord")

	require.NoError(t, bat.Apply(context.Background(), req))
	first := readString(t, env.Config.Apps.Bat.ConfigPath)

	assert.Equal(t, "--style=numbers\n--theme=\"Nord\"\n--paging=never\n", first)
	assert.NotContains(t, first, "base16")

	require.NoError(t, bat.Apply(context.Background(), req))
	assert.Equal(t, first, readString(t, env.Config.Apps.Bat.ConfigPath))
}

func TestBat_CreatesConfigAndInstallsThemes(t *testing.T) {
	runner := mocks.NewMockCommandRunner(t)
	runner.EXPECT().
		Run(mock.Anything, "bat", "cache", "--build").
		Return(port.CommandResult{}, nil).
		Once()
	env := testEnv(t, runner, "linux", config.AppBat)

	bat := NewBat(env, NewThemeInstaller(runner))
	require.NoError(t, bat.Apply(context.Background(), request(t, theme.Light, "rosepine")))

	assert.Equal(t, "--theme=\"rose-pine-dawn\"\n", readString(t, env.Config.Apps.Bat.ConfigPath))
	assert.FileExists(t, filepath.Join(env.Config.Apps.Bat.ThemesPath, "rose-pine.tmTheme"))
	assert.FileExists(t, filepath.Join(env.Config.Apps.Bat.ThemesPath, "rose-pine-dawn.tmTheme"))
}

func TestBat_AppendsWhenMissing(t *testing.T) {
	runner := mocks.NewMockCommandRunner(t)
	expectCacheBuild(runner)
	env := testEnv(t, runner, "linux", config.AppBat)
	require.NoError(t, writeFile(env.Config.Apps.Bat.ConfigPath, "--style=plain\n\n\n"))

	bat := NewBat(env, NewThemeInstaller(runner))
	require.NoError(t, bat.Apply(context.Background(), request(t, theme.Dark, "rosepine")))

	assert.Equal(t, "--style=plain\n--theme=\"rose-pine\"\n", readString(t, env.Config.Apps.Bat.ConfigPath))
}

func TestDisabledAppsDoNothing(t *testing.T) {
	runner := mocks.NewMockCommandRunner(t)
	env := testEnv(t, runner, "darwin", config.AppBrowser)
	req := request(t, theme.Dark, "nord")

	for _, adapter := range Adapters(env) {
		require.NoError(t, adapter.Apply(context.Background(), req), adapter.Name())
	}

	assert.NoFileExists(t, env.Config.Apps.Bat.ConfigPath)
	assert.NoFileExists(t, env.Config.Apps.Helix.ConfigPath)
	assert.NoFileExists(t, env.Config.Apps.Delta.ConfigPath)
	assert.NoDirExists(t, env.Config.Apps.Bat.ThemesPath)
	runner.AssertNotCalled(t, "Run")
}

func TestAdapters_Order(t *testing.T) {
	env := testEnv(t, mocks.NewMockCommandRunner(t), "linux")

	var names []string
	for _, a := range Adapters(env) {
		names = append(names, a.Name())
	}
	assert.Equal(t, []string{config.AppMacOS, config.AppBat, config.AppDelta, config.AppHelix, config.AppKitty}, names)
}

func TestHelix_LightRosePinePreservesTables(t *testing.T) {
	runner := mocks.NewMockCommandRunner(t)
	runner.EXPECT().
		Run(mock.Anything, "pkill", "-USR1", "hx").
		Return(port.CommandResult{ExitCode: 1}, nil).
		Twice()
	env := testEnv(t, runner, "linux", config.AppHelix)

	original := "[editor]\nline-number = \"relative\"\n\n[editor.cursor-shape]\ninsert = \"bar\"\n"
	require.NoError(t, writeFile(env.Config.Apps.Helix.ConfigPath, original))

	helix := NewHelix(env)
	req := request(t, theme.Light, "rosepine")

	require.NoError(t, helix.Apply(context.Background(), req))
	first := readString(t, env.Config.Apps.Helix.ConfigPath)
	assert.Equal(t, "theme = \"rose_pine_dawn\"\n\n"+original, first)

	require.NoError(t, helix.Apply(context.Background(), req))
	assert.Equal(t, first, readString(t, env.Config.Apps.Helix.ConfigPath))
}

func TestHelix_ReplacesExistingTheme(t *testing.T) {
	runner := mocks.NewMockCommandRunner(t)
	runner.EXPECT().
		Run(mock.Anything, "pkill", "-USR1", "hx").
		Return(port.CommandResult{}, nil)
	env := testEnv(t, runner, "linux", config.AppHelix)

	require.NoError(t, writeFile(env.Config.Apps.Helix.ConfigPath, "theme = \"nord\"\n\n[editor]\nmouse = false\n"))

	require.NoError(t, NewHelix(env).Apply(context.Background(), request(t, theme.Dark, "rosepine")))
	assert.Equal(t, "theme = \"rose_pine\"\n\n[editor]\nmouse = false\n", readString(t, env.Config.Apps.Helix.ConfigPath))
}

func TestHelix_CreatesMissingConfig(t *testing.T) {
	runner := mocks.NewMockCommandRunner(t)
	runner.EXPECT().
		Run(mock.Anything, "pkill", "-USR1", "hx").
		Return(port.CommandResult{}, errors.New("pkill not found"))
	env := testEnv(t, runner, "linux", config.AppHelix)

	require.NoError(t, NewHelix(env).Apply(context.Background(), request(t, theme.Dark, "nord")))
	assert.Equal(t, "theme = \"nord\"\n", readString(t, env.Config.Apps.Helix.ConfigPath))
}

func TestHelix_InvalidTOMLStillPatched(t *testing.T) {
	runner := mocks.NewMockCommandRunner(t)
	runner.EXPECT().
		Run(mock.Anything, "pkill", "-USR1", "hx").
		Return(port.CommandResult{ExitCode: 1}, nil)
	env := testEnv(t, runner, "linux", config.AppHelix)

	require.NoError(t, writeFile(env.Config.Apps.Helix.ConfigPath, "theme = = nope\n"))

	require.NoError(t, NewHelix(env).Apply(context.Background(), request(t, theme.Dark, "nord")))
	assert.Equal(t, "theme = \"nord\"\n", readString(t, env.Config.Apps.Helix.ConfigPath))
}

func TestDelta_RunsGitConfig(t *testing.T) {
	runner := mocks.NewMockCommandRunner(t)
	expectCacheBuild(runner)
	env := testEnv(t, runner, "linux", config.AppDelta)
	gitconfig := env.Config.Apps.Delta.ConfigPath

	runner.EXPECT().
		Run(mock.Anything, "git", "config", "--file", gitconfig, "delta.syntax-theme", "Nord").
		Return(port.CommandResult{}, nil).
		Once()

	require.NoError(t, NewDelta(env, NewThemeInstaller(runner)).Apply(context.Background(), request(t, theme.Dark, "nord")))

	assert.FileExists(t, gitconfig)
	assert.FileExists(t, filepath.Join(env.Config.Apps.Delta.ThemesPath, "rose-pine.tmTheme"))
}

func TestDelta_FailureIsNotFatal(t *testing.T) {
	runner := mocks.NewMockCommandRunner(t)
	expectCacheBuild(runner)
	env := testEnv(t, runner, "linux", config.AppDelta)

	runner.EXPECT().
		Run(mock.Anything, "git", "config", "--file", env.Config.Apps.Delta.ConfigPath, "delta.syntax-theme", "rose-pine-dawn").
		Return(port.CommandResult{ExitCode: 255, Stderr: "fatal: bad config"}, nil)

	err := NewDelta(env, NewThemeInstaller(runner)).Apply(context.Background(), request(t, theme.Light, "rosepine"))
	assert.NoError(t, err)
}

func TestDelta_PreservesGitConfigSections(t *testing.T) {
	runner := mocks.NewMockCommandRunner(t)
	expectCacheBuild(runner)
	env := testEnv(t, runner, "linux", config.AppDelta)

	original := "[user]\n\tname = Someone\n[core]\n\tpager = delta\n"
	require.NoError(t, writeFile(env.Config.Apps.Delta.ConfigPath, original))

	runner.EXPECT().
		Run(mock.Anything, "git", "config", "--file", env.Config.Apps.Delta.ConfigPath, "delta.syntax-theme", "Nord").
		Return(port.CommandResult{}, nil)

	require.NoError(t, NewDelta(env, NewThemeInstaller(runner)).Apply(context.Background(), request(t, theme.Dark, "nord")))
	assert.Equal(t, original, readString(t, env.Config.Apps.Delta.ConfigPath))
}

func TestKitty(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		runner := mocks.NewMockCommandRunner(t)
		runner.EXPECT().
			Run(mock.Anything, "kitten", "theme", "Rosé Pine", "--reload-in=all").
			Return(port.CommandResult{}, nil)
		env := testEnv(t, runner, "linux", config.AppKitty)

		assert.NoError(t, NewKitty(env).Apply(context.Background(), request(t, theme.Dark, "rosepine")))
	})

	t.Run("non-zero exit propagates", func(t *testing.T) {
		runner := mocks.NewMockCommandRunner(t)
		runner.EXPECT().
			Run(mock.Anything, "kitten", "theme", "Nord", "--reload-in=all").
			Return(port.CommandResult{ExitCode: 1, Stderr: "no kitty instance"}, nil)
		env := testEnv(t, runner, "linux", config.AppKitty)

		err := NewKitty(env).Apply(context.Background(), request(t, theme.Dark, "nord"))
		require.Error(t, err)

		var cmdErr *CommandError
		require.ErrorAs(t, err, &cmdErr)
		assert.Equal(t, config.AppKitty, cmdErr.App)
		assert.Equal(t, 1, cmdErr.ExitCode)
		assert.Equal(t, "no kitty instance", cmdErr.Stderr)
		assert.Equal(t, "kitten theme Nord --reload-in=all", cmdErr.Command)
	})

	t.Run("spawn failure propagates", func(t *testing.T) {
		spawnErr := errors.New("executable not found")
		runner := mocks.NewMockCommandRunner(t)
		runner.EXPECT().
			Run(mock.Anything, "kitten", "theme", "Rosé Pine Dawn", "--reload-in=all").
			Return(port.CommandResult{}, spawnErr)
		env := testEnv(t, runner, "linux", config.AppKitty)

		err := NewKitty(env).Apply(context.Background(), request(t, theme.Light, "rosepine"))
		assert.ErrorIs(t, err, spawnErr)
	})
}

func TestMacOS(t *testing.T) {
	t.Run("dark writes the default", func(t *testing.T) {
		runner := mocks.NewMockCommandRunner(t)
		runner.EXPECT().
			Run(mock.Anything, "defaults", "write", "-g", "AppleInterfaceStyle", "Dark").
			Return(port.CommandResult{}, nil)
		env := testEnv(t, runner, "darwin", config.AppMacOS)

		assert.NoError(t, NewMacOS(env).Apply(context.Background(), request(t, theme.Dark, "nord")))
	})

	t.Run("light treats missing key as success", func(t *testing.T) {
		runner := mocks.NewMockCommandRunner(t)
		runner.EXPECT().
			Run(mock.Anything, "defaults", "delete", "-g", "AppleInterfaceStyle").
			Return(port.CommandResult{ExitCode: 1}, nil)
		env := testEnv(t, runner, "darwin", config.AppMacOS)

		assert.NoError(t, NewMacOS(env).Apply(context.Background(), request(t, theme.Light, "rosepine")))
	})

	t.Run("failure only warns", func(t *testing.T) {
		runner := mocks.NewMockCommandRunner(t)
		runner.EXPECT().
			Run(mock.Anything, "defaults", "write", "-g", "AppleInterfaceStyle", "Dark").
			Return(port.CommandResult{ExitCode: 5}, nil)
		env := testEnv(t, runner, "darwin", config.AppMacOS)

		assert.NoError(t, NewMacOS(env).Apply(context.Background(), request(t, theme.Dark, "rosepine")))
	})

	t.Run("skipped off darwin", func(t *testing.T) {
		runner := mocks.NewMockCommandRunner(t)
		env := testEnv(t, runner, "linux", config.AppMacOS)

		assert.NoError(t, NewMacOS(env).Apply(context.Background(), request(t, theme.Dark, "nord")))
		runner.AssertNotCalled(t, "Run")
	})
}

func TestThemeInstaller(t *testing.T) {
	t.Run("existing files untouched without force", func(t *testing.T) {
		runner := mocks.NewMockCommandRunner(t)
		dir := t.TempDir()
		for _, name := range []string{"rose-pine.tmTheme", "rose-pine-dawn.tmTheme"} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("existing content"), 0o644))
		}

		written, err := NewThemeInstaller(runner).Install(context.Background(), dir, false)
		require.NoError(t, err)

		assert.Zero(t, written)
		assert.Equal(t, "existing content", readString(t, filepath.Join(dir, "rose-pine.tmTheme")))
		assert.Equal(t, "existing content", readString(t, filepath.Join(dir, "rose-pine-dawn.tmTheme")))
		runner.AssertNotCalled(t, "Run")
	})

	t.Run("force overwrites and rebuilds cache", func(t *testing.T) {
		runner := mocks.NewMockCommandRunner(t)
		runner.EXPECT().
			Run(mock.Anything, "bat", "cache", "--build").
			Return(port.CommandResult{ExitCode: 1, Stderr: "bat: not a theme"}, nil).
			Once()
		dir := t.TempDir()
		path := filepath.Join(dir, "rose-pine.tmTheme")
		require.NoError(t, os.WriteFile(path, []byte("old content"), 0o644))

		written, err := NewThemeInstaller(runner).Install(context.Background(), dir, true)
		require.NoError(t, err)

		assert.Equal(t, 2, written)
		assert.Contains(t, readString(t, path), "Rosé Pine")
	})

	t.Run("creates missing directory", func(t *testing.T) {
		runner := mocks.NewMockCommandRunner(t)
		expectCacheBuild(runner)
		dir := filepath.Join(t.TempDir(), "a", "b")

		written, err := NewThemeInstaller(runner).Install(context.Background(), dir, false)
		require.NoError(t, err)
		assert.Equal(t, 2, written)
		assert.DirExists(t, dir)
	})
}
