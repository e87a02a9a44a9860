// Package cli wires configuration, logging and styles for the cobra commands.
package cli

import (
	"context"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/bnema/theme-control/internal/application/port"
	"github.com/bnema/theme-control/internal/cli/styles"
	"github.com/bnema/theme-control/internal/domain/build"
	"github.com/bnema/theme-control/internal/infrastructure/apps"
	"github.com/bnema/theme-control/internal/infrastructure/browser"
	"github.com/bnema/theme-control/internal/infrastructure/config"
	"github.com/bnema/theme-control/internal/infrastructure/execrunner"
	"github.com/bnema/theme-control/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	Runner    port.CommandRunner
	GOOS      string

	// Context with logger
	ctx context.Context
}

// NewApp loads the configuration and builds the logger. A config file that
// exists but cannot be parsed or validated is an error.
func NewApp(configFile string) (*App, error) {
	mgr, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	logger := logging.NewFromConfigValues(cfg.LogLevel)
	ctx := logging.WithContext(context.Background(), logger)

	if unknown := mgr.UnknownKeys(); len(unknown) > 0 {
		logger.Warn().
			Strs("keys", unknown).
			Str("file", mgr.ConfigFile()).
			Msg("ignoring unknown config keys")
	}
	logger.Debug().
		Str("file", mgr.ConfigFile()).
		Bool("found", mgr.FileFound()).
		Strs("enabled", cfg.Apps.Enabled).
		Msg("config loaded")

	return &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(),
		Runner:  execrunner.New(),
		GOOS:    runtime.GOOS,
		ctx:     ctx,
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return logging.FromContext(a.ctx)
}

// Adapters builds every app adapter in apply order, browser last.
func (a *App) Adapters() []port.AppAdapter {
	adapters := apps.Adapters(apps.Env{
		Config: a.Config,
		OS:     a.GOOS,
		Runner: a.Runner,
	})
	return append(adapters, browser.NewAdapterFromConfig(a.Config))
}

// StateStore returns the theme state file configured for the browser.
func (a *App) StateStore() *browser.StateFile {
	return browser.NewStateFile(a.Config.Apps.Browser.StatePath)
}
