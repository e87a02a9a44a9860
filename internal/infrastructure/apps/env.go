// Package apps holds the per-application theme adapters.
package apps

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/theme-control/internal/application/port"
	"github.com/bnema/theme-control/internal/infrastructure/config"
	"github.com/bnema/theme-control/internal/logging"
)

// Env is the read-only context shared by every adapter in one run.
type Env struct {
	Config *config.Config
	OS     string
	Runner port.CommandRunner
}

// enabled reports whether app should run, logging the skip otherwise.
func (e Env) enabled(ctx context.Context, app string) bool {
	if e.Config == nil || !e.Config.Apps.IsEnabled(app) {
		logging.FromContext(ctx).Debug().Str("app", app).Msg("skipping: not enabled")
		return false
	}
	return true
}

func componentLogger(ctx context.Context, app string) (context.Context, *zerolog.Logger) {
	ctx = logging.WithComponent(ctx, app)
	return ctx, logging.FromContext(ctx)
}

// Adapters returns every adapter in apply order: macos, bat, delta, helix, kitty.
// The browser adapter lives in the browser package and runs last.
func Adapters(env Env) []port.AppAdapter {
	installer := NewThemeInstaller(env.Runner)
	return []port.AppAdapter{
		NewMacOS(env),
		NewBat(env, installer),
		NewDelta(env, installer),
		NewHelix(env),
		NewKitty(env),
	}
}
