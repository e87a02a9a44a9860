package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/theme-control/internal/application/port"
	"github.com/bnema/theme-control/internal/domain/theme"
	"github.com/bnema/theme-control/internal/infrastructure/config"
	"github.com/bnema/theme-control/internal/logging"
)

// Adapter implements port.AppAdapter for the browser extension.
type Adapter struct {
	cfg    *config.Config
	store  port.ThemeStateStore
	pusher port.ThemePusher
	now    func() time.Time
}

// NewAdapter creates the browser adapter.
func NewAdapter(cfg *config.Config, store port.ThemeStateStore, pusher port.ThemePusher) *Adapter {
	return &Adapter{cfg: cfg, store: store, pusher: pusher, now: time.Now}
}

// NewAdapterFromConfig wires the state file and socket pusher from cfg.
func NewAdapterFromConfig(cfg *config.Config) *Adapter {
	return NewAdapter(
		cfg,
		NewStateFile(cfg.Apps.Browser.StatePath),
		NewSocketPusher(cfg.Apps.Browser.SocketPath),
	)
}

// Name implements port.AppAdapter.
func (*Adapter) Name() string {
	return config.AppBrowser
}

// Apply persists the new state, then pushes it to a live helper if any.
func (a *Adapter) Apply(ctx context.Context, req port.ApplyRequest) error {
	if a.cfg == nil || !a.cfg.Apps.IsEnabled(config.AppBrowser) {
		logging.FromContext(ctx).Debug().Str("app", config.AppBrowser).Msg("skipping: not enabled")
		return nil
	}
	ctx = logging.WithComponent(ctx, config.AppBrowser)
	log := logging.FromContext(ctx)

	state := theme.NewState(req.Selection, a.now())

	if err := a.store.Save(ctx, state); err != nil {
		return fmt.Errorf("browser: %w", err)
	}
	log.Debug().Str("path", a.store.Path()).Str("id", state.ID).Msg("saved theme state")

	if err := a.pusher.Push(ctx, state); err != nil {
		log.Debug().Err(err).Msg("theme push failed")
	}

	log.Info().Str("theme", state.Theme.String()).Msg("updated browser theme state")
	return nil
}
