package apps

import (
	"context"

	"github.com/bnema/theme-control/internal/application/port"
	"github.com/bnema/theme-control/internal/domain/theme"
	"github.com/bnema/theme-control/internal/infrastructure/config"
)

// Kitty switches kitty's theme with `kitten theme` and reloads every instance.
type Kitty struct {
	env    Env
	themes theme.Map
}

// NewKitty creates the kitty adapter.
func NewKitty(env Env) *Kitty {
	return &Kitty{env: env, themes: kittyThemes()}
}

// Name implements port.AppAdapter.
func (*Kitty) Name() string {
	return config.AppKitty
}

// Apply implements port.AppAdapter. Unlike the other command adapters, a
// kitten failure is returned and aborts the run.
func (k *Kitty) Apply(ctx context.Context, req port.ApplyRequest) error {
	if !k.env.enabled(ctx, config.AppKitty) {
		return nil
	}
	ctx, log := componentLogger(ctx, config.AppKitty)

	resolved := k.themes.ResolveSelection(req.Selection)
	log.Debug().Str("theme", resolved).Msg("switching theme")

	if _, err := runCommand(ctx, k.env.Runner, config.AppKitty, nil,
		"kitten", "theme", resolved, "--reload-in=all"); err != nil {
		return err
	}

	log.Info().Str("theme", resolved).Msg("updated kitty theme")
	return nil
}
