package apps

import (
	"context"
	"fmt"
	"regexp"

	"github.com/bnema/theme-control/internal/application/port"
	"github.com/bnema/theme-control/internal/domain/theme"
	"github.com/bnema/theme-control/internal/infrastructure/config"
)

var batThemeLine = regexp.MustCompile(`^\s*--theme=`)

// Bat patches --theme="..." in bat's config file.
type Bat struct {
	env       Env
	themes    theme.Map
	installer *ThemeInstaller
}

// NewBat creates the bat adapter.
func NewBat(env Env, installer *ThemeInstaller) *Bat {
	return &Bat{env: env, themes: batThemes(), installer: installer}
}

// Name implements port.AppAdapter.
func (*Bat) Name() string {
	return config.AppBat
}

// Apply implements port.AppAdapter.
func (b *Bat) Apply(ctx context.Context, req port.ApplyRequest) error {
	if !b.env.enabled(ctx, config.AppBat) {
		return nil
	}
	ctx, log := componentLogger(ctx, config.AppBat)
	cfg := b.env.Config.Apps.Bat

	if _, err := b.installer.Install(ctx, cfg.ThemesPath, req.ForceUpdateThemes); err != nil {
		return fmt.Errorf("bat: %w", err)
	}

	resolved := b.themes.ResolveSelection(req.Selection)
	log.Debug().Str("path", cfg.ConfigPath).Str("theme", resolved).Msg("updating config")

	content, err := readOptional(cfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("bat: %w", err)
	}

	updated := replaceOrAppendLine(content, batThemeLine, fmt.Sprintf("--theme=%q", resolved))
	if err := writeFile(cfg.ConfigPath, updated); err != nil {
		return fmt.Errorf("bat: %w", err)
	}

	log.Info().Str("theme", resolved).Msg("updated bat config")
	return nil
}
