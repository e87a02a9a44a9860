package apps

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bnema/theme-control/internal/application/port"
	"github.com/bnema/theme-control/internal/domain/theme"
	"github.com/bnema/theme-control/internal/infrastructure/config"
)

// Delta sets delta.syntax-theme through git config.
type Delta struct {
	env       Env
	themes    theme.Map
	installer *ThemeInstaller
}

// NewDelta creates the delta adapter. Delta shares bat's theme names.
func NewDelta(env Env, installer *ThemeInstaller) *Delta {
	return &Delta{env: env, themes: batThemes(), installer: installer}
}

// Name implements port.AppAdapter.
func (*Delta) Name() string {
	return config.AppDelta
}

// Apply implements port.AppAdapter. Git failures are logged, never returned.
func (d *Delta) Apply(ctx context.Context, req port.ApplyRequest) error {
	if !d.env.enabled(ctx, config.AppDelta) {
		return nil
	}
	ctx, log := componentLogger(ctx, config.AppDelta)
	cfg := d.env.Config.Apps.Delta

	if _, err := d.installer.Install(ctx, cfg.ThemesPath, req.ForceUpdateThemes); err != nil {
		return fmt.Errorf("delta: %w", err)
	}

	resolved := d.themes.ResolveSelection(req.Selection)
	log.Debug().Str("path", cfg.ConfigPath).Str("theme", resolved).Msg("updating config")

	if err := ensureFile(cfg.ConfigPath); err != nil {
		log.Error().Err(err).Msg("failed to update delta config")
		return nil
	}

	_, err := runCommand(ctx, d.env.Runner, config.AppDelta, nil,
		"git", "config", "--file", cfg.ConfigPath, "delta.syntax-theme", resolved)
	if err != nil {
		log.Error().Err(err).Msg("failed to update delta config")
		return nil
	}

	log.Info().Str("theme", resolved).Msg("updated delta config")
	return nil
}

// ensureFile creates an empty file (and its directory) if path does not exist.
func ensureFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f.Close()
}
