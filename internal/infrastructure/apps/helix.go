package apps

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/bnema/theme-control/internal/application/port"
	"github.com/bnema/theme-control/internal/domain/theme"
	"github.com/bnema/theme-control/internal/infrastructure/config"
	"github.com/bnema/theme-control/internal/logging"
)

var helixThemeLine = regexp.MustCompile(`^\s*theme\s*=`)

// pkill exits 1 when no process matched.
const pkillNoMatch = 1

// Helix patches the root-level theme key in helix's config.toml and asks
// running editors to reload.
type Helix struct {
	env    Env
	themes theme.Map
}

// NewHelix creates the helix adapter.
func NewHelix(env Env) *Helix {
	return &Helix{env: env, themes: helixThemes()}
}

// Name implements port.AppAdapter.
func (*Helix) Name() string {
	return config.AppHelix
}

// Apply implements port.AppAdapter.
func (h *Helix) Apply(ctx context.Context, req port.ApplyRequest) error {
	if !h.env.enabled(ctx, config.AppHelix) {
		return nil
	}
	ctx, log := componentLogger(ctx, config.AppHelix)
	configPath := h.env.Config.Apps.Helix.ConfigPath

	resolved := h.themes.ResolveSelection(req.Selection)
	log.Debug().Str("path", configPath).Str("theme", resolved).Msg("updating config")

	content, err := readOptional(configPath)
	if err != nil {
		return fmt.Errorf("helix: %w", err)
	}

	if strings.TrimSpace(content) != "" {
		var doc map[string]any
		if err := toml.Unmarshal([]byte(content), &doc); err != nil {
			log.Warn().Err(err).Str("path", configPath).Msg("existing config is not valid TOML, patching anyway")
		}
	}

	updated := replaceOrInsertTopLevel(content, helixThemeLine, fmt.Sprintf("theme = %q", resolved))
	if err := writeFile(configPath, updated); err != nil {
		return fmt.Errorf("helix: %w", err)
	}
	log.Info().Str("theme", resolved).Msg("updated helix config")

	h.reload(ctx)
	return nil
}

// reload sends SIGUSR1 to every running hx process.
func (h *Helix) reload(ctx context.Context) {
	log := logging.FromContext(ctx)

	res, err := h.env.Runner.Run(ctx, "pkill", "-USR1", "hx")
	switch {
	case err != nil:
		log.Debug().Err(err).Msg("failed to signal hx processes")
	case res.ExitCode == pkillNoMatch:
		log.Debug().Msg("no hx processes to signal")
	case !res.Success():
		log.Debug().Int("exit_code", res.ExitCode).Str("stderr", res.Stderr).Msg("pkill failed")
	default:
		log.Debug().Msg("sent USR1 to hx processes")
	}
}
