package apps

import (
	"context"

	"github.com/bnema/theme-control/internal/application/port"
	"github.com/bnema/theme-control/internal/domain/theme"
	"github.com/bnema/theme-control/internal/infrastructure/config"
)

const (
	goosDarwin = "darwin"

	// defaults delete exits 1 when the key is already absent.
	defaultsKeyAbsent = 1
)

// MacOS toggles the system-wide dark mode through the AppleInterfaceStyle default.
type MacOS struct {
	env Env
}

// NewMacOS creates the macOS appearance adapter.
func NewMacOS(env Env) *MacOS {
	return &MacOS{env: env}
}

// Name implements port.AppAdapter.
func (*MacOS) Name() string {
	return config.AppMacOS
}

// Apply implements port.AppAdapter. Failures are logged as warnings.
func (m *MacOS) Apply(ctx context.Context, req port.ApplyRequest) error {
	if !m.env.enabled(ctx, config.AppMacOS) {
		return nil
	}
	ctx, log := componentLogger(ctx, config.AppMacOS)

	if m.env.OS != goosDarwin {
		log.Debug().Str("os", m.env.OS).Msg("skipping: not macOS")
		return nil
	}

	var err error
	if req.Selection.Appearance == theme.Dark {
		_, err = runCommand(ctx, m.env.Runner, config.AppMacOS, nil,
			"defaults", "write", "-g", "AppleInterfaceStyle", "Dark")
	} else {
		_, err = runCommand(ctx, m.env.Runner, config.AppMacOS, []int{defaultsKeyAbsent},
			"defaults", "delete", "-g", "AppleInterfaceStyle")
	}
	if err != nil {
		log.Warn().Err(err).Msg("failed to set macOS appearance")
		return nil
	}

	log.Info().Str("appearance", req.Selection.Appearance.String()).Msg("updated macOS appearance")
	return nil
}
