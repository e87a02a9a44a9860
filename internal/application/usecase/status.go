package usecase

import (
	"context"

	"github.com/bnema/theme-control/internal/application/port"
	"github.com/bnema/theme-control/internal/domain/theme"
	"github.com/bnema/theme-control/internal/logging"
)

// StatusOutput summarises the current theme situation.
type StatusOutput struct {
	// State is nil when no theme was applied yet.
	State      *theme.State
	StateError error
	// System is the appearance reported by the OS, empty when unknown.
	System       theme.Appearance
	SystemSource string
	EnabledApps  []string
}

// StatusUseCase gathers the last applied state and the detected system appearance.
type StatusUseCase struct {
	store    port.ThemeStateStore
	resolver port.ColorSchemeResolver
	enabled  []string
}

// NewStatusUseCase creates the status use case.
func NewStatusUseCase(store port.ThemeStateStore, resolver port.ColorSchemeResolver, enabled []string) *StatusUseCase {
	return &StatusUseCase{store: store, resolver: resolver, enabled: enabled}
}

// Execute never fails; missing pieces are reported in the output.
func (uc *StatusUseCase) Execute(ctx context.Context) *StatusOutput {
	log := logging.FromContext(ctx)
	out := &StatusOutput{EnabledApps: append([]string(nil), uc.enabled...)}

	state, err := uc.store.Load(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("no readable theme state")
		out.StateError = err
	} else {
		out.State = &state
	}

	pref := uc.resolver.Resolve()
	out.SystemSource = pref.Source
	if pref.Source != "" && pref.Source != port.ColorSchemeSourceUnknown {
		out.System = theme.Light
		if pref.PrefersDark {
			out.System = theme.Dark
		}
	}

	return out
}
