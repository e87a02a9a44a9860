package usecase

import (
	"context"

	"github.com/bnema/theme-control/internal/application/port"
	"github.com/bnema/theme-control/internal/domain/theme"
	"github.com/bnema/theme-control/internal/logging"
)

// RelayMessage is what the host sends to the browser extension: either the
// current theme and appearance, or an error.
type RelayMessage struct {
	Theme      string `json:"theme,omitempty"`
	Appearance string `json:"appearance,omitempty"`
	Error      string `json:"error,omitempty"`
}

// MessageFromState maps a persisted state to the wire message.
func MessageFromState(state theme.State) RelayMessage {
	return RelayMessage{
		Theme:      state.Theme.String(),
		Appearance: state.Appearance.String(),
	}
}

// RelayThemeUseCase answers a single extension request with the current state.
type RelayThemeUseCase struct {
	store port.ThemeStateStore
}

// NewRelayThemeUseCase creates the one-shot relay.
func NewRelayThemeUseCase(store port.ThemeStateStore) *RelayThemeUseCase {
	return &RelayThemeUseCase{store: store}
}

// Execute reads the state file once. Read failures become an error message
// rather than a Go error, so the extension always gets a reply.
func (uc *RelayThemeUseCase) Execute(ctx context.Context) RelayMessage {
	log := logging.FromContext(ctx)

	state, err := uc.store.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Str("path", uc.store.Path()).Msg("cannot read theme state")
		return RelayMessage{Error: err.Error()}
	}

	log.Debug().Str("theme", state.Theme.String()).Str("appearance", state.Appearance.String()).Msg("relaying theme")
	return MessageFromState(state)
}
