package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/theme-control/internal/application/port"
	"github.com/bnema/theme-control/internal/domain/theme"
	"github.com/bnema/theme-control/internal/logging"
)

// maxSeenStates bounds the dedup set of a long-running relay.
const maxSeenStates = 256

// WatchRelayUseCase forwards every new theme state to the extension exactly
// once, whichever source (file watcher or socket) reports it first.
type WatchRelayUseCase struct {
	store  port.ThemeStateStore
	writer port.MessageWriter

	mu   sync.Mutex
	seen map[string]struct{}
	last string
}

// NewWatchRelayUseCase creates the long-running relay.
func NewWatchRelayUseCase(store port.ThemeStateStore, writer port.MessageWriter) *WatchRelayUseCase {
	return &WatchRelayUseCase{
		store:  store,
		writer: writer,
		seen:   make(map[string]struct{}),
	}
}

// SendCurrent forwards the stored state, if there is one.
func (uc *WatchRelayUseCase) SendCurrent(ctx context.Context) error {
	state, err := uc.store.Load(ctx)
	if err != nil {
		if errors.Is(err, port.ErrStateNotFound) {
			logging.FromContext(ctx).Debug().Msg("no theme state yet")
			return nil
		}
		logging.FromContext(ctx).Warn().Err(err).Msg("cannot read theme state")
		return nil
	}
	_, err = uc.Forward(ctx, state)
	return err
}

// Forward sends state unless it was already sent. States with an ID are
// deduplicated by ID; legacy states without one by content against the
// previous message.
func (uc *WatchRelayUseCase) Forward(ctx context.Context, state theme.State) (bool, error) {
	msg := MessageFromState(state)
	content := msg.Theme + "/" + msg.Appearance

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if state.ID != "" {
		if _, ok := uc.seen[state.ID]; ok {
			return false, nil
		}
	} else if content == uc.last {
		return false, nil
	}

	if err := uc.writer.WriteMessage(msg); err != nil {
		return false, fmt.Errorf("failed to relay theme: %w", err)
	}

	if state.ID != "" {
		if len(uc.seen) >= maxSeenStates {
			clear(uc.seen)
		}
		uc.seen[state.ID] = struct{}{}
	}
	uc.last = content

	logging.FromContext(ctx).Debug().Str("id", state.ID).Str("theme", msg.Theme).Msg("relayed theme")
	return true, nil
}
