package port

import (
	"context"
	"errors"

	"github.com/bnema/theme-control/internal/domain/theme"
)

// ErrStateNotFound is returned when no theme has been applied yet.
var ErrStateNotFound = errors.New("theme state not found")

// ThemeStateStore persists the last applied theme for late consumers.
type ThemeStateStore interface {
	Save(ctx context.Context, state theme.State) error
	Load(ctx context.Context) (theme.State, error)
	Path() string
}

// ThemePusher delivers a state to a live listener, if any.
// An absent listener is not an error.
type ThemePusher interface {
	Push(ctx context.Context, state theme.State) error
}

// MessageWriter sends one framed message to the browser extension.
type MessageWriter interface {
	WriteMessage(v any) error
}
