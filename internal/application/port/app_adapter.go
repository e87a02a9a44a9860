package port

import (
	"context"

	"github.com/bnema/theme-control/internal/domain/theme"
)

// ApplyRequest carries one appearance/theme switch to an adapter.
type ApplyRequest struct {
	Selection theme.Selection
	// ForceUpdateThemes reinstalls bundled theme assets even if present.
	ForceUpdateThemes bool
}

// AppAdapter applies a theme selection to a single application.
// Adapters check their own enabled state and return nil when skipped.
// A returned error aborts the run; non-fatal failures are logged instead.
type AppAdapter interface {
	Name() string
	Apply(ctx context.Context, req ApplyRequest) error
}
