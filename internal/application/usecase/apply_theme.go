package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/bnema/theme-control/internal/application/port"
	"github.com/bnema/theme-control/internal/domain/theme"
	"github.com/bnema/theme-control/internal/logging"
)

// ErrUnsupportedOS is returned when theme-control runs outside darwin or linux.
var ErrUnsupportedOS = errors.New("unsupported operating system")

// SupportedOS lists the GOOS values theme-control runs on.
func SupportedOS() []string {
	return []string{"darwin", "linux"}
}

// ApplyThemeInput holds the raw CLI arguments.
type ApplyThemeInput struct {
	Appearance string
	Theme      string
	// ForceUpdateThemes reinstalls bundled theme files.
	ForceUpdateThemes bool
}

// ApplyThemeOutput reports what was applied.
type ApplyThemeOutput struct {
	Selection theme.Selection
	// Adapters lists every adapter that ran to completion, in order.
	Adapters []string
}

// ApplyThemeUseCase validates a selection and runs every app adapter in order.
type ApplyThemeUseCase struct {
	goos     string
	adapters []port.AppAdapter
}

// NewApplyThemeUseCase creates the use case. Adapters run in the given order.
func NewApplyThemeUseCase(goos string, adapters ...port.AppAdapter) *ApplyThemeUseCase {
	return &ApplyThemeUseCase{goos: goos, adapters: adapters}
}

// Execute applies the selection. Validation failures happen before any
// adapter runs; the first adapter error stops the run.
func (uc *ApplyThemeUseCase) Execute(ctx context.Context, input ApplyThemeInput) (*ApplyThemeOutput, error) {
	log := logging.FromContext(ctx)

	if !slices.Contains(SupportedOS(), uc.goos) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOS, uc.goos)
	}

	sel, err := theme.ParseSelection(input.Appearance, input.Theme)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("appearance", sel.Appearance.String()).
		Str("theme", sel.Theme.String()).
		Bool("force_update_themes", input.ForceUpdateThemes).
		Msg("applying theme")

	out := &ApplyThemeOutput{Selection: sel}
	req := port.ApplyRequest{Selection: sel, ForceUpdateThemes: input.ForceUpdateThemes}

	for _, adapter := range uc.adapters {
		if err := adapter.Apply(ctx, req); err != nil {
			return out, fmt.Errorf("failed to apply %s to %s: %w", sel, adapter.Name(), err)
		}
		out.Adapters = append(out.Adapters, adapter.Name())
	}

	log.Info().Str("selection", sel.String()).Msg("theme applied")
	return out, nil
}
