package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/theme-control/internal/application/port"
	"github.com/bnema/theme-control/internal/application/port/mocks"
	"github.com/bnema/theme-control/internal/domain/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdapter(t *testing.T, name string) *mocks.MockAppAdapter {
	t.Helper()
	a := mocks.NewMockAppAdapter(t)
	a.EXPECT().Name().Return(name).Maybe()
	return a
}

func TestApplyThemeUseCase_RunsAdaptersInOrder(t *testing.T) {
	var order []string
	record := func(name string) func(context.Context, port.ApplyRequest) error {
		return func(_ context.Context, req port.ApplyRequest) error {
			assert.Equal(t, theme.Selection{Appearance: theme.Dark, Theme: theme.Nord}, req.Selection)
			assert.True(t, req.ForceUpdateThemes)
			order = append(order, name)
			return nil
		}
	}

	names := []string{"macos", "bat", "delta", "helix", "kitty", "browser"}
	adapters := make([]port.AppAdapter, 0, len(names))
	for _, name := range names {
		a := newAdapter(t, name)
		a.EXPECT().Apply(mock.Anything, mock.Anything).RunAndReturn(record(name)).Once()
		adapters = append(adapters, a)
	}

	uc := NewApplyThemeUseCase("linux", adapters...)
	out, err := uc.Execute(context.Background(), ApplyThemeInput{
		Appearance:        "dark",
		Theme:             "nord",
		ForceUpdateThemes: true,
	})

	require.NoError(t, err)
	assert.Equal(t, names, order)
	assert.Equal(t, names, out.Adapters)
}

func TestApplyThemeUseCase_InvalidSelectionRunsNothing(t *testing.T) {
	tests := []struct {
		name       string
		appearance string
		theme      string
		wantErr    error
	}{
		{name: "nord is dark only", appearance: "light", theme: "nord", wantErr: theme.ErrInvalidTheme},
		{name: "unknown appearance", appearance: "dusk", theme: "nord", wantErr: theme.ErrInvalidAppearance},
		{name: "unknown theme", appearance: "dark", theme: "solarized", wantErr: theme.ErrInvalidTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mocks.NewMockAppAdapter(t)

			_, err := NewApplyThemeUseCase("darwin", a).Execute(context.Background(), ApplyThemeInput{
				Appearance: tt.appearance,
				Theme:      tt.theme,
			})

			require.ErrorIs(t, err, tt.wantErr)
			a.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything)
		})
	}
}

func TestApplyThemeUseCase_UnsupportedOS(t *testing.T) {
	a := mocks.NewMockAppAdapter(t)

	_, err := NewApplyThemeUseCase("windows", a).Execute(context.Background(), ApplyThemeInput{
		Appearance: "dark",
		Theme:      "nord",
	})

	require.ErrorIs(t, err, ErrUnsupportedOS)
	assert.Contains(t, err.Error(), "windows")
}

func TestApplyThemeUseCase_AdapterErrorStopsRun(t *testing.T) {
	kittyErr := errors.New("kitten exited with code 1")

	helix := newAdapter(t, "helix")
	helix.EXPECT().Apply(mock.Anything, mock.Anything).Return(nil)
	kitty := newAdapter(t, "kitty")
	kitty.EXPECT().Apply(mock.Anything, mock.Anything).Return(kittyErr)
	browser := mocks.NewMockAppAdapter(t)

	out, err := NewApplyThemeUseCase("linux", helix, kitty, browser).Execute(context.Background(), ApplyThemeInput{
		Appearance: "light",
		Theme:      "rosepine",
	})

	require.ErrorIs(t, err, kittyErr)
	assert.Contains(t, err.Error(), "kitty")
	assert.Equal(t, []string{"helix"}, out.Adapters)
	browser.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything)
}
