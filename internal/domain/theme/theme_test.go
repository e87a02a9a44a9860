package theme

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMap = Map{
	Light: Variants{
		Default: "base16",
		ByName:  map[Name]string{RosePine: "rose-pine-dawn"},
	},
	Dark: Variants{
		Default: "base16",
		ByName:  map[Name]string{Nord: "Nord", RosePine: "rose-pine"},
	},
}

func TestParseAppearance(t *testing.T) {
	tests := []struct {
		input   string
		want    Appearance
		wantErr bool
	}{
		{input: "light", want: Light},
		{input: "dark", want: Dark},
		{input: " Dark ", want: Dark},
		{input: "dim", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAppearance(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidAppearance)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewSelection(t *testing.T) {
	sel, err := NewSelection(Dark, "nord")
	require.NoError(t, err)
	assert.Equal(t, Selection{Appearance: Dark, Theme: Nord}, sel)

	_, err = NewSelection(Light, "nord")
	require.ErrorIs(t, err, ErrInvalidTheme)
	assert.Contains(t, err.Error(), "Valid themes: rosepine")

	_, err = NewSelection(Appearance("dim"), "nord")
	require.ErrorIs(t, err, ErrInvalidAppearance)
}

func TestMap_ResolveFallsBackToDefault(t *testing.T) {
	// Every pair missing from the table resolves to the appearance default.
	for _, a := range Appearances() {
		for _, name := range []Name{"solarized", "", "NORD"} {
			assert.Equal(t, testMap.For(a).Default, testMap.Resolve(a, name), "%s/%s", a, name)
		}
	}
	assert.Equal(t, "base16", testMap.Resolve(Light, Nord))
}

func TestMap_ResolveKnownNames(t *testing.T) {
	assert.Equal(t, "Nord", testMap.Resolve(Dark, Nord))
	assert.Equal(t, "rose-pine", testMap.Resolve(Dark, RosePine))
	assert.Equal(t, "rose-pine-dawn", testMap.ResolveSelection(Selection{Appearance: Light, Theme: RosePine}))
}

func TestMap_Validate(t *testing.T) {
	require.NoError(t, testMap.Validate())

	broken := Map{Light: Variants{Default: "x"}}
	require.ErrorIs(t, broken.Validate(), ErrMissingDefault)
}

func TestUsage(t *testing.T) {
	assert.Equal(t, "(light: rosepine) | (dark: nord | rosepine)", Usage())
}

func TestNewState(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))

	s := NewState(Selection{Appearance: Dark, Theme: Nord}, now)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, Nord, s.Theme)
	assert.Equal(t, Dark, s.Appearance)
	assert.Equal(t, time.UTC, s.Timestamp.Location())
	require.NotNil(t, s.Colors)
	assert.Equal(t, "#2e3440", s.Colors.Frame)
	require.NoError(t, s.Validate())

	other := NewState(Selection{Appearance: Dark, Theme: Nord}, now)
	assert.NotEqual(t, s.ID, other.ID)
}

func TestState_Validate(t *testing.T) {
	assert.ErrorIs(t, State{Theme: Nord}.Validate(), ErrIncompleteState)
	assert.Error(t, State{Theme: Nord, Appearance: "dim"}.Validate())
	assert.Equal(t, Selection{Appearance: Dark, Theme: Nord}, State{Theme: Nord, Appearance: Dark}.Selection())
}

func TestBrowserColors(t *testing.T) {
	_, ok := BrowserColors(Selection{Appearance: Light, Theme: Nord})
	assert.False(t, ok)

	dawn, ok := BrowserColors(Selection{Appearance: Light, Theme: RosePine})
	require.True(t, ok)
	assert.Equal(t, "#faf4ed", dawn.Frame)
}
