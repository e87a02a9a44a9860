// Package theme holds the appearance and theme model shared by every app adapter.
package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Appearance is the system-wide light/dark mode.
type Appearance string

const (
	Light Appearance = "light"
	Dark  Appearance = "dark"
)

// ErrInvalidAppearance is returned when a string is neither "light" nor "dark".
var ErrInvalidAppearance = errors.New("invalid appearance")

// Appearances returns the closed set of appearances in display order.
func Appearances() []Appearance {
	return []Appearance{Light, Dark}
}

// ParseAppearance converts user input into an Appearance.
func ParseAppearance(s string) (Appearance, error) {
	switch Appearance(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return "", fmt.Errorf("%w: %s. Must be 'light' or 'dark'", ErrInvalidAppearance, s)
}

func (a Appearance) String() string {
	return string(a)
}

// IsDark reports whether the appearance is dark mode.
func (a Appearance) IsDark() bool {
	return a == Dark
}
