package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Name identifies a color palette. A name is only meaningful within an Appearance.
type Name string

const (
	Nord     Name = "nord"
	RosePine Name = "rosepine"
)

func (n Name) String() string {
	return string(n)
}

// ErrInvalidTheme is returned when a theme is not offered for the requested appearance.
var ErrInvalidTheme = errors.New("invalid theme")

// Themes returns the theme names selectable for an appearance.
func Themes(a Appearance) []Name {
	switch a {
	case Light:
		return []Name{RosePine}
	case Dark:
		return []Name{Nord, RosePine}
	}
	return nil
}

// Selection is a validated appearance/theme pair.
type Selection struct {
	Appearance Appearance
	Theme      Name
}

func (s Selection) String() string {
	return fmt.Sprintf("%s/%s", s.Appearance, s.Theme)
}

// NewSelection validates name against the themes available for appearance.
func NewSelection(appearance Appearance, name string) (Selection, error) {
	valid := Themes(appearance)
	if valid == nil {
		return Selection{}, fmt.Errorf("%w: %s", ErrInvalidAppearance, appearance)
	}

	for _, candidate := range valid {
		if string(candidate) == name {
			return Selection{Appearance: appearance, Theme: candidate}, nil
		}
	}

	names := make([]string, len(valid))
	for i, n := range valid {
		names[i] = string(n)
	}
	return Selection{}, fmt.Errorf(
		"%w '%s' for appearance '%s'. Valid themes: %s",
		ErrInvalidTheme, name, appearance, strings.Join(names, ", "),
	)
}

// ParseSelection parses both CLI arguments into a Selection.
func ParseSelection(appearance, name string) (Selection, error) {
	a, err := ParseAppearance(appearance)
	if err != nil {
		return Selection{}, err
	}
	return NewSelection(a, name)
}

// Usage describes every valid appearance/theme combination, e.g.
// "(light: rosepine) | (dark: nord | rosepine)".
func Usage() string {
	parts := make([]string, 0, len(Appearances()))
	for _, a := range Appearances() {
		names := Themes(a)
		s := make([]string, len(names))
		for i, n := range names {
			s[i] = string(n)
		}
		parts = append(parts, fmt.Sprintf("(%s: %s)", a, strings.Join(s, " | ")))
	}
	return strings.Join(parts, " | ")
}
