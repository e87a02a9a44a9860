package theme

import (
	"errors"
	"fmt"
)

// Variants maps theme names to an app-specific identifier for one appearance.
// Default is used whenever a name has no entry.
type Variants struct {
	Default string
	ByName  map[Name]string
}

// Map is an app's full mapping table. Both appearances must define a Default.
type Map struct {
	Light Variants
	Dark  Variants
}

// ErrMissingDefault is returned by Validate when an appearance has no fallback.
var ErrMissingDefault = errors.New("theme map has no default")

// For returns the variants registered for an appearance.
func (m Map) For(a Appearance) Variants {
	if a == Light {
		return m.Light
	}
	return m.Dark
}

// Resolve returns map[appearance][name], falling back to map[appearance].default.
// An unknown name is never an error.
func (m Map) Resolve(a Appearance, name Name) string {
	v := m.For(a)
	if id, ok := v.ByName[name]; ok && id != "" {
		return id
	}
	return v.Default
}

// ResolveSelection is Resolve for a validated Selection.
func (m Map) ResolveSelection(sel Selection) string {
	return m.Resolve(sel.Appearance, sel.Theme)
}

// Validate checks that every appearance has a default entry.
func (m Map) Validate() error {
	for _, a := range Appearances() {
		if m.For(a).Default == "" {
			return fmt.Errorf("%w for appearance %s", ErrMissingDefault, a)
		}
	}
	return nil
}
