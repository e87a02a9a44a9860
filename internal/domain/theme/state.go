package theme

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// State is the last applied selection, persisted for consumers that start
// after the push happened (the browser relay host).
type State struct {
	ID         string     `json:"id,omitempty"`
	Theme      Name       `json:"theme"`
	Appearance Appearance `json:"appearance"`
	Timestamp  time.Time  `json:"timestamp"`
	Colors     *Colors    `json:"colors,omitempty"`
}

// ErrIncompleteState is returned when a decoded state lacks theme or appearance.
var ErrIncompleteState = errors.New("theme state is missing theme or appearance")

// NewState builds the persisted state for a selection. Every state gets a
// fresh ID so watchers can tell two writes of the same theme apart from a
// single write observed twice.
func NewState(sel Selection, now time.Time) State {
	s := State{
		ID:         uuid.NewString(),
		Theme:      sel.Theme,
		Appearance: sel.Appearance,
		Timestamp:  now.UTC(),
	}
	if colors, ok := BrowserColors(sel); ok {
		s.Colors = &colors
	}
	return s
}

// Validate checks the fields every consumer relies on.
func (s State) Validate() error {
	if s.Theme == "" || s.Appearance == "" {
		return ErrIncompleteState
	}
	if _, err := ParseAppearance(string(s.Appearance)); err != nil {
		return fmt.Errorf("theme state: %w", err)
	}
	return nil
}

// Selection returns the appearance/theme pair of the state without
// re-validating it against the catalog.
func (s State) Selection() Selection {
	return Selection{Appearance: s.Appearance, Theme: s.Theme}
}
