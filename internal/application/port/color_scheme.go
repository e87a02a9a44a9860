package port

// ColorSchemeSourceUnknown is the Source reported when no detector answered.
const ColorSchemeSourceUnknown = "unknown"

// ColorSchemePreference represents the resolved color scheme preference.
type ColorSchemePreference struct {
	// PrefersDark indicates whether dark mode is preferred.
	PrefersDark bool

	// Source identifies which detector provided this preference,
	// or ColorSchemeSourceUnknown.
	Source string
}

// ColorSchemeDetector detects the system's light/dark appearance.
// Multiple detectors can be registered with different priorities.
type ColorSchemeDetector interface {
	// Name returns a human-readable name for this detector.
	Name() string

	// Priority returns the detector's priority.
	// Higher values = higher priority (checked first).
	Priority() int

	// Available returns true if this detector can be used on this system.
	Available() bool

	// Detect returns the detected preference and whether detection succeeded.
	Detect() (prefersDark bool, ok bool)
}

// ColorSchemeResolver resolves the effective color scheme preference.
type ColorSchemeResolver interface {
	// Resolve queries detectors by priority.
	// If all detectors fail, Source is ColorSchemeSourceUnknown.
	Resolve() ColorSchemePreference

	// RegisterDetector adds a detector to the resolver.
	RegisterDetector(detector ColorSchemeDetector)
}
