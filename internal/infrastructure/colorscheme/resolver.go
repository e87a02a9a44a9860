// Package colorscheme detects the system light/dark appearance.
package colorscheme

import (
	"sort"
	"sync"

	"github.com/bnema/theme-control/internal/application/port"
)

// Resolver implements port.ColorSchemeResolver.
type Resolver struct {
	mu        sync.RWMutex
	detectors []port.ColorSchemeDetector
}

// NewResolver creates a resolver with the given detectors registered.
func NewResolver(detectors ...port.ColorSchemeDetector) *Resolver {
	r := &Resolver{detectors: make([]port.ColorSchemeDetector, 0, len(detectors))}
	for _, d := range detectors {
		r.RegisterDetector(d)
	}
	return r
}

// NewDefaultResolver registers the macOS, GTK_THEME and gsettings detectors.
func NewDefaultResolver(runner port.CommandRunner, goos string) *Resolver {
	return NewResolver(
		NewMacOSDetector(runner, goos),
		NewEnvDetector(),
		NewGsettingsDetector(runner),
	)
}

// Resolve implements port.ColorSchemeResolver.
func (r *Resolver) Resolve() port.ColorSchemePreference {
	r.mu.RLock()
	sorted := make([]port.ColorSchemeDetector, len(r.detectors))
	copy(sorted, r.detectors)
	r.mu.RUnlock()

	// Sort detectors by priority (highest first)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})

	for _, detector := range sorted {
		if !detector.Available() {
			continue
		}
		if prefersDark, ok := detector.Detect(); ok {
			return port.ColorSchemePreference{
				PrefersDark: prefersDark,
				Source:      detector.Name(),
			}
		}
	}

	return port.ColorSchemePreference{Source: port.ColorSchemeSourceUnknown}
}

// RegisterDetector implements port.ColorSchemeResolver.
func (r *Resolver) RegisterDetector(detector port.ColorSchemeDetector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detectors = append(r.detectors, detector)
}
