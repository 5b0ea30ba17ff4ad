// Package module defines the unit of prompt output: a named, described
// sequence of styled segments plus the time it took to compute them.
package module

import (
	"strings"
	"time"

	"github.com/muesli/termenv"

	"github.com/mjeffryes/starship/pkg/segment"
	"github.com/mjeffryes/starship/pkg/shell"
)

// Module holds the computed output of one prompt module. A module is created
// fresh per render and never mutated afterwards except to attach its
// segments. A module with a nonzero duration but no segments still counts as
// having run for the diagnostic renderers.
type Module struct {
	name        string
	description string
	segments    []segment.Segment

	// Duration is the measured computation time, attached by the dispatcher.
	Duration time.Duration
}

// New creates a module with no segments.
func New(name, description string) *Module {
	return &Module{name: name, description: description}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return m.name
}

// Description returns the human-readable module description.
func (m *Module) Description() string {
	return m.description
}

// SetSegments attaches the computed segment sequence.
func (m *Module) SetSegments(segs []segment.Segment) {
	m.segments = segs
}

// Segments returns the ordered segment sequence.
func (m *Module) Segments() []segment.Segment {
	return m.segments
}

// IsEmpty reports whether the module produced no segments, regardless of how
// long it ran.
func (m *Module) IsEmpty() bool {
	return len(m.segments) == 0
}

// PlainString concatenates the raw segment values without styling.
func (m *Module) PlainString() string {
	return segment.Join(m.segments)
}

// AnsiString concatenates the styled segments under the given color profile.
func (m *Module) AnsiString(profile termenv.Profile) string {
	var b strings.Builder
	for _, s := range m.segments {
		b.WriteString(s.Render(profile))
	}
	return b.String()
}

// AnsiStringForShell is AnsiString with the dialect's zero-width escape
// markers applied, so line editors ignore the styling bytes.
func (m *Module) AnsiStringForShell(profile termenv.Profile, sh shell.Shell) string {
	return shell.WrapEscapes(m.AnsiString(profile), sh)
}
