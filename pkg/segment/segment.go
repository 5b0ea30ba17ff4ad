// Package segment defines the smallest unit of prompt output: a run of text
// with an optional style. Segments are immutable once created; modules
// produce ordered lists of them and renderers consume those lists.
package segment

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/mjeffryes/starship/pkg/style"
)

// Segment is one styled run of prompt text.
type Segment struct {
	value string
	style *style.Style
}

// Plain creates an unstyled segment.
func Plain(value string) Segment {
	return Segment{value: value}
}

// Styled creates a segment rendered with the given style.
func Styled(value string, st *style.Style) Segment {
	return Segment{value: value, style: st}
}

// Value returns the raw, unstyled text.
func (s Segment) Value() string {
	return s.value
}

// Style returns the segment's style, which may be nil.
func (s Segment) Style() *style.Style {
	return s.style
}

// Render returns the text wrapped in the ANSI sequences the style calls for
// under the given color profile.
func (s Segment) Render(profile termenv.Profile) string {
	if s.style.IsPlain() {
		return s.value
	}
	return s.style.Apply(profile, s.value)
}

// Join concatenates the raw values of segs, ignoring styles.
func Join(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.value)
	}
	return b.String()
}
