package segment

import (
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/mjeffryes/starship/pkg/style"
)

func TestPlain(t *testing.T) {
	s := Plain("hello")
	assert.Equal(t, "hello", s.Value())
	assert.Nil(t, s.Style())
	assert.Equal(t, "hello", s.Render(termenv.ANSI))
}

func TestStyledRender(t *testing.T) {
	s := Styled("hello", style.Parse("bold red"))

	ansi := s.Render(termenv.ANSI)
	assert.Contains(t, ansi, "hello")
	assert.Contains(t, ansi, "\x1b[")

	// An incapable terminal gets the bare text.
	assert.Equal(t, "hello", s.Render(termenv.Ascii))
}

func TestJoin(t *testing.T) {
	segs := []Segment{Plain("a"), Styled("b", style.Parse("green")), Plain("c")}
	assert.Equal(t, "abc", Join(segs))
	assert.Equal(t, "", Join(nil))
}
