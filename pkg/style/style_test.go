package style

import (
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Style
	}{
		{"attributes and color", "bold green", Style{Bold: true, Foreground: "green"}},
		{"fg and bg", "fg:#ff0000 bg:blue underline", Style{Foreground: "#ff0000", Background: "blue", Underline: true}},
		{"indexed color", "208", Style{Foreground: "208"}},
		{"bright color", "bright-red dimmed", Style{Foreground: "bright-red", Dimmed: true}},
		{"none resets", "bold red none", Style{}},
		{"unknown tokens ignored", "sparkly green", Style{Foreground: "green"}},
		{"empty", "", Style{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, *Parse(tt.input))
		})
	}
}

func TestResolveColor(t *testing.T) {
	assert.Equal(t, "2", resolveColor("green"))
	assert.Equal(t, "10", resolveColor("bright-green"))
	assert.Equal(t, "#ff0000", resolveColor("#ff0000"))
	assert.Equal(t, "93", resolveColor("93"))
	assert.Equal(t, "", resolveColor("not-a-color"))
	assert.Equal(t, "", resolveColor("999"))
}

func TestPaletteColors(t *testing.T) {
	SetPalette("default")
	assert.Equal(t, "#ff9f1c", resolveColor("orange"))

	SetPalette("solarized")
	assert.Equal(t, "#cb4b16", resolveColor("orange"))

	// Unknown palettes leave the selection untouched.
	SetPalette("nope")
	assert.Equal(t, "#cb4b16", resolveColor("orange"))

	SetPalette("default")
}

func TestApply(t *testing.T) {
	t.Run("ascii profile strips styling", func(t *testing.T) {
		st := Parse("bold red")
		assert.Equal(t, "hi", st.Apply(termenv.Ascii, "hi"))
	})

	t.Run("ansi profile emits sequences", func(t *testing.T) {
		st := Parse("bold red")
		out := st.Apply(termenv.ANSI, "hi")
		assert.Contains(t, out, "hi")
		assert.Contains(t, out, "\x1b[")
	})

	t.Run("nil style is identity", func(t *testing.T) {
		var st *Style
		assert.Equal(t, "hi", st.Apply(termenv.ANSI, "hi"))
		assert.True(t, st.IsPlain())
	})
}
