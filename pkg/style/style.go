// Package style parses prompt style strings ("bold green", "fg:#ff8800
// bg:blue underline") and renders text with them through termenv, honoring
// the active terminal color profile.
package style

import (
	_ "embed"
	"strconv"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/mjeffryes/starship/pkg/logging"
)

// Style is a parsed style string. The zero value renders text unchanged.
type Style struct {
	Foreground string
	Background string
	Bold       bool
	Italic     bool
	Underline  bool
	Dimmed     bool
	Inverted   bool
	Blink      bool
}

//go:embed palette.yaml
var embeddedPalette []byte

// ansiColors are the base color names, mapped to their ANSI indices.
var ansiColors = map[string]string{
	"black":  "0",
	"red":    "1",
	"green":  "2",
	"yellow": "3",
	"blue":   "4",
	"purple": "5",
	"cyan":   "6",
	"white":  "7",
}

type paletteFile struct {
	Palettes map[string]map[string]string `yaml:"palettes"`
}

var (
	paletteMu     sync.RWMutex
	palettes      map[string]map[string]string
	activePalette map[string]string
)

func init() {
	var pf paletteFile
	if err := yaml.Unmarshal(embeddedPalette, &pf); err != nil {
		// The palette file is embedded; a parse failure is a packaging bug,
		// but styles still work without the extra names.
		logger := logging.GetLogger("style")
		logger.Error().Err(err).Msg("failed to parse embedded palette")
		pf.Palettes = map[string]map[string]string{}
	}
	palettes = pf.Palettes
	activePalette = palettes["default"]
}

// SetPalette selects the named palette for extra color names. Unknown names
// leave the current palette in place. Called once during context setup,
// before any concurrent rendering starts.
func SetPalette(name string) {
	paletteMu.Lock()
	defer paletteMu.Unlock()
	if p, ok := palettes[name]; ok {
		activePalette = p
	} else if name != "" {
		logger := logging.GetLogger("style")
		logger.Debug().Str("palette", name).Msg("unknown palette name")
	}
}

// Parse converts a style string into a Style. Tokens are separated by
// whitespace: attribute names (bold, italic, underline, dimmed, inverted,
// blink, hidden), "fg:<color>", "bg:<color>", or a bare color which sets the
// foreground. "none" resets everything seen so far. Unknown tokens are
// ignored so a typo in the config degrades rather than breaks the prompt.
func Parse(s string) *Style {
	st := &Style{}
	for _, tok := range strings.Fields(s) {
		switch tok {
		case "bold":
			st.Bold = true
		case "italic":
			st.Italic = true
		case "underline":
			st.Underline = true
		case "dimmed":
			st.Dimmed = true
		case "inverted":
			st.Inverted = true
		case "blink":
			st.Blink = true
		case "none":
			*st = Style{}
		default:
			switch {
			case strings.HasPrefix(tok, "fg:"):
				st.Foreground = strings.TrimPrefix(tok, "fg:")
			case strings.HasPrefix(tok, "bg:"):
				st.Background = strings.TrimPrefix(tok, "bg:")
			case isColor(tok):
				st.Foreground = tok
			default:
				logger := logging.GetLogger("style")
				logger.Debug().Str("token", tok).Msg("ignoring unknown style token")
			}
		}
	}
	return st
}

// Apply renders text with the style under the given color profile. A nil
// style, or an Ascii profile, leaves the text unchanged apart from
// attribute-free passthrough.
func (s *Style) Apply(profile termenv.Profile, text string) string {
	if s == nil {
		return text
	}
	// Build against the caller's profile rather than termenv's auto-detected
	// global output, so rendering is deterministic for a given context.
	out := profile.String(text)
	if c := resolveColor(s.Foreground); c != "" {
		out = out.Foreground(profile.Color(c))
	}
	if c := resolveColor(s.Background); c != "" {
		out = out.Background(profile.Color(c))
	}
	if s.Bold {
		out = out.Bold()
	}
	if s.Italic {
		out = out.Italic()
	}
	if s.Underline {
		out = out.Underline()
	}
	if s.Dimmed {
		out = out.Faint()
	}
	if s.Inverted {
		out = out.Reverse()
	}
	if s.Blink {
		out = out.Blink()
	}
	return out.String()
}

// IsPlain reports whether the style would render text unchanged.
func (s *Style) IsPlain() bool {
	return s == nil || *s == Style{}
}

func isColor(tok string) bool {
	return resolveColor(tok) != ""
}

// resolveColor turns a color token into a termenv color spec: an ANSI index,
// a 0-255 index, or a "#rrggbb" hex value. Returns "" for unresolvable names.
func resolveColor(tok string) string {
	if tok == "" {
		return ""
	}
	if bright, ok := strings.CutPrefix(tok, "bright-"); ok {
		if idx, ok := ansiColors[bright]; ok {
			n, _ := strconv.Atoi(idx)
			return strconv.Itoa(n + 8)
		}
		return ""
	}
	if idx, ok := ansiColors[tok]; ok {
		return idx
	}
	if strings.HasPrefix(tok, "#") && len(tok) == 7 {
		return tok
	}
	if n, err := strconv.Atoi(tok); err == nil && n >= 0 && n <= 255 {
		return tok
	}
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	if hex, ok := activePalette[tok]; ok {
		return hex
	}
	return ""
}
