package prompt

import (
	"strings"

	"github.com/mjeffryes/starship/pkg/context"
	"github.com/mjeffryes/starship/pkg/format"
	"github.com/mjeffryes/starship/pkg/logging"
	"github.com/mjeffryes/starship/pkg/module"
	"github.com/mjeffryes/starship/pkg/modules"
	"github.com/mjeffryes/starship/pkg/segment"
	"github.com/mjeffryes/starship/pkg/shell"
)

// Render produces the final prompt string for the context's shell dialect.
// It always returns something printable: a dumb terminal gets a plain-text
// fallback, an unparseable template gets a minimal marker. Failing to print
// a prompt is worse than printing a degraded one.
func Render(ctx *context.Context) string {
	logger := logging.GetLogger("prompt")
	var buf strings.Builder

	if ctx.IsDumbTerminal() {
		logger.Warn().Msg("under a 'dumb' terminal (TERM=dumb)")
		return "Starship disabled due to TERM=dumb > "
	}

	// Fish redraws the prompt without clearing leftovers from the previous
	// one; a clear-to-end-of-screen works around it. Other shells break when
	// given the same sequence, so it is fish-only.
	if ctx.Shell == shell.Fish {
		buf.WriteString("\x1b[J")
	}

	f, err := format.Parse(ctx.Config.Format)
	if err != nil {
		logger.Error().Err(err).Msg("error parsing format")
		buf.WriteByte('>')
		return buf.String()
	}

	vars := f.Variables()
	segs := f.Format(func(name string) []segment.Segment {
		var out []segment.Segment
		for _, m := range Resolve(name, ctx, vars) {
			out = append(out, m.Segments()...)
		}
		return out
	})

	root := module.New("starship_root", "The root module")
	root.SetSegments(segs)

	if ctx.Config.NewlineBeforePrompt() {
		buf.WriteByte('\n')
	}
	buf.WriteString(root.AnsiStringForShell(ctx.Profile, ctx.Shell))
	out := buf.String()

	// Tcsh treats ! as history expansion and bare newlines as continuation
	// errors inside the prompt variable. Escape the rendered string, not the
	// raw segments, so styling sequences are covered too.
	if ctx.Shell == shell.Tcsh {
		out = strings.ReplaceAll(out, "!", `\!`)
		out = strings.ReplaceAll(out, "\n", ` \n`)
	}

	return out
}

// ModuleText renders a single builtin module by name, for `starship module`.
// Unknown names yield an empty string with a logged diagnostic.
func ModuleText(name string, ctx *context.Context) string {
	m := modules.Handle(name, ctx)
	if m == nil {
		logger := logging.GetLogger("prompt")
		logger.Debug().Str("found", name).Strs("expected", modules.All()).
			Msg("unknown module name")
		return ""
	}
	return m.AnsiString(ctx.Profile)
}
