package prompt

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rivo/uniseg"

	"github.com/mjeffryes/starship/pkg/context"
	"github.com/mjeffryes/starship/pkg/module"
	"github.com/mjeffryes/starship/pkg/textwidth"
)

// paddingWidth is the fixed number of non-module characters in an
// explanation line: ` "{value}" ({duration})  -  {description}`.
const paddingWidth = 11

// Explain renders the annotated prompt breakdown for `starship explain`.
func Explain(ctx *context.Context) string {
	return explainTable(ComputeModules(ctx), ctx.Profile, ctx.Width)
}

// explainTable describes each visible module alongside its rendered value
// and duration. line_break never prints (it has no visual value), nor do
// empty modules. Descriptions word-wrap into the space the terminal leaves
// after the value column; when the terminal width is unknown they print
// unwrapped on a single line.
func explainTable(mods []*module.Module, profile termenv.Profile, termWidth int) string {
	type info struct {
		value    string
		valueLen int
		desc     string
		duration string
	}

	var infos []info
	for _, m := range mods {
		if m.Name() == "line_break" || m.IsEmpty() {
			continue
		}
		dur := FormatDuration(m.Duration)
		infos = append(infos, info{
			value:    m.AnsiString(profile),
			valueLen: textwidth.String(m.PlainString()) + textwidth.String(dur),
			desc:     m.Description(),
			duration: dur,
		})
	}

	maxModuleWidth := 0
	for _, in := range infos {
		maxModuleWidth = max(maxModuleWidth, in.valueLen)
	}

	// descWidth < 0 means the terminal width is unknown; min() keeps it from
	// going negative on narrow terminals.
	descWidth := -1
	if termWidth > 0 {
		descWidth = termWidth - min(termWidth, maxModuleWidth+paddingWidth)
	}

	var b strings.Builder
	b.WriteString("\n " + headerStyle.Render("Here's a breakdown of your prompt:") + "\n")
	for _, in := range infos {
		pad := strings.Repeat(" ", maxModuleWidth-in.valueLen)
		if descWidth < 0 {
			fmt.Fprintf(&b, " %s%s  -  %s\n", in.value, pad, in.desc)
			continue
		}
		fmt.Fprintf(&b, " \"%s\" (%s)%s  -  ", in.value, in.duration, pad)
		writeWrapped(&b, in.desc, descWidth, maxModuleWidth+paddingWidth)
		b.WriteByte('\n')
	}
	return b.String()
}

// writeWrapped emits desc word-wrapped to width, indenting continuation
// lines by indent spaces. The walk is grapheme-by-grapheme with a running
// display-width counter and an inside-ANSI-escape flag:
//
//   - ESC enters escape mode; escaped graphemes are emitted verbatim and
//     uncounted until an ASCII letter terminates the sequence.
//   - A newline, or the counter passing width, breaks the line. A plain
//     space at the boundary is dropped (no trailing space at a wrap point);
//     the deferred break then happens before the next grapheme. A literal
//     newline resets the counter to zero and is not re-emitted; any other
//     boundary grapheme starts the new line with the counter at one.
func writeWrapped(b *strings.Builder, desc string, width, indent int) {
	pos := 0
	escaping := false
	state := -1
	rest := desc
	for len(rest) > 0 {
		var g string
		g, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)

		if g == "\x1b" {
			escaping = true
		}
		if escaping {
			b.WriteString(g)
			escaping = !isASCIILetter(g)
			continue
		}

		pos += textwidth.Grapheme(g)
		if g == "\n" || pos > width {
			if g == " " && width > 1 {
				continue
			}
			b.WriteString("\n" + strings.Repeat(" ", indent))
			if g == "\n" {
				pos = 0
				continue
			}
			pos = 1
		}
		b.WriteString(g)
	}
}

func isASCIILetter(g string) bool {
	return len(g) == 1 && (g[0] >= 'a' && g[0] <= 'z' || g[0] >= 'A' && g[0] <= 'Z')
}
