package prompt

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/mjeffryes/starship/pkg/context"
	"github.com/mjeffryes/starship/pkg/module"
	"github.com/mjeffryes/starship/pkg/textwidth"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

// Timings renders the per-module timing table for `starship timings`.
func Timings(ctx *context.Context) string {
	return timingsTable(ComputeModules(ctx), ctx.Profile)
}

// timingsTable lists every module that produced output or took at least a
// millisecond, slowest first. Ties keep their original relative order.
// Column widths are display widths, grapheme-cluster aware, so emoji-heavy
// module values don't skew the table.
func timingsTable(mods []*module.Module, profile termenv.Profile) string {
	type row struct {
		name     string
		nameLen  int
		value    string
		duration time.Duration
		durLen   int
	}

	var rows []row
	for _, m := range mods {
		if m.IsEmpty() && m.Duration < time.Millisecond {
			continue
		}
		rows = append(rows, row{
			name:    m.Name(),
			nameLen: textwidth.String(m.Name()),
			// Flatten embedded newlines so multi-line values keep the table
			// aligned.
			value:    strings.ReplaceAll(m.AnsiString(profile), "\n", `\n`),
			duration: m.Duration,
			durLen:   textwidth.String(FormatDuration(m.Duration)),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].duration > rows[j].duration
	})

	maxName, maxDur := 0, 0
	for _, r := range rows {
		maxName = max(maxName, r.nameLen)
		maxDur = max(maxDur, r.durLen)
	}

	var b strings.Builder
	b.WriteString("\n " + headerStyle.Render("Here are the timings of modules in your prompt (>=1ms or output):") + "\n")
	for _, r := range rows {
		fmt.Fprintf(&b, " %s%s  -  %s%s  -   \"%s\"\n",
			r.name,
			strings.Repeat(" ", maxName-r.nameLen),
			strings.Repeat(" ", maxDur-r.durLen),
			FormatDuration(r.duration),
			r.value,
		)
	}
	return b.String()
}
