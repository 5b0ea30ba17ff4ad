package modules

import (
	"github.com/mjeffryes/starship/pkg/context"
	"github.com/mjeffryes/starship/pkg/segment"
	"github.com/mjeffryes/starship/pkg/style"
)

// character renders the input marker: green on success, red when the last
// command failed.
func character(ctx *context.Context) []segment.Segment {
	opts := moduleOptions(ctx, "character")
	symbol := opts.OptionString("success_symbol", "❯")
	styleStr := opts.OptionString("success_style", "bold green")
	if ctx.Status != 0 {
		symbol = opts.OptionString("error_symbol", "❯")
		styleStr = opts.OptionString("error_style", "bold red")
	}
	if opts.Style != "" {
		styleStr = opts.Style
	}
	return []segment.Segment{
		segment.Styled(symbol, style.Parse(styleStr)),
		segment.Plain(" "),
	}
}
