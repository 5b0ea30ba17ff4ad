package modules

import (
	"fmt"
	"time"

	"github.com/mjeffryes/starship/pkg/context"
	"github.com/mjeffryes/starship/pkg/segment"
)

// cmdDuration renders how long the previous command ran, once it crosses the
// configured minimum (default 2s) so quick commands stay quiet.
func cmdDuration(ctx *context.Context) []segment.Segment {
	minMs := moduleOptions(ctx, "cmd_duration").OptionInt("min_time", 2000)
	if ctx.CmdDuration < time.Duration(minMs)*time.Millisecond {
		return nil
	}

	return []segment.Segment{
		segment.Styled("took "+humanizeDuration(ctx.CmdDuration), moduleStyle(ctx, "cmd_duration", "bold yellow")),
		segment.Plain(" "),
	}
}

func humanizeDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		mins := int(d.Minutes())
		secs := int(d.Seconds()) - mins*60
		return fmt.Sprintf("%dm%ds", mins, secs)
	}
}
