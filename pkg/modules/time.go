package modules

import (
	"time"

	"github.com/mjeffryes/starship/pkg/context"
	"github.com/mjeffryes/starship/pkg/segment"
)

// clock renders the local time. Disabled by default; users opt in via
// [time] disabled = false.
func clock(ctx *context.Context) []segment.Segment {
	layout := moduleOptions(ctx, "time").OptionString("format", "15:04:05")
	return []segment.Segment{
		segment.Plain("at "),
		segment.Styled(time.Now().Format(layout), moduleStyle(ctx, "time", "bold blue")),
		segment.Plain(" "),
	}
}
