package modules

import (
	"github.com/mjeffryes/starship/pkg/context"
	"github.com/mjeffryes/starship/pkg/segment"
)

func lineBreak(_ *context.Context) []segment.Segment {
	return []segment.Segment{segment.Plain("\n")}
}
