package modules

import (
	"os"
	"strings"

	"github.com/mjeffryes/starship/pkg/context"
	"github.com/mjeffryes/starship/pkg/segment"
)

// hostname renders the machine name, by default only over SSH.
func hostname(ctx *context.Context) []segment.Segment {
	opts := moduleOptions(ctx, "hostname")
	if opts.OptionBool("ssh_only", true) && ctx.Env("SSH_CONNECTION") == "" {
		return nil
	}

	host, err := os.Hostname()
	if err != nil || host == "" {
		return nil
	}
	if opts.OptionBool("trim_at_dot", true) {
		if idx := strings.IndexByte(host, '.'); idx > 0 {
			host = host[:idx]
		}
	}

	return []segment.Segment{
		segment.Styled(host, moduleStyle(ctx, "hostname", "bold dimmed green")),
		segment.Plain(" in "),
	}
}
