package modules

import (
	"github.com/mjeffryes/starship/pkg/context"
	"github.com/mjeffryes/starship/pkg/segment"
)

// username renders the current user. By default it only shows when the
// session is remote or the user is root, since the local username is rarely
// interesting; show_always overrides that.
func username(ctx *context.Context) []segment.Segment {
	user := ctx.Env("USER")
	if user == "" {
		return nil
	}

	opts := moduleOptions(ctx, "username")
	showAlways := opts.OptionBool("show_always", false)
	remote := ctx.Env("SSH_CONNECTION") != ""
	if !showAlways && !remote && user != "root" {
		return nil
	}

	fallback := "bold yellow"
	if user == "root" {
		fallback = "bold red"
	}
	return []segment.Segment{
		segment.Styled(user, moduleStyle(ctx, "username", fallback)),
		segment.Plain(" in "),
	}
}
