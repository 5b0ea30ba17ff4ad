package modules

import (
	"path/filepath"
	"strings"

	"github.com/mjeffryes/starship/pkg/context"
	"github.com/mjeffryes/starship/pkg/segment"
)

// directory renders the working directory, home-contracted and truncated to
// the configured number of trailing path components.
func directory(ctx *context.Context) []segment.Segment {
	if ctx.Dir == "" {
		return nil
	}

	dir := contractHome(ctx.Dir, ctx.Env("HOME"))
	truncation := moduleOptions(ctx, "directory").OptionInt("truncation_length", 3)
	dir = truncatePath(dir, truncation)

	return []segment.Segment{
		segment.Styled(dir, moduleStyle(ctx, "directory", "bold cyan")),
		segment.Plain(" "),
	}
}

func contractHome(dir, home string) string {
	if home == "" {
		return dir
	}
	if dir == home {
		return "~"
	}
	if strings.HasPrefix(dir, home+string(filepath.Separator)) {
		return "~" + dir[len(home):]
	}
	return dir
}

// truncatePath keeps the last n path components. The leading "~" or root
// marker is dropped once the path is deeper than n components.
func truncatePath(dir string, n int) string {
	if n <= 0 {
		return dir
	}
	parts := strings.Split(dir, string(filepath.Separator))
	// A leading separator yields an empty first element; keep it attached.
	filtered := parts[:0]
	for _, p := range parts {
		if p != "" {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) <= n {
		return dir
	}
	return strings.Join(filtered[len(filtered)-n:], string(filepath.Separator))
}
