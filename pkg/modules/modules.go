// Package modules implements the builtin prompt modules and the dispatch
// table that maps identifiers to them. The table is a closed set built at
// startup; custom command modules go through Custom instead.
package modules

import (
	"sort"
	"time"

	"github.com/mjeffryes/starship/pkg/config"
	"github.com/mjeffryes/starship/pkg/context"
	"github.com/mjeffryes/starship/pkg/module"
	"github.com/mjeffryes/starship/pkg/segment"
	"github.com/mjeffryes/starship/pkg/style"
)

// descriptor is one entry in the builtin dispatch table.
type descriptor struct {
	description string
	// disabledByDefault modules render only when the config enables them.
	disabledByDefault bool
	compute           func(ctx *context.Context) []segment.Segment
}

// PromptOrder is the fixed ordering the wildcard "$all" expands to. Output
// segment order always follows this list, never completion order.
var PromptOrder = []string{
	"username",
	"hostname",
	"directory",
	"git_branch",
	"cmd_duration",
	"time",
	"line_break",
	"character",
}

var registry = map[string]descriptor{
	"username":     {description: "The active user's username", compute: username},
	"hostname":     {description: "The system hostname", compute: hostname},
	"directory":    {description: "The current working directory", compute: directory},
	"git_branch":   {description: "The active branch of the repo in your current directory", compute: gitBranch},
	"cmd_duration": {description: "How long the last command took to execute", compute: cmdDuration},
	"time":         {description: "The current local time", disabledByDefault: true, compute: clock},
	"line_break":   {description: "Separates the prompt into two lines", compute: lineBreak},
	"character":    {description: "A character (usually an arrow) beside where the text is entered in your terminal", compute: character},
}

// Has reports whether name is a builtin module identifier.
func Has(name string) bool {
	_, ok := registry[name]
	return ok
}

// All returns the sorted list of builtin identifiers, for diagnostics.
func All() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsDisabled reports whether a builtin module is administratively disabled:
// an explicit config value wins, otherwise the module's own default applies.
func IsDisabled(ctx *context.Context, name string) bool {
	d, ok := registry[name]
	if !ok {
		return true
	}
	return ctx.Config.IsModuleDisabled(name, d.disabledByDefault)
}

// Handle computes a builtin module and attaches its measured duration.
// Returns nil for unknown identifiers. An empty result still comes back as a
// module so the diagnostic renderers can report that it ran.
func Handle(name string, ctx *context.Context) *module.Module {
	d, ok := registry[name]
	if !ok {
		return nil
	}
	start := time.Now()
	segs := d.compute(ctx)
	m := module.New(name, d.description)
	m.SetSegments(segs)
	m.Duration = time.Since(start)
	return m
}

// moduleStyle resolves a module's style: config override first, then the
// module's default style string.
func moduleStyle(ctx *context.Context, name, fallback string) *style.Style {
	if s := ctx.Config.Module(name).Style; s != "" {
		return style.Parse(s)
	}
	return style.Parse(fallback)
}

func moduleOptions(ctx *context.Context, name string) config.ModuleConfig {
	return ctx.Config.Module(name)
}
