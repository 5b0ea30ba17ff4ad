// Package prompt is the composition and rendering engine: it resolves which
// modules a template references, computes them (in parallel for the wildcard
// expansion, without ever reordering output), and renders the result for a
// specific shell dialect. It also hosts the timing and explanation
// diagnostic renderers.
package prompt

import (
	"sort"
	"strings"

	"github.com/mjeffryes/starship/pkg/config"
	"github.com/mjeffryes/starship/pkg/context"
	"github.com/mjeffryes/starship/pkg/logging"
	"github.com/mjeffryes/starship/pkg/module"
	"github.com/mjeffryes/starship/pkg/modules"
)

// Resolve maps one template variable to the ordered list of modules it
// denotes. vars is the full set of variable names the template references,
// used to keep the implicit custom expansion from duplicating explicit
// custom.<id> references. Resolution never fails: unknown or misconfigured
// variables degrade to no output with a logged diagnostic, so a malformed
// template cannot prevent a prompt from appearing.
func Resolve(name string, ctx *context.Context, vars map[string]struct{}) []*module.Module {
	logger := logging.GetLogger("prompt")

	switch {
	case name == "all":
		return evalOrdered(modules.PromptOrder, func(n string) []*module.Module {
			return Resolve(n, ctx, vars)
		})

	case modules.Has(name):
		if modules.IsDisabled(ctx, name) {
			return nil
		}
		if m := modules.Handle(name, ctx); m != nil {
			return []*module.Module{m}
		}
		return nil

	case name == "custom":
		return implicitCustomModules(ctx, vars)

	case strings.HasPrefix(name, "custom."):
		id := strings.TrimPrefix(name, "custom.")
		disabled, found := ctx.Config.IsCustomDisabled(id)
		switch {
		case !found:
			if len(ctx.Config.Custom) == 0 {
				logger.Debug().Str("module", id).
					Msg("format contains a custom module, but no custom configuration was provided")
			} else {
				logger.Debug().Str("module", id).Strs("configured", customIDs(ctx.Config)).
					Msg("format contains a custom module with no matching configuration")
			}
			return nil
		case disabled:
			return nil
		default:
			if m := modules.Custom(id, ctx); m != nil {
				return []*module.Module{m}
			}
			return nil
		}

	default:
		logger.Debug().Str("found", name).Strs("expected", modules.All()).
			Msg("format contains an unknown variable")
		return nil
	}
}

// implicitCustomModules expands the bare "custom" variable: every configured
// custom module, except those disabled in their own configuration and those
// the template already references explicitly as custom.<id> — explicit
// references take precedence and must not be emitted twice.
func implicitCustomModules(ctx *context.Context, vars map[string]struct{}) []*module.Module {
	var out []*module.Module
	for _, id := range customIDs(ctx.Config) {
		if ctx.Config.Custom[id].Disabled {
			continue
		}
		if _, explicit := vars["custom."+id]; explicit {
			continue
		}
		if m := modules.Custom(id, ctx); m != nil {
			out = append(out, m)
		}
	}
	return out
}

// customIDs returns the configured custom module ids in stable sorted order.
func customIDs(cfg *config.Config) []string {
	ids := make([]string, 0, len(cfg.Custom))
	for id := range cfg.Custom {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
