package prompt

import (
	"github.com/mjeffryes/starship/pkg/context"
	"github.com/mjeffryes/starship/pkg/format"
	"github.com/mjeffryes/starship/pkg/logging"
	"github.com/mjeffryes/starship/pkg/module"
)

// ComputeModules resolves every variable in the configured template, in
// template order, and returns the flattened module list. Only the wildcard
// expansion inside Resolve is parallelized; distinct template variables are
// evaluated one after another. A template that fails to parse yields an
// empty list with a logged error.
func ComputeModules(ctx *context.Context) []*module.Module {
	f, err := format.Parse(ctx.Config.Format)
	if err != nil {
		logger := logging.GetLogger("prompt")
		logger.Error().Err(err).Msg("error parsing format")
		return nil
	}

	vars := f.Variables()
	var out []*module.Module
	for _, name := range f.VariableNames() {
		out = append(out, Resolve(name, ctx, vars)...)
	}
	return out
}
