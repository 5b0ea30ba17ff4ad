package prompt

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/mjeffryes/starship/pkg/module"
)

// evalOrdered resolves the named modules concurrently but emits their
// results strictly in the order of names, identical to resolving them one
// after another. Results land in an index-keyed slice, so completion order
// cannot leak into output order; concurrency here is purely a latency
// optimization. Once dispatched, a resolution runs to completion: there is
// no timeout or cancellation at this level.
func evalOrdered(names []string, resolve func(name string) []*module.Module) []*module.Module {
	results := make([][]*module.Module, len(names))

	var group errgroup.Group
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range names {
		group.Go(func() error {
			results[i] = resolve(name)
			return nil
		})
	}
	// Resolutions never return errors; Wait only rejoins the workers.
	_ = group.Wait()

	var out []*module.Module
	for _, mods := range results {
		out = append(out, mods...)
	}
	return out
}
