// Package testutil provides helpers for building hermetic render contexts in
// tests: a map-backed environment and a context constructed from a TOML
// config literal, pinned to the Ascii color profile so assertions compare
// plain text.
package testutil

import (
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/mjeffryes/starship/pkg/config"
	"github.com/mjeffryes/starship/pkg/context"
)

// Env returns an environment lookup backed by the given map; absent keys
// resolve to "".
func Env(vars map[string]string) func(string) string {
	return func(key string) string {
		return vars[key]
	}
}

// Context builds a render context from a TOML config literal. Fields set in
// opts win; everything else gets a hermetic default (empty environment,
// Ascii profile, unknown width).
func Context(t *testing.T, cfgTOML string, opts context.Options) *context.Context {
	t.Helper()

	if opts.Config == nil {
		cfg, err := config.Parse([]byte(cfgTOML))
		require.NoError(t, err)
		opts.Config = cfg
	}
	if opts.Env == nil {
		opts.Env = Env(nil)
	}
	if opts.Profile == nil {
		ascii := termenv.Ascii
		opts.Profile = &ascii
	}
	if opts.Path == "" {
		opts.Path = t.TempDir()
	}
	return context.New(opts)
}
