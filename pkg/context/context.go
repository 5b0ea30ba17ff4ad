// Package context carries the read-only state shared by every module
// computation in one prompt render: configuration, shell dialect, working
// directory, terminal capabilities, and what the shell hook reported about
// the last command. Nothing here is mutated after New returns, so a Context
// is safe to share across concurrently running modules.
package context

import (
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/mjeffryes/starship/pkg/config"
	"github.com/mjeffryes/starship/pkg/shell"
	"github.com/mjeffryes/starship/pkg/style"
)

// Context is the execution context for one prompt render.
type Context struct {
	Config *config.Config
	Shell  shell.Shell
	// Dir is the directory the prompt describes.
	Dir string
	// Status is the exit code of the last command, as reported by the hook.
	Status int
	// CmdDuration is how long the last command ran, as reported by the hook.
	CmdDuration time.Duration
	// Width is the terminal column count; 0 when unknown.
	Width int
	// Profile is the color capability of the attached terminal.
	Profile termenv.Profile

	env func(string) string
}

// Options configures New. Zero values mean "detect from the environment".
type Options struct {
	// Config, when set, bypasses file loading entirely; used by tests.
	Config        *config.Config
	ConfigPath    string
	Path          string
	Shell         string
	Status        int
	CmdDurationMs int
	Width         int
	// Env overrides environment lookup; used by tests.
	Env func(string) string
	// Profile overrides terminal color detection; used by tests.
	Profile *termenv.Profile
}

// New builds a Context from flags and the environment.
func New(opts Options) *Context {
	env := opts.Env
	if env == nil {
		env = os.Getenv
	}

	cfg := opts.Config
	if cfg == nil {
		cfgPath := opts.ConfigPath
		if cfgPath == "" {
			cfgPath = config.Path()
		}
		cfg = config.Load(cfgPath)
	}
	style.SetPalette(cfg.Palette)

	dir := opts.Path
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		}
	}

	shellName := opts.Shell
	if shellName == "" {
		shellName = env("STARSHIP_SHELL")
	}

	// The shell hook captures stdout through a pipe, so try stderr too when
	// looking for a real terminal to measure.
	width := opts.Width
	if width == 0 {
		for _, f := range []*os.File{os.Stdout, os.Stderr} {
			fd := f.Fd()
			if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
				continue
			}
			if w, _, err := term.GetSize(int(fd)); err == nil && w > 0 {
				width = w
				break
			}
		}
	}

	var profile termenv.Profile
	if opts.Profile != nil {
		profile = *opts.Profile
	} else {
		profile = termenv.ColorProfile()
	}

	return &Context{
		Config:      cfg,
		Shell:       shell.Parse(shellName),
		Dir:         dir,
		Status:      opts.Status,
		CmdDuration: time.Duration(opts.CmdDurationMs) * time.Millisecond,
		Width:       width,
		Profile:     profile,
		env:         env,
	}
}

// Env looks up an environment variable through the context, so tests can
// substitute a fixed environment.
func (c *Context) Env(key string) string {
	return c.env(key)
}

// IsDumbTerminal reports whether the attached terminal cannot render control
// sequences. TERM=dumb is the signal; isatty alone would misfire because
// shells capture prompt output through a pipe.
func (c *Context) IsDumbTerminal() bool {
	return c.Env("TERM") == "dumb"
}
