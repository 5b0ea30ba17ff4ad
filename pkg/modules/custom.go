package modules

import (
	"os/exec"
	"strings"
	"time"

	"github.com/mjeffryes/starship/pkg/context"
	"github.com/mjeffryes/starship/pkg/logging"
	"github.com/mjeffryes/starship/pkg/module"
	"github.com/mjeffryes/starship/pkg/segment"
	"github.com/mjeffryes/starship/pkg/style"
)

// Custom computes a user-configured command module. Returns nil when no
// configuration exists for the id, when the `when` guard fails, or when the
// command itself fails: a broken custom module must never break the prompt.
func Custom(id string, ctx *context.Context) *module.Module {
	logger := logging.GetLogger("modules.custom")

	cfg, ok := ctx.Config.Custom[id]
	if !ok {
		return nil
	}

	sh := cfg.Shell
	if sh == "" {
		sh = "sh"
	}

	start := time.Now()

	if cfg.When != "" {
		if err := exec.Command(sh, "-c", cfg.When).Run(); err != nil {
			logger.Debug().Str("module", id).Str("when", cfg.When).Msg("when condition not met")
			return nil
		}
	}

	out, err := exec.Command(sh, "-c", cfg.Command).Output()
	if err != nil {
		logger.Debug().Err(err).Str("module", id).Str("command", cfg.Command).Msg("custom command failed")
		return nil
	}

	description := cfg.Description
	if description == "" {
		description = "A custom module (custom." + id + ")"
	}
	m := module.New("custom."+id, description)
	m.Duration = time.Since(start)

	value := strings.TrimRight(string(out), "\n")
	if value == "" {
		return m
	}

	styleStr := cfg.Style
	if styleStr == "" {
		styleStr = "bold green"
	}
	segs := []segment.Segment{}
	if cfg.Symbol != "" {
		segs = append(segs, segment.Plain(cfg.Symbol))
	}
	segs = append(segs,
		segment.Styled(value, style.Parse(styleStr)),
		segment.Plain(" "),
	)
	m.SetSegments(segs)
	return m
}
