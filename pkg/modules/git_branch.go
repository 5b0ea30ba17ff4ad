package modules

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mjeffryes/starship/pkg/context"
	"github.com/mjeffryes/starship/pkg/segment"
)

// gitBranch renders the checked-out branch by reading .git/HEAD directly,
// walking up from the working directory. No git binary is invoked: HEAD
// parsing is enough for the branch name and keeps the module fast.
func gitBranch(ctx *context.Context) []segment.Segment {
	gitDir := findGitDir(ctx.Dir)
	if gitDir == "" {
		return nil
	}

	branch := readHead(gitDir)
	if branch == "" {
		return nil
	}

	symbol := moduleOptions(ctx, "git_branch").OptionString("symbol", " ")
	return []segment.Segment{
		segment.Plain("on "),
		segment.Styled(symbol+branch, moduleStyle(ctx, "git_branch", "bold purple")),
		segment.Plain(" "),
	}
}

func findGitDir(dir string) string {
	for dir != "" {
		candidate := filepath.Join(dir, ".git")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
	return ""
}

// readHead returns the branch name from HEAD, or a short commit id when the
// head is detached.
func readHead(gitDir string) string {
	data, err := os.ReadFile(filepath.Join(gitDir, "HEAD"))
	if err != nil {
		return ""
	}
	head := strings.TrimSpace(string(data))
	if ref, ok := strings.CutPrefix(head, "ref: refs/heads/"); ok {
		return ref
	}
	if len(head) >= 7 {
		return head[:7]
	}
	return ""
}
