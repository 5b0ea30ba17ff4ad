package modules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjeffryes/starship/pkg/context"
	"github.com/mjeffryes/starship/pkg/testutil"
)

func TestRegistryCoversPromptOrder(t *testing.T) {
	for _, name := range PromptOrder {
		assert.True(t, Has(name), "prompt order references unknown module %q", name)
	}
	assert.Equal(t, len(PromptOrder), len(All()))
}

func TestHandleUnknown(t *testing.T) {
	ctx := testutil.Context(t, "", context.Options{})
	assert.Nil(t, Handle("nope", ctx))
}

func TestHandleAttachesDuration(t *testing.T) {
	ctx := testutil.Context(t, "", context.Options{Status: 0})
	m := Handle("character", ctx)
	require.NotNil(t, m)
	assert.Equal(t, "character", m.Name())
	assert.False(t, m.IsEmpty())
	assert.GreaterOrEqual(t, m.Duration.Nanoseconds(), int64(0))
}

func TestIsDisabled(t *testing.T) {
	ctx := testutil.Context(t, `
[directory]
disabled = true

[time]
disabled = false
`, context.Options{})

	assert.True(t, IsDisabled(ctx, "directory"))
	// time is disabled by default but the config enables it here.
	assert.False(t, IsDisabled(ctx, "time"))
	// character has no config; its default applies.
	assert.False(t, IsDisabled(ctx, "character"))
	// unknown identifiers count as disabled.
	assert.True(t, IsDisabled(ctx, "nope"))

	plain := testutil.Context(t, "", context.Options{})
	assert.True(t, IsDisabled(plain, "time"))
}

func TestCharacter(t *testing.T) {
	ok := testutil.Context(t, "", context.Options{Status: 0})
	assert.Equal(t, "❯ ", Handle("character", ok).PlainString())

	failed := testutil.Context(t, "", context.Options{Status: 1})
	assert.Equal(t, "❯ ", Handle("character", failed).PlainString())

	custom := testutil.Context(t, `
[character]
success_symbol = "->"
error_symbol = "x"
`, context.Options{Status: 127})
	assert.Equal(t, "x ", Handle("character", custom).PlainString())
}

func TestDirectoryTruncation(t *testing.T) {
	env := testutil.Env(map[string]string{"HOME": "/home/ada"})

	tests := []struct {
		name string
		dir  string
		toml string
		want string
	}{
		{"home contraction", "/home/ada", "", "~ "},
		{"under home", "/home/ada/src", "", "~/src "},
		{"deep path truncates", "/home/ada/a/b/c/d", "", "b/c/d "},
		{"custom truncation", "/home/ada/a/b/c/d", "[directory]\ntruncation_length = 2\n", "c/d "},
		{"outside home", "/etc/nginx", "", "/etc/nginx "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testutil.Context(t, tt.toml, context.Options{Path: tt.dir, Env: env})
			assert.Equal(t, tt.want, Handle("directory", ctx).PlainString())
		})
	}
}

func TestUsername(t *testing.T) {
	t.Run("hidden for plain local user", func(t *testing.T) {
		ctx := testutil.Context(t, "", context.Options{Env: testutil.Env(map[string]string{"USER": "ada"})})
		assert.True(t, Handle("username", ctx).IsEmpty())
	})

	t.Run("shown over ssh", func(t *testing.T) {
		ctx := testutil.Context(t, "", context.Options{Env: testutil.Env(map[string]string{
			"USER":           "ada",
			"SSH_CONNECTION": "10.0.0.2 50000 10.0.0.1 22",
		})})
		assert.Equal(t, "ada in ", Handle("username", ctx).PlainString())
	})

	t.Run("shown for root", func(t *testing.T) {
		ctx := testutil.Context(t, "", context.Options{Env: testutil.Env(map[string]string{"USER": "root"})})
		assert.Equal(t, "root in ", Handle("username", ctx).PlainString())
	})

	t.Run("show_always", func(t *testing.T) {
		ctx := testutil.Context(t, "[username]\nshow_always = true\n",
			context.Options{Env: testutil.Env(map[string]string{"USER": "ada"})})
		assert.Equal(t, "ada in ", Handle("username", ctx).PlainString())
	})
}

func TestHostnameSSHOnly(t *testing.T) {
	ctx := testutil.Context(t, "", context.Options{})
	assert.True(t, Handle("hostname", ctx).IsEmpty())
}

func TestGitBranch(t *testing.T) {
	t.Run("no repository", func(t *testing.T) {
		ctx := testutil.Context(t, "", context.Options{})
		assert.True(t, Handle("git_branch", ctx).IsEmpty())
	})

	t.Run("branch from HEAD", func(t *testing.T) {
		repo := t.TempDir()
		gitDir := filepath.Join(repo, ".git")
		require.NoError(t, os.MkdirAll(gitDir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte("ref: refs/heads/main\n"), 0o644))

		nested := filepath.Join(repo, "sub", "dir")
		require.NoError(t, os.MkdirAll(nested, 0o755))

		ctx := testutil.Context(t, "", context.Options{Path: nested})
		assert.Equal(t, "on  main ", Handle("git_branch", ctx).PlainString())
	})

	t.Run("detached head", func(t *testing.T) {
		repo := t.TempDir()
		gitDir := filepath.Join(repo, ".git")
		require.NoError(t, os.MkdirAll(gitDir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte("a1b2c3d4e5f60718293a4b5c6d7e8f9012345678\n"), 0o644))

		ctx := testutil.Context(t, "", context.Options{Path: repo})
		assert.Equal(t, "on  a1b2c3d ", Handle("git_branch", ctx).PlainString())
	})
}

func TestCmdDuration(t *testing.T) {
	quick := testutil.Context(t, "", context.Options{CmdDurationMs: 300})
	assert.True(t, Handle("cmd_duration", quick).IsEmpty())

	slow := testutil.Context(t, "", context.Options{CmdDurationMs: 3500})
	assert.Equal(t, "took 3.5s ", Handle("cmd_duration", slow).PlainString())

	tuned := testutil.Context(t, "[cmd_duration]\nmin_time = 100\n", context.Options{CmdDurationMs: 300})
	assert.Equal(t, "took 300ms ", Handle("cmd_duration", tuned).PlainString())
}

func TestHumanizeDuration(t *testing.T) {
	assert.Equal(t, "450ms", humanizeDuration(450*1e6))
	assert.Equal(t, "2.0s", humanizeDuration(2*1e9))
	assert.Equal(t, "1m30s", humanizeDuration(90*1e9))
}

func TestLineBreak(t *testing.T) {
	ctx := testutil.Context(t, "", context.Options{})
	assert.Equal(t, "\n", Handle("line_break", ctx).PlainString())
}
