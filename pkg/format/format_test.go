package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjeffryes/starship/pkg/segment"
)

func TestParseVariables(t *testing.T) {
	f, err := Parse(`$directory text ${git_branch}$custom.foo \$escaped`)
	require.NoError(t, err)

	vars := f.Variables()
	assert.Contains(t, vars, "directory")
	assert.Contains(t, vars, "git_branch")
	assert.Contains(t, vars, "custom.foo")
	assert.Len(t, vars, 3)

	assert.Equal(t, []string{"directory", "git_branch", "custom.foo"}, f.VariableNames())
}

func TestParseUnterminatedBrace(t *testing.T) {
	_, err := Parse("before ${broken")
	assert.Error(t, err)
}

func TestParseLiteralDollar(t *testing.T) {
	f, err := Parse("cost: $ 5")
	require.NoError(t, err)
	assert.Empty(t, f.Variables())

	out := f.Format(func(string) []segment.Segment { return nil })
	assert.Equal(t, "cost: $ 5", segment.Join(out))
}

func TestFormatSubstitution(t *testing.T) {
	f, err := Parse("a$x b$y c")
	require.NoError(t, err)

	out := f.Format(func(name string) []segment.Segment {
		switch name {
		case "x":
			return []segment.Segment{segment.Plain("X1"), segment.Plain("X2")}
		case "y":
			return nil
		default:
			t.Fatalf("unexpected variable %q", name)
			return nil
		}
	})

	assert.Equal(t, "aX1X2 b c", segment.Join(out))
}

func TestFormatDuplicateVariable(t *testing.T) {
	f, err := Parse("$x$x")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, f.VariableNames())

	calls := 0
	f.Format(func(string) []segment.Segment {
		calls++
		return nil
	})
	// Every occurrence is substituted, even when the name repeats.
	assert.Equal(t, 2, calls)
}

func TestEscapes(t *testing.T) {
	f, err := Parse(`\$all \\ end\`)
	require.NoError(t, err)
	assert.Empty(t, f.Variables())
	out := f.Format(func(string) []segment.Segment { return nil })
	assert.Equal(t, `$all \ end\`, segment.Join(out))
}
