package prompt

import (
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjeffryes/starship/pkg/module"
	"github.com/mjeffryes/starship/pkg/segment"
)

func mkModule(name, desc, value string, d time.Duration) *module.Module {
	m := module.New(name, desc)
	if value != "" {
		m.SetSegments([]segment.Segment{segment.Plain(value)})
	}
	m.Duration = d
	return m
}

func TestTimingsTableSortAndFilter(t *testing.T) {
	mods := []*module.Module{
		mkModule("quiet", "", "", 0),                       // no output, <1ms: filtered out
		mkModule("alpha", "", "A", 5*time.Millisecond),     //
		mkModule("be", "", "B", 2*time.Millisecond),        //
		mkModule("ce", "", "D", 0),                         // 0ms but nonempty: kept, sorts last
		mkModule("slow_empty", "", "", 3*time.Millisecond), // empty but slow: kept
	}

	out := timingsTable(mods, termenv.Ascii)
	assert.Contains(t, out, "Here are the timings of modules in your prompt (>=1ms or output):")
	assert.NotContains(t, out, "quiet")

	lines := strings.Split(out, "\n")
	// lines[0] is empty (leading newline), lines[1] the header.
	require.Len(t, lines, 7)
	assert.Equal(t, ` alpha       -   5ms  -   "A"`, lines[2])
	assert.Equal(t, ` slow_empty  -   3ms  -   ""`, lines[3])
	assert.Equal(t, ` be          -   2ms  -   "B"`, lines[4])
	assert.Equal(t, ` ce          -  <1ms  -   "D"`, lines[5])
	assert.Equal(t, "", lines[6])
}

func TestTimingsTableTiesKeepOriginalOrder(t *testing.T) {
	mods := []*module.Module{
		mkModule("first", "", "1", 2*time.Millisecond),
		mkModule("second", "", "2", 2*time.Millisecond),
	}
	out := timingsTable(mods, termenv.Ascii)
	assert.Less(t, strings.Index(out, "first"), strings.Index(out, "second"))
}

func TestTimingsTableFlattensNewlines(t *testing.T) {
	mods := []*module.Module{
		mkModule("multi", "", "one\ntwo", time.Millisecond),
	}
	out := timingsTable(mods, termenv.Ascii)
	assert.Contains(t, out, `"one\ntwo"`)
	assert.NotContains(t, out, "one\ntwo")
}
