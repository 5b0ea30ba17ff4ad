package prompt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mjeffryes/starship/pkg/module"
	"github.com/mjeffryes/starship/pkg/segment"
)

func TestEvalOrderedPreservesOrder(t *testing.T) {
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	// Later names finish first, so completion order is the reverse of
	// dispatch order.
	resolve := func(name string) []*module.Module {
		delay := time.Duration('h'-name[0]) * 10 * time.Millisecond
		time.Sleep(delay)
		m := module.New(name, "")
		m.SetSegments([]segment.Segment{segment.Plain(name)})
		return []*module.Module{m}
	}

	got := evalOrdered(names, resolve)

	var order []string
	for _, m := range got {
		order = append(order, m.Name())
	}
	assert.Equal(t, names, order)
}

func TestEvalOrderedMatchesSequential(t *testing.T) {
	names := []string{"x", "y", "z"}
	resolve := func(name string) []*module.Module {
		if name == "y" {
			// Empty resolutions contribute nothing, as in sequential
			// evaluation.
			return nil
		}
		m := module.New(name, "")
		m.SetSegments([]segment.Segment{segment.Plain(name)})
		return []*module.Module{m}
	}

	var sequential []*module.Module
	for _, name := range names {
		sequential = append(sequential, resolve(name)...)
	}

	parallel := evalOrdered(names, resolve)
	assert.Equal(t, len(sequential), len(parallel))
	for i := range sequential {
		assert.Equal(t, sequential[i].Name(), parallel[i].Name())
	}
}
