package kdag

import (
	"fmt"
	"testing"

	"github.com/alecthomas/assert/v2"
)

var (
	intString    = SignatureOf[int, string]()
	stringString = SignatureOf[string, string]()
)

func newTopology(t *testing.T) *Builder {
	t.Helper()
	b := NewBuilder()
	assert.NoError(t, b.AddSource("source", "input", intString, nil))
	return b
}

func names(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}
	return out
}

func TestBuilder_Sources(t *testing.T) {
	t.Run("entry is keyed by topic", func(t *testing.T) {
		b := newTopology(t)
		assert.NoError(t, b.AddSource("other", "second", stringString, nil))

		dag := b.MustBuild()
		assert.Equal(t, []string{"input", "second"}, dag.Entries())

		n, ok := dag.Entry("second")
		assert.True(t, ok)
		assert.Equal(t, "other", n.Name)
		assert.Equal(t, KindSource, n.Kind)

		_, ok = dag.Entry("missing")
		assert.False(t, ok)
	})

	t.Run("one source per topic", func(t *testing.T) {
		b := newTopology(t)
		assert.IsError(t, b.AddSource("again", "input", intString, nil), ErrInvalidTopology)
	})

	t.Run("topic required", func(t *testing.T) {
		assert.IsError(t, NewBuilder().AddSource("source", "", intString, nil), ErrInvalidTopology)
	})

	t.Run("names", func(t *testing.T) {
		b := newTopology(t)
		assert.IsError(t, b.AddSource("source", "x", intString, nil), ErrNodeAlreadyExists)
		assert.IsError(t, b.AddSource("", "x", intString, nil), ErrInvalidNodeID)
		assert.IsError(t, b.AddSource("with space", "x", intString, nil), ErrInvalidNodeID)
	})

	t.Run("no sources", func(t *testing.T) {
		_, err := NewBuilder().Build()
		assert.IsError(t, err, ErrInvalidTopology)
	})
}

func TestBuilder_Wiring(t *testing.T) {
	t.Run("children keep wiring order", func(t *testing.T) {
		b := newTopology(t)
		for _, name := range []string{"zeta", "alpha", "mid"} {
			assert.NoError(t, b.AddProcessor(name, "source", intString, intString, nil))
		}

		n, _ := b.Node("source")
		assert.Equal(t, []string{"zeta", "alpha", "mid"}, n.ChildNames())
	})

	t.Run("unknown parent", func(t *testing.T) {
		b := newTopology(t)
		assert.IsError(t, b.AddProcessor("p", "missing", intString, intString, nil), ErrNodeNotFound)
		_, ok := b.Node("p")
		assert.False(t, ok)
	})

	t.Run("edge types must match", func(t *testing.T) {
		b := newTopology(t)
		assert.IsError(t, b.AddProcessor("p", "source", stringString, stringString, nil), ErrTypeMismatch)
		assert.NoError(t, b.AddProcessor("convert", "source", intString, stringString, nil))
		assert.NoError(t, b.AddSink("sink", "out", "convert", stringString, nil))
		assert.IsError(t, b.AddSink("bad", "out", "convert", intString, nil), ErrTypeMismatch)
	})

	t.Run("sinks are terminal", func(t *testing.T) {
		b := newTopology(t)
		assert.NoError(t, b.AddSink("sink", "out", "source", intString, nil))
		assert.IsError(t, b.AddProcessor("after", "sink", SignatureOf[struct{}, struct{}](), intString, nil), ErrInvalidTopology)
		assert.IsError(t, b.AddSink("nameless", "", "source", intString, nil), ErrInvalidTopology)
	})

	t.Run("sources cannot be children", func(t *testing.T) {
		b := newTopology(t)
		assert.NoError(t, b.AddSource("second", "other", intString, nil))
		assert.IsError(t, b.Connect("source", "second"), ErrInvalidTopology)
	})

	t.Run("connect checks both ends", func(t *testing.T) {
		b := newTopology(t)
		assert.IsError(t, b.Connect("missing", "source"), ErrNodeNotFound)
		assert.IsError(t, b.Connect("source", "missing"), ErrNodeNotFound)
	})
}

func TestBuilder_BuildOrder(t *testing.T) {
	t.Run("children before parents", func(t *testing.T) {
		b := newTopology(t)
		assert.NoError(t, b.AddProcessor("a", "source", intString, intString, nil))
		assert.NoError(t, b.AddProcessor("b", "source", intString, intString, nil))
		assert.NoError(t, b.AddProcessor("a1", "a", intString, intString, nil))
		assert.NoError(t, b.AddSink("sink", "out", "b", intString, nil))

		assert.Equal(t, []string{"a1", "a", "sink", "b", "source"}, names(b.MustBuild().BuildOrder()))
	})

	t.Run("shared child is built once", func(t *testing.T) {
		b := newTopology(t)
		assert.NoError(t, b.AddProcessor("left", "source", intString, intString, nil))
		assert.NoError(t, b.AddProcessor("right", "source", intString, intString, nil))
		assert.NoError(t, b.AddProcessor("join", "left", intString, intString, nil))
		assert.NoError(t, b.Connect("right", "join"))

		assert.Equal(t, []string{"join", "left", "right", "source"}, names(b.MustBuild().BuildOrder()))
	})

	t.Run("long chains are fine", func(t *testing.T) {
		b := newTopology(t)
		parent := "source"
		for i := range 2000 {
			name := fmt.Sprintf("p%d", i)
			assert.NoError(t, b.AddProcessor(name, parent, intString, intString, nil))
			parent = name
		}
		assert.Equal(t, 2001, len(b.MustBuild().BuildOrder()))
	})

	t.Run("cycle", func(t *testing.T) {
		b := newTopology(t)
		assert.NoError(t, b.AddProcessor("a", "source", intString, intString, nil))
		assert.NoError(t, b.AddProcessor("b", "a", intString, intString, nil))
		assert.NoError(t, b.Connect("b", "a"))

		_, err := b.Build()
		assert.IsError(t, err, ErrCycleDetected)
		assert.Contains(t, err.Error(), "source -> a -> b -> a")
		assert.Panics(t, func() { b.MustBuild() })
	})
}
