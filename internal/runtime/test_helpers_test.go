package runtime

import (
	"context"
	"errors"

	"github.com/birdayz/streamtap/kprocessor"
)

var errBoom = errors.New("boom")

// TestProcessor for tests - forwards every record and records what it saw.
// If err is set, Process returns it after forwarding.
type TestProcessor struct {
	ctx  kprocessor.ProcessorContext[string, string]
	seen []string
	err  error
}

func (p *TestProcessor) Init(ctx kprocessor.ProcessorContext[string, string]) error {
	p.ctx = ctx
	return nil
}

func (p *TestProcessor) Process(ctx context.Context, k string, v string) error {
	p.seen = append(p.seen, k+"="+v)
	p.ctx.Forward(ctx, k, v)
	return p.err
}

func (p *TestProcessor) Close() error {
	return nil
}

// recorder is an InputProcessor appending its name to a shared trace.
type recorder struct {
	name  string
	trace *[]string
	err   error
}

func (r *recorder) Process(ctx context.Context, k, v string) error {
	*r.trace = append(*r.trace, r.name)
	return r.err
}

// newTestNode wires a TestProcessor into a runtime node.
func newTestNode(id string) (*RuntimeProcessorNode[string, string, string, string], *TestProcessor) {
	p := &TestProcessor{}
	n := NewRuntimeProcessorNode[string, string, string, string](id, p, NewInternalProcessorContext[string, string](), nil)
	if err := n.Init(); err != nil {
		panic(err)
	}
	return n, p
}
