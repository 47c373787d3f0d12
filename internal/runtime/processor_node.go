package runtime

import (
	"context"

	"github.com/birdayz/streamtap/kprocessor"
	"go.uber.org/multierr"
)

// RuntimeProcessorNode runs a user processor for one node of the topology.
type RuntimeProcessorNode[Kin, Vin, Kout, Vout any] struct {
	id            string
	userProcessor kprocessor.Processor[Kin, Vin, Kout, Vout]
	context       *InternalProcessorContext[Kout, Vout]
	interceptors  *kprocessor.InterceptorChain
}

// NewRuntimeProcessorNode creates a runtime processor node. interceptors may
// be nil.
func NewRuntimeProcessorNode[Kin, Vin, Kout, Vout any](
	id string,
	processor kprocessor.Processor[Kin, Vin, Kout, Vout],
	context *InternalProcessorContext[Kout, Vout],
	interceptors *kprocessor.InterceptorChain,
) *RuntimeProcessorNode[Kin, Vin, Kout, Vout] {
	return &RuntimeProcessorNode[Kin, Vin, Kout, Vout]{
		id:            id,
		userProcessor: processor,
		context:       context,
		interceptors:  interceptors,
	}
}

// Process runs the record through the interceptors and the user processor.
// An error of the user processor is attributed to this node, an error of a
// child keeps the attribution of the node it started in.
func (n *RuntimeProcessorNode[Kin, Vin, Kout, Vout]) Process(ctx context.Context, k Kin, v Vin) error {
	if n.interceptors.Len() == 0 {
		return n.process(ctx, k, v)
	}
	call := kprocessor.Call{Node: n.id, Key: k, Value: v}
	return n.interceptors.Execute(ctx, call, func(ctx context.Context, _ kprocessor.Call) error {
		return n.process(ctx, k, v)
	})
}

func (n *RuntimeProcessorNode[Kin, Vin, Kout, Vout]) process(ctx context.Context, k Kin, v Vin) error {
	n.context.clearErrors()

	perr := n.userProcessor.Process(ctx, k, v)
	ferr := n.context.drainErrors()

	switch {
	case perr != nil && ferr != nil:
		return &NodeError{Node: n.id, Err: multierr.Combine(perr, ferr)}
	case perr != nil:
		return &NodeError{Node: n.id, Err: perr}
	case ferr != nil:
		return attributed(n.id, ferr)
	}
	return nil
}

func (n *RuntimeProcessorNode[Kin, Vin, Kout, Vout]) Init() error {
	return n.userProcessor.Init(n.context)
}

func (n *RuntimeProcessorNode[Kin, Vin, Kout, Vout]) Close() error {
	return n.userProcessor.Close()
}

// AddOutput wires a child. Children receive records in the order they were
// added.
func (n *RuntimeProcessorNode[Kin, Vin, Kout, Vout]) AddOutput(childID string, child InputProcessor[Kout, Vout]) {
	n.context.AddOutput(childID, child)
}

var _ Node = (*RuntimeProcessorNode[any, any, any, any])(nil)
var _ InputProcessor[any, any] = (*RuntimeProcessorNode[any, any, any, any])(nil)
