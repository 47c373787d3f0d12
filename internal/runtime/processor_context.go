package runtime

import (
	"context"
	"fmt"
)

// output is a named downstream node. Outputs are kept in a slice so records
// are forwarded in the order the children were wired.
type output[K, V any] struct {
	name string
	proc InputProcessor[K, V]
}

// NewInternalProcessorContext creates a new internal processor context
func NewInternalProcessorContext[Kout any, Vout any]() *InternalProcessorContext[Kout, Vout] {
	return &InternalProcessorContext[Kout, Vout]{}
}

// InternalProcessorContext provides processor context for record processing.
//
// Forwarding is depth-first: a child, and everything below it, has finished
// before the next child sees the record. The first failing child stops the
// cascade. Its error, attributed to the node it started in, is held until the
// owning node drains it. Any later Forward or ForwardTo call in the same
// Process call is dropped.
//
// THREAD SAFETY: This type is NOT thread-safe and does not use mutexes.
// A topology is driven by a single goroutine, and each processor instance is
// bound to exactly one runtime node, so there is no concurrent access.
type InternalProcessorContext[Kout any, Vout any] struct {
	outputs []output[Kout, Vout]
	err     error
}

// AddOutput appends a downstream processor. Children are forwarded to in the
// order they were added.
func (c *InternalProcessorContext[Kout, Vout]) AddOutput(childName string, child InputProcessor[Kout, Vout]) {
	c.outputs = append(c.outputs, output[Kout, Vout]{name: childName, proc: child})
}

// Outputs returns the names of the downstream processors in forwarding order.
func (c *InternalProcessorContext[Kout, Vout]) Outputs() []string {
	names := make([]string, len(c.outputs))
	for i, o := range c.outputs {
		names[i] = o.name
	}
	return names
}

func (c *InternalProcessorContext[Kout, Vout]) Forward(ctx context.Context, k Kout, v Vout) {
	for _, o := range c.outputs {
		if !c.dispatch(ctx, o, k, v) {
			return
		}
	}
}

func (c *InternalProcessorContext[Kout, Vout]) ForwardTo(ctx context.Context, k Kout, v Vout, childName string) {
	if c.err != nil {
		return
	}
	for _, o := range c.outputs {
		if o.name == childName {
			c.dispatch(ctx, o, k, v)
			return
		}
	}
	c.err = fmt.Errorf("child processor %q not found", childName)
}

// dispatch hands the record to one child. It reports false once the cascade
// has been aborted.
func (c *InternalProcessorContext[Kout, Vout]) dispatch(ctx context.Context, o output[Kout, Vout], k Kout, v Vout) bool {
	if c.err != nil {
		return false
	}
	if err := ctx.Err(); err != nil {
		c.err = &NodeError{Node: o.name, Err: err}
		return false
	}
	if err := o.proc.Process(ctx, k, v); err != nil {
		c.err = attributed(o.name, err)
		return false
	}
	return true
}

// drainErrors returns the error that aborted forwarding, if any, and resets
// the context for the next record.
func (c *InternalProcessorContext[Kout, Vout]) drainErrors() error {
	err := c.err
	c.err = nil
	return err
}

// clearErrors clears a leftover error (called before processing each record)
func (c *InternalProcessorContext[Kout, Vout]) clearErrors() {
	c.err = nil
}
