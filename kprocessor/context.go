package kprocessor

import (
	"context"
)

// ProcessorContext connects a processor to its downstream nodes.
//
// Forwarding is synchronous: Forward returns after every child, and every node
// below it, has processed the record. If a child fails, the error is reported
// by the runtime when the current Process call returns, and later forwards
// made during the same Process call are dropped.
type ProcessorContext[Kout any, Vout any] interface {
	// Forward to all child nodes, in the order they were wired.
	Forward(ctx context.Context, k Kout, v Vout)

	// ForwardTo forwards to a specific child node.
	ForwardTo(ctx context.Context, k Kout, v Vout, childName string)
}
