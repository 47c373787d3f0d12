package kprocessor

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// Call describes one record entering a processor node. Key and Value are the
// record as the node receives it. Changing them has no effect on what the
// node processes.
type Call struct {
	Node  string
	Key   any
	Value any
}

// ProcessorHandler runs the node, including everything it forwards to.
type ProcessorHandler func(ctx context.Context, call Call) error

// ProcessorInterceptor wraps the processing of a record by a node. It must
// call next exactly once to let the record through, and should return the
// error next returned.
type ProcessorInterceptor func(ctx context.Context, call Call, next ProcessorHandler) error

// InterceptorChain applies interceptors around every processor node of a
// topology. The first interceptor is the outermost.
type InterceptorChain struct {
	interceptors []ProcessorInterceptor
}

func ChainInterceptors(interceptors ...ProcessorInterceptor) *InterceptorChain {
	return &InterceptorChain{interceptors: interceptors}
}

// Len returns the number of interceptors. A nil chain is empty.
func (c *InterceptorChain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.interceptors)
}

// Execute runs call through the chain and then through final.
func (c *InterceptorChain) Execute(ctx context.Context, call Call, final ProcessorHandler) error {
	if c.Len() == 0 {
		return final(ctx, call)
	}

	handler := final
	for i := len(c.interceptors) - 1; i >= 0; i-- {
		interceptor, next := c.interceptors[i], handler
		handler = func(ctx context.Context, call Call) error {
			return interceptor(ctx, call, next)
		}
	}
	return handler(ctx, call)
}

// LoggingInterceptor logs every record a node receives at debug level and
// failures at error level.
func LoggingInterceptor(logger *slog.Logger) ProcessorInterceptor {
	return func(ctx context.Context, call Call, next ProcessorHandler) error {
		logger.DebugContext(ctx, "Processing record", "node", call.Node, "key", call.Key, "value", call.Value)

		err := next(ctx, call)
		if err != nil {
			logger.ErrorContext(ctx, "Processing failed", "node", call.Node, "error", err)
		}
		return err
	}
}

// MetricsInterceptor counts processed records and accumulates the time spent
// in nodes. Time spent in a node includes its children.
func MetricsInterceptor(records *atomic.Int64, nanos *atomic.Int64) ProcessorInterceptor {
	return func(ctx context.Context, call Call, next ProcessorHandler) error {
		start := time.Now()
		err := next(ctx, call)
		records.Add(1)
		nanos.Add(int64(time.Since(start)))
		return err
	}
}
