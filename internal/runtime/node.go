package runtime

import (
	"context"

	"github.com/twmb/franz-go/pkg/kgo"
)

// Node does not know about any specific types of nodes, because it would
// otherwise need to have an unbounded number of generic types. Generic types
// are hidden inside the actual implementations using the Node interfaces.
type Node interface {
	Init() error
	Close() error
}

// InputProcessor is a partial interface covering only the generic input K/V,
// without requiring the caller to know the generic types of the output.
type InputProcessor[K any, V any] interface {
	Process(context.Context, K, V) error
}

// RawRecordProcessor processes raw kgo.Record objects.
// This is used internally for source nodes.
type RawRecordProcessor interface {
	Process(ctx context.Context, m *kgo.Record) error
}

// AnyInputProcessor accepts an untyped key and value and checks them against
// the generic types of the node before processing. Source nodes implement it
// so records can be injected without knowing K and V at the call site.
type AnyInputProcessor interface {
	ProcessAny(ctx context.Context, k, v any) error
}

// RecordCollector receives the records written by sink nodes.
// This interface abstracts the execution RecordCollector to avoid import cycles.
type RecordCollector interface {
	Send(record *kgo.Record)
}
