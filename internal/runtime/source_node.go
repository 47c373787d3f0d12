package runtime

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/birdayz/streamtap/kdag"
	"github.com/birdayz/streamtap/kserde"
	"github.com/twmb/franz-go/pkg/kgo"
)

var (
	ErrNoKeyDeserializer   = errors.New("no key deserializer configured")
	ErrNoValueDeserializer = errors.New("no value deserializer configured")
)

// RuntimeSourceNode is the entry of a topology. Records come in either raw,
// through Process, or already decoded, through ProcessTyped and ProcessAny.
type RuntimeSourceNode[K, V any] struct {
	id       string
	topic    string
	key      kserde.Deserializer[K]
	value    kserde.Deserializer[V]
	children *InternalProcessorContext[K, V]
}

func NewRuntimeSourceNode[K, V any](id, topic string, key kserde.Deserializer[K], value kserde.Deserializer[V]) *RuntimeSourceNode[K, V] {
	return &RuntimeSourceNode[K, V]{
		id:       id,
		topic:    topic,
		key:      key,
		value:    value,
		children: NewInternalProcessorContext[K, V](),
	}
}

func (n *RuntimeSourceNode[K, V]) Topic() string {
	return n.topic
}

func (n *RuntimeSourceNode[K, V]) AddDownstream(childID string, child InputProcessor[K, V]) {
	n.children.AddOutput(childID, child)
}

// Downstream returns the children in dispatch order.
func (n *RuntimeSourceNode[K, V]) Downstream() []string {
	return n.children.Outputs()
}

// Process decodes record with the deserializers of the source.
func (n *RuntimeSourceNode[K, V]) Process(ctx context.Context, record *kgo.Record) error {
	k, v, err := n.decode(record)
	if err != nil {
		return &NodeError{Node: n.id, Err: err}
	}
	return n.ProcessTyped(ctx, k, v)
}

func (n *RuntimeSourceNode[K, V]) decode(record *kgo.Record) (k K, v V, err error) {
	switch {
	case n.key == nil:
		return k, v, ErrNoKeyDeserializer
	case n.value == nil:
		return k, v, ErrNoValueDeserializer
	}

	if k, err = n.key(record.Key); err != nil {
		return k, v, fmt.Errorf("%w key: %w", ErrDeserialize, err)
	}
	if v, err = n.value(record.Value); err != nil {
		return k, v, fmt.Errorf("%w value: %w", ErrDeserialize, err)
	}
	return k, v, nil
}

// ProcessTyped forwards a decoded record to every child.
func (n *RuntimeSourceNode[K, V]) ProcessTyped(ctx context.Context, k K, v V) error {
	n.children.clearErrors()
	n.children.Forward(ctx, k, v)
	if err := n.children.drainErrors(); err != nil {
		return attributed(n.id, err)
	}
	return nil
}

// ProcessAny is ProcessTyped for callers that do not know K and V. Values of
// another type fail with kdag.ErrTypeMismatch.
func (n *RuntimeSourceNode[K, V]) ProcessAny(ctx context.Context, k, v any) error {
	key, err := coerce[K](k)
	if err != nil {
		return &NodeError{Node: n.id, Err: fmt.Errorf("key: %w", err)}
	}
	value, err := coerce[V](v)
	if err != nil {
		return &NodeError{Node: n.id, Err: fmt.Errorf("value: %w", err)}
	}
	return n.ProcessTyped(ctx, key, value)
}

func (n *RuntimeSourceNode[K, V]) Init() error {
	return nil
}

func (n *RuntimeSourceNode[K, V]) Close() error {
	return nil
}

// coerce converts v to T. An untyped nil is accepted for types that have a
// nil value.
func coerce[T any](v any) (T, error) {
	if t, ok := v.(T); ok {
		return t, nil
	}

	var zero T
	want := reflect.TypeFor[T]()
	if v == nil {
		switch want.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface, reflect.Chan, reflect.Func:
			return zero, nil
		}
		return zero, fmt.Errorf("%w: nil is not assignable to %s", kdag.ErrTypeMismatch, want)
	}
	return zero, fmt.Errorf("%w: %T is not assignable to %s", kdag.ErrTypeMismatch, v, want)
}

var (
	_ Node               = (*RuntimeSourceNode[any, any])(nil)
	_ RawRecordProcessor = (*RuntimeSourceNode[any, any])(nil)
	_ AnyInputProcessor  = (*RuntimeSourceNode[any, any])(nil)
)
