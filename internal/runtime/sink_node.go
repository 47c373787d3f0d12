package runtime

import (
	"context"
	"errors"
	"fmt"

	"github.com/birdayz/streamtap/kserde"
	"github.com/twmb/franz-go/pkg/kgo"
)

var (
	ErrNoKeySerializer   = errors.New("no key serializer configured")
	ErrNoValueSerializer = errors.New("no value serializer configured")
)

// RuntimeSinkNode encodes every record it receives and hands it to a
// RecordCollector under its topic.
type RuntimeSinkNode[K, V any] struct {
	id        string
	topic     string
	key       kserde.Serializer[K]
	value     kserde.Serializer[V]
	collector RecordCollector
}

func NewRuntimeSinkNode[K, V any](id, topic string, key kserde.Serializer[K], value kserde.Serializer[V], collector RecordCollector) *RuntimeSinkNode[K, V] {
	return &RuntimeSinkNode[K, V]{id: id, topic: topic, key: key, value: value, collector: collector}
}

func (n *RuntimeSinkNode[K, V]) Process(_ context.Context, k K, v V) error {
	record, err := n.encode(k, v)
	if err != nil {
		return &NodeError{Node: n.id, Err: err}
	}
	n.collector.Send(record)
	return nil
}

func (n *RuntimeSinkNode[K, V]) encode(k K, v V) (*kgo.Record, error) {
	switch {
	case n.key == nil:
		return nil, ErrNoKeySerializer
	case n.value == nil:
		return nil, ErrNoValueSerializer
	}

	key, err := n.key(k)
	if err != nil {
		return nil, fmt.Errorf("%w key: %w", ErrSerialize, err)
	}
	value, err := n.value(v)
	if err != nil {
		return nil, fmt.Errorf("%w value: %w", ErrSerialize, err)
	}
	return &kgo.Record{Topic: n.topic, Key: key, Value: value}, nil
}

func (n *RuntimeSinkNode[K, V]) Init() error {
	if n.collector == nil {
		return &NodeError{Node: n.id, Err: errors.New("no record collector")}
	}
	return nil
}

func (n *RuntimeSinkNode[K, V]) Close() error {
	return nil
}

var (
	_ Node                     = (*RuntimeSinkNode[any, any])(nil)
	_ InputProcessor[any, any] = (*RuntimeSinkNode[any, any])(nil)
)
