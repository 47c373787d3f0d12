package execution

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/multierr"
)

var ErrUnknownTopic = errors.New("unknown topic")

// TaskConfig holds configuration for creating a Task.
type TaskConfig struct {
	TaskID    string
	Sources   map[string]BuiltSource
	Nodes     []BuiltNode
	Collector *RecordCollector
}

// Task owns the runtime nodes built from one DAG and drives records through
// them. A Task is not safe for concurrent use.
type Task struct {
	taskID string

	rootNodes map[string]BuiltSource // Key = topic
	topics    []string

	// Reverse topological order, children first
	nodes []BuiltNode

	// Number of nodes in nodes that were initialized
	initialized int
	closed      bool

	collector *RecordCollector
}

// NewTaskWithConfig creates a new Task from a TaskConfig.
func NewTaskWithConfig(cfg TaskConfig) *Task {
	topics := make([]string, 0, len(cfg.Sources))
	for topic := range cfg.Sources {
		topics = append(topics, topic)
	}
	slices.Sort(topics)

	collector := cfg.Collector
	if collector == nil {
		collector = NewRecordCollector()
	}

	return &Task{
		taskID:    cfg.TaskID,
		rootNodes: cfg.Sources,
		topics:    topics,
		nodes:     cfg.Nodes,
		collector: collector,
	}
}

// ID returns the task ID.
func (t *Task) ID() string {
	return t.taskID
}

// Topics returns the sorted source topics of the task.
func (t *Task) Topics() []string {
	return slices.Clone(t.topics)
}

// HasTopic reports whether a source reads from topic.
func (t *Task) HasTopic(topic string) bool {
	_, ok := t.rootNodes[topic]
	return ok
}

// Collector returns the collector receiving sink output.
func (t *Task) Collector() *RecordCollector {
	return t.collector
}

// Process injects one record at the source of topic. Every node reachable from
// the source has run when Process returns.
func (t *Task) Process(ctx context.Context, topic string, key, value any) error {
	root, ok := t.rootNodes[topic]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTopic, topic)
	}
	if err := ctx.Err(); err != nil {
		return NewProcessingError(err, topic)
	}
	if err := root.Node.ProcessAny(ctx, key, value); err != nil {
		return NewProcessingError(err, topic)
	}
	return nil
}

// PipeRecord decodes a raw record with the deserializers of the source of
// record.Topic and processes it.
func (t *Task) PipeRecord(ctx context.Context, record *kgo.Record) error {
	root, ok := t.rootNodes[record.Topic]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTopic, record.Topic)
	}
	if err := ctx.Err(); err != nil {
		return NewProcessingError(err, record.Topic)
	}
	if err := root.Node.Process(ctx, record); err != nil {
		return NewProcessingError(err, record.Topic)
	}
	return nil
}

// Init initializes all nodes, children before parents. If a node fails, the
// nodes initialized so far are still closed by Close.
func (t *Task) Init() error {
	for _, n := range t.nodes[t.initialized:] {
		if err := n.Node.Init(); err != nil {
			return fmt.Errorf("init node %s: %w", n.Name, err)
		}
		t.initialized++
	}
	return nil
}

// Close closes every initialized node once, parents before children. Close
// errors are aggregated. Calling Close again has no effect.
func (t *Task) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true

	var err error
	for i := t.initialized - 1; i >= 0; i-- {
		n := t.nodes[i]
		if closeErr := n.Node.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("close node %s: %w", n.Name, closeErr))
		}
	}
	return err
}

func (t *Task) String() string {
	return t.taskID
}
