// Package ktest drives records through a built topology in-process.
//
// A Driver builds every node of a kdag.DAG, then accepts records one at a time.
// Each call runs the whole cascade below the entry source synchronously, so the
// effects of a record are observable as soon as Process returns.
package ktest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/birdayz/streamtap"
	"github.com/birdayz/streamtap/internal/execution"
	"github.com/birdayz/streamtap/kdag"
	"github.com/birdayz/streamtap/kprocessor"
	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/multierr"
)

var (
	ErrNilTopology  = errors.New("ktest: topology must not be nil")
	ErrUnknownEntry = errors.New("ktest: unknown entry")
	ErrDriverClosed = errors.New("ktest: driver is closed")
)

// Driver feeds records into a topology. An entry is the topic of a source
// registered in the topology.
//
// A Driver is not safe for concurrent use.
type Driver struct {
	task         *execution.Task
	collector    *RecordCollector
	interceptors []kprocessor.ProcessorInterceptor
	log          *slog.Logger
	closed       bool
}

// NewDriver builds and initializes every node of dag.
func NewDriver(dag *kdag.DAG, opts ...Option) (*Driver, error) {
	if dag == nil {
		return nil, ErrNilTopology
	}

	d := &Driver{
		log: streamtap.NullLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.collector == nil {
		d.collector = execution.NewRecordCollector()
	}

	task, err := execution.BuildTask(dag, d.collector, kprocessor.ChainInterceptors(d.interceptors...))
	if err != nil {
		return nil, fmt.Errorf("build topology: %w", err)
	}
	if err := task.Init(); err != nil {
		return nil, multierr.Combine(fmt.Errorf("init topology: %w", err), task.Close())
	}
	d.task = task

	d.log.Info("Driver ready", "task", task.ID(), "entries", task.Topics())
	return d, nil
}

// Process injects one record at entry and returns once every node reachable
// from it has run. key and value must have the types the entry source was
// registered with. An untyped nil is accepted for pointer, slice, map and
// interface types.
//
// The first failing node aborts the cascade. The error is an
// *execution.ProcessingError naming the failing node, and unwrapping it once
// yields the error that node reported.
func (d *Driver) Process(ctx context.Context, entry string, key, value any) error {
	if d.closed {
		return ErrDriverClosed
	}
	if !d.task.HasTopic(entry) {
		return fmt.Errorf("%w: %q", ErrUnknownEntry, entry)
	}

	d.log.Debug("Process record", "entry", entry, "key", key, "value", value)
	return d.task.Process(ctx, entry, key, value)
}

// PipeRecord injects a raw record at the entry named by record.Topic. Key and
// value are decoded with the deserializers of the entry source.
func (d *Driver) PipeRecord(ctx context.Context, record *kgo.Record) error {
	if d.closed {
		return ErrDriverClosed
	}
	if record == nil {
		return errors.New("ktest: record must not be nil")
	}
	if !d.task.HasTopic(record.Topic) {
		return fmt.Errorf("%w: %q", ErrUnknownEntry, record.Topic)
	}

	d.log.Debug("Pipe record", "entry", record.Topic, "key_bytes", len(record.Key), "value_bytes", len(record.Value))
	return d.task.PipeRecord(ctx, record)
}

// ReadOutput returns and removes the records sink nodes wrote to topic, in
// the order they were written.
func (d *Driver) ReadOutput(topic string) []*kgo.Record {
	return d.collector.Drain(topic)
}

// Entries returns the sorted entry names of the topology.
func (d *Driver) Entries() []string {
	return d.task.Topics()
}

// Close closes every node of the topology. Close errors of all nodes are
// returned together. Calling Close again has no effect and returns nil.
func (d *Driver) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true

	err := d.task.Close()
	d.log.Info("Driver closed", "task", d.task.ID(), "error", err)
	return err
}
