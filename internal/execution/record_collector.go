package execution

import (
	"slices"
	"sync"

	"github.com/twmb/franz-go/pkg/kgo"
)

// RecordCollector buffers the records written by sink nodes, per topic, in
// the order they were produced. Records stay buffered until drained.
//
// The collector is the in-memory counterpart of a producer: nothing is sent
// anywhere, callers read the records back with Drain.
type RecordCollector struct {
	buffer map[string][]*kgo.Record

	mu sync.Mutex
}

// NewRecordCollector returns an empty collector.
func NewRecordCollector() *RecordCollector {
	return &RecordCollector{
		buffer: make(map[string][]*kgo.Record),
	}
}

// Send buffers a record under its topic.
func (rc *RecordCollector) Send(record *kgo.Record) {
	rc.mu.Lock()
	rc.buffer[record.Topic] = append(rc.buffer[record.Topic], record)
	rc.mu.Unlock()
}

// Drain returns and removes all buffered records of topic.
func (rc *RecordCollector) Drain(topic string) []*kgo.Record {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	records := rc.buffer[topic]
	delete(rc.buffer, topic)
	return records
}

// Topics returns the sorted topics that currently have buffered records.
func (rc *RecordCollector) Topics() []string {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	topics := make([]string, 0, len(rc.buffer))
	for topic := range rc.buffer {
		topics = append(topics, topic)
	}
	slices.Sort(topics)
	return topics
}

// BufferSize counts the buffered records across all topics.
func (rc *RecordCollector) BufferSize() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	n := 0
	for _, records := range rc.buffer {
		n += len(records)
	}
	return n
}
