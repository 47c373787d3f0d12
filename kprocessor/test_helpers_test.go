package kprocessor

import (
	"context"
	"sync"
)

// Mock processor context for testing
type mockProcessorContext[Kout, Vout any] struct {
	forwardedRecords [][2]any
	forwardedTo      []string
	mu               sync.Mutex
}

func (m *mockProcessorContext[Kout, Vout]) Forward(ctx context.Context, k Kout, v Vout) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forwardedRecords = append(m.forwardedRecords, [2]any{k, v})
}

func (m *mockProcessorContext[Kout, Vout]) ForwardTo(ctx context.Context, k Kout, v Vout, childName string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forwardedRecords = append(m.forwardedRecords, [2]any{k, v})
	m.forwardedTo = append(m.forwardedTo, childName)
}

// failingWriter fails every write after the first n bytes.
type failingWriter struct {
	n   int
	err error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.n {
		n := w.n
		w.n = 0
		return n, w.err
	}
	w.n -= len(p)
	return len(p), nil
}
