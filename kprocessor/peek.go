package kprocessor

import (
	"context"
)

// PeekProcessor invokes its action for every record and then, if it was built
// to forward, passes the very same key and value to all children. A
// non-forwarding PeekProcessor is a terminal node (ForEach).
type PeekProcessor[K, V any] struct {
	ctx     ProcessorContext[K, V]
	action  Action[K, V]
	forward bool
}

// NewPeek returns a builder for a pass-through node. The action is checked
// here, not when the first record arrives.
func NewPeek[K, V any](action Action[K, V], forward bool) (ProcessorBuilder[K, V, K, V], error) {
	if isNilAction(action) {
		return nil, ErrNilAction
	}
	return func() Processor[K, V, K, V] {
		return &PeekProcessor[K, V]{
			action:  action,
			forward: forward,
		}
	}, nil
}

func (p *PeekProcessor[K, V]) Init(ctx ProcessorContext[K, V]) error {
	p.ctx = ctx
	return nil
}

func (p *PeekProcessor[K, V]) Close() error {
	return nil
}

func (p *PeekProcessor[K, V]) Process(ctx context.Context, k K, v V) error {
	if err := p.action.Apply(k, v); err != nil {
		return err
	}
	if p.forward {
		p.ctx.Forward(ctx, k, v)
	}
	return nil
}

// Forwards reports whether records continue downstream after the action.
func (p *PeekProcessor[K, V]) Forwards() bool {
	return p.forward
}

// Peek observes every record with fn and forwards it unchanged. It panics
// with ErrNilAction if fn is nil.
func Peek[K, V any](fn func(k K, v V)) ProcessorBuilder[K, V, K, V] {
	return PeekAction[K, V](wrapFunc(fn))
}

// ForEach observes every record with fn and forwards nothing. It panics with
// ErrNilAction if fn is nil.
func ForEach[K, V any](fn func(k K, v V)) ProcessorBuilder[K, V, K, V] {
	return ForEachAction[K, V](wrapFunc(fn))
}

// PeekAction is like Peek but takes an Action. It panics with ErrNilAction if
// action is nil.
func PeekAction[K, V any](action Action[K, V]) ProcessorBuilder[K, V, K, V] {
	return mustPeek(action, true)
}

// ForEachAction is like ForEach but takes an Action. It panics with
// ErrNilAction if action is nil.
func ForEachAction[K, V any](action Action[K, V]) ProcessorBuilder[K, V, K, V] {
	return mustPeek(action, false)
}

func mustPeek[K, V any](action Action[K, V], forward bool) ProcessorBuilder[K, V, K, V] {
	b, err := NewPeek(action, forward)
	if err != nil {
		panic(err)
	}
	return b
}

// wrapFunc wraps a function without error return. A nil function stays a nil
// ActionFunc so NewPeek rejects it.
func wrapFunc[K, V any](fn func(k K, v V)) ActionFunc[K, V] {
	if fn == nil {
		return nil
	}
	return func(k K, v V) error {
		fn(k, v)
		return nil
	}
}
