package kprocessor

import (
	"errors"
	"fmt"
	"io"

	"github.com/birdayz/streamtap/kserde"
)

var (
	ErrNilWriter    = errors.New("kprocessor: writer must not be nil")
	ErrNilFormatter = errors.New("kprocessor: formatter must not be nil")
)

// PrintAction writes one labeled line per record:
//
//	[<label>]: <key>, <value>
//
// Lines are written with a single Write call. The writer is never flushed, a
// buffered writer has to be flushed by its owner before reading the output.
type PrintAction[K, V any] struct {
	w        io.Writer
	keyFmt   kserde.Formatter[K]
	valueFmt kserde.Formatter[V]
	label    string
}

func NewPrintAction[K, V any](w io.Writer, keyFmt kserde.Formatter[K], valueFmt kserde.Formatter[V], label string) (*PrintAction[K, V], error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	if keyFmt == nil || valueFmt == nil {
		return nil, ErrNilFormatter
	}
	return &PrintAction[K, V]{
		w:        w,
		keyFmt:   keyFmt,
		valueFmt: valueFmt,
		label:    label,
	}, nil
}

func (a *PrintAction[K, V]) Apply(k K, v V) error {
	key, err := a.keyFmt(k)
	if err != nil {
		return fmt.Errorf("format key: %w", err)
	}
	value, err := a.valueFmt(v)
	if err != nil {
		return fmt.Errorf("format value: %w", err)
	}
	_, err = io.WriteString(a.w, "["+a.label+"]: "+key+", "+value+"\n")
	return err
}

// Print creates a pass-through processor that prints every record to w and
// forwards it unchanged.
//
// Example:
//
//	print, err := kprocessor.Print(os.Stdout, kserde.FormatInt, kserde.FormatString, "orders")
func Print[K, V any](w io.Writer, keyFmt kserde.Formatter[K], valueFmt kserde.Formatter[V], label string) (ProcessorBuilder[K, V, K, V], error) {
	action, err := NewPrintAction(w, keyFmt, valueFmt, label)
	if err != nil {
		return nil, err
	}
	return NewPeek[K, V](action, true)
}
