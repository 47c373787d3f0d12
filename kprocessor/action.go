package kprocessor

import (
	"errors"
	"reflect"
)

var ErrNilAction = errors.New("kprocessor: action must not be nil")

// Action is a side effect invoked with every record a peek or for-each node
// receives. It never changes the record. A returned error aborts the
// processing of the current record and is reported to the caller unchanged.
type Action[K, V any] interface {
	Apply(k K, v V) error
}

// ActionFunc adapts a plain function to Action.
type ActionFunc[K, V any] func(k K, v V) error

func (f ActionFunc[K, V]) Apply(k K, v V) error {
	return f(k, v)
}

// isNilAction also catches typed nils, e.g. a nil ActionFunc or a nil
// *PrintAction stored in the interface.
func isNilAction[K, V any](a Action[K, V]) bool {
	if a == nil {
		return true
	}
	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
