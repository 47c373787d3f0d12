package kserde

import (
	"fmt"
	"strconv"
)

// FormatString renders a string as-is.
var FormatString Formatter[string] = func(s string) (string, error) {
	return s, nil
}

// FormatInt renders an int in base 10.
var FormatInt Formatter[int] = func(i int) (string, error) {
	return strconv.Itoa(i), nil
}

var FormatInt32 Formatter[int32] = func(i int32) (string, error) {
	return strconv.FormatInt(int64(i), 10), nil
}

var FormatInt64 Formatter[int64] = func(i int64) (string, error) {
	return strconv.FormatInt(i, 10), nil
}

// FormatFloat64 uses the shortest representation that round-trips.
var FormatFloat64 Formatter[float64] = func(f float64) (string, error) {
	return strconv.FormatFloat(f, 'g', -1, 64), nil
}

// FormatAny renders any value with the %v verb.
func FormatAny[T any]() Formatter[T] {
	return func(t T) (string, error) {
		return fmt.Sprintf("%v", t), nil
	}
}

// FormatJSON renders a value as its JSON encoding.
func FormatJSON[T any]() Formatter[T] {
	return FormatSerialized(JSONSerializer[T]())
}

// FormatSerialized renders a value as the text of its serialized bytes. Only
// meaningful for serializers that produce text, e.g. String or JSON.
func FormatSerialized[T any](serializer Serializer[T]) Formatter[T] {
	return func(t T) (string, error) {
		b, err := serializer(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
