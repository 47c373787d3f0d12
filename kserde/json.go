package kserde

import (
	"encoding/json"
	"fmt"
)

// JSON encodes values with encoding/json.
func JSON[T any]() Serde[T] {
	return Serde[T]{
		Serializer:   JSONSerializer[T](),
		Deserializer: JSONDeserializer[T](),
	}
}

func JSONSerializer[T any]() Serializer[T] {
	return func(v T) ([]byte, error) { return json.Marshal(v) }
}

// JSONDeserializer decodes into a fresh T per call and returns the zero value
// on error.
func JSONDeserializer[T any]() Deserializer[T] {
	return func(b []byte) (T, error) {
		var v T
		if err := json.Unmarshal(b, &v); err != nil {
			var zero T
			return zero, fmt.Errorf("json: %w", err)
		}
		return v, nil
	}
}
