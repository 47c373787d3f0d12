package kserde

// Serde pairs the serializer and deserializer of one type.
type Serde[T any] struct {
	Serializer   Serializer[T]
	Deserializer Deserializer[T]
}

type Serializer[T any] func(T) ([]byte, error)

type Deserializer[T any] func([]byte) (T, error)

// Formatter renders a value to its display form. Formatters are used by
// printing actions, they are never used on the wire.
type Formatter[T any] func(T) (string, error)
