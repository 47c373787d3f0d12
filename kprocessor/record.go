package kprocessor

// KV is a plain key-value pair.
type KV[K, V any] struct {
	Key   K
	Value V
}
