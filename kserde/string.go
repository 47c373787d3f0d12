package kserde

// String passes UTF-8 bytes through unchanged.
var String = Serde[string]{
	Serializer:   func(s string) ([]byte, error) { return []byte(s), nil },
	Deserializer: func(b []byte) (string, error) { return string(b), nil },
}

var (
	StringSerializer   = String.Serializer
	StringDeserializer = String.Deserializer
)
