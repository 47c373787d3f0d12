package kserde

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrLength is returned when a fixed width value is decoded from a buffer of
// the wrong size.
var ErrLength = errors.New("kserde: wrong length")

// Fixed width numbers are big-endian. int always takes 8 bytes.
var (
	Int     = integer[int](8)
	Int32   = integer[int32](4)
	Int64   = integer[int64](8)
	Float64 = Serde[float64]{
		Serializer: func(f float64) ([]byte, error) {
			return binary.BigEndian.AppendUint64(nil, math.Float64bits(f)), nil
		},
		Deserializer: func(b []byte) (float64, error) {
			if err := checkLength[float64](b, 8); err != nil {
				return 0, err
			}
			return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
		},
	}

	IntSerializer       = Int.Serializer
	IntDeserializer     = Int.Deserializer
	Int32Serializer     = Int32.Serializer
	Int32Deserializer   = Int32.Deserializer
	Int64Serializer     = Int64.Serializer
	Int64Deserializer   = Int64.Deserializer
	Float64Serializer   = Float64.Serializer
	Float64Deserializer = Float64.Deserializer
)

func integer[T int | int32 | int64](width int) Serde[T] {
	return Serde[T]{
		Serializer: func(v T) ([]byte, error) {
			b := binary.BigEndian.AppendUint64(nil, uint64(int64(v)))
			return b[8-width:], nil
		},
		Deserializer: func(b []byte) (T, error) {
			if err := checkLength[T](b, width); err != nil {
				return 0, err
			}
			if width == 4 {
				return T(int32(binary.BigEndian.Uint32(b))), nil
			}
			return T(int64(binary.BigEndian.Uint64(b))), nil
		},
	}
}

func checkLength[T any](b []byte, width int) error {
	if len(b) != width {
		return fmt.Errorf("%w: %T needs %d bytes, got %d", ErrLength, *new(T), width, len(b))
	}
	return nil
}
