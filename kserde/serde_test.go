package kserde

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestInt(t *testing.T) {
	t.Run("big endian layout", func(t *testing.T) {
		b, err := IntSerializer(258)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 1, 2}, b)

		v, err := IntDeserializer(b)
		assert.NoError(t, err)
		assert.Equal(t, 258, v)
	})

	t.Run("negative values survive", func(t *testing.T) {
		b, err := Int.Serializer(-31)
		assert.NoError(t, err)
		v, err := Int.Deserializer(b)
		assert.NoError(t, err)
		assert.Equal(t, -31, v)
	})

	t.Run("int32 is four bytes", func(t *testing.T) {
		b, err := Int32Serializer(-2)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xfe}, b)

		v, err := Int32Deserializer(b)
		assert.NoError(t, err)
		assert.Equal(t, int32(-2), v)
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := IntDeserializer([]byte{1, 2, 3})
		assert.IsError(t, err, ErrLength)
		assert.EqualError(t, err, "kserde: wrong length: int needs 8 bytes, got 3")

		_, err = Int32Deserializer([]byte{1})
		assert.EqualError(t, err, "kserde: wrong length: int32 needs 4 bytes, got 1")

		_, err = Int64Deserializer(nil)
		assert.IsError(t, err, ErrLength)
	})
}

func TestJSONDeserializerError(t *testing.T) {
	_, err := JSONDeserializer[map[string]int]()([]byte("{not json"))
	assert.Error(t, err)
}

func TestFormatters(t *testing.T) {
	type order struct {
		ID    string  `json:"id"`
		Total float64 `json:"total"`
	}

	t.Run("scalars", func(t *testing.T) {
		s, err := FormatString("zero")
		assert.NoError(t, err)
		assert.Equal(t, "zero", s)

		s, err = FormatInt(-7)
		assert.NoError(t, err)
		assert.Equal(t, "-7", s)

		s, err = FormatInt32(42)
		assert.NoError(t, err)
		assert.Equal(t, "42", s)

		s, err = FormatInt64(1 << 40)
		assert.NoError(t, err)
		assert.Equal(t, "1099511627776", s)

		s, err = FormatFloat64(0.5)
		assert.NoError(t, err)
		assert.Equal(t, "0.5", s)
	})

	t.Run("any uses %v", func(t *testing.T) {
		s, err := FormatAny[order]()(order{ID: "a", Total: 2})
		assert.NoError(t, err)
		assert.Equal(t, "{a 2}", s)
	})

	t.Run("json", func(t *testing.T) {
		s, err := FormatJSON[order]()(order{ID: "a", Total: 2.5})
		assert.NoError(t, err)
		assert.Equal(t, `{"id":"a","total":2.5}`, s)
	})

	t.Run("serialized text", func(t *testing.T) {
		s, err := FormatSerialized[string](StringSerializer)("hello")
		assert.NoError(t, err)
		assert.Equal(t, "hello", s)
	})

	t.Run("serializer error propagates", func(t *testing.T) {
		boom := errors.New("boom")
		failing := Serializer[int](func(int) ([]byte, error) { return nil, boom })
		_, err := FormatSerialized(failing)(1)
		assert.IsError(t, err, boom)
	})
}
