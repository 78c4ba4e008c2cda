package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterNumbers(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.AddByte(0xFF))
	require.NoError(t, w.AddChar(252))
	require.NoError(t, w.AddShort(64008))
	require.NoError(t, w.AddThree(0))
	require.NoError(t, w.AddInt(16194277))

	assert.Equal(t, []byte{
		0xFF,
		0xFD,
		0xFD, 0xFD,
		0x01, 0xFE, 0xFE,
		0x01, 0x01, 0x01, 0x02,
	}, w.Array())
	assert.Equal(t, 11, w.Len())
}

func TestWriterRejectsOutOfRange(t *testing.T) {
	w := NewWriter()
	cases := []struct {
		name string
		add  func() error
	}{
		{"byte high", func() error { return w.AddByte(256) }},
		{"byte negative", func() error { return w.AddByte(-1) }},
		{"char", func() error { return w.AddChar(253) }},
		{"short", func() error { return w.AddShort(64009) }},
		{"three", func() error { return w.AddThree(16194277) }},
		{"int", func() error { return w.AddInt(4097152081) }},
		{"negative", func() error { return w.AddShort(-1) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.add()
			require.Error(t, err)
			assert.True(t, IsSerializationError(err))
		})
	}
	assert.Equal(t, 0, w.Len(), "failed adds must not grow the buffer")
}

func TestWriterStrings(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.AddString("Alice"))
	assert.Equal(t, []byte("Alice"), w.Array())

	w = NewWriter()
	require.NoError(t, w.AddString("café"))
	assert.Equal(t, []byte{'c', 'a', 'f', 0xE9}, w.Array())

	w = NewWriter()
	err := w.AddString("日本")
	assert.True(t, IsSerializationError(err))
}

func TestWriterFixedString(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.AddFixedString("abc", 3, false))
	require.NoError(t, w.AddFixedString("ab", 4, true))
	assert.Equal(t, []byte{'a', 'b', 'c', 'a', 'b', 0xFF, 0xFF}, w.Array())

	assert.True(t, IsSerializationError(w.AddFixedString("abcd", 3, false)))
	assert.True(t, IsSerializationError(w.AddFixedString("ab", 3, false)))
	assert.True(t, IsSerializationError(w.AddFixedString("abcd", 3, true)))
}

func TestWriterEncodedString(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.AddEncodedString("foo"))
	assert.Equal(t, []byte{0x5E, 0x30, 0x67}, w.Array())
}

func TestWriterSanitizeStrings(t *testing.T) {
	w := NewWriter()
	w.SetSanitizeStrings(true)
	require.NoError(t, w.AddString("aÿb"))
	assert.Equal(t, []byte{'a', 'y', 'b'}, w.Array())

	w = NewWriter()
	require.NoError(t, w.AddString("aÿb"))
	assert.Equal(t, []byte{'a', 0xFF, 'b'}, w.Array())
}

func TestWriterBreak(t *testing.T) {
	w := NewWriter()
	w.AddBreak()
	w.AddBytes([]byte{1, 2})
	assert.Equal(t, []byte{0xFF, 1, 2}, w.Array())
}

func TestStringLength(t *testing.T) {
	n, err := StringLength("café")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = StringLength("日本")
	assert.True(t, IsSerializationError(err))
}
