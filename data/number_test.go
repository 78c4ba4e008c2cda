package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeNumber(t *testing.T) {
	cases := []struct {
		number int
		want   [4]byte
	}{
		{0, [4]byte{0x01, 0xFE, 0xFE, 0xFE}},
		{1, [4]byte{0x02, 0xFE, 0xFE, 0xFE}},
		{28, [4]byte{0x1D, 0xFE, 0xFE, 0xFE}},
		{100, [4]byte{0x65, 0xFE, 0xFE, 0xFE}},
		{128, [4]byte{0x81, 0xFE, 0xFE, 0xFE}},
		{252, [4]byte{0xFD, 0xFE, 0xFE, 0xFE}},
		{253, [4]byte{0x01, 0x02, 0xFE, 0xFE}},
		{254, [4]byte{0x02, 0x02, 0xFE, 0xFE}},
		{255, [4]byte{0x03, 0x02, 0xFE, 0xFE}},
		{64008, [4]byte{0xFD, 0xFD, 0xFE, 0xFE}},
		{64009, [4]byte{0x01, 0x01, 0x02, 0xFE}},
		{64010, [4]byte{0x02, 0x01, 0x02, 0xFE}},
		{16194276, [4]byte{0xFD, 0xFD, 0xFD, 0xFE}},
		{16194277, [4]byte{0x01, 0x01, 0x01, 0x02}},
		{4097152080, [4]byte{0xFD, 0xFD, 0xFD, 0xFD}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, EncodeNumber(c.number), "encode %v", c.number)
		assert.Equal(t, c.number, DecodeNumber(c.want[:]), "decode %v", c.want)
	}
}

func TestDecodeNumberStopsAtUnusedDigit(t *testing.T) {
	assert.Equal(t, 5, DecodeNumber([]byte{0x06, 0xFE, 0x05, 0x05}))
	assert.Equal(t, 0, DecodeNumber(nil))
}

func TestDecodeNumberIgnoresExtraBytes(t *testing.T) {
	assert.Equal(t, 0, DecodeNumber([]byte{0x01, 0x01, 0x01, 0x01, 0x09}))
}

func BenchmarkEncodeNumber(b *testing.B) {
	for i := 0; i < b.N; i++ {
		EncodeNumber(i % IntMax)
	}
}
