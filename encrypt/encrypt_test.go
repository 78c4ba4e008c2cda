package encrypt

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randBytes(n int) []byte {
	b := make([]byte, n)
	rand.Read(b)
	return b
}

func TestInterleave(t *testing.T) {
	even := []byte{0, 1, 2, 3, 4, 5}
	Interleave(even)
	assert.Equal(t, []byte{0, 5, 1, 4, 2, 3}, even)
	Deinterleave(even)
	assert.Equal(t, []byte{0, 1, 2, 3, 4, 5}, even)

	odd := []byte{0, 1, 2, 3, 4}
	Interleave(odd)
	assert.Equal(t, []byte{0, 4, 1, 3, 2}, odd)
	Deinterleave(odd)
	assert.Equal(t, []byte{0, 1, 2, 3, 4}, odd)

	Interleave(nil)
}

func TestFlipMSB(t *testing.T) {
	b := []byte{0x00, 0x80, 0x01, 0x81, 0x7F}
	FlipMSB(b)
	assert.Equal(t, []byte{0x00, 0x80, 0x81, 0x01, 0xFF}, b)
}

func TestSwapMultiples(t *testing.T) {
	b := []byte{10, 21, 27}
	require.NoError(t, SwapMultiples(b, 3))
	assert.Equal(t, []byte{10, 27, 21}, b)

	b = []byte{3, 6, 9, 1, 12, 15}
	require.NoError(t, SwapMultiples(b, 3))
	assert.Equal(t, []byte{9, 6, 3, 1, 15, 12}, b)

	b = []byte{3, 6}
	require.NoError(t, SwapMultiples(b, 0))
	assert.Equal(t, []byte{3, 6}, b)

	assert.ErrorIs(t, SwapMultiples(b, -1), ErrInvalidMultiple)
}

func TestEncryptPacket(t *testing.T) {
	b := []byte("Hello, World!")
	require.NoError(t, EncryptPacket(b, 6))
	assert.Equal(t, []byte{0xC8, 0xA1, 0xE5, 0xE4, 0xEC, 0xEC, 0xEC, 0xF2, 0xEF, 0xEF, 0xAC, 0xD7, 0xA0}, b)

	require.NoError(t, DecryptPacket(b, 6))
	assert.Equal(t, []byte("Hello, World!"), b)
}

func TestInitPacketLeftClear(t *testing.T) {
	b := []byte{0xFF, 0xFF, 0x01, 0x02}
	require.NoError(t, EncryptPacket(b, 7))
	assert.Equal(t, []byte{0xFF, 0xFF, 0x01, 0x02}, b)
}

func TestPacketCrypter(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		multiple := GenerateSwapMultiple(rng)
		require.GreaterOrEqual(t, multiple, MinSwapMultiple)
		require.LessOrEqual(t, multiple, MaxSwapMultiple)

		enc, err := NewPacketEncrypter(multiple)
		require.NoError(t, err)
		dec, err := NewPacketDecrypter(multiple)
		require.NoError(t, err)

		bs := randBytes(1 + rng.Intn(64))
		bs[0] = 0x01
		orig := append([]byte(nil), bs...)

		ds, err := enc.Encrypt(bs)
		require.NoError(t, err)
		assert.Equal(t, orig, bs)

		os, err := dec.Decrypt(ds)
		require.NoError(t, err)
		assert.Equal(t, orig, os)
	}

	_, err := NewPacketEncrypter(-1)
	assert.ErrorIs(t, err, ErrInvalidMultiple)
}

func TestServerVerificationHash(t *testing.T) {
	tests := []struct {
		challenge int
		want      int
	}{
		{0, 114000},
		{1, 115191},
		{123456, 300733},
		{11092003, 112773},
		{11092004, 140977},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ServerVerificationHash(tt.challenge), "challenge %d", tt.challenge)
	}
}

func BenchmarkEncryptPacket(b *testing.B) {
	bs := randBytes(256)
	bs[0] = 0x01
	for i := 0; i < b.N; i++ {
		EncryptPacket(bs, 8)
		DecryptPacket(bs, 8)
	}
}
