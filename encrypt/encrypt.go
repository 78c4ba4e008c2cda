// Package encrypt implements the byte scrambling applied to every packet
// after the init handshake.
package encrypt

import (
	"errors"
	"math/rand"
)

// Swap multiples are negotiated in the init reply and fall in this range.
const (
	MinSwapMultiple = 6
	MaxSwapMultiple = 12
)

var ErrInvalidMultiple = errors.New("eonet: swap multiple must not be negative")

type IEncrypter interface {
	Encrypt([]byte) ([]byte, error)
}

type IDecrypter interface {
	Decrypt([]byte) ([]byte, error)
}

// Interleave reorders data in place: the bytes at even indices take the
// first half in order, the odd indices take the rest from the end backwards.
func Interleave(data []byte) {
	buf := make([]byte, len(data))
	i, ii := 0, 0
	for ; i < len(data); i += 2 {
		buf[i] = data[ii]
		ii++
	}
	i--
	if len(data)%2 != 0 {
		i -= 2
	}
	for ; i >= 0; i -= 2 {
		buf[i] = data[ii]
		ii++
	}
	copy(data, buf)
}

// Deinterleave reverses Interleave in place.
func Deinterleave(data []byte) {
	buf := make([]byte, len(data))
	i, ii := 0, 0
	for ; i < len(data); i += 2 {
		buf[ii] = data[i]
		ii++
	}
	i--
	if len(data)%2 != 0 {
		i -= 2
	}
	for ; i >= 0; i -= 2 {
		buf[ii] = data[i]
		ii++
	}
	copy(data, buf)
}

// FlipMSB toggles the high bit of every byte except 0x00 and 0x80.
func FlipMSB(data []byte) {
	for i, b := range data {
		if b&0x7F != 0 {
			data[i] = b ^ 0x80
		}
	}
}

// SwapMultiples reverses every run of two or more consecutive bytes that are
// multiples of multiple. A multiple of zero leaves data unchanged.
func SwapMultiples(data []byte, multiple int) error {
	if multiple < 0 {
		return ErrInvalidMultiple
	}
	if multiple == 0 {
		return nil
	}
	seqLen := 0
	for i := 0; i <= len(data); i++ {
		if i != len(data) && int(data[i])%multiple == 0 {
			seqLen++
			continue
		}
		if seqLen > 1 {
			for ii := 0; ii < seqLen/2; ii++ {
				a, b := i-seqLen+ii, i-ii-1
				data[a], data[b] = data[b], data[a]
			}
		}
		seqLen = 0
	}
	return nil
}

// IsInitPacket reports whether buf, starting at the action byte, is part of
// the init exchange, which is never scrambled.
func IsInitPacket(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFF && buf[1] == 0xFF
}

// EncryptPacket scrambles buf in place. buf starts at the action byte.
func EncryptPacket(buf []byte, multiple int) error {
	if IsInitPacket(buf) {
		return nil
	}
	FlipMSB(buf)
	Interleave(buf)
	return SwapMultiples(buf, multiple)
}

// DecryptPacket undoes EncryptPacket in place.
func DecryptPacket(buf []byte, multiple int) error {
	if IsInitPacket(buf) {
		return nil
	}
	if err := SwapMultiples(buf, multiple); err != nil {
		return err
	}
	Deinterleave(buf)
	FlipMSB(buf)
	return nil
}

// GenerateSwapMultiple draws a multiple for a new connection.
func GenerateSwapMultiple(rng *rand.Rand) int {
	return MinSwapMultiple + rng.Intn(MaxSwapMultiple-MinSwapMultiple+1)
}

// PacketEncrypter scrambles outgoing frames with a fixed swap multiple.
type PacketEncrypter struct {
	multiple int
}

func NewPacketEncrypter(multiple int) (*PacketEncrypter, error) {
	if multiple < 0 {
		return nil, ErrInvalidMultiple
	}
	return &PacketEncrypter{multiple: multiple}, nil
}

func (c *PacketEncrypter) Encrypt(data []byte) ([]byte, error) {
	out := append([]byte(nil), data...)
	if err := EncryptPacket(out, c.multiple); err != nil {
		return nil, err
	}
	return out, nil
}

// PacketDecrypter unscrambles incoming frames with a fixed swap multiple.
type PacketDecrypter struct {
	multiple int
}

func NewPacketDecrypter(multiple int) (*PacketDecrypter, error) {
	if multiple < 0 {
		return nil, ErrInvalidMultiple
	}
	return &PacketDecrypter{multiple: multiple}, nil
}

func (c *PacketDecrypter) Decrypt(data []byte) ([]byte, error) {
	out := append([]byte(nil), data...)
	if err := DecryptPacket(out, c.multiple); err != nil {
		return nil, err
	}
	return out, nil
}
