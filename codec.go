package eonet

import (
	"io"
	"sync"

	"github.com/pkg/errors"

	"github.com/huoshan017/eonet/data"
	"github.com/huoshan017/eonet/encrypt"
	"github.com/huoshan017/eonet/packet"
)

const frameHeaderLen = 2

// Codec frames packets on a byte stream:
//
//	length short  // counts action, family and body
//	action byte
//	family byte
//	body   []byte
//
// When a swap multiple is set, everything after the length is scrambled with
// encrypt.EncryptPacket. Encode and Decode may run on different goroutines.
type Codec struct {
	maxPacketLength int
	locker          sync.RWMutex
	encrypter       encrypt.IEncrypter
	decrypter       encrypt.IDecrypter
}

func NewCodec(ops *Options) (*Codec, error) {
	c := &Codec{maxPacketLength: ops.MaxPacketLength}
	if c.maxPacketLength <= 0 {
		c.maxPacketLength = DefaultMaxPacketLength
	}
	if err := c.SetMultiples(ops.EncodeMultiple, ops.DecodeMultiple); err != nil {
		return nil, err
	}
	return c, nil
}

// SetMultiples replaces the swap multiples, typically once the init
// handshake has negotiated them. Zero turns scrambling off.
func (c *Codec) SetMultiples(encode, decode int) error {
	var (
		enc encrypt.IEncrypter
		dec encrypt.IDecrypter
		err error
	)
	if encode < 0 || decode < 0 {
		return encrypt.ErrInvalidMultiple
	}
	if encode > 0 {
		if enc, err = encrypt.NewPacketEncrypter(encode); err != nil {
			return err
		}
	}
	if decode > 0 {
		if dec, err = encrypt.NewPacketDecrypter(decode); err != nil {
			return err
		}
	}
	c.locker.Lock()
	c.encrypter, c.decrypter = enc, dec
	c.locker.Unlock()
	return nil
}

// Encode returns the frame carrying body under id.
func (c *Codec) Encode(id packet.ID, body []byte) ([]byte, error) {
	length := frameHeaderLen + len(body)
	if length > c.maxPacketLength {
		return nil, ErrBodyLenInvalid
	}

	payload := make([]byte, length)
	payload[0] = byte(id.Action)
	payload[1] = byte(id.Family)
	copy(payload[frameHeaderLen:], body)

	c.locker.RLock()
	enc := c.encrypter
	c.locker.RUnlock()
	if enc != nil {
		var err error
		if payload, err = enc.Encrypt(payload); err != nil {
			return nil, err
		}
	}

	l := data.EncodeNumber(length)
	frame := make([]byte, 0, 2+length)
	frame = append(frame, l[:2]...)
	return append(frame, payload...), nil
}

// EncodePacket serializes p and frames it.
func (c *Codec) EncodePacket(p packet.Packet) ([]byte, error) {
	body, err := packet.Serialize(p)
	if err != nil {
		return nil, errors.WithMessagef(err, "eonet: serialize %v", packet.PacketID(p))
	}
	return c.Encode(packet.PacketID(p), body)
}

// Decode reads one frame from reader and returns its id and body.
func (c *Codec) Decode(reader io.Reader) (packet.ID, []byte, error) {
	var header [2]byte
	if _, err := io.ReadFull(reader, header[:]); err != nil {
		return packet.ID{}, nil, err
	}
	length := data.DecodeNumber(header[:])
	if length > c.maxPacketLength {
		return packet.ID{}, nil, ErrBodyLenInvalid
	}
	if length < frameHeaderLen {
		return packet.ID{}, nil, ErrFrameTooShort
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(reader, payload); err != nil {
		return packet.ID{}, nil, err
	}

	c.locker.RLock()
	dec := c.decrypter
	c.locker.RUnlock()
	if dec != nil {
		var err error
		if payload, err = dec.Decrypt(payload); err != nil {
			return packet.ID{}, nil, err
		}
	}

	id := packet.ID{Family: packet.Family(payload[1]), Action: packet.Action(payload[0])}
	return id, payload[frameHeaderLen:], nil
}
