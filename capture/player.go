package capture

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/huoshan017/eonet/packet"
	"github.com/huoshan017/eonet/packet/client"
	"github.com/huoshan017/eonet/packet/server"
)

// Player reads the records of a capture in order.
type Player struct {
	reader       *bufio.Reader
	side         Side
	compress     CompressType
	codec        ICodec
	codecType    CodecType
	decompressor IDecompressor
}

// NewPlayer reads and checks the capture header.
func NewPlayer(r io.Reader) (*Player, error) {
	p := &Player{reader: bufio.NewReader(r)}

	var header [8]byte
	if _, err := io.ReadFull(p.reader, header[:]); err != nil {
		return nil, errors.Wrap(err, "capture: read header")
	}
	if [4]byte{header[0], header[1], header[2], header[3]} != magic {
		return nil, ErrBadMagic
	}
	if header[4] != version {
		return nil, ErrBadVersion
	}
	p.side = Side(header[5])
	p.compress = CompressType(header[6])
	p.codecType = CodecType(header[7])
	if p.side != SideServer && p.side != SideClient {
		return nil, ErrInvalidOption
	}
	if !IsValidCompressType(p.compress) || !IsValidCodecType(p.codecType) {
		return nil, ErrInvalidOption
	}
	p.decompressor = newDecompressor(p.compress)
	p.codec = newCodec(p.codecType)
	return p, nil
}

func (p *Player) Side() Side {
	return p.side
}

func (p *Player) CompressType() CompressType {
	return p.compress
}

func (p *Player) CodecType() CodecType {
	return p.codecType
}

// Next returns the next record, or io.EOF after the last one.
func (p *Player) Next() (*Record, error) {
	length, err := binary.ReadUvarint(p.reader)
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, errors.Wrap(err, "capture: read record length")
	}
	if length > maxRecordLen {
		return nil, ErrRecordTooLarge
	}
	d := make([]byte, length)
	if _, err = io.ReadFull(p.reader, d); err != nil {
		return nil, errors.Wrap(err, "capture: read record")
	}
	if d, err = p.decompressor.Decompress(d); err != nil {
		if err == ErrRecordTooLarge {
			return nil, err
		}
		return nil, errors.Wrap(err, "capture: decompress record")
	}
	rec := &Record{}
	if err = p.codec.Decode(d, rec); err != nil {
		return nil, errors.Wrap(err, "capture: decode record")
	}
	return rec, nil
}

// All reads every remaining record.
func (p *Player) All() ([]*Record, error) {
	var recs []*Record
	for {
		rec, err := p.Next()
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return recs, err
		}
		recs = append(recs, rec)
	}
}

// Registry returns the registry that knows the packets of rec.
func (p *Player) Registry(rec *Record) *packet.Registry {
	if p.side.SentByServer(rec) {
		return server.Registry
	}
	return client.Registry
}

// Packet decodes the body of rec.
func (p *Player) Packet(rec *Record) (packet.Packet, error) {
	id := rec.ID()
	return p.Registry(rec).Deserialize(id.Family, id.Action, rec.Body)
}
