package packet

import (
	"github.com/huoshan017/eonet/data"
	"github.com/huoshan017/eonet/protocol"
)

// Packet is implemented by every concrete (family, action) type. Deserialize
// must restore the reader's chunked mode on every path, including errors.
type Packet interface {
	protocol.Serializable
	Family() Family
	Action() Action
}

// PacketID returns the (family, action) pair of p.
func PacketID(p Packet) ID {
	return ID{Family: p.Family(), Action: p.Action()}
}

// Serialize writes p into a fresh writer and returns the body bytes.
func Serialize(p Packet) ([]byte, error) {
	writer := data.NewWriter()
	if err := p.Serialize(writer); err != nil {
		return nil, err
	}
	return writer.Array(), nil
}
