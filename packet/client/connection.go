package client

import (
	"github.com/huoshan017/eonet/data"
	"github.com/huoshan017/eonet/packet"
)

// ConnectionPingPacket answers the server keep-alive. The body is the string "k".
type ConnectionPingPacket struct {
	byteSize int
}

func (s ConnectionPingPacket) Family() packet.Family {
	return packet.FamilyConnection
}

func (s ConnectionPingPacket) Action() packet.Action {
	return packet.ActionPing
}

func (s *ConnectionPingPacket) ByteSize() int {
	return s.byteSize
}

func (s *ConnectionPingPacket) Serialize(writer *data.EoWriter) error {
	return writer.AddString("k")
}

func (s *ConnectionPingPacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if _, err = reader.GetString(); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}

// MessagePingPacket is the #ping command. The body is the short 2.
type MessagePingPacket struct {
	byteSize int
}

func (s MessagePingPacket) Family() packet.Family {
	return packet.FamilyMessage
}

func (s MessagePingPacket) Action() packet.Action {
	return packet.ActionPing
}

func (s *MessagePingPacket) ByteSize() int {
	return s.byteSize
}

func (s *MessagePingPacket) Serialize(writer *data.EoWriter) error {
	return writer.AddShort(2)
}

func (s *MessagePingPacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if _, err = reader.GetShort(); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}
