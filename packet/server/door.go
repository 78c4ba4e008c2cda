// Package server holds the packets sent from the game server to the client.
// Field order in Serialize and Deserialize is the wire order.
package server

import (
	"github.com/huoshan017/eonet/data"
	"github.com/huoshan017/eonet/packet"
	"github.com/huoshan017/eonet/protocol"
)

// DoorOpenPacket reports a nearby door opening.
//
//	coords Coords
//	0      char
type DoorOpenPacket struct {
	byteSize int

	Coords protocol.Coords
}

func (s DoorOpenPacket) Family() packet.Family {
	return packet.FamilyDoor
}

func (s DoorOpenPacket) Action() packet.Action {
	return packet.ActionOpen
}

func (s *DoorOpenPacket) ByteSize() int {
	return s.byteSize
}

func (s *DoorOpenPacket) Serialize(writer *data.EoWriter) (err error) {
	if err = s.Coords.Serialize(writer); err != nil {
		return
	}
	err = writer.AddChar(0)
	return
}

func (s *DoorOpenPacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if err = s.Coords.Deserialize(reader); err != nil {
		return
	}
	if _, err = reader.GetChar(); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}
