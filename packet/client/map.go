// Package client holds the packets sent from the game client to the server.
package client

import (
	"github.com/huoshan017/eonet/data"
	"github.com/huoshan017/eonet/packet"
	"github.com/huoshan017/eonet/protocol"
)

// DoorOpenPacket asks to open the door at coords.
//
//	coords Coords
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

func (s *DoorOpenPacket) Serialize(writer *data.EoWriter) error {
	return s.Coords.Serialize(writer)
}

func (s *DoorOpenPacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if err = s.Coords.Deserialize(reader); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}

// FacePlayerPacket turns the player around.
//
//	direction char
type FacePlayerPacket struct {
	byteSize int

	Direction protocol.Direction
}

func (s FacePlayerPacket) Family() packet.Family {
	return packet.FamilyFace
}

func (s FacePlayerPacket) Action() packet.Action {
	return packet.ActionPlayer
}

func (s *FacePlayerPacket) ByteSize() int {
	return s.byteSize
}

func (s *FacePlayerPacket) Serialize(writer *data.EoWriter) error {
	return writer.AddChar(int(s.Direction))
}

func (s *FacePlayerPacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	var v int
	if v, err = reader.GetChar(); err != nil {
		return
	}
	s.Direction = protocol.Direction(v)
	s.byteSize = reader.Position() - start
	return
}

// WalkPlayerPacket is a step taken by the player.
//
//	direction char
//	timestamp three
//	coords    Coords
type WalkPlayerPacket struct {
	byteSize int

	Direction protocol.Direction
	Timestamp int
	Coords    protocol.Coords
}

func (s WalkPlayerPacket) Family() packet.Family {
	return packet.FamilyWalk
}

func (s WalkPlayerPacket) Action() packet.Action {
	return packet.ActionPlayer
}

func (s *WalkPlayerPacket) ByteSize() int {
	return s.byteSize
}

func (s *WalkPlayerPacket) Serialize(writer *data.EoWriter) (err error) {
	if err = writer.AddChar(int(s.Direction)); err != nil {
		return
	}
	if err = writer.AddThree(s.Timestamp); err != nil {
		return
	}
	err = s.Coords.Serialize(writer)
	return
}

func (s *WalkPlayerPacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	var v int
	if v, err = reader.GetChar(); err != nil {
		return
	}
	s.Direction = protocol.Direction(v)
	if s.Timestamp, err = reader.GetThree(); err != nil {
		return
	}
	if err = s.Coords.Deserialize(reader); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}

// RefreshRequestPacket asks the server to resend the nearby info. The body is
// a single 255 byte.
type RefreshRequestPacket struct {
	byteSize int
}

func (s RefreshRequestPacket) Family() packet.Family {
	return packet.FamilyRefresh
}

func (s RefreshRequestPacket) Action() packet.Action {
	return packet.ActionRequest
}

func (s *RefreshRequestPacket) ByteSize() int {
	return s.byteSize
}

func (s *RefreshRequestPacket) Serialize(writer *data.EoWriter) error {
	return writer.AddByte(255)
}

func (s *RefreshRequestPacket) Deserialize(reader *data.EoReader) error {
	return deserializePlaceholder(reader, &s.byteSize)
}

func deserializePlaceholder(reader *data.EoReader, byteSize *int) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if _, err = reader.GetByte(); err != nil {
		return
	}
	*byteSize = reader.Position() - start
	return
}
