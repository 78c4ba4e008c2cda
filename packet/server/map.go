package server

import (
	"github.com/huoshan017/eonet/data"
	"github.com/huoshan017/eonet/packet"
	"github.com/huoshan017/eonet/protocol"
)

// RefreshReplyPacket resends everything around the player.
//
//	nearby NearbyInfo
type RefreshReplyPacket struct {
	byteSize int

	Nearby protocol.NearbyInfo
}

func (s RefreshReplyPacket) Family() packet.Family {
	return packet.FamilyRefresh
}

func (s RefreshReplyPacket) Action() packet.Action {
	return packet.ActionReply
}

func (s *RefreshReplyPacket) ByteSize() int {
	return s.byteSize
}

func (s *RefreshReplyPacket) Serialize(writer *data.EoWriter) error {
	return s.Nearby.Serialize(writer)
}

func (s *RefreshReplyPacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if err = s.Nearby.Deserialize(reader); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}

// WalkPlayerPacket shows a nearby player taking a step.
//
//	player_id short
//	direction char
//	coords    Coords
type WalkPlayerPacket struct {
	byteSize int

	PlayerId  int
	Direction protocol.Direction
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
	if err = writer.AddShort(s.PlayerId); err != nil {
		return
	}
	if err = writer.AddChar(int(s.Direction)); err != nil {
		return
	}
	err = s.Coords.Serialize(writer)
	return
}

func (s *WalkPlayerPacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if s.PlayerId, err = reader.GetShort(); err != nil {
		return
	}
	var v int
	if v, err = reader.GetChar(); err != nil {
		return
	}
	s.Direction = protocol.Direction(v)
	if err = s.Coords.Deserialize(reader); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}

// ChestOpenPacket sends the contents of an opened chest.
//
//	coords Coords
//	items  ThreeItem[] to the end
type ChestOpenPacket struct {
	byteSize int

	Coords protocol.Coords
	Items  []protocol.ThreeItem
}

func (s ChestOpenPacket) Family() packet.Family {
	return packet.FamilyChest
}

func (s ChestOpenPacket) Action() packet.Action {
	return packet.ActionOpen
}

func (s *ChestOpenPacket) ByteSize() int {
	return s.byteSize
}

func (s *ChestOpenPacket) Serialize(writer *data.EoWriter) (err error) {
	if err = s.Coords.Serialize(writer); err != nil {
		return
	}
	for i := range s.Items {
		if err = s.Items[i].Serialize(writer); err != nil {
			return
		}
	}
	return
}

func (s *ChestOpenPacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if err = s.Coords.Deserialize(reader); err != nil {
		return
	}
	s.Items = nil
	for reader.Remaining() > 0 {
		var item protocol.ThreeItem
		if err = item.Deserialize(reader); err != nil {
			return
		}
		s.Items = append(s.Items, item)
	}
	s.byteSize = reader.Position() - start
	return
}
