package server

import (
	"github.com/huoshan017/eonet/data"
	"github.com/huoshan017/eonet/packet"
	"github.com/huoshan017/eonet/protocol"
)

// ItemJunkPacket confirms that the player destroyed items.
//
//	junked_item      ThreeItem
//	remaining_amount int
//	weight           Weight
type ItemJunkPacket struct {
	byteSize int

	JunkedItem      protocol.ThreeItem
	RemainingAmount int
	Weight          protocol.Weight
}

func (s ItemJunkPacket) Family() packet.Family {
	return packet.FamilyItem
}

func (s ItemJunkPacket) Action() packet.Action {
	return packet.ActionJunk
}

func (s *ItemJunkPacket) ByteSize() int {
	return s.byteSize
}

func (s *ItemJunkPacket) Serialize(writer *data.EoWriter) (err error) {
	if err = s.JunkedItem.Serialize(writer); err != nil {
		return
	}
	if err = writer.AddInt(s.RemainingAmount); err != nil {
		return
	}
	err = s.Weight.Serialize(writer)
	return
}

func (s *ItemJunkPacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if err = s.JunkedItem.Deserialize(reader); err != nil {
		return
	}
	if s.RemainingAmount, err = reader.GetInt(); err != nil {
		return
	}
	if err = s.Weight.Deserialize(reader); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}

// ItemAddPacket shows an item dropped on the map.
//
//	item_id     short
//	item_index  short
//	item_amount three
//	coords      Coords
type ItemAddPacket struct {
	byteSize int

	ItemId     int
	ItemIndex  int
	ItemAmount int
	Coords     protocol.Coords
}

func (s ItemAddPacket) Family() packet.Family {
	return packet.FamilyItem
}

func (s ItemAddPacket) Action() packet.Action {
	return packet.ActionAdd
}

func (s *ItemAddPacket) ByteSize() int {
	return s.byteSize
}

func (s *ItemAddPacket) Serialize(writer *data.EoWriter) (err error) {
	if err = writer.AddShort(s.ItemId); err != nil {
		return
	}
	if err = writer.AddShort(s.ItemIndex); err != nil {
		return
	}
	if err = writer.AddThree(s.ItemAmount); err != nil {
		return
	}
	err = s.Coords.Serialize(writer)
	return
}

func (s *ItemAddPacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if s.ItemId, err = reader.GetShort(); err != nil {
		return
	}
	if s.ItemIndex, err = reader.GetShort(); err != nil {
		return
	}
	if s.ItemAmount, err = reader.GetThree(); err != nil {
		return
	}
	if err = s.Coords.Deserialize(reader); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}

// ItemRemovePacket removes an item from the map.
//
//	item_index short
type ItemRemovePacket struct {
	byteSize int

	ItemIndex int
}

func (s ItemRemovePacket) Family() packet.Family {
	return packet.FamilyItem
}

func (s ItemRemovePacket) Action() packet.Action {
	return packet.ActionRemove
}

func (s *ItemRemovePacket) ByteSize() int {
	return s.byteSize
}

func (s *ItemRemovePacket) Serialize(writer *data.EoWriter) error {
	return writer.AddShort(s.ItemIndex)
}

func (s *ItemRemovePacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if s.ItemIndex, err = reader.GetShort(); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}
