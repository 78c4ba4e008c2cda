package client

import (
	"github.com/huoshan017/eonet/data"
	"github.com/huoshan017/eonet/packet"
	"github.com/huoshan017/eonet/protocol"
)

// ItemJunkPacket destroys items from the inventory.
//
//	item Item
type ItemJunkPacket struct {
	byteSize int

	Item protocol.Item
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

func (s *ItemJunkPacket) Serialize(writer *data.EoWriter) error {
	return s.Item.Serialize(writer)
}

func (s *ItemJunkPacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if err = s.Item.Deserialize(reader); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}

// SpellRequestPacket starts chanting a spell.
//
//	spell_id  short
//	timestamp three
type SpellRequestPacket struct {
	byteSize int

	SpellId   int
	Timestamp int
}

func (s SpellRequestPacket) Family() packet.Family {
	return packet.FamilySpell
}

func (s SpellRequestPacket) Action() packet.Action {
	return packet.ActionRequest
}

func (s *SpellRequestPacket) ByteSize() int {
	return s.byteSize
}

func (s *SpellRequestPacket) Serialize(writer *data.EoWriter) (err error) {
	if err = writer.AddShort(s.SpellId); err != nil {
		return
	}
	err = writer.AddThree(s.Timestamp)
	return
}

func (s *SpellRequestPacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if s.SpellId, err = reader.GetShort(); err != nil {
		return
	}
	if s.Timestamp, err = reader.GetThree(); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}

// SpellUsePacket raises the player's arm at the end of a chant.
//
//	direction char
type SpellUsePacket struct {
	byteSize int

	Direction protocol.Direction
}

func (s SpellUsePacket) Family() packet.Family {
	return packet.FamilySpell
}

func (s SpellUsePacket) Action() packet.Action {
	return packet.ActionUse
}

func (s *SpellUsePacket) ByteSize() int {
	return s.byteSize
}

func (s *SpellUsePacket) Serialize(writer *data.EoWriter) error {
	return writer.AddChar(int(s.Direction))
}

func (s *SpellUsePacket) Deserialize(reader *data.EoReader) (err error) {
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
