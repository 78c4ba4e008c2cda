package server

import (
	"github.com/huoshan017/eonet/data"
	"github.com/huoshan017/eonet/packet"
)

// SpellRequestPacket shows a nearby player starting to chant a spell.
//
//	player_id short
//	spell_id  short
type SpellRequestPacket struct {
	byteSize int

	PlayerId int
	SpellId  int
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
	if err = writer.AddShort(s.PlayerId); err != nil {
		return
	}
	err = writer.AddShort(s.SpellId)
	return
}

func (s *SpellRequestPacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if s.PlayerId, err = reader.GetShort(); err != nil {
		return
	}
	if s.SpellId, err = reader.GetShort(); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}

// SpellErrorPacket: the spell could not be cast. The body is a single 255
// byte.
type SpellErrorPacket struct {
	byteSize int
}

func (s SpellErrorPacket) Family() packet.Family {
	return packet.FamilySpell
}

func (s SpellErrorPacket) Action() packet.Action {
	return packet.ActionError
}

func (s *SpellErrorPacket) ByteSize() int {
	return s.byteSize
}

func (s *SpellErrorPacket) Serialize(writer *data.EoWriter) error {
	return writer.AddByte(255)
}

func (s *SpellErrorPacket) Deserialize(reader *data.EoReader) error {
	return deserializePlaceholder(reader, &s.byteSize)
}
