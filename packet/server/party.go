package server

import (
	"github.com/huoshan017/eonet/data"
	"github.com/huoshan017/eonet/packet"
	"github.com/huoshan017/eonet/protocol"
)

// PartyAddPacket announces a new member of the player's party.
//
//	member PartyMember
type PartyAddPacket struct {
	byteSize int

	Member protocol.PartyMember
}

func (s PartyAddPacket) Family() packet.Family {
	return packet.FamilyParty
}

func (s PartyAddPacket) Action() packet.Action {
	return packet.ActionAdd
}

func (s *PartyAddPacket) ByteSize() int {
	return s.byteSize
}

func (s *PartyAddPacket) Serialize(writer *data.EoWriter) error {
	return s.Member.Serialize(writer)
}

func (s *PartyAddPacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if err = s.Member.Deserialize(reader); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}

// PartyCreatePacket sends the member list of a newly joined party.
//
//	members PartyMember[], each followed by a break
type PartyCreatePacket struct {
	byteSize int

	Members []protocol.PartyMember
}

func (s PartyCreatePacket) Family() packet.Family {
	return packet.FamilyParty
}

func (s PartyCreatePacket) Action() packet.Action {
	return packet.ActionCreate
}

func (s *PartyCreatePacket) ByteSize() int {
	return s.byteSize
}

func (s *PartyCreatePacket) Serialize(writer *data.EoWriter) (err error) {
	oldSanitize := writer.SanitizeStrings()
	defer func() { writer.SetSanitizeStrings(oldSanitize) }()

	writer.SetSanitizeStrings(true)
	for i := range s.Members {
		if err = s.Members[i].Serialize(writer); err != nil {
			return
		}
		writer.AddBreak()
	}
	return
}

func (s *PartyCreatePacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	reader.SetIsChunked(true)
	s.Members = nil
	for reader.Remaining() > 0 {
		var member protocol.PartyMember
		if err = member.Deserialize(reader); err != nil {
			return
		}
		s.Members = append(s.Members, member)
		if err = reader.NextChunk(); err != nil {
			return
		}
	}
	s.byteSize = reader.Position() - start
	return
}

// PartyRemovePacket removes a member from the party list.
//
//	player_id short
type PartyRemovePacket struct {
	byteSize int

	PlayerId int
}

func (s PartyRemovePacket) Family() packet.Family {
	return packet.FamilyParty
}

func (s PartyRemovePacket) Action() packet.Action {
	return packet.ActionRemove
}

func (s *PartyRemovePacket) ByteSize() int {
	return s.byteSize
}

func (s *PartyRemovePacket) Serialize(writer *data.EoWriter) error {
	return writer.AddShort(s.PlayerId)
}

func (s *PartyRemovePacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if s.PlayerId, err = reader.GetShort(); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}

// PartyClosePacket: the party was disbanded. The body is a single 255 byte.
type PartyClosePacket struct {
	byteSize int
}

func (s PartyClosePacket) Family() packet.Family {
	return packet.FamilyParty
}

func (s PartyClosePacket) Action() packet.Action {
	return packet.ActionClose
}

func (s *PartyClosePacket) ByteSize() int {
	return s.byteSize
}

func (s *PartyClosePacket) Serialize(writer *data.EoWriter) error {
	return writer.AddByte(255)
}

func (s *PartyClosePacket) Deserialize(reader *data.EoReader) error {
	return deserializePlaceholder(reader, &s.byteSize)
}

// deserializePlaceholder reads the single placeholder byte of a packet with
// no fields.
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
