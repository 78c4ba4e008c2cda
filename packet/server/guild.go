package server

import (
	"github.com/huoshan017/eonet/data"
	"github.com/huoshan017/eonet/packet"
)

// GuildAcceptPacket updates the player's guild rank.
//
//	rank char
type GuildAcceptPacket struct {
	byteSize int

	Rank int
}

func (s GuildAcceptPacket) Family() packet.Family {
	return packet.FamilyGuild
}

func (s GuildAcceptPacket) Action() packet.Action {
	return packet.ActionAccept
}

func (s *GuildAcceptPacket) ByteSize() int {
	return s.byteSize
}

func (s *GuildAcceptPacket) Serialize(writer *data.EoWriter) error {
	return writer.AddChar(s.Rank)
}

func (s *GuildAcceptPacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if s.Rank, err = reader.GetChar(); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}

// GuildTakePacket answers a guild description request.
//
//	description string
type GuildTakePacket struct {
	byteSize int

	Description string
}

func (s GuildTakePacket) Family() packet.Family {
	return packet.FamilyGuild
}

func (s GuildTakePacket) Action() packet.Action {
	return packet.ActionTake
}

func (s *GuildTakePacket) ByteSize() int {
	return s.byteSize
}

func (s *GuildTakePacket) Serialize(writer *data.EoWriter) error {
	return writer.AddString(s.Description)
}

func (s *GuildTakePacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if s.Description, err = reader.GetString(); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}
