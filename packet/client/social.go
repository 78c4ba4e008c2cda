package client

import (
	"github.com/huoshan017/eonet/data"
	"github.com/huoshan017/eonet/packet"
	"github.com/huoshan017/eonet/protocol"
)

// TalkReportPacket is public chat.
//
//	message string
type TalkReportPacket struct {
	byteSize int

	Message string
}

func (s TalkReportPacket) Family() packet.Family {
	return packet.FamilyTalk
}

func (s TalkReportPacket) Action() packet.Action {
	return packet.ActionReport
}

func (s *TalkReportPacket) ByteSize() int {
	return s.byteSize
}

func (s *TalkReportPacket) Serialize(writer *data.EoWriter) error {
	return writer.AddString(s.Message)
}

func (s *TalkReportPacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if s.Message, err = reader.GetString(); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}

// GuildTakePacket requests guild details.
//
//	session_id int
//	info_type  short
//	guild_tag  string
type GuildTakePacket struct {
	byteSize int

	SessionId int
	InfoType  protocol.GuildInfoType
	GuildTag  string
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

func (s *GuildTakePacket) Serialize(writer *data.EoWriter) (err error) {
	if err = writer.AddInt(s.SessionId); err != nil {
		return
	}
	if err = writer.AddShort(int(s.InfoType)); err != nil {
		return
	}
	err = writer.AddString(s.GuildTag)
	return
}

func (s *GuildTakePacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if s.SessionId, err = reader.GetInt(); err != nil {
		return
	}
	var v int
	if v, err = reader.GetShort(); err != nil {
		return
	}
	s.InfoType = protocol.GuildInfoType(v)
	if s.GuildTag, err = reader.GetString(); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}

// PlayersAcceptPacket is the #find command.
//
//	name string
type PlayersAcceptPacket struct {
	byteSize int

	Name string
}

func (s PlayersAcceptPacket) Family() packet.Family {
	return packet.FamilyPlayers
}

func (s PlayersAcceptPacket) Action() packet.Action {
	return packet.ActionAccept
}

func (s *PlayersAcceptPacket) ByteSize() int {
	return s.byteSize
}

func (s *PlayersAcceptPacket) Serialize(writer *data.EoWriter) error {
	return writer.AddString(s.Name)
}

func (s *PlayersAcceptPacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if s.Name, err = reader.GetString(); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}

// PlayersRequestPacket asks for the online player list. The body is a single
// 255 byte.
type PlayersRequestPacket struct {
	byteSize int
}

func (s PlayersRequestPacket) Family() packet.Family {
	return packet.FamilyPlayers
}

func (s PlayersRequestPacket) Action() packet.Action {
	return packet.ActionRequest
}

func (s *PlayersRequestPacket) ByteSize() int {
	return s.byteSize
}

func (s *PlayersRequestPacket) Serialize(writer *data.EoWriter) error {
	return writer.AddByte(255)
}

func (s *PlayersRequestPacket) Deserialize(reader *data.EoReader) error {
	return deserializePlaceholder(reader, &s.byteSize)
}

// PartyRequestPacket invites a player to a party, or asks to join theirs.
//
//	request_type char
//	player_id    short
type PartyRequestPacket struct {
	byteSize int

	RequestType int
	PlayerId    int
}

func (s PartyRequestPacket) Family() packet.Family {
	return packet.FamilyParty
}

func (s PartyRequestPacket) Action() packet.Action {
	return packet.ActionRequest
}

func (s *PartyRequestPacket) ByteSize() int {
	return s.byteSize
}

func (s *PartyRequestPacket) Serialize(writer *data.EoWriter) (err error) {
	if err = writer.AddChar(s.RequestType); err != nil {
		return
	}
	err = writer.AddShort(s.PlayerId)
	return
}

func (s *PartyRequestPacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if s.RequestType, err = reader.GetChar(); err != nil {
		return
	}
	if s.PlayerId, err = reader.GetShort(); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}
