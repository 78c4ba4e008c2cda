package server

import (
	"github.com/huoshan017/eonet/data"
	"github.com/huoshan017/eonet/packet"
)

// ConnectionPlayerPacket is the keep-alive ping. It also carries the next
// sequence start as ping values.
//
//	seq1 short
//	seq2 char
type ConnectionPlayerPacket struct {
	byteSize int

	Seq1 int
	Seq2 int
}

func (s ConnectionPlayerPacket) Family() packet.Family {
	return packet.FamilyConnection
}

func (s ConnectionPlayerPacket) Action() packet.Action {
	return packet.ActionPlayer
}

func (s *ConnectionPlayerPacket) ByteSize() int {
	return s.byteSize
}

func (s *ConnectionPlayerPacket) Serialize(writer *data.EoWriter) (err error) {
	if err = writer.AddShort(s.Seq1); err != nil {
		return
	}
	err = writer.AddChar(s.Seq2)
	return
}

func (s *ConnectionPlayerPacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if s.Seq1, err = reader.GetShort(); err != nil {
		return
	}
	if s.Seq2, err = reader.GetChar(); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}

// SequenceStart returns the sequence start the ping announces.
func (s *ConnectionPlayerPacket) SequenceStart() *packet.PingSequenceStart {
	return packet.NewPingSequenceStartFromValues(s.Seq1, s.Seq2)
}

// MessagePongPacket answers the #ping command. The body is the short 2.
type MessagePongPacket struct {
	byteSize int
}

func (s MessagePongPacket) Family() packet.Family {
	return packet.FamilyMessage
}

func (s MessagePongPacket) Action() packet.Action {
	return packet.ActionPong
}

func (s *MessagePongPacket) ByteSize() int {
	return s.byteSize
}

func (s *MessagePongPacket) Serialize(writer *data.EoWriter) error {
	return writer.AddShort(2)
}

func (s *MessagePongPacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if _, err = reader.GetShort(); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}

// TalkPlayerPacket is public chat from a nearby player.
//
//	player_id short
//	message   string
type TalkPlayerPacket struct {
	byteSize int

	PlayerId int
	Message  string
}

func (s TalkPlayerPacket) Family() packet.Family {
	return packet.FamilyTalk
}

func (s TalkPlayerPacket) Action() packet.Action {
	return packet.ActionPlayer
}

func (s *TalkPlayerPacket) ByteSize() int {
	return s.byteSize
}

func (s *TalkPlayerPacket) Serialize(writer *data.EoWriter) (err error) {
	if err = writer.AddShort(s.PlayerId); err != nil {
		return
	}
	err = writer.AddString(s.Message)
	return
}

func (s *TalkPlayerPacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if s.PlayerId, err = reader.GetShort(); err != nil {
		return
	}
	if s.Message, err = reader.GetString(); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}
