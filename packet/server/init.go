package server

import (
	"github.com/huoshan017/eonet/data"
	"github.com/huoshan017/eonet/packet"
	"github.com/huoshan017/eonet/protocol"
)

// InitInitPacket answers the client's init request. The body is the reply
// code byte followed by InitOk for InitReplyOk or the expected Version for
// InitReplyOutOfDate. Other codes carry nothing.
type InitInitPacket struct {
	byteSize int

	ReplyCode protocol.InitReply
	Ok        *protocol.InitOk
	Version   *protocol.Version
}

func (s InitInitPacket) Family() packet.Family {
	return packet.FamilyInit
}

func (s InitInitPacket) Action() packet.Action {
	return packet.ActionInit
}

func (s *InitInitPacket) ByteSize() int {
	return s.byteSize
}

func (s *InitInitPacket) Serialize(writer *data.EoWriter) (err error) {
	if err = writer.AddByte(int(s.ReplyCode)); err != nil {
		return
	}
	switch s.ReplyCode {
	case protocol.InitReplyOk:
		if s.Ok == nil {
			return data.NewSerializationError("init reply %v needs Ok data", s.ReplyCode)
		}
		return s.Ok.Serialize(writer)
	case protocol.InitReplyOutOfDate:
		if s.Version == nil {
			return data.NewSerializationError("init reply %v needs a Version", s.ReplyCode)
		}
		return s.Version.Serialize(writer)
	}
	return
}

func (s *InitInitPacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	var code int
	if code, err = reader.GetByte(); err != nil {
		return
	}
	s.ReplyCode = protocol.InitReply(code)
	s.Ok, s.Version = nil, nil
	switch s.ReplyCode {
	case protocol.InitReplyOk:
		s.Ok = &protocol.InitOk{}
		if err = s.Ok.Deserialize(reader); err != nil {
			return
		}
	case protocol.InitReplyOutOfDate:
		s.Version = &protocol.Version{}
		if err = s.Version.Deserialize(reader); err != nil {
			return
		}
	}
	s.byteSize = reader.Position() - start
	return
}
