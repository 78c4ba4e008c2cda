package server

import (
	"github.com/huoshan017/eonet/data"
	"github.com/huoshan017/eonet/packet"
	"github.com/huoshan017/eonet/protocol"
)

// AvatarAgreePacket shows a nearby player's appearance changing.
//
//	change AvatarChange
type AvatarAgreePacket struct {
	byteSize int

	Change protocol.AvatarChange
}

func (s AvatarAgreePacket) Family() packet.Family {
	return packet.FamilyAvatar
}

func (s AvatarAgreePacket) Action() packet.Action {
	return packet.ActionAgree
}

func (s *AvatarAgreePacket) ByteSize() int {
	return s.byteSize
}

func (s *AvatarAgreePacket) Serialize(writer *data.EoWriter) error {
	return s.Change.Serialize(writer)
}

func (s *AvatarAgreePacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if err = s.Change.Deserialize(reader); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}

// AvatarRemovePacket removes a player from view. The warp effect is only
// present when the player warped away.
//
//	player_id   short
//	warp_effect char, optional
type AvatarRemovePacket struct {
	byteSize int

	PlayerId   int
	WarpEffect *protocol.WarpEffect
}

func (s AvatarRemovePacket) Family() packet.Family {
	return packet.FamilyAvatar
}

func (s AvatarRemovePacket) Action() packet.Action {
	return packet.ActionRemove
}

func (s *AvatarRemovePacket) ByteSize() int {
	return s.byteSize
}

func (s *AvatarRemovePacket) Serialize(writer *data.EoWriter) (err error) {
	if err = writer.AddShort(s.PlayerId); err != nil {
		return
	}
	if s.WarpEffect != nil {
		err = writer.AddChar(int(*s.WarpEffect))
	}
	return
}

func (s *AvatarRemovePacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if s.PlayerId, err = reader.GetShort(); err != nil {
		return
	}
	s.WarpEffect = nil
	if reader.Remaining() > 0 {
		var v int
		if v, err = reader.GetChar(); err != nil {
			return
		}
		effect := protocol.WarpEffect(v)
		s.WarpEffect = &effect
	}
	s.byteSize = reader.Position() - start
	return
}
