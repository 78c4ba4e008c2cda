package server

import (
	"github.com/huoshan017/eonet/data"
	"github.com/huoshan017/eonet/packet"
	"github.com/huoshan017/eonet/protocol"
)

// NpcJunkPacket clears the children of a boss npc.
//
//	npc_id short
type NpcJunkPacket struct {
	byteSize int

	NpcId int
}

func (s NpcJunkPacket) Family() packet.Family {
	return packet.FamilyNpc
}

func (s NpcJunkPacket) Action() packet.Action {
	return packet.ActionJunk
}

func (s *NpcJunkPacket) ByteSize() int {
	return s.byteSize
}

func (s *NpcJunkPacket) Serialize(writer *data.EoWriter) error {
	return writer.AddShort(s.NpcId)
}

func (s *NpcJunkPacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if s.NpcId, err = reader.GetShort(); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}

// NpcAgreePacket lists npcs that came into view.
//
//	npcs_count char
//	npcs       NpcMapInfo[npcs_count]
type NpcAgreePacket struct {
	byteSize int

	Npcs []protocol.NpcMapInfo
}

func (s NpcAgreePacket) Family() packet.Family {
	return packet.FamilyNpc
}

func (s NpcAgreePacket) Action() packet.Action {
	return packet.ActionAgree
}

func (s *NpcAgreePacket) ByteSize() int {
	return s.byteSize
}

func (s *NpcAgreePacket) Serialize(writer *data.EoWriter) (err error) {
	if err = writer.AddChar(len(s.Npcs)); err != nil {
		return
	}
	for i := range s.Npcs {
		if err = s.Npcs[i].Serialize(writer); err != nil {
			return
		}
	}
	return
}

func (s *NpcAgreePacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	var count int
	if count, err = reader.GetChar(); err != nil {
		return
	}
	s.Npcs = make([]protocol.NpcMapInfo, count)
	for i := 0; i < count; i++ {
		if err = s.Npcs[i].Deserialize(reader); err != nil {
			return
		}
	}
	s.byteSize = reader.Position() - start
	return
}
