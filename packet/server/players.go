package server

import (
	"github.com/huoshan017/eonet/data"
	"github.com/huoshan017/eonet/packet"
	"github.com/huoshan017/eonet/protocol"
)

// The #find replies carry only the player name, as raw bytes up to the end
// of the packet.

// PlayersPingPacket: the player is not online.
type PlayersPingPacket struct {
	byteSize int

	Name string
}

func (s PlayersPingPacket) Family() packet.Family {
	return packet.FamilyPlayers
}

func (s PlayersPingPacket) Action() packet.Action {
	return packet.ActionPing
}

func (s *PlayersPingPacket) ByteSize() int {
	return s.byteSize
}

func (s *PlayersPingPacket) Serialize(writer *data.EoWriter) error {
	return writer.AddString(s.Name)
}

func (s *PlayersPingPacket) Deserialize(reader *data.EoReader) error {
	return deserializeName(reader, &s.Name, &s.byteSize)
}

// PlayersPongPacket: the player is online on the same map.
type PlayersPongPacket struct {
	byteSize int

	Name string
}

func (s PlayersPongPacket) Family() packet.Family {
	return packet.FamilyPlayers
}

func (s PlayersPongPacket) Action() packet.Action {
	return packet.ActionPong
}

func (s *PlayersPongPacket) ByteSize() int {
	return s.byteSize
}

func (s *PlayersPongPacket) Serialize(writer *data.EoWriter) error {
	return writer.AddString(s.Name)
}

func (s *PlayersPongPacket) Deserialize(reader *data.EoReader) error {
	return deserializeName(reader, &s.Name, &s.byteSize)
}

// PlayersNet242Packet: the player is online on another map.
type PlayersNet242Packet struct {
	byteSize int

	Name string
}

func (s PlayersNet242Packet) Family() packet.Family {
	return packet.FamilyPlayers
}

func (s PlayersNet242Packet) Action() packet.Action {
	return packet.ActionNet242
}

func (s *PlayersNet242Packet) ByteSize() int {
	return s.byteSize
}

func (s *PlayersNet242Packet) Serialize(writer *data.EoWriter) error {
	return writer.AddString(s.Name)
}

func (s *PlayersNet242Packet) Deserialize(reader *data.EoReader) error {
	return deserializeName(reader, &s.Name, &s.byteSize)
}

func deserializeName(reader *data.EoReader, name *string, byteSize *int) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if *name, err = reader.GetString(); err != nil {
		return
	}
	*byteSize = reader.Position() - start
	return
}

// PlayersAgreePacket announces a player entering the client's view.
//
//	nearby NearbyInfo
type PlayersAgreePacket struct {
	byteSize int

	Nearby protocol.NearbyInfo
}

func (s PlayersAgreePacket) Family() packet.Family {
	return packet.FamilyPlayers
}

func (s PlayersAgreePacket) Action() packet.Action {
	return packet.ActionAgree
}

func (s *PlayersAgreePacket) ByteSize() int {
	return s.byteSize
}

func (s *PlayersAgreePacket) Serialize(writer *data.EoWriter) error {
	return s.Nearby.Serialize(writer)
}

func (s *PlayersAgreePacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if err = s.Nearby.Deserialize(reader); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}
