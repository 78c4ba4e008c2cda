package client

import (
	"github.com/huoshan017/eonet/data"
	"github.com/huoshan017/eonet/packet"
	"github.com/huoshan017/eonet/protocol"
)

// InitInitPacket is the first packet of a connection. The body is the
// challenge (three), the client version, the char 112, then the hardware id
// as a char length and a string.
type InitInitPacket struct {
	byteSize int

	Challenge int
	Version   protocol.Version
	Hdid      string
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
	if err = writer.AddThree(s.Challenge); err != nil {
		return
	}
	if err = s.Version.Serialize(writer); err != nil {
		return
	}
	if err = writer.AddChar(112); err != nil {
		return
	}
	var hdidLength int
	if hdidLength, err = data.StringLength(s.Hdid); err != nil {
		return
	}
	if err = writer.AddChar(hdidLength); err != nil {
		return
	}
	err = writer.AddFixedString(s.Hdid, hdidLength, false)
	return
}

func (s *InitInitPacket) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if s.Challenge, err = reader.GetThree(); err != nil {
		return
	}
	if err = s.Version.Deserialize(reader); err != nil {
		return
	}
	if _, err = reader.GetChar(); err != nil {
		return
	}
	var hdidLength int
	if hdidLength, err = reader.GetChar(); err != nil {
		return
	}
	if s.Hdid, err = reader.GetFixedString(hdidLength, false); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}
