package protocol

import "github.com/huoshan017/eonet/data"

// PartyMember is one entry of a party list. The name runs to the end of the
// enclosing scope, so lists of members are break-separated.
//
//	player_id     short
//	leader        char (bool)
//	level         char
//	hp_percentage char
//	name          string
type PartyMember struct {
	byteSize int

	PlayerId     int
	Leader       bool
	Level        int
	HpPercentage int
	Name         string
}

func (s *PartyMember) ByteSize() int {
	return s.byteSize
}

func (s *PartyMember) Serialize(writer *data.EoWriter) (err error) {
	if err = writer.AddShort(s.PlayerId); err != nil {
		return
	}
	if err = writer.AddChar(boolToInt(s.Leader)); err != nil {
		return
	}
	if err = writer.AddChar(s.Level); err != nil {
		return
	}
	if err = writer.AddChar(s.HpPercentage); err != nil {
		return
	}
	err = writer.AddString(s.Name)
	return
}

func (s *PartyMember) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if s.PlayerId, err = reader.GetShort(); err != nil {
		return
	}
	var leader int
	if leader, err = reader.GetChar(); err != nil {
		return
	}
	s.Leader = leader != 0
	if s.Level, err = reader.GetChar(); err != nil {
		return
	}
	if s.HpPercentage, err = reader.GetChar(); err != nil {
		return
	}
	if s.Name, err = reader.GetString(); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}
