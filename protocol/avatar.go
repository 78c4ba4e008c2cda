package protocol

import "github.com/huoshan017/eonet/data"

// Serializable is implemented by every wire structure and packet.
type Serializable interface {
	Serialize(writer *data.EoWriter) error
	Deserialize(reader *data.EoReader) error
	ByteSize() int
}

// AvatarChange describes a visible change to a nearby player.
//
//	player_id   short
//	change_type char (AvatarChangeType)
//	sound       char (bool)
//	data        one of EquipmentChange, HairChange, HairColorChange
type AvatarChange struct {
	byteSize int

	PlayerId       int
	ChangeType     AvatarChangeType
	Sound          bool
	ChangeTypeData Serializable
}

type EquipmentChange struct {
	byteSize int

	Boots  int
	Armor  int
	Hat    int
	Weapon int
	Shield int
}

type HairChange struct {
	byteSize int

	HairStyle int
	HairColor int
}

type HairColorChange struct {
	byteSize int

	HairColor int
}

func (s *AvatarChange) ByteSize() int {
	return s.byteSize
}

func (s *AvatarChange) Serialize(writer *data.EoWriter) (err error) {
	if err = writer.AddShort(s.PlayerId); err != nil {
		return
	}
	if err = writer.AddChar(int(s.ChangeType)); err != nil {
		return
	}
	if err = writer.AddChar(boolToInt(s.Sound)); err != nil {
		return
	}

	switch s.ChangeType {
	case AvatarChangeEquipment:
		if d, ok := s.ChangeTypeData.(*EquipmentChange); !ok || d == nil {
			return data.NewSerializationError("avatar change data for Equipment must be *EquipmentChange, got %T", s.ChangeTypeData)
		}
	case AvatarChangeHair:
		if d, ok := s.ChangeTypeData.(*HairChange); !ok || d == nil {
			return data.NewSerializationError("avatar change data for Hair must be *HairChange, got %T", s.ChangeTypeData)
		}
	case AvatarChangeHairColor:
		if d, ok := s.ChangeTypeData.(*HairColorChange); !ok || d == nil {
			return data.NewSerializationError("avatar change data for HairColor must be *HairColorChange, got %T", s.ChangeTypeData)
		}
	default:
		return data.NewSerializationError("unknown avatar change type %v", s.ChangeType)
	}
	return s.ChangeTypeData.Serialize(writer)
}

func (s *AvatarChange) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if s.PlayerId, err = reader.GetShort(); err != nil {
		return
	}
	var v int
	if v, err = reader.GetChar(); err != nil {
		return
	}
	s.ChangeType = AvatarChangeType(v)
	if v, err = reader.GetChar(); err != nil {
		return
	}
	s.Sound = v != 0

	switch s.ChangeType {
	case AvatarChangeEquipment:
		s.ChangeTypeData = &EquipmentChange{}
	case AvatarChangeHair:
		s.ChangeTypeData = &HairChange{}
	case AvatarChangeHairColor:
		s.ChangeTypeData = &HairColorChange{}
	default:
		s.ChangeTypeData = nil
	}
	if s.ChangeTypeData != nil {
		if err = s.ChangeTypeData.Deserialize(reader); err != nil {
			return
		}
	}
	s.byteSize = reader.Position() - start
	return
}

func (s *EquipmentChange) ByteSize() int {
	return s.byteSize
}

func (s *EquipmentChange) Serialize(writer *data.EoWriter) (err error) {
	for _, v := range [...]int{s.Boots, s.Armor, s.Hat, s.Weapon, s.Shield} {
		if err = writer.AddShort(v); err != nil {
			return
		}
	}
	return
}

func (s *EquipmentChange) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	for _, field := range [...]*int{&s.Boots, &s.Armor, &s.Hat, &s.Weapon, &s.Shield} {
		if *field, err = reader.GetShort(); err != nil {
			return
		}
	}
	s.byteSize = reader.Position() - start
	return
}

func (s *HairChange) ByteSize() int {
	return s.byteSize
}

func (s *HairChange) Serialize(writer *data.EoWriter) (err error) {
	if err = writer.AddChar(s.HairStyle); err != nil {
		return
	}
	err = writer.AddChar(s.HairColor)
	return
}

func (s *HairChange) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if s.HairStyle, err = reader.GetChar(); err != nil {
		return
	}
	if s.HairColor, err = reader.GetChar(); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}

func (s *HairColorChange) ByteSize() int {
	return s.byteSize
}

func (s *HairColorChange) Serialize(writer *data.EoWriter) error {
	return writer.AddChar(s.HairColor)
}

func (s *HairColorChange) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if s.HairColor, err = reader.GetChar(); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
