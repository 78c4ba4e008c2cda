package protocol

import "github.com/huoshan017/eonet/data"

// NearbyInfo lists the characters, npcs and items around a player. It is a
// chunked structure:
//
//	characters_count char
//	break
//	characters       CharacterMapInfo[characters_count], each followed by a break
//	npcs             NpcMapInfo[] up to the next break
//	break
//	items            ItemMapInfo[] to the end
type NearbyInfo struct {
	byteSize int

	Characters []CharacterMapInfo
	Npcs       []NpcMapInfo
	Items      []ItemMapInfo
}

func (s *NearbyInfo) ByteSize() int {
	return s.byteSize
}

func (s *NearbyInfo) Serialize(writer *data.EoWriter) (err error) {
	oldSanitize := writer.SanitizeStrings()
	defer func() { writer.SetSanitizeStrings(oldSanitize) }()

	writer.SetSanitizeStrings(true)
	if err = writer.AddChar(len(s.Characters)); err != nil {
		return
	}
	writer.AddBreak()
	for i := range s.Characters {
		if err = s.Characters[i].Serialize(writer); err != nil {
			return
		}
		writer.AddBreak()
	}
	for i := range s.Npcs {
		if err = s.Npcs[i].Serialize(writer); err != nil {
			return
		}
	}
	writer.AddBreak()
	for i := range s.Items {
		if err = s.Items[i].Serialize(writer); err != nil {
			return
		}
	}
	return
}

func (s *NearbyInfo) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	reader.SetIsChunked(true)

	var count int
	if count, err = reader.GetChar(); err != nil {
		return
	}
	if err = reader.NextChunk(); err != nil {
		return
	}
	s.Characters = make([]CharacterMapInfo, count)
	for i := 0; i < count; i++ {
		if err = s.Characters[i].Deserialize(reader); err != nil {
			return
		}
		if err = reader.NextChunk(); err != nil {
			return
		}
	}

	s.Npcs = nil
	for reader.Remaining() > 0 {
		var npc NpcMapInfo
		if err = npc.Deserialize(reader); err != nil {
			return
		}
		s.Npcs = append(s.Npcs, npc)
	}
	if err = reader.NextChunk(); err != nil {
		return
	}

	s.Items = nil
	for reader.Remaining() > 0 {
		var item ItemMapInfo
		if err = item.Deserialize(reader); err != nil {
			return
		}
		s.Items = append(s.Items, item)
	}
	s.byteSize = reader.Position() - start
	return
}

// CharacterMapInfo describes a character visible on the map. The name is
// terminated by a break, the rest of the fields are fixed width.
type CharacterMapInfo struct {
	byteSize int

	Name      string
	PlayerId  int
	MapId     int
	Coords    BigCoords
	Direction Direction
	ClassId   int
	GuildTag  string
	Level     int
	Gender    Gender
	HairStyle int
	HairColor int
	Skin      int
	MaxHp     int
	Hp        int
	MaxTp     int
	Tp        int
	Equipment EquipmentMapInfo
	SitState  SitState
	Invisible bool
}

func (s *CharacterMapInfo) ByteSize() int {
	return s.byteSize
}

func (s *CharacterMapInfo) Serialize(writer *data.EoWriter) (err error) {
	oldSanitize := writer.SanitizeStrings()
	defer func() { writer.SetSanitizeStrings(oldSanitize) }()

	writer.SetSanitizeStrings(true)
	if err = writer.AddString(s.Name); err != nil {
		return
	}
	writer.AddBreak()
	if err = writer.AddShort(s.PlayerId); err != nil {
		return
	}
	if err = writer.AddShort(s.MapId); err != nil {
		return
	}
	if err = s.Coords.Serialize(writer); err != nil {
		return
	}
	if err = writer.AddChar(int(s.Direction)); err != nil {
		return
	}
	if err = writer.AddChar(s.ClassId); err != nil {
		return
	}
	if err = writer.AddFixedString(s.GuildTag, 3, false); err != nil {
		return
	}
	if err = writer.AddChar(s.Level); err != nil {
		return
	}
	if err = writer.AddChar(int(s.Gender)); err != nil {
		return
	}
	for _, v := range [...]int{s.HairStyle, s.HairColor, s.Skin} {
		if err = writer.AddChar(v); err != nil {
			return
		}
	}
	for _, v := range [...]int{s.MaxHp, s.Hp, s.MaxTp, s.Tp} {
		if err = writer.AddShort(v); err != nil {
			return
		}
	}
	if err = s.Equipment.Serialize(writer); err != nil {
		return
	}
	if err = writer.AddChar(int(s.SitState)); err != nil {
		return
	}
	err = writer.AddChar(boolToInt(s.Invisible))
	return
}

func (s *CharacterMapInfo) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	reader.SetIsChunked(true)
	if s.Name, err = reader.GetString(); err != nil {
		return
	}
	if err = reader.NextChunk(); err != nil {
		return
	}
	if s.PlayerId, err = reader.GetShort(); err != nil {
		return
	}
	if s.MapId, err = reader.GetShort(); err != nil {
		return
	}
	if err = s.Coords.Deserialize(reader); err != nil {
		return
	}
	var v int
	if v, err = reader.GetChar(); err != nil {
		return
	}
	s.Direction = Direction(v)
	if s.ClassId, err = reader.GetChar(); err != nil {
		return
	}
	if s.GuildTag, err = reader.GetFixedString(3, false); err != nil {
		return
	}
	if s.Level, err = reader.GetChar(); err != nil {
		return
	}
	if v, err = reader.GetChar(); err != nil {
		return
	}
	s.Gender = Gender(v)
	for _, field := range [...]*int{&s.HairStyle, &s.HairColor, &s.Skin} {
		if *field, err = reader.GetChar(); err != nil {
			return
		}
	}
	for _, field := range [...]*int{&s.MaxHp, &s.Hp, &s.MaxTp, &s.Tp} {
		if *field, err = reader.GetShort(); err != nil {
			return
		}
	}
	if err = s.Equipment.Deserialize(reader); err != nil {
		return
	}
	if v, err = reader.GetChar(); err != nil {
		return
	}
	s.SitState = SitState(v)
	if v, err = reader.GetChar(); err != nil {
		return
	}
	s.Invisible = v != 0
	s.byteSize = reader.Position() - start
	return
}

// EquipmentMapInfo is the graphic ids of the equipment shown on the map.
type EquipmentMapInfo struct {
	byteSize int

	Boots  int
	Armor  int
	Hat    int
	Shield int
	Weapon int
}

func (s *EquipmentMapInfo) ByteSize() int {
	return s.byteSize
}

func (s *EquipmentMapInfo) Serialize(writer *data.EoWriter) (err error) {
	for _, v := range [...]int{s.Boots, s.Armor, s.Hat, s.Shield, s.Weapon} {
		if err = writer.AddShort(v); err != nil {
			return
		}
	}
	return
}

func (s *EquipmentMapInfo) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	for _, field := range [...]*int{&s.Boots, &s.Armor, &s.Hat, &s.Shield, &s.Weapon} {
		if *field, err = reader.GetShort(); err != nil {
			return
		}
	}
	s.byteSize = reader.Position() - start
	return
}

// NpcMapInfo is an npc visible on the map.
//
//	index     char
//	id        short
//	coords    Coords
//	direction char
type NpcMapInfo struct {
	byteSize int

	Index     int
	Id        int
	Coords    Coords
	Direction Direction
}

func (s *NpcMapInfo) ByteSize() int {
	return s.byteSize
}

func (s *NpcMapInfo) Serialize(writer *data.EoWriter) (err error) {
	if err = writer.AddChar(s.Index); err != nil {
		return
	}
	if err = writer.AddShort(s.Id); err != nil {
		return
	}
	if err = s.Coords.Serialize(writer); err != nil {
		return
	}
	err = writer.AddChar(int(s.Direction))
	return
}

func (s *NpcMapInfo) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if s.Index, err = reader.GetChar(); err != nil {
		return
	}
	if s.Id, err = reader.GetShort(); err != nil {
		return
	}
	if err = s.Coords.Deserialize(reader); err != nil {
		return
	}
	var v int
	if v, err = reader.GetChar(); err != nil {
		return
	}
	s.Direction = Direction(v)
	s.byteSize = reader.Position() - start
	return
}

// ItemMapInfo is an item lying on the map.
//
//	uid    short
//	id     short
//	coords Coords
//	amount three
type ItemMapInfo struct {
	byteSize int

	Uid    int
	Id     int
	Coords Coords
	Amount int
}

func (s *ItemMapInfo) ByteSize() int {
	return s.byteSize
}

func (s *ItemMapInfo) Serialize(writer *data.EoWriter) (err error) {
	if err = writer.AddShort(s.Uid); err != nil {
		return
	}
	if err = writer.AddShort(s.Id); err != nil {
		return
	}
	if err = s.Coords.Serialize(writer); err != nil {
		return
	}
	err = writer.AddThree(s.Amount)
	return
}

func (s *ItemMapInfo) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if s.Uid, err = reader.GetShort(); err != nil {
		return
	}
	if s.Id, err = reader.GetShort(); err != nil {
		return
	}
	if err = s.Coords.Deserialize(reader); err != nil {
		return
	}
	if s.Amount, err = reader.GetThree(); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}
