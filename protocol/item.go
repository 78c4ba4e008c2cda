package protocol

import "github.com/huoshan017/eonet/data"

// Item is an item id with an int amount.
type Item struct {
	byteSize int

	Id     int
	Amount int
}

func (s *Item) ByteSize() int {
	return s.byteSize
}

func (s *Item) Serialize(writer *data.EoWriter) (err error) {
	if err = writer.AddShort(s.Id); err != nil {
		return
	}
	err = writer.AddInt(s.Amount)
	return
}

func (s *Item) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if s.Id, err = reader.GetShort(); err != nil {
		return
	}
	if s.Amount, err = reader.GetInt(); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}

// ThreeItem is an item id with a three-byte amount.
type ThreeItem struct {
	byteSize int

	Id     int
	Amount int
}

func (s *ThreeItem) ByteSize() int {
	return s.byteSize
}

func (s *ThreeItem) Serialize(writer *data.EoWriter) (err error) {
	if err = writer.AddShort(s.Id); err != nil {
		return
	}
	err = writer.AddThree(s.Amount)
	return
}

func (s *ThreeItem) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if s.Id, err = reader.GetShort(); err != nil {
		return
	}
	if s.Amount, err = reader.GetThree(); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}

// Weight is the current and maximum carry weight of a character.
type Weight struct {
	byteSize int

	Current int
	Max     int
}

func (s *Weight) ByteSize() int {
	return s.byteSize
}

func (s *Weight) Serialize(writer *data.EoWriter) (err error) {
	if err = writer.AddChar(s.Current); err != nil {
		return
	}
	err = writer.AddChar(s.Max)
	return
}

func (s *Weight) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if s.Current, err = reader.GetChar(); err != nil {
		return
	}
	if s.Max, err = reader.GetChar(); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}
