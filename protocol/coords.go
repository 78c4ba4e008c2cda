// Package protocol holds the enums and sub-structures shared by client and
// server packets. Every structure serializes its fields in wire order and
// records how many bytes its last Deserialize consumed.
package protocol

import "github.com/huoshan017/eonet/data"

// Coords is a map position encoded as two chars.
type Coords struct {
	byteSize int

	X int
	Y int
}

func (s *Coords) ByteSize() int {
	return s.byteSize
}

func (s *Coords) Serialize(writer *data.EoWriter) (err error) {
	if err = writer.AddChar(s.X); err != nil {
		return
	}
	err = writer.AddChar(s.Y)
	return
}

func (s *Coords) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if s.X, err = reader.GetChar(); err != nil {
		return
	}
	if s.Y, err = reader.GetChar(); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}

// BigCoords is a map position encoded as two shorts.
type BigCoords struct {
	byteSize int

	X int
	Y int
}

func (s *BigCoords) ByteSize() int {
	return s.byteSize
}

func (s *BigCoords) Serialize(writer *data.EoWriter) (err error) {
	if err = writer.AddShort(s.X); err != nil {
		return
	}
	err = writer.AddShort(s.Y)
	return
}

func (s *BigCoords) Deserialize(reader *data.EoReader) (err error) {
	oldChunked := reader.IsChunked()
	defer func() { reader.SetIsChunked(oldChunked) }()

	start := reader.Position()
	if s.X, err = reader.GetShort(); err != nil {
		return
	}
	if s.Y, err = reader.GetShort(); err != nil {
		return
	}
	s.byteSize = reader.Position() - start
	return
}
