package capture

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"io"

	"github.com/golang/snappy"
)

type CompressType int8

const (
	CompressNone   CompressType = iota
	CompressZlib   CompressType = 1
	CompressGzip   CompressType = 2
	CompressSnappy CompressType = 3
	CompressMax    CompressType = 4
)

var compressTypeNames = [...]string{"none", "zlib", "gzip", "snappy"}

func IsValidCompressType(typ CompressType) bool {
	if typ < CompressNone || typ >= CompressMax {
		return false
	}
	return true
}

func (typ CompressType) String() string {
	if !IsValidCompressType(typ) {
		return "invalid"
	}
	return compressTypeNames[typ]
}

// ParseCompressType is the inverse of CompressType.String.
func ParseCompressType(name string) (CompressType, bool) {
	for i, n := range compressTypeNames {
		if n == name {
			return CompressType(i), true
		}
	}
	return CompressNone, false
}

type ICompressor interface {
	Compress([]byte) ([]byte, error)
	Close() error
}

type IDecompressor interface {
	Decompress([]byte) ([]byte, error)
	Close() error
}

func newCompressor(typ CompressType) ICompressor {
	switch typ {
	case CompressZlib:
		return NewZlibCompressor()
	case CompressGzip:
		return NewGzipCompressor()
	case CompressSnappy:
		return NewSnappyCompressor()
	}
	return nopCompressor{}
}

func newDecompressor(typ CompressType) IDecompressor {
	switch typ {
	case CompressZlib:
		return NewZlibDecompressor()
	case CompressGzip:
		return NewGzipDecompressor()
	case CompressSnappy:
		return NewSnappyDecompressor()
	}
	return nopCompressor{}
}

type nopCompressor struct{}

func (nopCompressor) Compress(data []byte) ([]byte, error)   { return data, nil }
func (nopCompressor) Decompress(data []byte) ([]byte, error) { return data, nil }
func (nopCompressor) Close() error                           { return nil }

// ZlibCompressor emits one complete zlib stream per call. The result is only
// valid until the next call.
type ZlibCompressor struct {
	writer      *zlib.Writer
	writeBuffer bytes.Buffer
}

func NewZlibCompressor() *ZlibCompressor {
	c := &ZlibCompressor{}
	c.writer = zlib.NewWriter(&c.writeBuffer)
	return c
}

func (c *ZlibCompressor) Compress(data []byte) ([]byte, error) {
	c.writeBuffer.Reset()
	c.writer.Reset(&c.writeBuffer)
	if _, err := c.writer.Write(data); err != nil {
		return nil, err
	}
	if err := c.writer.Close(); err != nil {
		return nil, err
	}
	return c.writeBuffer.Bytes(), nil
}

func (c *ZlibCompressor) Close() error {
	return nil
}

type ZlibDecompressor struct {
}

func NewZlibDecompressor() *ZlibDecompressor {
	return &ZlibDecompressor{}
}

func (c *ZlibDecompressor) Decompress(data []byte) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return readLimited(reader)
}

func (c *ZlibDecompressor) Close() error {
	return nil
}

// GzipCompressor emits one complete gzip member per call. The result is only
// valid until the next call.
type GzipCompressor struct {
	writer      *gzip.Writer
	writeBuffer bytes.Buffer
}

func NewGzipCompressor() *GzipCompressor {
	c := &GzipCompressor{}
	c.writer = gzip.NewWriter(&c.writeBuffer)
	return c
}

func (c *GzipCompressor) Compress(data []byte) ([]byte, error) {
	c.writeBuffer.Reset()
	c.writer.Reset(&c.writeBuffer)
	if _, err := c.writer.Write(data); err != nil {
		return nil, err
	}
	if err := c.writer.Close(); err != nil {
		return nil, err
	}
	return c.writeBuffer.Bytes(), nil
}

func (c *GzipCompressor) Close() error {
	return nil
}

type GzipDecompressor struct {
}

func NewGzipDecompressor() *GzipDecompressor {
	return &GzipDecompressor{}
}

func (c *GzipDecompressor) Decompress(data []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return readLimited(reader)
}

func (c *GzipDecompressor) Close() error {
	return nil
}

type SnappyCompressor struct {
}

func NewSnappyCompressor() *SnappyCompressor {
	return &SnappyCompressor{}
}

func (c *SnappyCompressor) Compress(data []byte) ([]byte, error) {
	return snappy.Encode(nil, data), nil
}

func (c *SnappyCompressor) Close() error {
	return nil
}

type SnappyDecompressor struct {
}

func NewSnappyDecompressor() *SnappyDecompressor {
	return &SnappyDecompressor{}
}

func (c *SnappyDecompressor) Decompress(data []byte) ([]byte, error) {
	n, err := snappy.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if n > maxRecordLen {
		return nil, ErrRecordTooLarge
	}
	return snappy.Decode(nil, data)
}

func (c *SnappyDecompressor) Close() error {
	return nil
}

// readLimited reads r to the end, failing once more than maxRecordLen bytes
// come out.
func readLimited(r io.Reader) ([]byte, error) {
	var rd bytes.Buffer
	if _, err := io.Copy(&rd, io.LimitReader(r, maxRecordLen+1)); err != nil {
		return nil, err
	}
	if rd.Len() > maxRecordLen {
		return nil, ErrRecordTooLarge
	}
	return rd.Bytes(), nil
}
