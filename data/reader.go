package data

// EoReader is a bounds-checked cursor over an inbound packet body.
//
// In chunked reading mode every read is additionally bounded by the next
// break byte (0xFF) after the start of the current chunk. NextChunk moves the
// cursor past that break. Reads never clamp: asking for more bytes than
// Remaining returns an *OutOfDataError and leaves the cursor untouched.
type EoReader struct {
	data       []byte
	position   int
	chunked    bool
	chunkStart int
	nextBreak  int
}

func NewReader(data []byte) *EoReader {
	return &EoReader{
		data:      data,
		nextBreak: -1,
	}
}

// Slice returns a reader over length bytes starting at index. The new reader
// shares the underlying data and starts unchunked at position 0.
func (r *EoReader) Slice(index, length int) (*EoReader, error) {
	if index < 0 || length < 0 || index > len(r.data) || length > len(r.data)-index {
		return nil, ErrInvalidSliceArgs
	}
	return NewReader(r.data[index : index+length]), nil
}

// SliceRemaining returns a reader over everything after the cursor.
func (r *EoReader) SliceRemaining() *EoReader {
	return NewReader(r.data[r.position:])
}

func (r *EoReader) Position() int {
	return r.position
}

// Length is the size of the whole underlying buffer.
func (r *EoReader) Length() int {
	return len(r.data)
}

// Remaining is the number of bytes left in the current scope.
func (r *EoReader) Remaining() int {
	if r.chunked {
		pos := r.position
		if pos > r.nextBreak {
			pos = r.nextBreak
		}
		return r.nextBreak - pos
	}
	return len(r.data) - r.position
}

func (r *EoReader) IsChunked() bool {
	return r.chunked
}

// SetIsChunked toggles chunked reading mode. The first switch into chunked
// mode starts a chunk at the cursor and locates the break that ends it.
func (r *EoReader) SetIsChunked(chunked bool) {
	r.chunked = chunked
	if r.nextBreak == -1 {
		r.chunkStart = r.position
		r.nextBreak = r.findNextBreakIndex()
	}
}

// NextChunk moves the cursor to the start of the next chunk.
func (r *EoReader) NextChunk() error {
	if !r.chunked {
		return ErrNotChunked
	}
	r.position = r.nextBreak
	if r.position < len(r.data) {
		// skip the break byte
		r.position++
	}
	r.chunkStart = r.position
	r.nextBreak = r.findNextBreakIndex()
	return nil
}

func (r *EoReader) findNextBreakIndex() int {
	for i := r.chunkStart; i < len(r.data); i++ {
		if r.data[i] == BreakByte {
			return i
		}
	}
	return len(r.data)
}

func (r *EoReader) readBytes(length int) ([]byte, error) {
	remaining := r.Remaining()
	if length < 0 || length > remaining {
		return nil, &OutOfDataError{Position: r.position, Requested: length, Remaining: remaining}
	}
	b := r.data[r.position : r.position+length]
	r.position += length
	return b, nil
}

// GetByte reads a raw byte.
func (r *EoReader) GetByte() (int, error) {
	b, err := r.readBytes(1)
	if err != nil {
		return 0, err
	}
	return int(b[0]), nil
}

// GetBytes reads length raw bytes. The result is a copy.
func (r *EoReader) GetBytes(length int) ([]byte, error) {
	b, err := r.readBytes(length)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), b...), nil
}

func (r *EoReader) GetChar() (int, error) {
	return r.getNumber(1)
}

func (r *EoReader) GetShort() (int, error) {
	return r.getNumber(2)
}

func (r *EoReader) GetThree() (int, error) {
	return r.getNumber(3)
}

func (r *EoReader) GetInt() (int, error) {
	return r.getNumber(4)
}

func (r *EoReader) getNumber(size int) (int, error) {
	b, err := r.readBytes(size)
	if err != nil {
		return 0, err
	}
	return DecodeNumber(b), nil
}

// GetString reads every remaining byte of the current scope.
func (r *EoReader) GetString() (string, error) {
	b, err := r.readBytes(r.Remaining())
	if err != nil {
		return "", err
	}
	return bytesToString(b), nil
}

// GetFixedString reads exactly length bytes. Padded strings have their
// trailing 0xFF padding removed.
func (r *EoReader) GetFixedString(length int, padded bool) (string, error) {
	b, err := r.readBytes(length)
	if err != nil {
		return "", err
	}
	if padded {
		b = removePadding(b)
	}
	return bytesToString(b), nil
}

func (r *EoReader) GetEncodedString() (string, error) {
	b, err := r.GetBytes(r.Remaining())
	if err != nil {
		return "", err
	}
	DecodeString(b)
	return bytesToString(b), nil
}

func (r *EoReader) GetFixedEncodedString(length int, padded bool) (string, error) {
	b, err := r.GetBytes(length)
	if err != nil {
		return "", err
	}
	DecodeString(b)
	if padded {
		b = removePadding(b)
	}
	return bytesToString(b), nil
}

func removePadding(b []byte) []byte {
	for i, c := range b {
		if c == BreakByte {
			return b[:i]
		}
	}
	return b
}
