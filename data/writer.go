package data

import "bytes"

// EoWriter builds the body of one outgoing packet. A writer is owned by a
// single goroutine and is not reused across packets.
type EoWriter struct {
	data            bytes.Buffer
	sanitizeStrings bool
}

func NewWriter() *EoWriter {
	return &EoWriter{}
}

// SanitizeStrings reports whether 0xFF bytes in strings are replaced by 'y'.
func (w *EoWriter) SanitizeStrings() bool {
	return w.sanitizeStrings
}

// SetSanitizeStrings toggles string sanitization. Chunked structures turn it
// on so that string content cannot produce a break byte.
func (w *EoWriter) SetSanitizeStrings(sanitize bool) {
	w.sanitizeStrings = sanitize
}

// AddByte appends a raw byte.
func (w *EoWriter) AddByte(value int) error {
	if value < 0 || value > 0xFF {
		return NewSerializationError("value %v exceeds the range of a byte", value)
	}
	w.data.WriteByte(byte(value))
	return nil
}

// AddBytes appends raw bytes.
func (w *EoWriter) AddBytes(bytes []byte) {
	w.data.Write(bytes)
}

// AddBreak appends the chunk separator.
func (w *EoWriter) AddBreak() {
	w.data.WriteByte(BreakByte)
}

func (w *EoWriter) AddChar(number int) error {
	return w.addNumber(number, 1, CharMax, "char")
}

func (w *EoWriter) AddShort(number int) error {
	return w.addNumber(number, 2, ShortMax, "short")
}

func (w *EoWriter) AddThree(number int) error {
	return w.addNumber(number, 3, ThreeMax, "three")
}

func (w *EoWriter) AddInt(number int) error {
	return w.addNumber(number, 4, IntMax, "int")
}

func (w *EoWriter) addNumber(number, size, max int, name string) error {
	if number < 0 || number >= max {
		return NewSerializationError("value %v exceeds the range of a %v (0-%v)", number, name, max-1)
	}
	encoded := EncodeNumber(number)
	w.data.Write(encoded[:size])
	return nil
}

// AddString appends the string with no length prefix.
func (w *EoWriter) AddString(s string) error {
	b, err := stringToBytes(s)
	if err != nil {
		return err
	}
	w.sanitize(b)
	w.data.Write(b)
	return nil
}

// AddFixedString appends exactly length bytes. Unpadded strings must already
// have that length; padded strings may be shorter and are filled with 0xFF.
func (w *EoWriter) AddFixedString(s string, length int, padded bool) error {
	b, err := w.fixedBytes(s, length, padded)
	if err != nil {
		return err
	}
	w.data.Write(b)
	return nil
}

// AddEncodedString appends the string in the obfuscated client encoding.
func (w *EoWriter) AddEncodedString(s string) error {
	b, err := stringToBytes(s)
	if err != nil {
		return err
	}
	w.sanitize(b)
	EncodeString(b)
	w.data.Write(b)
	return nil
}

func (w *EoWriter) AddFixedEncodedString(s string, length int, padded bool) error {
	b, err := w.fixedBytes(s, length, padded)
	if err != nil {
		return err
	}
	EncodeString(b)
	w.data.Write(b)
	return nil
}

func (w *EoWriter) fixedBytes(s string, length int, padded bool) ([]byte, error) {
	b, err := stringToBytes(s)
	if err != nil {
		return nil, err
	}
	if padded {
		if len(b) > length {
			return nil, NewSerializationError("padded string %q is too large for a length of %v", s, length)
		}
	} else if len(b) != length {
		return nil, NewSerializationError("string %q does not have the expected length of %v", s, length)
	}
	w.sanitize(b)
	for len(b) < length {
		b = append(b, BreakByte)
	}
	return b, nil
}

func (w *EoWriter) sanitize(b []byte) {
	if !w.sanitizeStrings {
		return
	}
	for i := range b {
		if b[i] == BreakByte {
			b[i] = 0x79 // 'y'
		}
	}
}

// Len returns the number of bytes written so far.
func (w *EoWriter) Len() int {
	return w.data.Len()
}

// Array returns a copy of the written bytes.
func (w *EoWriter) Array() []byte {
	return append([]byte(nil), w.data.Bytes()...)
}
