package data

import (
	"errors"
	"fmt"
)

var (
	ErrNotChunked       = errors.New("eodata: reader is not in chunked reading mode")
	ErrInvalidSliceArgs = errors.New("eodata: invalid slice index or length")
)

// SerializationError reports a value that cannot be put on the wire.
type SerializationError struct {
	msg string
}

func NewSerializationError(format string, args ...any) *SerializationError {
	return &SerializationError{msg: fmt.Sprintf(format, args...)}
}

func (e *SerializationError) Error() string {
	return "eodata: serialization: " + e.msg
}

// OutOfDataError reports a read that needs more bytes than the current
// scope (buffer end or chunk end) still holds.
type OutOfDataError struct {
	Position  int
	Requested int
	Remaining int
}

func (e *OutOfDataError) Error() string {
	return fmt.Sprintf("eodata: out of data at position %v: requested %v bytes, %v remaining",
		e.Position, e.Requested, e.Remaining)
}

func IsSerializationError(err error) bool {
	var se *SerializationError
	return errors.As(err, &se)
}

func IsOutOfDataError(err error) bool {
	var oe *OutOfDataError
	return errors.As(err, &oe)
}
