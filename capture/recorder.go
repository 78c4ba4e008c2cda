package capture

import (
	"bufio"
	"encoding/binary"
	"io"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/huoshan017/eonet/packet"
)

const version = 1

var magic = [4]byte{'E', 'O', 'C', 'P'}

// Records above this size are rejected on read.
const maxRecordLen = 1 << 20

var (
	ErrBadMagic       = errors.New("capture: not a capture file")
	ErrBadVersion     = errors.New("capture: unsupported version")
	ErrInvalidOption  = errors.New("capture: invalid side, compress or codec type")
	ErrRecordTooLarge = errors.New("capture: record too large")
	ErrRecorderClosed = errors.New("capture: recorder closed")
)

type Options struct {
	Side     Side
	Compress CompressType
	Codec    CodecType
	Now      func() time.Time
}

type Option func(*Options)

func SetSide(side Side) Option {
	return func(options *Options) {
		options.Side = side
	}
}

func SetCompressType(typ CompressType) Option {
	return func(options *Options) {
		options.Compress = typ
	}
}

func SetCodecType(typ CodecType) Option {
	return func(options *Options) {
		options.Codec = typ
	}
}

// SetClock replaces time.Now for record timestamps.
func SetClock(now func() time.Time) Option {
	return func(options *Options) {
		options.Now = now
	}
}

// Recorder appends records to a capture. It implements eonet.FrameObserver
// and is safe for concurrent use.
type Recorder struct {
	locker     sync.Mutex
	options    Options
	writer     *bufio.Writer
	compressor ICompressor
	codec      ICodec
	lenBuf     [binary.MaxVarintLen64]byte
	count      int
	err        error
	closed     bool
}

// NewRecorder writes the capture header to w.
func NewRecorder(w io.Writer, ops ...Option) (*Recorder, error) {
	r := &Recorder{
		options: Options{Side: SideServer, Now: time.Now},
		writer:  bufio.NewWriter(w),
	}
	for _, op := range ops {
		op(&r.options)
	}
	if r.options.Side != SideServer && r.options.Side != SideClient {
		return nil, ErrInvalidOption
	}
	if !IsValidCompressType(r.options.Compress) || !IsValidCodecType(r.options.Codec) {
		return nil, ErrInvalidOption
	}
	r.compressor = newCompressor(r.options.Compress)
	r.codec = newCodec(r.options.Codec)

	header := append(magic[:], version, byte(r.options.Side), byte(r.options.Compress), byte(r.options.Codec))
	if _, err := r.writer.Write(header); err != nil {
		return nil, errors.Wrap(err, "capture: write header")
	}
	return r, nil
}

// Record appends one frame.
func (r *Recorder) Record(outgoing bool, id packet.ID, body []byte) error {
	rec := NewRecord(r.options.Now(), outgoing, id, body)

	r.locker.Lock()
	defer r.locker.Unlock()
	if r.closed {
		return ErrRecorderClosed
	}
	d, err := r.codec.Encode(rec)
	if err != nil {
		return errors.Wrapf(err, "capture: encode %v", id)
	}
	if len(d) > maxRecordLen {
		return errors.WithMessagef(ErrRecordTooLarge, "capture: %v", id)
	}
	if d, err = r.compressor.Compress(d); err != nil {
		return errors.Wrapf(err, "capture: compress %v", id)
	}
	n := binary.PutUvarint(r.lenBuf[:], uint64(len(d)))
	if _, err = r.writer.Write(r.lenBuf[:n]); err != nil {
		return errors.Wrap(err, "capture: write record")
	}
	if _, err = r.writer.Write(d); err != nil {
		return errors.Wrap(err, "capture: write record")
	}
	r.count++
	return nil
}

// ObserveFrame records a frame, keeping the first failure for Err.
func (r *Recorder) ObserveFrame(outgoing bool, id packet.ID, body []byte) {
	if err := r.Record(outgoing, id, body); err != nil {
		r.locker.Lock()
		if r.err == nil {
			r.err = err
		}
		r.locker.Unlock()
	}
}

// Err returns the first error seen by ObserveFrame.
func (r *Recorder) Err() error {
	r.locker.Lock()
	defer r.locker.Unlock()
	return r.err
}

func (r *Recorder) Count() int {
	r.locker.Lock()
	defer r.locker.Unlock()
	return r.count
}

func (r *Recorder) Flush() error {
	r.locker.Lock()
	defer r.locker.Unlock()
	return r.writer.Flush()
}

// Close flushes buffered records. It does not close the underlying writer.
func (r *Recorder) Close() error {
	r.locker.Lock()
	defer r.locker.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	if err := r.writer.Flush(); err != nil {
		return err
	}
	return r.compressor.Close()
}
