package eonet

import (
	"github.com/huoshan017/eonet/data"
	"github.com/huoshan017/eonet/packet"
)

const (
	DefaultConnRecvChanLen = 100
	DefaultConnSendChanLen = 100
	// A frame length is an EO short and counts the two id bytes.
	DefaultMaxPacketLength = data.ShortMax - 1
)

// FrameObserver sees every frame a Conn reads or writes, after decryption
// and before encryption.
type FrameObserver interface {
	ObserveFrame(outgoing bool, id packet.ID, body []byte)
}

// Options configures a Conn and its Codec.
type Options struct {
	MaxPacketLength int
	EncodeMultiple  int
	DecodeMultiple  int
	Registry        *packet.Registry
	Observer        FrameObserver
	SendChanLen     int
	RecvChanLen     int
	WriteBuffSize   int
	ReadBuffSize    int
	// listener only
	ReuseAddr bool
	ReusePort bool
}

type Option func(*Options)

func (options *Options) SetMaxPacketLength(length int) {
	options.MaxPacketLength = length
}

// SetSwapMultiple uses multiple for both directions.
func (options *Options) SetSwapMultiple(multiple int) {
	options.EncodeMultiple = multiple
	options.DecodeMultiple = multiple
}

func (options *Options) SetRegistry(registry *packet.Registry) {
	options.Registry = registry
}

func (options *Options) SetObserver(observer FrameObserver) {
	options.Observer = observer
}

func (options *Options) normalize() {
	if options.MaxPacketLength <= 0 || options.MaxPacketLength > DefaultMaxPacketLength {
		options.MaxPacketLength = DefaultMaxPacketLength
	}
	if options.SendChanLen <= 0 {
		options.SendChanLen = DefaultConnSendChanLen
	}
	if options.RecvChanLen <= 0 {
		options.RecvChanLen = DefaultConnRecvChanLen
	}
	if options.Registry == nil {
		options.Registry = packet.NewRegistry()
	}
}

func SetMaxPacketLength(length int) Option {
	return func(options *Options) {
		options.SetMaxPacketLength(length)
	}
}

func SetSwapMultiple(multiple int) Option {
	return func(options *Options) {
		options.SetSwapMultiple(multiple)
	}
}

// SetMultiples sets the multiple used for outgoing and incoming frames
// separately, as the two peers of a connection pick their own.
func SetMultiples(encode, decode int) Option {
	return func(options *Options) {
		options.EncodeMultiple = encode
		options.DecodeMultiple = decode
	}
}

func SetRegistry(registry *packet.Registry) Option {
	return func(options *Options) {
		options.SetRegistry(registry)
	}
}

func SetObserver(observer FrameObserver) Option {
	return func(options *Options) {
		options.SetObserver(observer)
	}
}

func SetSendChanLen(chanLen int) Option {
	return func(options *Options) {
		options.SendChanLen = chanLen
	}
}

func SetRecvChanLen(chanLen int) Option {
	return func(options *Options) {
		options.RecvChanLen = chanLen
	}
}

func SetWriteBuffSize(size int) Option {
	return func(options *Options) {
		options.WriteBuffSize = size
	}
}

func SetReadBuffSize(size int) Option {
	return func(options *Options) {
		options.ReadBuffSize = size
	}
}

func SetReuseAddr(enable bool) Option {
	return func(options *Options) {
		options.ReuseAddr = enable
	}
}

func SetReusePort(enable bool) Option {
	return func(options *Options) {
		options.ReusePort = enable
	}
}
