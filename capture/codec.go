package capture

import (
	"encoding/json"

	"github.com/gogo/protobuf/proto"
	thrifter "github.com/thrift-iterator/go"
	"github.com/vmihailenco/msgpack/v5"
)

// CodecType selects how records are encoded inside a capture file.
type CodecType int8

const (
	CodecMsgpack  CodecType = iota
	CodecJson     CodecType = 1
	CodecThrift   CodecType = 2
	CodecProtobuf CodecType = 3
	CodecMax      CodecType = 4
)

var codecTypeNames = [...]string{"msgpack", "json", "thrift", "protobuf"}

func IsValidCodecType(typ CodecType) bool {
	return typ >= CodecMsgpack && typ < CodecMax
}

func (typ CodecType) String() string {
	if !IsValidCodecType(typ) {
		return "invalid"
	}
	return codecTypeNames[typ]
}

func ParseCodecType(name string) (CodecType, bool) {
	for i, n := range codecTypeNames {
		if n == name {
			return CodecType(i), true
		}
	}
	return CodecMsgpack, false
}

type ICodec interface {
	Encode(*Record) ([]byte, error)
	Decode([]byte, *Record) error
}

func newCodec(typ CodecType) ICodec {
	switch typ {
	case CodecJson:
		return JsonCodec{}
	case CodecThrift:
		return ThriftCodec{}
	case CodecProtobuf:
		return ProtobufCodec{}
	}
	return MsgpackCodec{}
}

type MsgpackCodec struct{}

func (c MsgpackCodec) Encode(r *Record) ([]byte, error) {
	return msgpack.Marshal(r)
}

func (c MsgpackCodec) Decode(d []byte, r *Record) error {
	return msgpack.Unmarshal(d, r)
}

type JsonCodec struct{}

func (c JsonCodec) Encode(r *Record) ([]byte, error) {
	return json.Marshal(r)
}

func (c JsonCodec) Decode(d []byte, r *Record) error {
	return json.Unmarshal(d, r)
}

type ThriftCodec struct{}

func (c ThriftCodec) Encode(r *Record) ([]byte, error) {
	return thrifter.Marshal(*r)
}

func (c ThriftCodec) Decode(d []byte, r *Record) error {
	return thrifter.Unmarshal(d, r)
}

type ProtobufCodec struct{}

func (c ProtobufCodec) Encode(r *Record) ([]byte, error) {
	return proto.Marshal(r)
}

func (c ProtobufCodec) Decode(d []byte, r *Record) error {
	return proto.Unmarshal(d, r)
}
