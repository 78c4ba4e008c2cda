// Package capture records packet frames to a file and plays them back.
//
// A capture starts with a header:
//
//	magic    "EOCP"
//	version  byte
//	side     byte  // 1 server, 2 client
//	compress byte  // CompressType
//	codec    byte  // CodecType
//
// followed by records, each a uvarint length and the compressed, encoded
// Record.
package capture

import (
	"time"

	"github.com/gogo/protobuf/proto"

	"github.com/huoshan017/eonet/packet"
)

// Record is one frame seen on a connection.
type Record struct {
	Time     int64  `msgpack:"t" json:"time" thrift:"time,1" protobuf:"varint,1,opt,name=time,proto3"`
	Outgoing bool   `msgpack:"o" json:"outgoing" thrift:"outgoing,2" protobuf:"varint,2,opt,name=outgoing,proto3"`
	Family   int32  `msgpack:"f" json:"family" thrift:"family,3" protobuf:"varint,3,opt,name=family,proto3"`
	Action   int32  `msgpack:"a" json:"action" thrift:"action,4" protobuf:"varint,4,opt,name=action,proto3"`
	Body     []byte `msgpack:"b" json:"body" thrift:"body,5" protobuf:"bytes,5,opt,name=body,proto3"`
}

func NewRecord(at time.Time, outgoing bool, id packet.ID, body []byte) *Record {
	return &Record{
		Time:     at.UnixNano(),
		Outgoing: outgoing,
		Family:   int32(id.Family),
		Action:   int32(id.Action),
		Body:     append([]byte(nil), body...),
	}
}

func (r *Record) ID() packet.ID {
	return packet.ID{Family: packet.Family(r.Family), Action: packet.Action(r.Action)}
}

func (r *Record) At() time.Time {
	return time.Unix(0, r.Time)
}

func (r *Record) Reset()         { *r = Record{} }
func (r *Record) String() string { return proto.CompactTextString(r) }
func (*Record) ProtoMessage()    {}

// Side is the end of the connection a capture was taken on.
type Side int8

const (
	SideServer Side = 1
	SideClient Side = 2
)

func (s Side) String() string {
	switch s {
	case SideServer:
		return "server"
	case SideClient:
		return "client"
	}
	return "unknown"
}

func ParseSide(name string) (Side, bool) {
	switch name {
	case "server":
		return SideServer, true
	case "client":
		return SideClient, true
	}
	return 0, false
}

// SentByServer reports whether a record taken on side s is a server packet.
func (s Side) SentByServer(r *Record) bool {
	return (s == SideServer) == r.Outgoing
}
