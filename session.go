package eonet

import "github.com/huoshan017/eonet/packet"

type ISession interface {
	Send(packet.Packet) error
	Close()
	GetId() uint64
	SetData(interface{})
	GetData() interface{}
}

// Session is the handler-facing view of a Conn.
type Session struct {
	conn *Conn
	id   uint64
	data interface{}
}

func NewSession(conn *Conn, id uint64) *Session {
	return &Session{
		conn: conn,
		id:   id,
	}
}

func (s *Session) Send(p packet.Packet) error {
	return s.conn.WritePacket(p)
}

func (s *Session) Close() {
	s.conn.Close()
}

func (s *Session) GetId() uint64 {
	return s.id
}

func (s *Session) SetData(d interface{}) {
	s.data = d
}

func (s *Session) GetData() interface{} {
	return s.data
}

// Conn returns the underlying connection, for example to change the swap
// multiples after the init handshake.
func (s *Session) Conn() *Conn {
	return s.conn
}
