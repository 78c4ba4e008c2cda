package eonet

import (
	"bufio"
	"context"
	"net"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/huoshan017/eonet/packet"
)

type frame struct {
	id   packet.ID
	body []byte
}

// Conn exchanges packets over a net.Conn. A read loop decodes frames into a
// receive channel and a write loop drains the send channel, so WritePacket is
// safe for concurrent use. ReadPacket belongs to one goroutine.
type Conn struct {
	conn    net.Conn
	options Options
	codec   *Codec
	writer  *bufio.Writer
	reader  *bufio.Reader
	recvCh  chan frame
	sendCh  chan []byte
	closeCh chan struct{}
	closed  int32
	errCh   chan error
}

func NewConn(conn net.Conn, ops ...Option) (*Conn, error) {
	c := &Conn{
		conn:    conn,
		closeCh: make(chan struct{}),
		errCh:   make(chan error, 1),
	}
	for _, op := range ops {
		op(&c.options)
	}
	c.options.normalize()

	codec, err := NewCodec(&c.options)
	if err != nil {
		return nil, err
	}
	c.codec = codec

	if c.options.WriteBuffSize <= 0 {
		c.writer = bufio.NewWriter(conn)
	} else {
		c.writer = bufio.NewWriterSize(conn, c.options.WriteBuffSize)
	}
	if c.options.ReadBuffSize <= 0 {
		c.reader = bufio.NewReader(conn)
	} else {
		c.reader = bufio.NewReaderSize(conn, c.options.ReadBuffSize)
	}
	c.recvCh = make(chan frame, c.options.RecvChanLen)
	c.sendCh = make(chan []byte, c.options.SendChanLen)
	return c, nil
}

func (c *Conn) Run() {
	go c.readLoop()
	go c.writeLoop()
}

func (c *Conn) Codec() *Codec {
	return c.codec
}

func (c *Conn) Registry() *packet.Registry {
	return c.options.Registry
}

func (c *Conn) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}

func (c *Conn) readLoop() {
	var err error
	for err == nil {
		var f frame
		if f.id, f.body, err = c.codec.Decode(c.reader); err != nil {
			break
		}
		if c.options.Observer != nil {
			c.options.Observer.ObserveFrame(false, f.id, f.body)
		}
		select {
		case c.recvCh <- f:
		case <-c.closeCh:
			err = ErrConnClosed
		}
	}
	if !c.IsClosed() {
		c.errCh <- errors.Wrap(err, "eonet: read frame")
	}
	close(c.errCh)
	close(c.recvCh)
}

func (c *Conn) writeLoop() {
	for {
		select {
		case <-c.closeCh:
			return
		case d := <-c.sendCh:
			if _, err := c.writer.Write(d); err != nil {
				getLogger().Warnf("eonet: write to %v failed: %v", c.conn.RemoteAddr(), err)
				c.Close()
				return
			}
			// batch frames that are already queued
			if len(c.sendCh) > 0 {
				continue
			}
			if err := c.writer.Flush(); err != nil {
				getLogger().Warnf("eonet: flush to %v failed: %v", c.conn.RemoteAddr(), err)
				c.Close()
				return
			}
		}
	}
}

// Close shuts the socket down and stops both loops.
func (c *Conn) Close() {
	if !atomic.CompareAndSwapInt32(&c.closed, 0, 1) {
		return
	}
	c.conn.Close()
	close(c.closeCh)
}

func (c *Conn) IsClosed() bool {
	return atomic.LoadInt32(&c.closed) > 0
}

// ReadFrame returns the next frame without resolving its packet type.
func (c *Conn) ReadFrame(ctx context.Context) (packet.ID, []byte, error) {
	select {
	case <-ctx.Done():
		return packet.ID{}, nil, ctx.Err()
	case f, o := <-c.recvCh:
		if !o {
			return packet.ID{}, nil, c.recvErr()
		}
		return f.id, f.body, nil
	}
}

// ReadPacket returns the next packet, decoded through the registry. An
// unregistered (family, action) yields an *packet.UnrecognizedPacketError and
// the connection stays usable.
func (c *Conn) ReadPacket(ctx context.Context) (packet.Packet, error) {
	id, body, err := c.ReadFrame(ctx)
	if err != nil {
		return nil, err
	}
	p, err := c.options.Registry.Deserialize(id.Family, id.Action, body)
	if err != nil {
		return nil, errors.WithMessagef(err, "eonet: decode %v", id)
	}
	return p, nil
}

func (c *Conn) recvErr() error {
	err, o := <-c.errCh
	if !o || err == nil {
		return ErrConnClosed
	}
	return err
}

// WritePacket queues p for sending. It blocks while the send channel is full.
func (c *Conn) WritePacket(p packet.Packet) error {
	d, err := c.encode(p)
	if err != nil {
		return err
	}
	select {
	case c.sendCh <- d:
	case <-c.closeCh:
		return ErrConnClosed
	}
	return nil
}

// WritePacketNonblock queues p or fails with ErrSendChanFull.
func (c *Conn) WritePacketNonblock(p packet.Packet) error {
	d, err := c.encode(p)
	if err != nil {
		return err
	}
	select {
	case c.sendCh <- d:
	case <-c.closeCh:
		return ErrConnClosed
	default:
		return ErrSendChanFull
	}
	return nil
}

func (c *Conn) encode(p packet.Packet) ([]byte, error) {
	if c.IsClosed() {
		return nil, ErrConnClosed
	}
	body, err := packet.Serialize(p)
	if err != nil {
		return nil, errors.WithMessagef(err, "eonet: serialize %v", packet.PacketID(p))
	}
	id := packet.PacketID(p)
	if c.options.Observer != nil {
		c.options.Observer.ObserveFrame(true, id, body)
	}
	return c.codec.Encode(id, body)
}

func (c *Conn) SetRecvDeadline(deadline time.Time) {
	c.conn.SetReadDeadline(deadline)
}

func (c *Conn) SetSendDeadline(deadline time.Time) {
	c.conn.SetWriteDeadline(deadline)
}
