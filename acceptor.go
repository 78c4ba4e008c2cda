package eonet

import (
	"context"
	"net"
	"time"

	"github.com/huoshan017/eonet/control"
)

const (
	DefaultConnChanLen = 100
)

// Acceptor listens for TCP connections and hands them out as Conns.
type Acceptor struct {
	listener net.Listener
	connCh   chan *Conn
	ops      []Option
}

func NewAcceptor(connChanLen int, ops ...Option) *Acceptor {
	if connChanLen <= 0 {
		connChanLen = DefaultConnChanLen
	}
	return &Acceptor{
		connCh: make(chan *Conn, connChanLen),
		ops:    ops,
	}
}

func (s *Acceptor) Listen(addr string) error {
	var options Options
	for _, op := range s.ops {
		op(&options)
	}
	var lc net.ListenConfig
	if ctrl := (control.Options{ReuseAddr: options.ReuseAddr, ReusePort: options.ReusePort}); !ctrl.IsZero() {
		lc.Control = control.GetControl(ctrl)
	}
	listener, err := lc.Listen(context.Background(), "tcp", addr)
	if err != nil {
		return err
	}
	s.listener = listener
	return nil
}

func (s *Acceptor) Addr() net.Addr {
	return s.listener.Addr()
}

// Serve accepts until the listener is closed, then closes the conn channel.
func (s *Acceptor) Serve() error {
	defer close(s.connCh)

	var delay time.Duration
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if netErr, ok := err.(net.Error); ok && netErr.Temporary() {
				if delay == 0 {
					delay = 5 * time.Millisecond
				} else {
					delay *= 2
				}
				if max := 1 * time.Second; delay > max {
					delay = max
				}
				time.Sleep(delay)
				continue
			}
			return err
		}
		delay = 0
		c, err := NewConn(conn, s.ops...)
		if err != nil {
			getLogger().Warnf("eonet: refused %v: %v", conn.RemoteAddr(), err)
			conn.Close()
			continue
		}
		s.connCh <- c
	}
}

func (s *Acceptor) GetNewConnChan() chan *Conn {
	return s.connCh
}

func (s *Acceptor) Close() error {
	return s.listener.Close()
}
