package eonet

import (
	"context"
	"net"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Server accepts connections and serves each one through a Dispatcher.
type Server struct {
	acceptor         *Acceptor
	dispatcher       *Dispatcher
	connectHandle    func(*Session)
	disconnectHandle func(*Session, error)
	sessionIdCounter uint64
	locker           sync.RWMutex
	sessMap          map[uint64]*Session
	ctx              context.Context
	cancel           context.CancelFunc
	wg               sync.WaitGroup
}

// NewServer creates a server. ops apply to every accepted Conn; they
// usually carry the registry of the packets clients send.
func NewServer(dispatcher *Dispatcher, ops ...Option) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		acceptor:   NewAcceptor(DefaultConnChanLen, ops...),
		dispatcher: dispatcher,
		sessMap:    make(map[uint64]*Session),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// SetConnectHandle is called in the session goroutine before any packet is
// dispatched.
func (s *Server) SetConnectHandle(handle func(*Session)) {
	s.connectHandle = handle
}

// SetDisconnectHandle is called once a session ends, with the error that
// ended it.
func (s *Server) SetDisconnectHandle(handle func(*Session, error)) {
	s.disconnectHandle = handle
}

func (s *Server) Listen(addr string) error {
	return s.acceptor.Listen(addr)
}

func (s *Server) Addr() net.Addr {
	return s.acceptor.Addr()
}

// Start serves accepted connections until End is called.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		defer func() {
			if err := recover(); err != nil {
				getLogger().WithStack(err)
			}
		}()
		errCh <- s.acceptor.Serve()
	}()

	for conn := range s.acceptor.GetNewConnChan() {
		s.handleConn(conn)
	}
	err := <-errCh
	if s.ctx.Err() != nil {
		return nil
	}
	return errors.Wrap(err, "eonet: accept")
}

// End stops accepting, closes every session and waits for them to finish.
func (s *Server) End() {
	s.locker.Lock()
	s.cancel()
	for _, sess := range s.sessMap {
		sess.Close()
	}
	s.locker.Unlock()
	s.acceptor.Close()
	s.wg.Wait()
}

func (s *Server) SessionCount() int {
	s.locker.RLock()
	defer s.locker.RUnlock()
	return len(s.sessMap)
}

func (s *Server) GetSession(id uint64) (*Session, bool) {
	s.locker.RLock()
	defer s.locker.RUnlock()
	sess, o := s.sessMap[id]
	return sess, o
}

// handleConn registers a session for conn. No session is added once End has
// canceled the server.
func (s *Server) handleConn(conn *Conn) bool {
	s.locker.Lock()
	if s.ctx.Err() != nil {
		s.locker.Unlock()
		conn.Close()
		return false
	}
	sess := NewSession(conn, atomic.AddUint64(&s.sessionIdCounter, 1))
	s.sessMap[sess.id] = sess
	s.wg.Add(1)
	s.locker.Unlock()

	conn.Run()
	go func() {
		defer s.wg.Done()
		defer func() {
			if err := recover(); err != nil {
				getLogger().WithStack(err)
			}
			sess.Close()
			s.locker.Lock()
			delete(s.sessMap, sess.id)
			s.locker.Unlock()
		}()

		if s.connectHandle != nil {
			s.connectHandle(sess)
		}
		err := s.dispatcher.ServeSession(s.ctx, sess)
		getLogger().Debugf("eonet: session %v from %v ended: %v", sess.id, conn.RemoteAddr(), err)
		if s.disconnectHandle != nil {
			s.disconnectHandle(sess, err)
		}
	}()
	return true
}
