package eonet

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/huoshan017/eonet/packet"
)

type PacketHandler func(ISession, packet.Packet) error

var sessionIdCounter uint64

// Dispatcher routes decoded packets to the handler registered for their
// (family, action).
type Dispatcher struct {
	locker    sync.RWMutex
	handleMap map[packet.ID]PacketHandler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handleMap: make(map[packet.ID]PacketHandler),
	}
}

func (d *Dispatcher) RegisterHandle(id packet.ID, handle PacketHandler) {
	d.locker.Lock()
	d.handleMap[id] = handle
	d.locker.Unlock()
}

// RegisterPacketHandle registers handle under the id of p.
func (d *Dispatcher) RegisterPacketHandle(p packet.Packet, handle PacketHandler) {
	d.RegisterHandle(packet.PacketID(p), handle)
}

func (d *Dispatcher) OnPacket(s ISession, p packet.Packet) error {
	d.locker.RLock()
	h, o := d.handleMap[packet.PacketID(p)]
	d.locker.RUnlock()
	if !o {
		return errors.WithMessagef(ErrNoPacketHandle, "eonet: %v", packet.PacketID(p))
	}
	return h(s, p)
}

// Serve reads packets from conn and dispatches them until ctx is done or an
// error that is not a no-disconnect error occurs. Unrecognized packets and
// packets without a handler are logged and skipped. conn must be running.
func (d *Dispatcher) Serve(ctx context.Context, conn *Conn) error {
	return d.ServeSession(ctx, NewSession(conn, atomic.AddUint64(&sessionIdCounter, 1)))
}

// ServeSession is Serve for a session created by the caller.
func (d *Dispatcher) ServeSession(ctx context.Context, s *Session) error {
	for {
		p, err := s.conn.ReadPacket(ctx)
		if err == nil {
			err = d.OnPacket(s, p)
		}
		if err == nil {
			continue
		}
		if IsNoDisconnectError(err) {
			getLogger().Warnf("eonet: session %v skipped packet: %v", s.GetId(), err)
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
}
