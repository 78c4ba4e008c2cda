package eonet

import (
	"context"
	"io"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huoshan017/eonet/packet"
	"github.com/huoshan017/eonet/packet/client"
	"github.com/huoshan017/eonet/packet/server"
	"github.com/huoshan017/eonet/protocol"
)

type frameLog struct {
	locker sync.Mutex
	frames []packet.ID
	out    []bool
}

func (l *frameLog) ObserveFrame(outgoing bool, id packet.ID, body []byte) {
	l.locker.Lock()
	defer l.locker.Unlock()
	l.frames = append(l.frames, id)
	l.out = append(l.out, outgoing)
}

// newConnPair returns a server side conn reading client packets and a client
// side conn reading server packets, connected in memory.
func newConnPair(t *testing.T, serverOps, clientOps []Option) (*Conn, *Conn) {
	t.Helper()
	sc, cc := net.Pipe()

	srv, err := NewConn(sc, append([]Option{SetRegistry(client.Registry)}, serverOps...)...)
	require.NoError(t, err)
	cli, err := NewConn(cc, append([]Option{SetRegistry(server.Registry)}, clientOps...)...)
	require.NoError(t, err)

	srv.Run()
	cli.Run()
	t.Cleanup(func() {
		srv.Close()
		cli.Close()
	})
	return srv, cli
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestConnExchange(t *testing.T) {
	ctx := testContext(t)
	srv, cli := newConnPair(t, nil, nil)

	require.NoError(t, cli.WritePacket(&client.TalkReportPacket{Message: "hi"}))
	p, err := srv.ReadPacket(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hi", p.(*client.TalkReportPacket).Message)

	require.NoError(t, srv.WritePacket(&server.TalkPlayerPacket{PlayerId: 1, Message: "hi back"}))
	p, err = cli.ReadPacket(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hi back", p.(*server.TalkPlayerPacket).Message)
}

func TestConnEncrypted(t *testing.T) {
	ctx := testContext(t)
	srv, cli := newConnPair(t, []Option{SetMultiples(6, 10)}, []Option{SetMultiples(10, 6)})

	in := &client.WalkPlayerPacket{Direction: protocol.DirectionUp, Timestamp: 100, Coords: protocol.Coords{X: 6, Y: 12}}
	require.NoError(t, cli.WritePacket(in))
	p, err := srv.ReadPacket(ctx)
	require.NoError(t, err)
	got := p.(*client.WalkPlayerPacket).Coords
	assert.Equal(t, in.Coords.X, got.X)
	assert.Equal(t, in.Coords.Y, got.Y)
	assert.Equal(t, 100, p.(*client.WalkPlayerPacket).Timestamp)
}

func TestConnUnrecognizedKeepsConn(t *testing.T) {
	ctx := testContext(t)
	srv, cli := newConnPair(t, nil, nil)

	// the server side does not know server packets
	require.NoError(t, cli.WritePacket(&server.PartyClosePacket{}))
	require.NoError(t, cli.WritePacket(&client.RefreshRequestPacket{}))

	_, err := srv.ReadPacket(ctx)
	require.Error(t, err)
	assert.True(t, packet.IsUnrecognizedPacket(err))
	assert.True(t, IsNoDisconnectError(err))

	p, err := srv.ReadPacket(ctx)
	require.NoError(t, err)
	assert.IsType(t, &client.RefreshRequestPacket{}, p)
}

func TestConnPeerClosed(t *testing.T) {
	ctx := testContext(t)
	srv, cli := newConnPair(t, nil, nil)

	cli.Close()
	_, err := srv.ReadPacket(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, io.EOF) || errors.Is(err, io.ErrClosedPipe), "got %v", err)
	assert.False(t, IsNoDisconnectError(err))

	_, err = srv.ReadPacket(ctx)
	assert.ErrorIs(t, err, ErrConnClosed)
}

func TestConnWriteAfterClose(t *testing.T) {
	srv, _ := newConnPair(t, nil, nil)
	srv.Close()
	assert.ErrorIs(t, srv.WritePacket(&server.SpellErrorPacket{}), ErrConnClosed)
}

func TestConnSerializeError(t *testing.T) {
	srv, _ := newConnPair(t, nil, nil)
	err := srv.WritePacket(&server.GuildAcceptPacket{Rank: 300})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Guild_Accept")
}

func TestConnReadContextDone(t *testing.T) {
	srv, _ := newConnPair(t, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := srv.ReadPacket(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConnObserver(t *testing.T) {
	ctx := testContext(t)
	log := &frameLog{}
	srv, cli := newConnPair(t, []Option{SetObserver(log)}, nil)

	require.NoError(t, cli.WritePacket(&client.MessagePingPacket{}))
	_, err := srv.ReadPacket(ctx)
	require.NoError(t, err)
	require.NoError(t, srv.WritePacket(&server.MessagePongPacket{}))
	_, err = cli.ReadPacket(ctx)
	require.NoError(t, err)

	log.locker.Lock()
	defer log.locker.Unlock()
	assert.Equal(t, []packet.ID{
		{Family: packet.FamilyMessage, Action: packet.ActionPing},
		{Family: packet.FamilyMessage, Action: packet.ActionPong},
	}, log.frames)
	assert.Equal(t, []bool{false, true}, log.out)
}
