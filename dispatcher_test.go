package eonet

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huoshan017/eonet/packet"
	"github.com/huoshan017/eonet/packet/client"
	"github.com/huoshan017/eonet/packet/server"
)

func TestDispatcherServe(t *testing.T) {
	var logBuf bytes.Buffer
	SetLoggerOutput(&logBuf)

	srv, cli := newConnPair(t, nil, nil)

	d := NewDispatcher()
	d.RegisterPacketHandle(&client.TalkReportPacket{}, func(s ISession, p packet.Packet) error {
		return s.Send(&server.TalkPlayerPacket{PlayerId: 1, Message: "echo " + p.(*client.TalkReportPacket).Message})
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- d.Serve(ctx, srv)
	}()

	readCtx := testContext(t)
	// no handler for this one, it is logged and skipped
	require.NoError(t, cli.WritePacket(&client.FacePlayerPacket{}))
	// unrecognized on the server side
	require.NoError(t, cli.WritePacket(&server.SpellErrorPacket{}))
	require.NoError(t, cli.WritePacket(&client.TalkReportPacket{Message: "hello"}))

	p, err := cli.ReadPacket(readCtx)
	require.NoError(t, err)
	assert.Equal(t, "echo hello", p.(*server.TalkPlayerPacket).Message)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
	assert.Contains(t, logBuf.String(), "Face_Player")
	assert.Contains(t, logBuf.String(), "Spell_Error")
}

func TestDispatcherHandlerError(t *testing.T) {
	srv, cli := newConnPair(t, nil, nil)

	errKick := errors.New("kick")
	d := NewDispatcher()
	d.RegisterPacketHandle(&client.RefreshRequestPacket{}, func(ISession, packet.Packet) error {
		return errKick
	})

	require.NoError(t, cli.WritePacket(&client.RefreshRequestPacket{}))
	err := d.Serve(testContext(t), srv)
	assert.ErrorIs(t, err, errKick)
}

func TestDispatcherOnPacketNoHandle(t *testing.T) {
	d := NewDispatcher()
	err := d.OnPacket(nil, &client.PlayersRequestPacket{})
	assert.ErrorIs(t, err, ErrNoPacketHandle)
	assert.True(t, IsNoDisconnectError(err))
}

func TestRegisterNoDisconnectError(t *testing.T) {
	errSoft := errors.New("soft")
	assert.False(t, IsNoDisconnectError(errSoft))
	RegisterNoDisconnectError(errSoft)
	assert.True(t, IsNoDisconnectError(errSoft))
	assert.False(t, IsNoDisconnectError(nil))
}
