package eonet

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huoshan017/eonet/encrypt"
	"github.com/huoshan017/eonet/packet/client"
	"github.com/huoshan017/eonet/packet/server"
	"github.com/huoshan017/eonet/protocol"
)

var testVersion = protocol.Version{Major: 0, Minor: 0, Patch: 28}

func TestHandshake(t *testing.T) {
	ctx := testContext(t)
	srv, cli := newConnPair(t, nil, nil)

	type result struct {
		h   *Handshake
		err error
	}
	done := make(chan result, 1)
	go func() {
		h, err := ServerHandshake(ctx, srv, rand.New(rand.NewSource(1)), 42)
		done <- result{h, err}
	}()

	ch, err := ClientHandshake(ctx, cli, 123456, testVersion, "161726351")
	require.NoError(t, err)
	sr := <-done
	require.NoError(t, sr.err)

	assert.Equal(t, protocol.InitReplyOk, ch.Reply)
	assert.Equal(t, 42, ch.PlayerId)
	assert.Equal(t, sr.h.SequenceStart.Value(), ch.SequenceStart.Value())
	assert.Equal(t, "161726351", sr.h.Hdid)

	// both sides now scramble with the negotiated multiples
	require.NoError(t, cli.WritePacket(&client.TalkReportPacket{Message: "after init"}))
	p, err := srv.ReadPacket(ctx)
	require.NoError(t, err)
	assert.Equal(t, "after init", p.(*client.TalkReportPacket).Message)

	require.NoError(t, srv.WritePacket(&server.PlayersPongPacket{Name: "bob"}))
	p, err = cli.ReadPacket(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bob", p.(*server.PlayersPongPacket).Name)
}

func TestClientHandshakeChecksResponse(t *testing.T) {
	ctx := testContext(t)
	srv, cli := newConnPair(t, nil, nil)

	go func() {
		if _, err := srv.ReadPacket(ctx); err != nil {
			return
		}
		srv.WritePacket(&server.InitInitPacket{ReplyCode: protocol.InitReplyOk, Ok: &protocol.InitOk{
			Seq1: 10, Seq2: 20, ServerEncryptionMultiple: 6, ClientEncryptionMultiple: 6,
			ChallengeResponse: encrypt.ServerVerificationHash(1),
		}})
	}()

	_, err := ClientHandshake(ctx, cli, 123456, testVersion, "1")
	assert.ErrorIs(t, err, ErrBadChallengeResponse)
}

func TestClientHandshakeRejected(t *testing.T) {
	ctx := testContext(t)
	srv, cli := newConnPair(t, nil, nil)

	go func() {
		if _, err := srv.ReadPacket(ctx); err != nil {
			return
		}
		srv.WritePacket(&server.InitInitPacket{ReplyCode: protocol.InitReplyOutOfDate, Version: &protocol.Version{Patch: 29}})
	}()

	h, err := ClientHandshake(ctx, cli, 1, testVersion, "1")
	assert.ErrorIs(t, err, ErrInitRejected)
	require.NotNil(t, h)
	assert.Equal(t, protocol.InitReplyOutOfDate, h.Reply)
	assert.Equal(t, 29, h.Version.Patch)
}

func TestServerHandshakeUnexpectedPacket(t *testing.T) {
	ctx := testContext(t)
	srv, cli := newConnPair(t, nil, nil)

	require.NoError(t, cli.WritePacket(&client.TalkReportPacket{Message: "too early"}))
	_, err := ServerHandshake(ctx, srv, rand.New(rand.NewSource(1)), 1)
	assert.ErrorIs(t, err, ErrUnexpectedInit)
}
