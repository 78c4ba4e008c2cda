package eonet

import (
	"context"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/huoshan017/eonet/encrypt"
	"github.com/huoshan017/eonet/packet"
	"github.com/huoshan017/eonet/packet/client"
	"github.com/huoshan017/eonet/packet/server"
	"github.com/huoshan017/eonet/protocol"
)

// Handshake is the outcome of the init exchange.
type Handshake struct {
	Reply         protocol.InitReply
	PlayerId      int
	SequenceStart *packet.InitSequenceStart
	// Version is the version the server wants when Reply is InitReplyOutOfDate.
	Version *protocol.Version
	// Hdid is the hardware id the client sent. Only set on the server side.
	Hdid string
}

// ServerHandshake answers the client's init request on conn. The client
// frames and the reply are sent in the clear; once it returns, conn encrypts
// with a fresh server multiple and decrypts with the client multiple it
// handed out. The conn must not be read by anyone else until it returns.
func ServerHandshake(ctx context.Context, conn *Conn, rng *rand.Rand, playerId int) (*Handshake, error) {
	p, err := conn.ReadPacket(ctx)
	if err != nil {
		return nil, err
	}
	req, o := p.(*client.InitInitPacket)
	if !o {
		return nil, errors.WithMessagef(ErrUnexpectedInit, "got %v", packet.PacketID(p))
	}

	seq := packet.GenerateInitSequenceStart(rng)
	ok := &protocol.InitOk{
		Seq1:                     seq.Seq1(),
		Seq2:                     seq.Seq2(),
		ServerEncryptionMultiple: encrypt.GenerateSwapMultiple(rng),
		ClientEncryptionMultiple: encrypt.GenerateSwapMultiple(rng),
		PlayerId:                 playerId,
		ChallengeResponse:        encrypt.ServerVerificationHash(req.Challenge),
	}
	if err = conn.Codec().SetMultiples(ok.ServerEncryptionMultiple, ok.ClientEncryptionMultiple); err != nil {
		return nil, err
	}
	if err = conn.WritePacket(&server.InitInitPacket{ReplyCode: protocol.InitReplyOk, Ok: ok}); err != nil {
		return nil, err
	}
	getLogger().Debugf("eonet: init from %v, player %v, sequence start %v", conn.RemoteAddr(), playerId, seq.Value())
	return &Handshake{
		Reply:         protocol.InitReplyOk,
		PlayerId:      playerId,
		SequenceStart: seq,
		Hdid:          req.Hdid,
	}, nil
}

// ClientHandshake sends an init request with challenge and waits for the
// reply. On success it checks the challenge response and switches conn to
// the negotiated multiples before returning, so nothing may be written on
// conn until then.
func ClientHandshake(ctx context.Context, conn *Conn, challenge int, version protocol.Version, hdid string) (*Handshake, error) {
	err := conn.WritePacket(&client.InitInitPacket{Challenge: challenge, Version: version, Hdid: hdid})
	if err != nil {
		return nil, err
	}
	p, err := conn.ReadPacket(ctx)
	if err != nil {
		return nil, err
	}
	reply, o := p.(*server.InitInitPacket)
	if !o {
		return nil, errors.WithMessagef(ErrUnexpectedInit, "got %v", packet.PacketID(p))
	}

	h := &Handshake{Reply: reply.ReplyCode, Version: reply.Version}
	if reply.ReplyCode != protocol.InitReplyOk {
		return h, errors.WithMessagef(ErrInitRejected, "reply code %v", reply.ReplyCode)
	}
	ok := reply.Ok
	if want := encrypt.ServerVerificationHash(challenge); ok.ChallengeResponse != want {
		return h, errors.WithMessagef(ErrBadChallengeResponse, "got %v, want %v", ok.ChallengeResponse, want)
	}
	if err = conn.Codec().SetMultiples(ok.ClientEncryptionMultiple, ok.ServerEncryptionMultiple); err != nil {
		return h, err
	}
	h.PlayerId = ok.PlayerId
	h.SequenceStart = packet.NewInitSequenceStartFromBytes(ok.Seq1, ok.Seq2)
	return h, nil
}
