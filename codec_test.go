package eonet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huoshan017/eonet/packet"
	"github.com/huoshan017/eonet/packet/server"
	"github.com/huoshan017/eonet/protocol"
)

func TestCodecEncode(t *testing.T) {
	c, err := NewCodec(&Options{})
	require.NoError(t, err)

	frame, err := c.EncodePacket(&server.DoorOpenPacket{Coords: protocol.Coords{X: 5, Y: 10}})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x06, 0xFE, 0x0D, 0x22, 0x06, 0x0B, 0x01}, frame)

	id, body, err := c.Decode(bytes.NewReader(frame))
	require.NoError(t, err)
	assert.Equal(t, packet.ID{Family: packet.FamilyDoor, Action: packet.ActionOpen}, id)
	assert.Equal(t, []byte{0x06, 0x0B, 0x01}, body)
}

func TestCodecEncrypted(t *testing.T) {
	c, err := NewCodec(&Options{EncodeMultiple: 7, DecodeMultiple: 7})
	require.NoError(t, err)

	in := &server.TalkPlayerPacket{PlayerId: 4, Message: "hello there"}
	frame, err := c.EncodePacket(in)
	require.NoError(t, err)
	assert.NotContains(t, string(frame), "hello")

	id, body, err := c.Decode(bytes.NewReader(frame))
	require.NoError(t, err)
	assert.Equal(t, packet.PacketID(in), id)

	out, err := server.Registry.Deserialize(id.Family, id.Action, body)
	require.NoError(t, err)
	assert.Equal(t, "hello there", out.(*server.TalkPlayerPacket).Message)
}

func TestCodecInitFrameInClear(t *testing.T) {
	c, err := NewCodec(&Options{EncodeMultiple: 7})
	require.NoError(t, err)

	id := packet.ID{Family: packet.FamilyInit, Action: packet.ActionInit}
	frame, err := c.Encode(id, []byte{0x01, 0x02})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x05, 0xFE, 0xFF, 0xFF, 0x01, 0x02}, frame)
}

func TestCodecStreamOfFrames(t *testing.T) {
	c, err := NewCodec(&Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	for i := 0; i < 3; i++ {
		frame, err := c.EncodePacket(&server.NpcJunkPacket{NpcId: i * 100})
		require.NoError(t, err)
		buf.Write(frame)
	}
	for i := 0; i < 3; i++ {
		id, body, err := c.Decode(&buf)
		require.NoError(t, err)
		p, err := server.Registry.Deserialize(id.Family, id.Action, body)
		require.NoError(t, err)
		assert.Equal(t, i*100, p.(*server.NpcJunkPacket).NpcId)
	}
	_, _, err = c.Decode(&buf)
	assert.Error(t, err)
}

func TestCodecLimits(t *testing.T) {
	c, err := NewCodec(&Options{MaxPacketLength: 10})
	require.NoError(t, err)

	_, err = c.Encode(packet.ID{}, make([]byte, 9))
	assert.ErrorIs(t, err, ErrBodyLenInvalid)

	// length 11
	_, _, err = c.Decode(bytes.NewReader([]byte{0x0C, 0xFE}))
	assert.ErrorIs(t, err, ErrBodyLenInvalid)

	// length 1
	_, _, err = c.Decode(bytes.NewReader([]byte{0x02, 0xFE, 0x01}))
	assert.ErrorIs(t, err, ErrFrameTooShort)

	_, err = NewCodec(&Options{EncodeMultiple: -1})
	assert.Error(t, err)
}
