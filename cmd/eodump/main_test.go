package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huoshan017/eonet/capture"
	"github.com/huoshan017/eonet/packet"
	"github.com/huoshan017/eonet/packet/client"
	"github.com/huoshan017/eonet/packet/server"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeCapture(t *testing.T, path string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	rec, err := capture.NewRecorder(f, capture.SetSide(capture.SideClient), capture.SetCompressType(capture.CompressZlib))
	require.NoError(t, err)
	body, err := packet.Serialize(&client.TalkReportPacket{Message: "hello there"})
	require.NoError(t, err)
	require.NoError(t, rec.Record(true, packet.PacketID(&client.TalkReportPacket{}), body))
	body, err = packet.Serialize(&server.PlayersPongPacket{Name: "alice"})
	require.NoError(t, err)
	require.NoError(t, rec.Record(false, packet.PacketID(&server.PlayersPongPacket{}), body))
	require.NoError(t, rec.Record(false, packet.ID{Family: packet.FamilyBank, Action: packet.ActionOpen}, []byte{1, 2}))
	require.NoError(t, rec.Close())
}

func TestDecode(t *testing.T) {
	out, err := execute(t, "decode", "--side", "server", "--family", "34", "--action", "13", "06 0B 01")
	require.NoError(t, err)
	assert.Contains(t, out, "Door_Open")
	assert.Contains(t, out, "X:5")

	_, err = execute(t, "decode", "--side", "nobody", "--family", "34", "--action", "13", "06")
	assert.Error(t, err)

	_, err = execute(t, "decode", "--family", "34", "--action", "13", "zz")
	assert.Error(t, err)
}

func TestReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.eocp")
	writeCapture(t, path)

	out, err := execute(t, "replay", path)
	require.NoError(t, err)
	assert.Contains(t, out, "capture taken on client")
	assert.Contains(t, out, "hello there")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "3 records")
	assert.Contains(t, out, "1 not decoded")

	out, err = execute(t, "replay", "--raw", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "Message:hello there")
	assert.Contains(t, out, "0 not decoded")

	_, err = execute(t, "replay", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	in, out := filepath.Join(dir, "in.eocp"), filepath.Join(dir, "out.eocp")
	writeCapture(t, in)

	_, err := execute(t, "convert", "--compress", "gzip", "--codec", "json", in, out)
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	player, err := capture.NewPlayer(f)
	require.NoError(t, err)
	assert.Equal(t, capture.SideClient, player.Side())
	assert.Equal(t, capture.CompressGzip, player.CompressType())
	assert.Equal(t, capture.CodecJson, player.CodecType())

	f2, err := os.Open(in)
	require.NoError(t, err)
	defer f2.Close()
	orig, err := capture.NewPlayer(f2)
	require.NoError(t, err)
	want, err := orig.All()
	require.NoError(t, err)
	got, err := player.All()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = execute(t, "convert", "--codec", "xml", in, out)
	assert.Error(t, err)
}
