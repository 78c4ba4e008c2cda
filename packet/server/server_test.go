package server

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huoshan017/eonet/data"
	"github.com/huoshan017/eonet/packet"
	"github.com/huoshan017/eonet/protocol"
)

var cmpOpts = []cmp.Option{
	cmp.FilterPath(func(p cmp.Path) bool {
		sf, ok := p.Last().(cmp.StructField)
		return ok && sf.Name() == "byteSize"
	}, cmp.Ignore()),
	cmpopts.EquateEmpty(),
}

func warpEffect(w protocol.WarpEffect) *protocol.WarpEffect {
	return &w
}

func testNearby() protocol.NearbyInfo {
	return protocol.NearbyInfo{
		Characters: []protocol.CharacterMapInfo{{
			Name:      "dave",
			PlayerId:  9,
			MapId:     1,
			Coords:    protocol.BigCoords{X: 10, Y: 11},
			Direction: protocol.DirectionLeft,
			GuildTag:  "   ",
			Level:     1,
			Gender:    protocol.GenderFemale,
			MaxHp:     10,
			Hp:        10,
		}},
		Npcs:  []protocol.NpcMapInfo{{Index: 1, Id: 2, Coords: protocol.Coords{X: 3, Y: 4}}},
		Items: []protocol.ItemMapInfo{{Uid: 1, Id: 2, Coords: protocol.Coords{X: 5, Y: 6}, Amount: 7}},
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []packet.Packet{
		&DoorOpenPacket{Coords: protocol.Coords{X: 5, Y: 10}},
		&NpcJunkPacket{NpcId: 64008},
		&NpcAgreePacket{Npcs: []protocol.NpcMapInfo{
			{Index: 1, Id: 100, Coords: protocol.Coords{X: 1, Y: 2}, Direction: protocol.DirectionUp},
			{Index: 2, Id: 101, Coords: protocol.Coords{X: 3, Y: 4}, Direction: protocol.DirectionDown},
		}},
		&NpcAgreePacket{},
		&GuildAcceptPacket{Rank: 252},
		&GuildTakePacket{Description: "we fight"},
		&PlayersPingPacket{Name: "alice"},
		&PlayersPongPacket{Name: "alice"},
		&PlayersNet242Packet{Name: "alice"},
		&PlayersAgreePacket{Nearby: testNearby()},
		&AvatarAgreePacket{Change: protocol.AvatarChange{
			PlayerId:       4,
			ChangeType:     protocol.AvatarChangeHair,
			ChangeTypeData: &protocol.HairChange{HairStyle: 2, HairColor: 3},
		}},
		&AvatarRemovePacket{PlayerId: 12},
		&AvatarRemovePacket{PlayerId: 12, WarpEffect: warpEffect(protocol.WarpEffectScroll)},
		&PartyAddPacket{Member: protocol.PartyMember{PlayerId: 1, Level: 2, HpPercentage: 50, Name: "erin"}},
		&PartyCreatePacket{Members: []protocol.PartyMember{
			{PlayerId: 1, Leader: true, Level: 10, HpPercentage: 100, Name: "erin"},
			{PlayerId: 2, Level: 11, HpPercentage: 75, Name: "frank"},
		}},
		&PartyRemovePacket{PlayerId: 2},
		&PartyClosePacket{},
		&RefreshReplyPacket{Nearby: testNearby()},
		&ItemJunkPacket{
			JunkedItem:      protocol.ThreeItem{Id: 1, Amount: 5},
			RemainingAmount: 95,
			Weight:          protocol.Weight{Current: 20, Max: 200},
		},
		&ItemAddPacket{ItemId: 1, ItemIndex: 300, ItemAmount: 1000, Coords: protocol.Coords{X: 1, Y: 1}},
		&ItemRemovePacket{ItemIndex: 300},
		&SpellRequestPacket{PlayerId: 1, SpellId: 2},
		&SpellErrorPacket{},
		&WalkPlayerPacket{PlayerId: 3, Direction: protocol.DirectionRight, Coords: protocol.Coords{X: 8, Y: 9}},
		&TalkPlayerPacket{PlayerId: 3, Message: "hello world"},
		&ChestOpenPacket{Coords: protocol.Coords{X: 2, Y: 2}, Items: []protocol.ThreeItem{{Id: 1, Amount: 2}, {Id: 3, Amount: 4}}},
		&ConnectionPlayerPacket{Seq1: 1000, Seq2: 100},
		&MessagePongPacket{},
		&InitInitPacket{ReplyCode: protocol.InitReplyOk, Ok: &protocol.InitOk{
			Seq1: 100, Seq2: 5, ServerEncryptionMultiple: 6, ClientEncryptionMultiple: 12, PlayerId: 1, ChallengeResponse: 112773,
		}},
		&InitInitPacket{ReplyCode: protocol.InitReplyOutOfDate, Version: &protocol.Version{Patch: 28}},
		&InitInitPacket{ReplyCode: protocol.InitReplyBanned},
	}
	for _, in := range tests {
		t.Run(packet.PacketID(in).String(), func(t *testing.T) {
			body, err := packet.Serialize(in)
			require.NoError(t, err)

			out, err := Registry.Deserialize(in.Family(), in.Action(), body)
			require.NoError(t, err)
			if diff := cmp.Diff(in, out, cmpOpts...); diff != "" {
				t.Errorf("round trip mismatch (-in +out):\n%s", diff)
			}
			assert.Equal(t, len(body), out.ByteSize())
		})
	}
}

func TestRegistryCoversCatalog(t *testing.T) {
	assert.Equal(t, 27, Registry.Count())
	for _, id := range Registry.IDs() {
		p, err := Registry.Lookup(id.Family, id.Action)
		require.NoError(t, err)
		assert.Equal(t, id, packet.PacketID(p))
	}
}

func TestDoorOpenBytes(t *testing.T) {
	body, err := packet.Serialize(&DoorOpenPacket{Coords: protocol.Coords{X: 5, Y: 10}})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x06, 0x0B, 0x01}, body)

	var p DoorOpenPacket
	require.NoError(t, p.Deserialize(data.NewReader(body)))
	assert.Equal(t, 5, p.Coords.X)
	assert.Equal(t, 10, p.Coords.Y)
	assert.Equal(t, 3, p.ByteSize())
}

func TestNumberLimits(t *testing.T) {
	body, err := packet.Serialize(&NpcJunkPacket{NpcId: 64008})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFD, 0xFD}, body)

	_, err = packet.Serialize(&NpcJunkPacket{NpcId: 64009})
	assert.True(t, data.IsSerializationError(err))

	body, err = packet.Serialize(&GuildAcceptPacket{Rank: 252})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFD}, body)

	_, err = packet.Serialize(&GuildAcceptPacket{Rank: 253})
	assert.True(t, data.IsSerializationError(err))
}

func TestPlayersPongBytes(t *testing.T) {
	body, err := packet.Serialize(&PlayersPongPacket{Name: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, []byte("Alice"), body)
}

func TestTruncatedBody(t *testing.T) {
	tests := []packet.Packet{
		&DoorOpenPacket{Coords: protocol.Coords{X: 5, Y: 10}},
		&NpcJunkPacket{NpcId: 1000},
		&WalkPlayerPacket{PlayerId: 3, Coords: protocol.Coords{X: 8, Y: 9}},
		&ItemAddPacket{ItemId: 1, ItemIndex: 2, ItemAmount: 3},
		&ConnectionPlayerPacket{Seq1: 1000, Seq2: 100},
		&SpellRequestPacket{PlayerId: 1, SpellId: 2},
	}
	for _, in := range tests {
		t.Run(packet.PacketID(in).String(), func(t *testing.T) {
			body, err := packet.Serialize(in)
			require.NoError(t, err)

			out, err := Registry.Deserialize(in.Family(), in.Action(), body[:len(body)-1])
			assert.Nil(t, out)
			assert.True(t, data.IsOutOfDataError(err), "got %v", err)
		})
	}
}

func TestChunkedModeRestored(t *testing.T) {
	body, err := packet.Serialize(&PlayersAgreePacket{Nearby: testNearby()})
	require.NoError(t, err)

	reader := data.NewReader(body)
	var p PlayersAgreePacket
	require.NoError(t, p.Deserialize(reader))
	assert.False(t, reader.IsChunked())

	reader = data.NewReader(body[:8])
	assert.Error(t, p.Deserialize(reader))
	assert.False(t, reader.IsChunked())
}

func TestUnrecognized(t *testing.T) {
	p, err := Registry.Deserialize(packet.FamilyBank, packet.ActionOpen, nil)
	assert.Nil(t, p)
	assert.True(t, packet.IsUnrecognizedPacket(err))
}

func TestConnectionPlayerSequenceStart(t *testing.T) {
	p := &ConnectionPlayerPacket{Seq1: 1000, Seq2: 100}
	assert.Equal(t, 900, p.SequenceStart().Value())
}

func TestInitReplyNeedsData(t *testing.T) {
	_, err := packet.Serialize(&InitInitPacket{ReplyCode: protocol.InitReplyOk})
	assert.True(t, data.IsSerializationError(err))

	_, err = packet.Serialize(&InitInitPacket{ReplyCode: protocol.InitReplyOutOfDate})
	assert.True(t, data.IsSerializationError(err))

	// the sequence and multiple fields are raw bytes
	body, err := packet.Serialize(&InitInitPacket{ReplyCode: protocol.InitReplyOk, Ok: &protocol.InitOk{
		Seq1: 200, Seq2: 1, ServerEncryptionMultiple: 6, ClientEncryptionMultiple: 7,
	}})
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 200, 1, 6, 7, 0x01, 0xFE, 0x01, 0xFE, 0xFE}, body)
}
