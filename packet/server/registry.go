package server

import "github.com/huoshan017/eonet/packet"

// Registry resolves every server packet by family and action.
var Registry = packet.NewRegistry(
	new(DoorOpenPacket),
	new(NpcJunkPacket),
	new(NpcAgreePacket),
	new(GuildAcceptPacket),
	new(GuildTakePacket),
	new(PlayersPingPacket),
	new(PlayersPongPacket),
	new(PlayersNet242Packet),
	new(PlayersAgreePacket),
	new(AvatarAgreePacket),
	new(AvatarRemovePacket),
	new(PartyAddPacket),
	new(PartyCreatePacket),
	new(PartyRemovePacket),
	new(PartyClosePacket),
	new(RefreshReplyPacket),
	new(ItemJunkPacket),
	new(ItemAddPacket),
	new(ItemRemovePacket),
	new(SpellRequestPacket),
	new(SpellErrorPacket),
	new(WalkPlayerPacket),
	new(TalkPlayerPacket),
	new(ChestOpenPacket),
	new(ConnectionPlayerPacket),
	new(MessagePongPacket),
	new(InitInitPacket),
)
