package client

import "github.com/huoshan017/eonet/packet"

// Registry resolves every client packet by family and action.
var Registry = packet.NewRegistry(
	new(DoorOpenPacket),
	new(FacePlayerPacket),
	new(WalkPlayerPacket),
	new(RefreshRequestPacket),
	new(ItemJunkPacket),
	new(SpellRequestPacket),
	new(SpellUsePacket),
	new(TalkReportPacket),
	new(GuildTakePacket),
	new(PlayersAcceptPacket),
	new(PlayersRequestPacket),
	new(PartyRequestPacket),
	new(LoginRequestPacket),
	new(AccountCreatePacket),
	new(ConnectionPingPacket),
	new(MessagePingPacket),
	new(InitInitPacket),
)
