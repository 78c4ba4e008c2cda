package packet

import "fmt"

// Family is the top-level routing category of a packet.
type Family uint8

const (
	FamilyConnection    Family = 1
	FamilyAccount       Family = 2
	FamilyCharacter     Family = 3
	FamilyLogin         Family = 4
	FamilyWelcome       Family = 5
	FamilyWalk          Family = 6
	FamilyFace          Family = 7
	FamilyChair         Family = 8
	FamilyEmote         Family = 9
	FamilyAttack        Family = 11
	FamilySpell         Family = 12
	FamilyShop          Family = 13
	FamilyItem          Family = 14
	FamilyStatSkill     Family = 16
	FamilyGlobal        Family = 17
	FamilyTalk          Family = 18
	FamilyWarp          Family = 19
	FamilyJukebox       Family = 21
	FamilyPlayers       Family = 22
	FamilyAvatar        Family = 23
	FamilyParty         Family = 24
	FamilyRefresh       Family = 25
	FamilyNpc           Family = 26
	FamilyPlayerRange   Family = 27
	FamilyNpcRange      Family = 28
	FamilyRange         Family = 29
	FamilyPaperdoll     Family = 30
	FamilyEffect        Family = 31
	FamilyTrade         Family = 32
	FamilyChest         Family = 33
	FamilyDoor          Family = 34
	FamilyMessage       Family = 35
	FamilyBank          Family = 36
	FamilyLocker        Family = 37
	FamilyBarber        Family = 38
	FamilyGuild         Family = 39
	FamilyMusic         Family = 40
	FamilySit           Family = 41
	FamilyRecover       Family = 42
	FamilyBoard         Family = 43
	FamilyCast          Family = 44
	FamilyArena         Family = 45
	FamilyPriest        Family = 46
	FamilyMarriage      Family = 47
	FamilyAdminInteract Family = 48
	FamilyCitizen       Family = 49
	FamilyQuest         Family = 50
	FamilyBook          Family = 51
	FamilyError         Family = 250
	FamilyInit          Family = 255
)

var familyNames = map[Family]string{
	FamilyConnection:    "Connection",
	FamilyAccount:       "Account",
	FamilyCharacter:     "Character",
	FamilyLogin:         "Login",
	FamilyWelcome:       "Welcome",
	FamilyWalk:          "Walk",
	FamilyFace:          "Face",
	FamilyChair:         "Chair",
	FamilyEmote:         "Emote",
	FamilyAttack:        "Attack",
	FamilySpell:         "Spell",
	FamilyShop:          "Shop",
	FamilyItem:          "Item",
	FamilyStatSkill:     "StatSkill",
	FamilyGlobal:        "Global",
	FamilyTalk:          "Talk",
	FamilyWarp:          "Warp",
	FamilyJukebox:       "Jukebox",
	FamilyPlayers:       "Players",
	FamilyAvatar:        "Avatar",
	FamilyParty:         "Party",
	FamilyRefresh:       "Refresh",
	FamilyNpc:           "Npc",
	FamilyPlayerRange:   "PlayerRange",
	FamilyNpcRange:      "NpcRange",
	FamilyRange:         "Range",
	FamilyPaperdoll:     "Paperdoll",
	FamilyEffect:        "Effect",
	FamilyTrade:         "Trade",
	FamilyChest:         "Chest",
	FamilyDoor:          "Door",
	FamilyMessage:       "Message",
	FamilyBank:          "Bank",
	FamilyLocker:        "Locker",
	FamilyBarber:        "Barber",
	FamilyGuild:         "Guild",
	FamilyMusic:         "Music",
	FamilySit:           "Sit",
	FamilyRecover:       "Recover",
	FamilyBoard:         "Board",
	FamilyCast:          "Cast",
	FamilyArena:         "Arena",
	FamilyPriest:        "Priest",
	FamilyMarriage:      "Marriage",
	FamilyAdminInteract: "AdminInteract",
	FamilyCitizen:       "Citizen",
	FamilyQuest:         "Quest",
	FamilyBook:          "Book",
	FamilyError:         "Error",
	FamilyInit:          "Init",
}

func (f Family) String() string {
	if name, o := familyNames[f]; o {
		return name
	}
	return fmt.Sprintf("Family(%d)", uint8(f))
}

// Action is the operation within a family.
type Action uint8

const (
	ActionRequest     Action = 1
	ActionAccept      Action = 2
	ActionReply       Action = 3
	ActionRemove      Action = 4
	ActionAgree       Action = 5
	ActionCreate      Action = 6
	ActionAdd         Action = 7
	ActionPlayer      Action = 8
	ActionTake        Action = 9
	ActionUse         Action = 10
	ActionBuy         Action = 11
	ActionSell        Action = 12
	ActionOpen        Action = 13
	ActionClose       Action = 14
	ActionMsg         Action = 15
	ActionSpec        Action = 16
	ActionAdmin       Action = 17
	ActionList        Action = 18
	ActionTell        Action = 20
	ActionReport      Action = 21
	ActionAnnounce    Action = 22
	ActionServer      Action = 23
	ActionDrop        Action = 24
	ActionJunk        Action = 25
	ActionObtain      Action = 26
	ActionGet         Action = 27
	ActionKick        Action = 28
	ActionRank        Action = 29
	ActionTargetSelf  Action = 30
	ActionTargetOther Action = 31
	ActionTargetGroup Action = 33
	ActionDialog      Action = 34
	ActionPing        Action = 240
	ActionPong        Action = 241
	ActionNet242      Action = 242
	ActionNet243      Action = 243
	ActionNet244      Action = 244
	ActionError       Action = 250
	ActionInit        Action = 255
)

var actionNames = map[Action]string{
	ActionRequest:     "Request",
	ActionAccept:      "Accept",
	ActionReply:       "Reply",
	ActionRemove:      "Remove",
	ActionAgree:       "Agree",
	ActionCreate:      "Create",
	ActionAdd:         "Add",
	ActionPlayer:      "Player",
	ActionTake:        "Take",
	ActionUse:         "Use",
	ActionBuy:         "Buy",
	ActionSell:        "Sell",
	ActionOpen:        "Open",
	ActionClose:       "Close",
	ActionMsg:         "Msg",
	ActionSpec:        "Spec",
	ActionAdmin:       "Admin",
	ActionList:        "List",
	ActionTell:        "Tell",
	ActionReport:      "Report",
	ActionAnnounce:    "Announce",
	ActionServer:      "Server",
	ActionDrop:        "Drop",
	ActionJunk:        "Junk",
	ActionObtain:      "Obtain",
	ActionGet:         "Get",
	ActionKick:        "Kick",
	ActionRank:        "Rank",
	ActionTargetSelf:  "TargetSelf",
	ActionTargetOther: "TargetOther",
	ActionTargetGroup: "TargetGroup",
	ActionDialog:      "Dialog",
	ActionPing:        "Ping",
	ActionPong:        "Pong",
	ActionNet242:      "Net242",
	ActionNet243:      "Net243",
	ActionNet244:      "Net244",
	ActionError:       "Error",
	ActionInit:        "Init",
}

func (a Action) String() string {
	if name, o := actionNames[a]; o {
		return name
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// ID identifies a packet type on the wire.
type ID struct {
	Family Family
	Action Action
}

func (id ID) String() string {
	return id.Family.String() + "_" + id.Action.String()
}
