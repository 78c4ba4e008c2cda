package protocol

type Direction int

const (
	DirectionDown  Direction = iota
	DirectionLeft  Direction = 1
	DirectionUp    Direction = 2
	DirectionRight Direction = 3
)

func (d Direction) String() string {
	switch d {
	case DirectionDown:
		return "Down"
	case DirectionLeft:
		return "Left"
	case DirectionUp:
		return "Up"
	case DirectionRight:
		return "Right"
	}
	return "Direction(unknown)"
}

type Gender int

const (
	GenderFemale Gender = iota
	GenderMale   Gender = 1
)

type SitState int

const (
	SitStateStand SitState = iota
	SitStateChair SitState = 1
	SitStateFloor SitState = 2
)

// AvatarChangeType selects the data carried by an AvatarChange.
type AvatarChangeType int

const (
	AvatarChangeEquipment AvatarChangeType = 1
	AvatarChangeHair      AvatarChangeType = 2
	AvatarChangeHairColor AvatarChangeType = 3
)

// WarpEffect is the animation shown when a player leaves the screen.
type WarpEffect int

const (
	WarpEffectNone   WarpEffect = iota
	WarpEffectScroll WarpEffect = 1
	WarpEffectAdmin  WarpEffect = 2
)

// GuildInfoType selects which guild details a guild take request asks for.
type GuildInfoType int

const (
	GuildInfoDescription GuildInfoType = 1
	GuildInfoRanks       GuildInfoType = 2
	GuildInfoBank        GuildInfoType = 3
)
