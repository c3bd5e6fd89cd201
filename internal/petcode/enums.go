package petcode

import "strconv"

// Server identifies the game server the build belongs to.
type Server int32

const (
	ServerUnspecified Server = 0
	ServerOfficial    Server = 1
	ServerTest        Server = 2
	ServerTaiwan      Server = 3
	ServerClassic     Server = 4
)

var serverNames = map[Server]string{
	ServerUnspecified: "SERVER_UNSPECIFIED",
	ServerOfficial:    "SERVER_OFFICIAL",
	ServerTest:        "SERVER_TEST",
	ServerTaiwan:      "SERVER_TAIWAN",
	ServerClassic:     "SERVER_CLASSIC",
}

var serverValues = invert(serverNames)

// String returns the symbolic name, or the decimal value when unknown.
func (s Server) String() string { return enumString(serverNames, s) }

// Known reports whether s has a symbolic name.
func (s Server) Known() bool { _, ok := serverNames[s]; return ok }

// ParseServer looks up a Server by symbolic name.
func ParseServer(name string) (Server, bool) { v, ok := serverValues[name]; return v, ok }

// DisplayMode is the context the build is shown in.
type DisplayMode int32

const (
	DisplayModeUnspecified DisplayMode = 0
	DisplayModePVP         DisplayMode = 1
	DisplayModePVE         DisplayMode = 2
	DisplayModeBoss        DisplayMode = 3
)

var displayModeNames = map[DisplayMode]string{
	DisplayModeUnspecified: "DISPLAY_MODE_UNSPECIFIED",
	DisplayModePVP:         "DISPLAY_MODE_PVP",
	DisplayModePVE:         "DISPLAY_MODE_PVE",
	DisplayModeBoss:        "DISPLAY_MODE_BOSS",
}

var displayModeValues = invert(displayModeNames)

func (d DisplayMode) String() string { return enumString(displayModeNames, d) }

// Known reports whether d has a symbolic name.
func (d DisplayMode) Known() bool { _, ok := displayModeNames[d]; return ok }

// ParseDisplayMode looks up a DisplayMode by symbolic name.
func ParseDisplayMode(name string) (DisplayMode, bool) {
	v, ok := displayModeValues[name]
	return v, ok
}

// BattleFire is a team-wide battle buff.
type BattleFire int32

const (
	BattleFireUnspecified BattleFire = 0
	BattleFireGreen       BattleFire = 1
	BattleFireBlue        BattleFire = 2
	BattleFirePurple      BattleFire = 3
	BattleFireGold        BattleFire = 4
)

var battleFireNames = map[BattleFire]string{
	BattleFireUnspecified: "BATTLE_FIRE_UNSPECIFIED",
	BattleFireGreen:       "BATTLE_FIRE_GREEN",
	BattleFireBlue:        "BATTLE_FIRE_BLUE",
	BattleFirePurple:      "BATTLE_FIRE_PURPLE",
	BattleFireGold:        "BATTLE_FIRE_GOLD",
}

var battleFireValues = invert(battleFireNames)

func (b BattleFire) String() string { return enumString(battleFireNames, b) }

// Known reports whether b has a symbolic name.
func (b BattleFire) Known() bool { _, ok := battleFireNames[b]; return ok }

// ParseBattleFire looks up a BattleFire by symbolic name.
func ParseBattleFire(name string) (BattleFire, bool) {
	v, ok := battleFireValues[name]
	return v, ok
}

// AbilityBonusType classifies an AbilityBonus.
type AbilityBonusType int32

const (
	AbilityBonusTypeUnspecified AbilityBonusType = 0
	AbilityBonusTypeSpecial     AbilityBonusType = 1
)

var abilityBonusTypeNames = map[AbilityBonusType]string{
	AbilityBonusTypeUnspecified: "TYPE_UNSPECIFIED",
	AbilityBonusTypeSpecial:     "TYPE_SPECIAL",
}

var abilityBonusTypeValues = invert(abilityBonusTypeNames)

func (t AbilityBonusType) String() string { return enumString(abilityBonusTypeNames, t) }

// Known reports whether t has a symbolic name.
func (t AbilityBonusType) Known() bool { _, ok := abilityBonusTypeNames[t]; return ok }

// ParseAbilityBonusType looks up an AbilityBonusType by symbolic name.
func ParseAbilityBonusType(name string) (AbilityBonusType, bool) {
	v, ok := abilityBonusTypeValues[name]
	return v, ok
}

type enum interface {
	~int32
}

func enumString[E enum](names map[E]string, v E) string {
	if n, ok := names[v]; ok {
		return n
	}
	return strconv.FormatInt(int64(v), 10)
}

func invert[E enum](names map[E]string) map[string]E {
	out := make(map[string]E, len(names))
	for v, n := range names {
		out[n] = v
	}
	return out
}
