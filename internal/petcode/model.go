// Package petcode defines the in-memory model of a shared creature build
// and the helpers that construct and inspect it.
//
// All records are plain values. Message-typed singular fields are pointers
// where nil means "not set"; repeated fields are slices. Nothing in this
// module mutates a record after it has been built.
package petcode

// Message is the root of a share code: one player's team configuration.
type Message struct {
	Server      Server
	DisplayMode DisplayMode
	SeerSet     *SeerSet
	Pets        []Pet
	BattleFires []BattleFire
}

// SeerSet is the player's equipped suit pieces and title.
type SeerSet struct {
	Equips  []int32
	TitleID int32
}

// Pet is a single creature in the build.
type Pet struct {
	ID           int32
	Level        int32
	DV           int32
	AbilityTotal *AbilityValue
	EVs          *AbilityValue
	Effects      []Effect
	Skills       []int32
	Mintmarks    []Mintmark
	Nature       int32
	Resistance   *Resistance
	IsAwaken     bool
	PetItems     []int32
	AbilityBonus []AbilityBonus
	SkinID       int32
	ExtraHP      int32
}

// Effect is a status or ability marker attached to a pet. Status is a coarse
// type discriminator; Args are order-significant.
type Effect struct {
	ID     int32
	Status int32
	Args   []int32
}

// AbilityValue holds the six named stats.
type AbilityValue struct {
	HP             int32
	Attack         int32
	Defense        int32
	SpecialAttack  int32
	SpecialDefense int32
	Speed          int32
}

// Resistance groups damage and status resistances.
type Resistance struct {
	Hurt *Hurt
	Ctl  []StateItem
	Weak []StateItem
}

// Hurt is the damage resistance block.
type Hurt struct {
	Crit    int32
	Regular int32
	Percent int32
}

// StateItem is the resist chance against one battle state.
type StateItem struct {
	StateID int32
	Percent int32
}

// AbilityBonus is an extra stat bonus of a given type.
type AbilityBonus struct {
	Type  AbilityBonusType
	Value *BonusValue
}

// BonusValue holds one ExtraValue per named stat.
type BonusValue struct {
	HP             *ExtraValue
	Attack         *ExtraValue
	Defense        *ExtraValue
	SpecialAttack  *ExtraValue
	SpecialDefense *ExtraValue
	Speed          *ExtraValue
}

// ExtraValue is a flat amount plus a percentage.
type ExtraValue struct {
	Value   int32
	Percent int32
}
