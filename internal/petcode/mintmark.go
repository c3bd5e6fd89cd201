package petcode

// Mintmark is an equipped modifier slot. Exactly one variant is populated in a
// well-formed Mintmark; a nil Variant is the unset state and ReadMintmark
// rejects it.
type Mintmark struct {
	Variant MintmarkVariant
}

// MintmarkVariant is implemented by *SkillMintmark, *AbilityMintmark,
// *UniversalMintmark and *QuanxiaoMintmark only.
type MintmarkVariant interface {
	// MintmarkID returns the id used to look the mintmark up.
	MintmarkID() int32
	isMintmarkVariant()
}

// SkillMintmark boosts a single skill.
type SkillMintmark struct {
	ID int32
}

// AbilityMintmark adds fixed stats.
type AbilityMintmark struct {
	ID int32
}

// UniversalMintmark is a levelled mintmark that may carry a gem and a
// custom stat roll.
type UniversalMintmark struct {
	ID    int32
	Level int32
	Gem   *Gem
	// Ability overrides the mintmark's default stat roll when set.
	Ability *AbilityValue
}

// Gem is socketed into a UniversalMintmark and bound to one skill.
type Gem struct {
	GemID       int32
	BindSkillID int32
}

// QuanxiaoMintmark pairs an ability mintmark with a skill mintmark.
type QuanxiaoMintmark struct {
	ID              int32
	SkillMintmarkID int32
}

func (m *SkillMintmark) MintmarkID() int32     { return m.ID }
func (m *AbilityMintmark) MintmarkID() int32   { return m.ID }
func (m *UniversalMintmark) MintmarkID() int32 { return m.ID }
func (m *QuanxiaoMintmark) MintmarkID() int32  { return m.ID }

func (*SkillMintmark) isMintmarkVariant()     {}
func (*AbilityMintmark) isMintmarkVariant()   {}
func (*UniversalMintmark) isMintmarkVariant() {}
func (*QuanxiaoMintmark) isMintmarkVariant()  {}

// MintmarkKind names the populated variant of a Mintmark.
type MintmarkKind int

const (
	MintmarkKindUnset MintmarkKind = iota
	MintmarkKindSkill
	MintmarkKindAbility
	MintmarkKindUniversal
	MintmarkKindQuanxiao
)

func (k MintmarkKind) String() string {
	switch k {
	case MintmarkKindSkill:
		return "skill"
	case MintmarkKindAbility:
		return "ability"
	case MintmarkKindUniversal:
		return "universal"
	case MintmarkKindQuanxiao:
		return "quanxiao"
	default:
		return "unset"
	}
}

// Kind reports which variant is populated. A typed nil variant counts as unset.
func (m Mintmark) Kind() MintmarkKind {
	switch v := m.Variant.(type) {
	case *SkillMintmark:
		if v != nil {
			return MintmarkKindSkill
		}
	case *AbilityMintmark:
		if v != nil {
			return MintmarkKindAbility
		}
	case *UniversalMintmark:
		if v != nil {
			return MintmarkKindUniversal
		}
	case *QuanxiaoMintmark:
		if v != nil {
			return MintmarkKindQuanxiao
		}
	}
	return MintmarkKindUnset
}

// NewSkillMintmark builds a Mintmark holding a SkillMintmark.
func NewSkillMintmark(id int32) Mintmark {
	return Mintmark{Variant: &SkillMintmark{ID: id}}
}

// NewAbilityMintmark builds a Mintmark holding an AbilityMintmark.
func NewAbilityMintmark(id int32) Mintmark {
	return Mintmark{Variant: &AbilityMintmark{ID: id}}
}

// NewQuanxiaoMintmark builds a Mintmark holding a QuanxiaoMintmark.
func NewQuanxiaoMintmark(id, skillMintmarkID int32) Mintmark {
	return Mintmark{Variant: &QuanxiaoMintmark{ID: id, SkillMintmarkID: skillMintmarkID}}
}

// UniversalOption configures NewUniversalMintmark.
type UniversalOption func(*universalOptions)

type universalOptions struct {
	gemID       *int32
	bindSkillID *int32
	ability     *AbilityValue
}

// WithGem sets the socketed gem id.
func WithGem(gemID int32) UniversalOption {
	return func(o *universalOptions) { o.gemID = &gemID }
}

// WithBindSkill sets the skill the gem is bound to.
func WithBindSkill(skillID int32) UniversalOption {
	return func(o *universalOptions) { o.bindSkillID = &skillID }
}

// WithAbilityOverride replaces the default stat roll.
func WithAbilityOverride(a AbilityValue) UniversalOption {
	return func(o *universalOptions) { o.ability = &a }
}

// NewUniversalMintmark builds a Mintmark holding a UniversalMintmark.
//
// Postcondition: Gem is non-nil iff WithGem or WithBindSkill was given; the
// part not given is zero. Ability is non-nil iff WithAbilityOverride was given.
func NewUniversalMintmark(id, level int32, opts ...UniversalOption) Mintmark {
	var o universalOptions
	for _, opt := range opts {
		opt(&o)
	}
	u := &UniversalMintmark{ID: id, Level: level, Ability: o.ability}
	if o.gemID != nil || o.bindSkillID != nil {
		u.Gem = &Gem{}
		if o.gemID != nil {
			u.Gem.GemID = *o.gemID
		}
		if o.bindSkillID != nil {
			u.Gem.BindSkillID = *o.bindSkillID
		}
	}
	return Mintmark{Variant: u}
}

// ReadMintmark returns the populated variant of m.
//
// Postcondition: Returns one of *SkillMintmark, *AbilityMintmark,
// *UniversalMintmark, *QuanxiaoMintmark, or ErrUnknownVariant when unset.
func ReadMintmark(m Mintmark) (MintmarkVariant, error) {
	if m.Kind() == MintmarkKindUnset {
		return nil, ErrUnknownVariant
	}
	return m.Variant, nil
}
