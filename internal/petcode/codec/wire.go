package codec

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/seerbp/petcode/internal/petcode"
)

// Field numbers of the petcode.v1 schema.
const (
	fieldMessageServer      protowire.Number = 1
	fieldMessageDisplayMode protowire.Number = 2
	fieldMessageSeerSet     protowire.Number = 3
	fieldMessagePets        protowire.Number = 4
	fieldMessageBattleFires protowire.Number = 5

	fieldSeerSetEquips  protowire.Number = 1
	fieldSeerSetTitleID protowire.Number = 2

	fieldPetID           protowire.Number = 1
	fieldPetLevel        protowire.Number = 2
	fieldPetDV           protowire.Number = 3
	fieldPetAbilityTotal protowire.Number = 4
	fieldPetEVs          protowire.Number = 5
	fieldPetEffects      protowire.Number = 6
	fieldPetSkills       protowire.Number = 7
	fieldPetMintmarks    protowire.Number = 8
	fieldPetNature       protowire.Number = 9
	fieldPetResistance   protowire.Number = 10
	fieldPetIsAwaken     protowire.Number = 11
	fieldPetPetItems     protowire.Number = 12
	fieldPetAbilityBonus protowire.Number = 13
	fieldPetSkinID       protowire.Number = 14
	fieldPetExtraHP      protowire.Number = 15

	fieldEffectID     protowire.Number = 1
	fieldEffectStatus protowire.Number = 2
	fieldEffectArgs   protowire.Number = 3

	fieldAbilityHP             protowire.Number = 1
	fieldAbilityAttack         protowire.Number = 2
	fieldAbilityDefense        protowire.Number = 3
	fieldAbilitySpecialAttack  protowire.Number = 4
	fieldAbilitySpecialDefense protowire.Number = 5
	fieldAbilitySpeed          protowire.Number = 6

	fieldMintmarkSkill     protowire.Number = 1
	fieldMintmarkAbility   protowire.Number = 2
	fieldMintmarkUniversal protowire.Number = 3
	fieldMintmarkQuanxiao  protowire.Number = 4

	fieldVariantID protowire.Number = 1

	fieldUniversalLevel   protowire.Number = 2
	fieldUniversalGem     protowire.Number = 3
	fieldUniversalAbility protowire.Number = 4

	fieldGemGemID       protowire.Number = 1
	fieldGemBindSkillID protowire.Number = 2

	fieldQuanxiaoSkillMintmarkID protowire.Number = 2

	fieldResistanceHurt protowire.Number = 1
	fieldResistanceCtl  protowire.Number = 2
	fieldResistanceWeak protowire.Number = 3

	fieldHurtCrit    protowire.Number = 1
	fieldHurtRegular protowire.Number = 2
	fieldHurtPercent protowire.Number = 3

	fieldStateItemStateID protowire.Number = 1
	fieldStateItemPercent protowire.Number = 2

	fieldBonusType  protowire.Number = 1
	fieldBonusValue protowire.Number = 2

	fieldExtraValueValue   protowire.Number = 1
	fieldExtraValuePercent protowire.Number = 2
)

// MarshalBinary returns the canonical, uncompressed protobuf encoding of m.
// Fields are written in ascending field-number order with proto3 default
// omission, so equal messages always produce equal bytes.
func MarshalBinary(m *petcode.Message) []byte {
	if m == nil {
		return []byte{}
	}
	return appendMessage(make([]byte, 0, 64), m)
}

// UnmarshalBinary parses the canonical protobuf encoding produced by
// MarshalBinary. Unknown fields are skipped.
//
// Postcondition: Returns a *petcode.DecodeError on malformed input.
func UnmarshalBinary(b []byte) (*petcode.Message, error) {
	m := &petcode.Message{}
	if err := unmarshalMessage(b, m); err != nil {
		return nil, petcode.NewDecodeError(petcode.FormatProtobuf, err)
	}
	return m, nil
}

// --- encoding ---

func appendInt32(b []byte, num protowire.Number, v int32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(v)))
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(v))
}

func appendPacked[T ~int32](b []byte, num protowire.Number, vs []T) []byte {
	if len(vs) == 0 {
		return b
	}
	var body []byte
	for _, v := range vs {
		body = protowire.AppendVarint(body, uint64(int64(v)))
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, body)
}

func appendEmbedded(b []byte, num protowire.Number, body []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, body)
}

func appendMessage(b []byte, m *petcode.Message) []byte {
	b = appendInt32(b, fieldMessageServer, int32(m.Server))
	b = appendInt32(b, fieldMessageDisplayMode, int32(m.DisplayMode))
	if m.SeerSet != nil {
		b = appendEmbedded(b, fieldMessageSeerSet, appendSeerSet(nil, m.SeerSet))
	}
	for i := range m.Pets {
		b = appendEmbedded(b, fieldMessagePets, appendPet(nil, &m.Pets[i]))
	}
	return appendPacked(b, fieldMessageBattleFires, m.BattleFires)
}

func appendSeerSet(b []byte, s *petcode.SeerSet) []byte {
	b = appendPacked(b, fieldSeerSetEquips, s.Equips)
	return appendInt32(b, fieldSeerSetTitleID, s.TitleID)
}

func appendPet(b []byte, p *petcode.Pet) []byte {
	b = appendInt32(b, fieldPetID, p.ID)
	b = appendInt32(b, fieldPetLevel, p.Level)
	b = appendInt32(b, fieldPetDV, p.DV)
	if p.AbilityTotal != nil {
		b = appendEmbedded(b, fieldPetAbilityTotal, appendAbilityValue(nil, p.AbilityTotal))
	}
	if p.EVs != nil {
		b = appendEmbedded(b, fieldPetEVs, appendAbilityValue(nil, p.EVs))
	}
	for i := range p.Effects {
		b = appendEmbedded(b, fieldPetEffects, appendEffect(nil, &p.Effects[i]))
	}
	b = appendPacked(b, fieldPetSkills, p.Skills)
	for i := range p.Mintmarks {
		b = appendEmbedded(b, fieldPetMintmarks, appendMintmark(nil, p.Mintmarks[i]))
	}
	b = appendInt32(b, fieldPetNature, p.Nature)
	if p.Resistance != nil {
		b = appendEmbedded(b, fieldPetResistance, appendResistance(nil, p.Resistance))
	}
	b = appendBool(b, fieldPetIsAwaken, p.IsAwaken)
	b = appendPacked(b, fieldPetPetItems, p.PetItems)
	for i := range p.AbilityBonus {
		b = appendEmbedded(b, fieldPetAbilityBonus, appendAbilityBonus(nil, &p.AbilityBonus[i]))
	}
	b = appendInt32(b, fieldPetSkinID, p.SkinID)
	return appendInt32(b, fieldPetExtraHP, p.ExtraHP)
}

func appendEffect(b []byte, e *petcode.Effect) []byte {
	b = appendInt32(b, fieldEffectID, e.ID)
	b = appendInt32(b, fieldEffectStatus, e.Status)
	return appendPacked(b, fieldEffectArgs, e.Args)
}

func appendAbilityValue(b []byte, a *petcode.AbilityValue) []byte {
	b = appendInt32(b, fieldAbilityHP, a.HP)
	b = appendInt32(b, fieldAbilityAttack, a.Attack)
	b = appendInt32(b, fieldAbilityDefense, a.Defense)
	b = appendInt32(b, fieldAbilitySpecialAttack, a.SpecialAttack)
	b = appendInt32(b, fieldAbilitySpecialDefense, a.SpecialDefense)
	return appendInt32(b, fieldAbilitySpeed, a.Speed)
}

// appendMintmark writes the populated oneof member, if any. Oneof members are
// always written when set, even when all their fields are zero.
func appendMintmark(b []byte, m petcode.Mintmark) []byte {
	switch m.Kind() {
	case petcode.MintmarkKindSkill:
		v := m.Variant.(*petcode.SkillMintmark)
		b = appendEmbedded(b, fieldMintmarkSkill, appendInt32(nil, fieldVariantID, v.ID))
	case petcode.MintmarkKindAbility:
		v := m.Variant.(*petcode.AbilityMintmark)
		b = appendEmbedded(b, fieldMintmarkAbility, appendInt32(nil, fieldVariantID, v.ID))
	case petcode.MintmarkKindUniversal:
		v := m.Variant.(*petcode.UniversalMintmark)
		b = appendEmbedded(b, fieldMintmarkUniversal, appendUniversal(nil, v))
	case petcode.MintmarkKindQuanxiao:
		v := m.Variant.(*petcode.QuanxiaoMintmark)
		body := appendInt32(nil, fieldVariantID, v.ID)
		body = appendInt32(body, fieldQuanxiaoSkillMintmarkID, v.SkillMintmarkID)
		b = appendEmbedded(b, fieldMintmarkQuanxiao, body)
	}
	return b
}

func appendUniversal(b []byte, u *petcode.UniversalMintmark) []byte {
	b = appendInt32(b, fieldVariantID, u.ID)
	b = appendInt32(b, fieldUniversalLevel, u.Level)
	if u.Gem != nil {
		gem := appendInt32(nil, fieldGemGemID, u.Gem.GemID)
		gem = appendInt32(gem, fieldGemBindSkillID, u.Gem.BindSkillID)
		b = appendEmbedded(b, fieldUniversalGem, gem)
	}
	if u.Ability != nil {
		b = appendEmbedded(b, fieldUniversalAbility, appendAbilityValue(nil, u.Ability))
	}
	return b
}

func appendResistance(b []byte, r *petcode.Resistance) []byte {
	if r.Hurt != nil {
		hurt := appendInt32(nil, fieldHurtCrit, r.Hurt.Crit)
		hurt = appendInt32(hurt, fieldHurtRegular, r.Hurt.Regular)
		hurt = appendInt32(hurt, fieldHurtPercent, r.Hurt.Percent)
		b = appendEmbedded(b, fieldResistanceHurt, hurt)
	}
	for _, s := range r.Ctl {
		b = appendEmbedded(b, fieldResistanceCtl, appendStateItem(nil, s))
	}
	for _, s := range r.Weak {
		b = appendEmbedded(b, fieldResistanceWeak, appendStateItem(nil, s))
	}
	return b
}

func appendStateItem(b []byte, s petcode.StateItem) []byte {
	b = appendInt32(b, fieldStateItemStateID, s.StateID)
	return appendInt32(b, fieldStateItemPercent, s.Percent)
}

func appendAbilityBonus(b []byte, a *petcode.AbilityBonus) []byte {
	b = appendInt32(b, fieldBonusType, int32(a.Type))
	if a.Value != nil {
		b = appendEmbedded(b, fieldBonusValue, appendBonusValue(nil, a.Value))
	}
	return b
}

func appendBonusValue(b []byte, v *petcode.BonusValue) []byte {
	for _, e := range []struct {
		num protowire.Number
		v   *petcode.ExtraValue
	}{
		{fieldAbilityHP, v.HP},
		{fieldAbilityAttack, v.Attack},
		{fieldAbilityDefense, v.Defense},
		{fieldAbilitySpecialAttack, v.SpecialAttack},
		{fieldAbilitySpecialDefense, v.SpecialDefense},
		{fieldAbilitySpeed, v.Speed},
	} {
		if e.v == nil {
			continue
		}
		body := appendInt32(nil, fieldExtraValueValue, e.v.Value)
		body = appendInt32(body, fieldExtraValuePercent, e.v.Percent)
		b = appendEmbedded(b, e.num, body)
	}
	return b
}

// --- decoding ---

// field is one decoded tag/value pair. Only varint and length-delimited
// values are materialised; other wire types are skipped by readFields.
type field struct {
	num   protowire.Number
	typ   protowire.Type
	v     uint64
	bytes []byte
}

func (f field) wireTypeError() error {
	return fmt.Errorf("field %d: unexpected wire type %d", f.num, f.typ)
}

func (f field) int32() (int32, error) {
	if f.typ != protowire.VarintType {
		return 0, f.wireTypeError()
	}
	return int32(f.v), nil
}

func (f field) bool() (bool, error) {
	if f.typ != protowire.VarintType {
		return false, f.wireTypeError()
	}
	return protowire.DecodeBool(f.v), nil
}

func (f field) message() ([]byte, error) {
	if f.typ != protowire.BytesType {
		return nil, f.wireTypeError()
	}
	return f.bytes, nil
}

// appendRepeated accepts both packed and unpacked encodings.
func appendRepeated[T ~int32](dst []T, f field) ([]T, error) {
	switch f.typ {
	case protowire.VarintType:
		return append(dst, T(int32(f.v))), nil
	case protowire.BytesType:
		b := f.bytes
		for len(b) > 0 {
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return dst, fmt.Errorf("field %d: %w", f.num, protowire.ParseError(n))
			}
			dst = append(dst, T(int32(v)))
			b = b[n:]
		}
		return dst, nil
	default:
		return dst, f.wireTypeError()
	}
}

func readFields(b []byte, fn func(field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		f := field{num: num, typ: typ}
		switch typ {
		case protowire.VarintType:
			f.v, n = protowire.ConsumeVarint(b)
		case protowire.BytesType:
			f.bytes, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return fmt.Errorf("field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
			continue
		}
		if n < 0 {
			return fmt.Errorf("field %d: %w", num, protowire.ParseError(n))
		}
		b = b[n:]
		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

func unmarshalMessage(b []byte, m *petcode.Message) error {
	return readFields(b, func(f field) (err error) {
		switch f.num {
		case fieldMessageServer:
			var v int32
			v, err = f.int32()
			m.Server = petcode.Server(v)
		case fieldMessageDisplayMode:
			var v int32
			v, err = f.int32()
			m.DisplayMode = petcode.DisplayMode(v)
		case fieldMessageSeerSet:
			var body []byte
			if body, err = f.message(); err != nil {
				return err
			}
			if m.SeerSet == nil {
				m.SeerSet = &petcode.SeerSet{}
			}
			err = unmarshalSeerSet(body, m.SeerSet)
		case fieldMessagePets:
			var body []byte
			if body, err = f.message(); err != nil {
				return err
			}
			var p petcode.Pet
			if err = unmarshalPet(body, &p); err != nil {
				return fmt.Errorf("pets[%d]: %w", len(m.Pets), err)
			}
			m.Pets = append(m.Pets, p)
		case fieldMessageBattleFires:
			m.BattleFires, err = appendRepeated(m.BattleFires, f)
		}
		return err
	})
}

func unmarshalSeerSet(b []byte, s *petcode.SeerSet) error {
	return readFields(b, func(f field) (err error) {
		switch f.num {
		case fieldSeerSetEquips:
			s.Equips, err = appendRepeated(s.Equips, f)
		case fieldSeerSetTitleID:
			s.TitleID, err = f.int32()
		}
		return err
	})
}

func unmarshalPet(b []byte, p *petcode.Pet) error {
	return readFields(b, func(f field) (err error) {
		switch f.num {
		case fieldPetID:
			p.ID, err = f.int32()
		case fieldPetLevel:
			p.Level, err = f.int32()
		case fieldPetDV:
			p.DV, err = f.int32()
		case fieldPetAbilityTotal:
			p.AbilityTotal, err = mergeAbilityValue(f, p.AbilityTotal)
		case fieldPetEVs:
			p.EVs, err = mergeAbilityValue(f, p.EVs)
		case fieldPetEffects:
			var body []byte
			if body, err = f.message(); err != nil {
				return err
			}
			var e petcode.Effect
			if err = unmarshalEffect(body, &e); err != nil {
				return fmt.Errorf("effects[%d]: %w", len(p.Effects), err)
			}
			p.Effects = append(p.Effects, e)
		case fieldPetSkills:
			p.Skills, err = appendRepeated(p.Skills, f)
		case fieldPetMintmarks:
			var body []byte
			if body, err = f.message(); err != nil {
				return err
			}
			var m petcode.Mintmark
			if err = unmarshalMintmark(body, &m); err != nil {
				return fmt.Errorf("mintmarks[%d]: %w", len(p.Mintmarks), err)
			}
			p.Mintmarks = append(p.Mintmarks, m)
		case fieldPetNature:
			p.Nature, err = f.int32()
		case fieldPetResistance:
			var body []byte
			if body, err = f.message(); err != nil {
				return err
			}
			if p.Resistance == nil {
				p.Resistance = &petcode.Resistance{}
			}
			err = unmarshalResistance(body, p.Resistance)
		case fieldPetIsAwaken:
			p.IsAwaken, err = f.bool()
		case fieldPetPetItems:
			p.PetItems, err = appendRepeated(p.PetItems, f)
		case fieldPetAbilityBonus:
			var body []byte
			if body, err = f.message(); err != nil {
				return err
			}
			var ab petcode.AbilityBonus
			if err = unmarshalAbilityBonus(body, &ab); err != nil {
				return fmt.Errorf("abilityBonus[%d]: %w", len(p.AbilityBonus), err)
			}
			p.AbilityBonus = append(p.AbilityBonus, ab)
		case fieldPetSkinID:
			p.SkinID, err = f.int32()
		case fieldPetExtraHP:
			p.ExtraHP, err = f.int32()
		}
		return err
	})
}

func unmarshalEffect(b []byte, e *petcode.Effect) error {
	return readFields(b, func(f field) (err error) {
		switch f.num {
		case fieldEffectID:
			e.ID, err = f.int32()
		case fieldEffectStatus:
			e.Status, err = f.int32()
		case fieldEffectArgs:
			e.Args, err = appendRepeated(e.Args, f)
		}
		return err
	})
}

// mergeAbilityValue merges a length-delimited AbilityValue into dst,
// allocating it on first occurrence.
func mergeAbilityValue(f field, dst *petcode.AbilityValue) (*petcode.AbilityValue, error) {
	body, err := f.message()
	if err != nil {
		return dst, err
	}
	if dst == nil {
		dst = &petcode.AbilityValue{}
	}
	err = readFields(body, func(f field) (err error) {
		switch f.num {
		case fieldAbilityHP:
			dst.HP, err = f.int32()
		case fieldAbilityAttack:
			dst.Attack, err = f.int32()
		case fieldAbilityDefense:
			dst.Defense, err = f.int32()
		case fieldAbilitySpecialAttack:
			dst.SpecialAttack, err = f.int32()
		case fieldAbilitySpecialDefense:
			dst.SpecialDefense, err = f.int32()
		case fieldAbilitySpeed:
			dst.Speed, err = f.int32()
		}
		return err
	})
	return dst, err
}

// unmarshalMintmark decodes the oneof. A later member replaces an earlier one
// of a different kind; repeated occurrences of the same member merge.
func unmarshalMintmark(b []byte, m *petcode.Mintmark) error {
	return readFields(b, func(f field) error {
		switch f.num {
		case fieldMintmarkSkill:
			v, _ := m.Variant.(*petcode.SkillMintmark)
			if v == nil {
				v = &petcode.SkillMintmark{}
			}
			if err := unmarshalVariantID(f, &v.ID); err != nil {
				return err
			}
			m.Variant = v
		case fieldMintmarkAbility:
			v, _ := m.Variant.(*petcode.AbilityMintmark)
			if v == nil {
				v = &petcode.AbilityMintmark{}
			}
			if err := unmarshalVariantID(f, &v.ID); err != nil {
				return err
			}
			m.Variant = v
		case fieldMintmarkUniversal:
			body, err := f.message()
			if err != nil {
				return err
			}
			v, _ := m.Variant.(*petcode.UniversalMintmark)
			if v == nil {
				v = &petcode.UniversalMintmark{}
			}
			if err := unmarshalUniversal(body, v); err != nil {
				return fmt.Errorf("universal: %w", err)
			}
			m.Variant = v
		case fieldMintmarkQuanxiao:
			body, err := f.message()
			if err != nil {
				return err
			}
			v, _ := m.Variant.(*petcode.QuanxiaoMintmark)
			if v == nil {
				v = &petcode.QuanxiaoMintmark{}
			}
			err = readFields(body, func(f field) (err error) {
				switch f.num {
				case fieldVariantID:
					v.ID, err = f.int32()
				case fieldQuanxiaoSkillMintmarkID:
					v.SkillMintmarkID, err = f.int32()
				}
				return err
			})
			if err != nil {
				return fmt.Errorf("quanxiao: %w", err)
			}
			m.Variant = v
		}
		return nil
	})
}

func unmarshalVariantID(f field, id *int32) error {
	body, err := f.message()
	if err != nil {
		return err
	}
	return readFields(body, func(f field) (err error) {
		if f.num == fieldVariantID {
			*id, err = f.int32()
		}
		return err
	})
}

func unmarshalUniversal(b []byte, u *petcode.UniversalMintmark) error {
	return readFields(b, func(f field) (err error) {
		switch f.num {
		case fieldVariantID:
			u.ID, err = f.int32()
		case fieldUniversalLevel:
			u.Level, err = f.int32()
		case fieldUniversalGem:
			var body []byte
			if body, err = f.message(); err != nil {
				return err
			}
			if u.Gem == nil {
				u.Gem = &petcode.Gem{}
			}
			err = readFields(body, func(f field) (err error) {
				switch f.num {
				case fieldGemGemID:
					u.Gem.GemID, err = f.int32()
				case fieldGemBindSkillID:
					u.Gem.BindSkillID, err = f.int32()
				}
				return err
			})
		case fieldUniversalAbility:
			u.Ability, err = mergeAbilityValue(f, u.Ability)
		}
		return err
	})
}

func unmarshalResistance(b []byte, r *petcode.Resistance) error {
	return readFields(b, func(f field) (err error) {
		switch f.num {
		case fieldResistanceHurt:
			var body []byte
			if body, err = f.message(); err != nil {
				return err
			}
			if r.Hurt == nil {
				r.Hurt = &petcode.Hurt{}
			}
			err = readFields(body, func(f field) (err error) {
				switch f.num {
				case fieldHurtCrit:
					r.Hurt.Crit, err = f.int32()
				case fieldHurtRegular:
					r.Hurt.Regular, err = f.int32()
				case fieldHurtPercent:
					r.Hurt.Percent, err = f.int32()
				}
				return err
			})
		case fieldResistanceCtl:
			var s petcode.StateItem
			if s, err = unmarshalStateItem(f); err == nil {
				r.Ctl = append(r.Ctl, s)
			}
		case fieldResistanceWeak:
			var s petcode.StateItem
			if s, err = unmarshalStateItem(f); err == nil {
				r.Weak = append(r.Weak, s)
			}
		}
		return err
	})
}

func unmarshalStateItem(f field) (petcode.StateItem, error) {
	var s petcode.StateItem
	body, err := f.message()
	if err != nil {
		return s, err
	}
	err = readFields(body, func(f field) (err error) {
		switch f.num {
		case fieldStateItemStateID:
			s.StateID, err = f.int32()
		case fieldStateItemPercent:
			s.Percent, err = f.int32()
		}
		return err
	})
	return s, err
}

func unmarshalAbilityBonus(b []byte, a *petcode.AbilityBonus) error {
	return readFields(b, func(f field) (err error) {
		switch f.num {
		case fieldBonusType:
			var v int32
			v, err = f.int32()
			a.Type = petcode.AbilityBonusType(v)
		case fieldBonusValue:
			var body []byte
			if body, err = f.message(); err != nil {
				return err
			}
			if a.Value == nil {
				a.Value = &petcode.BonusValue{}
			}
			err = unmarshalBonusValue(body, a.Value)
		}
		return err
	})
}

func unmarshalBonusValue(b []byte, v *petcode.BonusValue) error {
	return readFields(b, func(f field) error {
		var slot **petcode.ExtraValue
		switch f.num {
		case fieldAbilityHP:
			slot = &v.HP
		case fieldAbilityAttack:
			slot = &v.Attack
		case fieldAbilityDefense:
			slot = &v.Defense
		case fieldAbilitySpecialAttack:
			slot = &v.SpecialAttack
		case fieldAbilitySpecialDefense:
			slot = &v.SpecialDefense
		case fieldAbilitySpeed:
			slot = &v.Speed
		default:
			return nil
		}
		body, err := f.message()
		if err != nil {
			return err
		}
		if *slot == nil {
			*slot = &petcode.ExtraValue{}
		}
		ev := *slot
		return readFields(body, func(f field) (err error) {
			switch f.num {
			case fieldExtraValueValue:
				ev.Value, err = f.int32()
			case fieldExtraValuePercent:
				ev.Percent, err = f.int32()
			}
			return err
		})
	})
}
