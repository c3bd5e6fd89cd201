// Package testutil provides shared fixtures for petcode tests: a fully
// populated sample message and rapid generators for arbitrary messages.
package testutil

import (
	"pgregory.net/rapid"

	"github.com/seerbp/petcode/internal/petcode"
)

// SamplePet returns a pet with every field populated.
func SamplePet() petcode.Pet {
	return petcode.Pet{
		ID:    3842,
		Level: 100,
		DV:    31,
		AbilityTotal: &petcode.AbilityValue{
			HP: 100, Attack: 120, Defense: 80, SpecialAttack: 90, SpecialDefense: 85, Speed: 110,
		},
		EVs: &petcode.AbilityValue{
			HP: 85, Attack: 85, Defense: 85, SpecialAttack: 7, SpecialDefense: 8, Speed: 9,
		},
		Effects:   []petcode.Effect{{ID: 67, Status: 1, Args: []int32{1, 5}}},
		Skills:    []int32{24708, 31567, 31568, 31569},
		Mintmarks: []petcode.Mintmark{petcode.NewUniversalMintmark(40001, 5)},
		Nature:    1,
		Resistance: &petcode.Resistance{
			Hurt: &petcode.Hurt{Crit: 35, Regular: 35, Percent: 35},
			Ctl: petcode.NewStateResist(
				petcode.StatePair{StateID: 1, Percent: 55},
				petcode.StatePair{StateID: 2, Percent: 18},
				petcode.StatePair{StateID: 3, Percent: 10},
			),
		},
		PetItems: []int32{300001, 300002},
		AbilityBonus: []petcode.AbilityBonus{{
			Type: petcode.AbilityBonusTypeSpecial,
			Value: &petcode.BonusValue{
				HP:             &petcode.ExtraValue{Value: 100, Percent: 10},
				Attack:         &petcode.ExtraValue{Value: 100, Percent: 11},
				Defense:        &petcode.ExtraValue{Percent: 12},
				SpecialAttack:  &petcode.ExtraValue{Value: 100, Percent: 13},
				SpecialDefense: &petcode.ExtraValue{Value: 100, Percent: 14},
				Speed:          &petcode.ExtraValue{Percent: 15},
			},
		}},
		SkinID: 100001,
	}
}

// SampleMessage returns a PVP message on the official server holding SamplePet.
func SampleMessage() *petcode.Message {
	return petcode.NewMessage(
		petcode.ServerOfficial,
		petcode.DisplayModePVP,
		[]petcode.Pet{SamplePet()},
		petcode.WithSeerSet([]int32{200001, 300001, 400001, 500001, 600001}, 100001),
	)
}

// MessageGen generates arbitrary messages, including unknown enum numbers,
// negative integers, unset mintmarks and empty-but-present sub-records.
// Empty repeated fields are always nil.
func MessageGen() *rapid.Generator[*petcode.Message] {
	return rapid.Custom(func(t *rapid.T) *petcode.Message {
		m := &petcode.Message{
			Server:      petcode.Server(rapid.Int32Range(0, 6).Draw(t, "server")),
			DisplayMode: petcode.DisplayMode(rapid.Int32Range(0, 5).Draw(t, "displayMode")),
		}
		if rapid.Bool().Draw(t, "hasSeerSet") {
			m.SeerSet = &petcode.SeerSet{
				Equips:  ints(t, "equips", 6),
				TitleID: rapid.Int32().Draw(t, "titleId"),
			}
		}
		m.Pets = nilIfEmpty(rapid.SliceOfN(PetGen(), 0, 3).Draw(t, "pets"))
		fires := rapid.SliceOfN(rapid.Int32Range(0, 6), 0, 4).Draw(t, "battleFires")
		for _, f := range fires {
			m.BattleFires = append(m.BattleFires, petcode.BattleFire(f))
		}
		return m
	})
}

// PetGen generates arbitrary pets.
func PetGen() *rapid.Generator[petcode.Pet] {
	return rapid.Custom(func(t *rapid.T) petcode.Pet {
		p := petcode.Pet{
			ID:       rapid.Int32().Draw(t, "id"),
			Level:    rapid.Int32Range(0, 120).Draw(t, "level"),
			DV:       rapid.Int32Range(0, 31).Draw(t, "dv"),
			Skills:   ints(t, "skills", 5),
			Nature:   rapid.Int32Range(0, 25).Draw(t, "nature"),
			IsAwaken: rapid.Bool().Draw(t, "isAwaken"),
			PetItems: ints(t, "petItems", 3),
			SkinID:   rapid.Int32().Draw(t, "skinId"),
			ExtraHP:  rapid.Int32().Draw(t, "extraHp"),
		}
		p.AbilityTotal = optional(t, "abilityTotal", AbilityValueGen())
		p.EVs = optional(t, "evs", AbilityValueGen())
		p.Effects = nilIfEmpty(rapid.SliceOfN(EffectGen(), 0, 3).Draw(t, "effects"))
		p.Mintmarks = nilIfEmpty(rapid.SliceOfN(MintmarkGen(), 0, 4).Draw(t, "mintmarks"))
		if rapid.Bool().Draw(t, "hasResistance") {
			p.Resistance = &petcode.Resistance{
				Hurt: optional(t, "hurt", rapid.Custom(func(t *rapid.T) petcode.Hurt {
					return petcode.Hurt{
						Crit:    rapid.Int32Range(0, 100).Draw(t, "crit"),
						Regular: rapid.Int32Range(0, 100).Draw(t, "regular"),
						Percent: rapid.Int32Range(0, 100).Draw(t, "percent"),
					}
				})),
				Ctl:  nilIfEmpty(rapid.SliceOfN(stateItemGen(), 0, 3).Draw(t, "ctl")),
				Weak: nilIfEmpty(rapid.SliceOfN(stateItemGen(), 0, 3).Draw(t, "weak")),
			}
		}
		p.AbilityBonus = nilIfEmpty(rapid.SliceOfN(abilityBonusGen(), 0, 2).Draw(t, "abilityBonus"))
		return p
	})
}

// EffectGen generates effects with arbitrary status and args.
func EffectGen() *rapid.Generator[petcode.Effect] {
	return rapid.Custom(func(t *rapid.T) petcode.Effect {
		return petcode.Effect{
			ID:     rapid.Int32().Draw(t, "id"),
			Status: rapid.Int32().Draw(t, "status"),
			Args:   ints(t, "args", 6),
		}
	})
}

// AbilityValueGen generates stat blocks.
func AbilityValueGen() *rapid.Generator[petcode.AbilityValue] {
	return rapid.Custom(func(t *rapid.T) petcode.AbilityValue {
		return petcode.AbilityValue{
			HP:             rapid.Int32().Draw(t, "hp"),
			Attack:         rapid.Int32().Draw(t, "attack"),
			Defense:        rapid.Int32().Draw(t, "defense"),
			SpecialAttack:  rapid.Int32().Draw(t, "specialAttack"),
			SpecialDefense: rapid.Int32().Draw(t, "specialDefense"),
			Speed:          rapid.Int32().Draw(t, "speed"),
		}
	})
}

// MintmarkGen generates every variant, plus the unset state.
func MintmarkGen() *rapid.Generator[petcode.Mintmark] {
	return rapid.Custom(func(t *rapid.T) petcode.Mintmark {
		id := rapid.Int32().Draw(t, "id")
		switch rapid.IntRange(0, 4).Draw(t, "kind") {
		case 1:
			return petcode.NewSkillMintmark(id)
		case 2:
			return petcode.NewAbilityMintmark(id)
		case 3:
			var opts []petcode.UniversalOption
			if rapid.Bool().Draw(t, "hasGem") {
				opts = append(opts, petcode.WithGem(rapid.Int32().Draw(t, "gemId")))
			}
			if rapid.Bool().Draw(t, "hasBindSkill") {
				opts = append(opts, petcode.WithBindSkill(rapid.Int32().Draw(t, "bindSkillId")))
			}
			if rapid.Bool().Draw(t, "hasAbility") {
				opts = append(opts, petcode.WithAbilityOverride(AbilityValueGen().Draw(t, "ability")))
			}
			return petcode.NewUniversalMintmark(id, rapid.Int32Range(0, 5).Draw(t, "level"), opts...)
		case 4:
			return petcode.NewQuanxiaoMintmark(id, rapid.Int32().Draw(t, "skillMintmarkId"))
		default:
			return petcode.Mintmark{}
		}
	})
}

func stateItemGen() *rapid.Generator[petcode.StateItem] {
	return rapid.Custom(func(t *rapid.T) petcode.StateItem {
		return petcode.StateItem{
			StateID: rapid.Int32Range(0, 200).Draw(t, "stateId"),
			Percent: rapid.Int32Range(0, 100).Draw(t, "percent"),
		}
	})
}

func abilityBonusGen() *rapid.Generator[petcode.AbilityBonus] {
	extra := rapid.Custom(func(t *rapid.T) petcode.ExtraValue {
		return petcode.ExtraValue{
			Value:   rapid.Int32Range(-1000, 1000).Draw(t, "value"),
			Percent: rapid.Int32Range(0, 100).Draw(t, "percent"),
		}
	})
	return rapid.Custom(func(t *rapid.T) petcode.AbilityBonus {
		ab := petcode.AbilityBonus{Type: petcode.AbilityBonusType(rapid.Int32Range(0, 3).Draw(t, "type"))}
		if rapid.Bool().Draw(t, "hasValue") {
			ab.Value = &petcode.BonusValue{
				HP:             optional(t, "hp", extra),
				Attack:         optional(t, "attack", extra),
				Defense:        optional(t, "defense", extra),
				SpecialAttack:  optional(t, "specialAttack", extra),
				SpecialDefense: optional(t, "specialDefense", extra),
				Speed:          optional(t, "speed", extra),
			}
		}
		return ab
	})
}

func ints(t *rapid.T, label string, max int) []int32 {
	return nilIfEmpty(rapid.SliceOfN(rapid.Int32(), 0, max).Draw(t, label))
}

func optional[T any](t *rapid.T, label string, gen *rapid.Generator[T]) *T {
	if !rapid.Bool().Draw(t, "has_"+label) {
		return nil
	}
	v := gen.Draw(t, label)
	return &v
}

func nilIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}
