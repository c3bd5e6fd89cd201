// Package lookup enumerates the external identifiers referenced by a petcode
// message, one Key per distinct table entry.
package lookup

import (
	"strconv"

	"github.com/seerbp/petcode/internal/petcode"
	"github.com/seerbp/petcode/internal/petcode/effect"
)

// Kind names the table a Key is looked up in.
type Kind string

const (
	KindPet         Kind = "pet"
	KindSkill       Kind = "skill"
	KindMintmark    Kind = "mintmark"
	KindGem         Kind = "gem"
	KindEquip       Kind = "equip"
	KindTitle       Kind = "title"
	KindNature      Kind = "nature"
	KindState       Kind = "state"
	KindPetEffect   Kind = "pet_effect"
	KindVariation   Kind = "variation"
	KindSoulmark    Kind = "soulmark"
	KindItemEffect  Kind = "item_effect"
	KindTeamTech    Kind = "team_tech"
	KindOtherEffect Kind = "other_effect"
)

// Kinds lists every Kind in a stable order.
var Kinds = []Kind{
	KindPet, KindSkill, KindMintmark, KindGem, KindEquip, KindTitle, KindNature, KindState,
	KindPetEffect, KindVariation, KindSoulmark, KindItemEffect, KindTeamTech, KindOtherEffect,
}

var effectKinds = map[effect.Type]Kind{
	effect.TypeNone:      KindOtherEffect,
	effect.TypeGeneral:   KindPetEffect,
	effect.TypeItem:      KindItemEffect,
	effect.TypeVariation: KindVariation,
	effect.TypeSoulmark:  KindSoulmark,
	effect.TypeTeamTech:  KindTeamTech,
	effect.TypeOther:     KindOtherEffect,
}

// EffectKind returns the Kind an effect of type t is looked up by.
func EffectKind(t effect.Type) Kind {
	if k, ok := effectKinds[t]; ok {
		return k
	}
	return KindOtherEffect
}

// Key identifies one external record. Effect keys are looked up by Name;
// every other kind by ID.
type Key struct {
	Kind Kind
	ID   int32
	Name string
}

// String renders the key as "kind:id" or "kind:name".
func (k Key) String() string {
	if k.Name != "" {
		return string(k.Kind) + ":" + k.Name
	}
	return string(k.Kind) + ":" + strconv.FormatInt(int64(k.ID), 10)
}

// Keys enumerates the keys referenced by m, de-duplicated, in the order they
// are first seen. Unset mintmarks and zero gem, bind-skill and title ids are
// skipped.
func Keys(m *petcode.Message) []Key {
	if m == nil {
		return nil
	}
	c := collector{seen: make(map[Key]struct{})}
	for i := range m.Pets {
		c.pet(&m.Pets[i])
	}
	if s := m.SeerSet; s != nil {
		for _, id := range s.Equips {
			c.add(Key{Kind: KindEquip, ID: id})
		}
		if s.TitleID != 0 {
			c.add(Key{Kind: KindTitle, ID: s.TitleID})
		}
	}
	return c.keys
}

type collector struct {
	seen map[Key]struct{}
	keys []Key
}

func (c *collector) add(k Key) {
	if _, ok := c.seen[k]; ok {
		return
	}
	c.seen[k] = struct{}{}
	c.keys = append(c.keys, k)
}

func (c *collector) pet(p *petcode.Pet) {
	c.add(Key{Kind: KindPet, ID: p.ID})
	c.add(Key{Kind: KindNature, ID: p.Nature})
	for _, id := range p.Skills {
		c.add(Key{Kind: KindSkill, ID: id})
	}
	for _, e := range p.Effects {
		param := effect.ToParam(e)
		c.add(Key{Kind: EffectKind(param.Type), Name: param.Name})
	}
	for _, mm := range p.Mintmarks {
		v, err := petcode.ReadMintmark(mm)
		if err != nil {
			continue
		}
		c.add(Key{Kind: KindMintmark, ID: v.MintmarkID()})
		if u, ok := v.(*petcode.UniversalMintmark); ok && u.Gem != nil {
			if u.Gem.GemID != 0 {
				c.add(Key{Kind: KindGem, ID: u.Gem.GemID})
			}
			if u.Gem.BindSkillID != 0 {
				c.add(Key{Kind: KindSkill, ID: u.Gem.BindSkillID})
			}
		}
	}
	if r := p.Resistance; r != nil {
		for _, s := range r.Ctl {
			c.add(Key{Kind: KindState, ID: s.StateID})
		}
		for _, s := range r.Weak {
			c.add(Key{Kind: KindState, ID: s.StateID})
		}
	}
}
