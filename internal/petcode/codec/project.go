package codec

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/seerbp/petcode/internal/petcode"
)

// ToMapping projects m onto an ordered mapping with lowerCamelCase keys and
// symbolic enum names. Zero scalars and empty lists are omitted; set
// sub-records are always present, possibly empty.
func ToMapping(m *petcode.Message) Mapping {
	var b builder
	if m == nil {
		return b.done()
	}
	putEnum(&b, "server", m.Server)
	putEnum(&b, "displayMode", m.DisplayMode)
	if m.SeerSet != nil {
		var s builder
		s.ints("equips", m.SeerSet.Equips)
		s.int("titleId", m.SeerSet.TitleID)
		b.sub("seerSet", s.done())
	}
	if len(m.Pets) > 0 {
		pets := make([]any, len(m.Pets))
		for i := range m.Pets {
			pets[i] = petMapping(&m.Pets[i])
		}
		b.list("pets", pets)
	}
	if len(m.BattleFires) > 0 {
		fires := make([]any, len(m.BattleFires))
		for i, f := range m.BattleFires {
			fires[i] = enumValue(f)
		}
		b.list("battleFires", fires)
	}
	return b.done()
}

func petMapping(p *petcode.Pet) Mapping {
	var b builder
	b.int("id", p.ID)
	b.int("level", p.Level)
	b.int("dv", p.DV)
	if p.AbilityTotal != nil {
		b.sub("abilityTotal", abilityMapping(p.AbilityTotal))
	}
	if p.EVs != nil {
		b.sub("evs", abilityMapping(p.EVs))
	}
	if len(p.Effects) > 0 {
		effects := make([]any, len(p.Effects))
		for i, e := range p.Effects {
			var eb builder
			eb.int("id", e.ID)
			eb.int("status", e.Status)
			eb.ints("args", e.Args)
			effects[i] = eb.done()
		}
		b.list("effects", effects)
	}
	b.ints("skills", p.Skills)
	if len(p.Mintmarks) > 0 {
		mintmarks := make([]any, len(p.Mintmarks))
		for i, mm := range p.Mintmarks {
			mintmarks[i] = mintmarkMapping(mm)
		}
		b.list("mintmarks", mintmarks)
	}
	b.int("nature", p.Nature)
	if p.Resistance != nil {
		b.sub("resistance", resistanceMapping(p.Resistance))
	}
	b.bool("isAwaken", p.IsAwaken)
	b.ints("petItems", p.PetItems)
	if len(p.AbilityBonus) > 0 {
		bonuses := make([]any, len(p.AbilityBonus))
		for i, ab := range p.AbilityBonus {
			var bb builder
			putEnum(&bb, "type", ab.Type)
			if ab.Value != nil {
				bb.sub("value", bonusValueMapping(ab.Value))
			}
			bonuses[i] = bb.done()
		}
		b.list("abilityBonus", bonuses)
	}
	b.int("skinId", p.SkinID)
	b.int("extraHp", p.ExtraHP)
	return b.done()
}

func abilityMapping(a *petcode.AbilityValue) Mapping {
	var b builder
	b.int("hp", a.HP)
	b.int("attack", a.Attack)
	b.int("defense", a.Defense)
	b.int("specialAttack", a.SpecialAttack)
	b.int("specialDefense", a.SpecialDefense)
	b.int("speed", a.Speed)
	return b.done()
}

func mintmarkMapping(m petcode.Mintmark) Mapping {
	var b builder
	switch m.Kind() {
	case petcode.MintmarkKindSkill:
		var v builder
		v.int("id", m.Variant.(*petcode.SkillMintmark).ID)
		b.sub("skill", v.done())
	case petcode.MintmarkKindAbility:
		var v builder
		v.int("id", m.Variant.(*petcode.AbilityMintmark).ID)
		b.sub("ability", v.done())
	case petcode.MintmarkKindUniversal:
		u := m.Variant.(*petcode.UniversalMintmark)
		var v builder
		v.int("id", u.ID)
		v.int("level", u.Level)
		if u.Gem != nil {
			var g builder
			g.int("gemId", u.Gem.GemID)
			g.int("bindSkillId", u.Gem.BindSkillID)
			v.sub("gem", g.done())
		}
		if u.Ability != nil {
			v.sub("ability", abilityMapping(u.Ability))
		}
		b.sub("universal", v.done())
	case petcode.MintmarkKindQuanxiao:
		q := m.Variant.(*petcode.QuanxiaoMintmark)
		var v builder
		v.int("id", q.ID)
		v.int("skillMintmarkId", q.SkillMintmarkID)
		b.sub("quanxiao", v.done())
	}
	return b.done()
}

func resistanceMapping(r *petcode.Resistance) Mapping {
	var b builder
	if r.Hurt != nil {
		var h builder
		h.int("crit", r.Hurt.Crit)
		h.int("regular", r.Hurt.Regular)
		h.int("percent", r.Hurt.Percent)
		b.sub("hurt", h.done())
	}
	b.list("ctl", stateItemsMapping(r.Ctl))
	b.list("weak", stateItemsMapping(r.Weak))
	return b.done()
}

func stateItemsMapping(items []petcode.StateItem) []any {
	if len(items) == 0 {
		return nil
	}
	out := make([]any, len(items))
	for i, s := range items {
		var b builder
		b.int("stateId", s.StateID)
		b.int("percent", s.Percent)
		out[i] = b.done()
	}
	return out
}

func bonusValueMapping(v *petcode.BonusValue) Mapping {
	var b builder
	for _, e := range []struct {
		key string
		v   *petcode.ExtraValue
	}{
		{"hp", v.HP},
		{"attack", v.Attack},
		{"defense", v.Defense},
		{"specialAttack", v.SpecialAttack},
		{"specialDefense", v.SpecialDefense},
		{"speed", v.Speed},
	} {
		if e.v == nil {
			continue
		}
		var x builder
		x.int("value", e.v.Value)
		x.int("percent", e.v.Percent)
		b.sub(e.key, x.done())
	}
	return b.done()
}

// FromMapping is the inverse of ToMapping. Absent keys, unknown keys and null
// values leave the field at its default. Every key may also be spelled as its
// snake_case proto field name, e.g. display_mode or skill_mintmark_id.
//
// Postcondition: Returns a *petcode.DecodeError when a value cannot be
// coerced to the field's type.
func FromMapping(m Mapping) (*petcode.Message, error) {
	msg := &petcode.Message{}
	r := reader{m: m}
	r.enum("server", func(v any) (err error) {
		msg.Server, err = asEnum(v, petcode.ParseServer)
		return err
	})
	r.enum("displayMode", func(v any) (err error) {
		msg.DisplayMode, err = asEnum(v, petcode.ParseDisplayMode)
		return err
	})
	r.sub("seerSet", func(sm Mapping) error {
		s := &petcode.SeerSet{}
		sr := reader{m: sm}
		sr.ints("equips", &s.Equips)
		sr.int("titleId", &s.TitleID)
		msg.SeerSet = s
		return sr.err
	})
	r.each("pets", func(_ int, pm Mapping) error {
		p, err := petFromMapping(pm)
		if err != nil {
			return err
		}
		msg.Pets = append(msg.Pets, p)
		return nil
	})
	r.list("battleFires", func(_ int, v any) error {
		f, err := asEnum(v, petcode.ParseBattleFire)
		if err != nil {
			return err
		}
		msg.BattleFires = append(msg.BattleFires, f)
		return nil
	})
	if r.err != nil {
		return nil, petcode.NewDecodeError(petcode.FormatMapping, r.err)
	}
	return msg, nil
}

func petFromMapping(m Mapping) (petcode.Pet, error) {
	var p petcode.Pet
	r := reader{m: m}
	r.int("id", &p.ID)
	r.int("level", &p.Level)
	r.int("dv", &p.DV)
	r.sub("abilityTotal", func(am Mapping) (err error) {
		p.AbilityTotal, err = abilityFromMapping(am)
		return err
	})
	r.sub("evs", func(am Mapping) (err error) {
		p.EVs, err = abilityFromMapping(am)
		return err
	})
	r.each("effects", func(_ int, em Mapping) error {
		var e petcode.Effect
		er := reader{m: em}
		er.int("id", &e.ID)
		er.int("status", &e.Status)
		er.ints("args", &e.Args)
		if er.err != nil {
			return er.err
		}
		p.Effects = append(p.Effects, e)
		return nil
	})
	r.ints("skills", &p.Skills)
	r.each("mintmarks", func(_ int, mm Mapping) error {
		v, err := mintmarkFromMapping(mm)
		if err != nil {
			return err
		}
		p.Mintmarks = append(p.Mintmarks, v)
		return nil
	})
	r.int("nature", &p.Nature)
	r.sub("resistance", func(rm Mapping) (err error) {
		p.Resistance, err = resistanceFromMapping(rm)
		return err
	})
	r.bool("isAwaken", &p.IsAwaken)
	r.ints("petItems", &p.PetItems)
	r.each("abilityBonus", func(_ int, bm Mapping) error {
		var ab petcode.AbilityBonus
		br := reader{m: bm}
		br.enum("type", func(v any) (err error) {
			ab.Type, err = asEnum(v, petcode.ParseAbilityBonusType)
			return err
		})
		br.sub("value", func(vm Mapping) (err error) {
			ab.Value, err = bonusValueFromMapping(vm)
			return err
		})
		if br.err != nil {
			return br.err
		}
		p.AbilityBonus = append(p.AbilityBonus, ab)
		return nil
	})
	r.int("skinId", &p.SkinID)
	r.int("extraHp", &p.ExtraHP)
	return p, r.err
}

func abilityFromMapping(m Mapping) (*petcode.AbilityValue, error) {
	a := &petcode.AbilityValue{}
	r := reader{m: m}
	r.int("hp", &a.HP)
	r.int("attack", &a.Attack)
	r.int("defense", &a.Defense)
	r.int("specialAttack", &a.SpecialAttack)
	r.int("specialDefense", &a.SpecialDefense)
	r.int("speed", &a.Speed)
	return a, r.err
}

var mintmarkKeys = []string{"skill", "ability", "universal", "quanxiao"}

func mintmarkFromMapping(m Mapping) (petcode.Mintmark, error) {
	var present []string
	for _, k := range mintmarkKeys {
		if v, ok := m.Get(k); ok && v != nil {
			present = append(present, k)
		}
	}
	if len(present) > 1 {
		return petcode.Mintmark{}, fmt.Errorf("multiple mintmark variants set: %v", present)
	}

	var mm petcode.Mintmark
	r := reader{m: m}
	r.sub("skill", func(vm Mapping) error {
		v := &petcode.SkillMintmark{}
		vr := reader{m: vm}
		vr.int("id", &v.ID)
		mm.Variant = v
		return vr.err
	})
	r.sub("ability", func(vm Mapping) error {
		v := &petcode.AbilityMintmark{}
		vr := reader{m: vm}
		vr.int("id", &v.ID)
		mm.Variant = v
		return vr.err
	})
	r.sub("universal", func(vm Mapping) error {
		v := &petcode.UniversalMintmark{}
		vr := reader{m: vm}
		vr.int("id", &v.ID)
		vr.int("level", &v.Level)
		vr.sub("gem", func(gm Mapping) error {
			g := &petcode.Gem{}
			gr := reader{m: gm}
			gr.int("gemId", &g.GemID)
			gr.int("bindSkillId", &g.BindSkillID)
			v.Gem = g
			return gr.err
		})
		vr.sub("ability", func(am Mapping) (err error) {
			v.Ability, err = abilityFromMapping(am)
			return err
		})
		mm.Variant = v
		return vr.err
	})
	r.sub("quanxiao", func(vm Mapping) error {
		v := &petcode.QuanxiaoMintmark{}
		vr := reader{m: vm}
		vr.int("id", &v.ID)
		vr.int("skillMintmarkId", &v.SkillMintmarkID)
		mm.Variant = v
		return vr.err
	})
	return mm, r.err
}

func resistanceFromMapping(m Mapping) (*petcode.Resistance, error) {
	res := &petcode.Resistance{}
	r := reader{m: m}
	r.sub("hurt", func(hm Mapping) error {
		h := &petcode.Hurt{}
		hr := reader{m: hm}
		hr.int("crit", &h.Crit)
		hr.int("regular", &h.Regular)
		hr.int("percent", &h.Percent)
		res.Hurt = h
		return hr.err
	})
	stateItems := func(dst *[]petcode.StateItem) func(int, Mapping) error {
		return func(_ int, sm Mapping) error {
			var s petcode.StateItem
			sr := reader{m: sm}
			sr.int("stateId", &s.StateID)
			sr.int("percent", &s.Percent)
			if sr.err != nil {
				return sr.err
			}
			*dst = append(*dst, s)
			return nil
		}
	}
	r.each("ctl", stateItems(&res.Ctl))
	r.each("weak", stateItems(&res.Weak))
	return res, r.err
}

func bonusValueFromMapping(m Mapping) (*petcode.BonusValue, error) {
	v := &petcode.BonusValue{}
	r := reader{m: m}
	for _, e := range []struct {
		key  string
		slot **petcode.ExtraValue
	}{
		{"hp", &v.HP},
		{"attack", &v.Attack},
		{"defense", &v.Defense},
		{"specialAttack", &v.SpecialAttack},
		{"specialDefense", &v.SpecialDefense},
		{"speed", &v.Speed},
	} {
		slot := e.slot
		r.sub(e.key, func(xm Mapping) error {
			x := &petcode.ExtraValue{}
			xr := reader{m: xm}
			xr.int("value", &x.Value)
			xr.int("percent", &x.Percent)
			*slot = x
			return xr.err
		})
	}
	return v, r.err
}

// builder accumulates a Mapping, applying proto3 default omission.
type builder struct {
	m Mapping
}

func (b *builder) done() Mapping {
	if b.m == nil {
		return Mapping{}
	}
	return b.m
}

func (b *builder) put(key string, v any) { b.m = append(b.m, Entry{Key: key, Value: v}) }

func (b *builder) int(key string, v int32) {
	if v != 0 {
		b.put(key, int64(v))
	}
}

func (b *builder) bool(key string, v bool) {
	if v {
		b.put(key, true)
	}
}

func (b *builder) ints(key string, vs []int32) {
	if len(vs) == 0 {
		return
	}
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = int64(v)
	}
	b.put(key, out)
}

func (b *builder) list(key string, items []any) {
	if len(items) > 0 {
		b.put(key, items)
	}
}

func (b *builder) sub(key string, m Mapping) { b.put(key, m) }

type namedEnum interface {
	~int32
	String() string
	Known() bool
}

// putEnum writes a non-zero enum by name, or by number when unknown.
func putEnum[E namedEnum](b *builder, key string, v E) {
	if v != 0 {
		b.put(key, enumValue(v))
	}
}

// enumValue renders a known enum as its name and an unknown one as its number.
func enumValue[E namedEnum](v E) any {
	if v.Known() {
		return v.String()
	}
	return int64(v)
}

// reader walks a Mapping and records the first coercion failure.
type reader struct {
	m   Mapping
	err error
}

// lookup returns the non-null value under key or under its proto field
// name. Setting both spellings is an error.
func (r *reader) lookup(key string) (any, bool) {
	if r.err != nil {
		return nil, false
	}
	v, ok := r.m.Get(key)
	if alt := protoName(key); alt != key {
		if av, aok := r.m.Get(alt); aok && av != nil {
			if ok && v != nil {
				r.fail(key, fmt.Errorf("conflicts with %s", alt))
				return nil, false
			}
			v, ok = av, true
		}
	}
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// protoName converts a lowerCamelCase key to its snake_case field name.
func protoName(key string) string {
	var b strings.Builder
	for _, c := range key {
		if 'A' <= c && c <= 'Z' {
			b.WriteByte('_')
			c += 'a' - 'A'
		}
		b.WriteRune(c)
	}
	return b.String()
}

func (r *reader) fail(key string, err error) {
	r.err = fmt.Errorf("%s: %w", key, err)
}

func (r *reader) int(key string, dst *int32) {
	v, ok := r.lookup(key)
	if !ok {
		return
	}
	n, err := asInt32(v)
	if err != nil {
		r.fail(key, err)
		return
	}
	*dst = n
}

func (r *reader) bool(key string, dst *bool) {
	v, ok := r.lookup(key)
	if !ok {
		return
	}
	b, isBool := v.(bool)
	if !isBool {
		r.fail(key, fmt.Errorf("expected bool, got %T", v))
		return
	}
	*dst = b
}

func (r *reader) enum(key string, set func(any) error) {
	v, ok := r.lookup(key)
	if !ok {
		return
	}
	if err := set(v); err != nil {
		r.fail(key, err)
	}
}

func (r *reader) ints(key string, dst *[]int32) {
	r.list(key, func(_ int, v any) error {
		n, err := asInt32(v)
		if err != nil {
			return err
		}
		*dst = append(*dst, n)
		return nil
	})
}

func (r *reader) sub(key string, fn func(Mapping) error) {
	v, ok := r.lookup(key)
	if !ok {
		return
	}
	m, err := asMapping(v)
	if err == nil {
		err = fn(m)
	}
	if err != nil {
		r.fail(key, err)
	}
}

func (r *reader) list(key string, fn func(int, any) error) {
	v, ok := r.lookup(key)
	if !ok {
		return
	}
	items, isList := v.([]any)
	if !isList {
		r.fail(key, fmt.Errorf("expected list, got %T", v))
		return
	}
	for i, item := range items {
		if err := fn(i, item); err != nil {
			r.fail(fmt.Sprintf("%s[%d]", key, i), err)
			return
		}
	}
}

func (r *reader) each(key string, fn func(int, Mapping) error) {
	r.list(key, func(i int, v any) error {
		m, err := asMapping(v)
		if err != nil {
			return err
		}
		return fn(i, m)
	})
}

func asInt32(v any) (int32, error) {
	var n int64
	switch v := v.(type) {
	case int:
		n = int64(v)
	case int32:
		return v, nil
	case int64:
		n = v
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%v is not an integer", v)
		}
		if v < math.MinInt32 || v > math.MaxInt32 {
			return 0, fmt.Errorf("%v overflows int32", v)
		}
		return int32(v), nil
	case json.Number:
		return asInt32(string(v))
	case string:
		parsed, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid integer %q", v)
		}
		return int32(parsed), nil
	default:
		return 0, fmt.Errorf("expected integer, got %T", v)
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, fmt.Errorf("%d overflows int32", n)
	}
	return int32(n), nil
}

func asEnum[E ~int32](v any, parse func(string) (E, bool)) (E, error) {
	if s, ok := v.(string); ok {
		if e, known := parse(s); known {
			return e, nil
		}
		// Numeric strings are accepted like any other integer field.
		if n, err := strconv.ParseInt(s, 10, 32); err == nil {
			return E(n), nil
		}
		return 0, fmt.Errorf("unknown enum value %q", s)
	}
	n, err := asInt32(v)
	if err != nil {
		return 0, err
	}
	return E(n), nil
}

// asMapping accepts a Mapping or a map[string]any; the latter is ordered by key.
func asMapping(v any) (Mapping, error) {
	switch v := v.(type) {
	case Mapping:
		return v, nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := make(Mapping, len(keys))
		for i, k := range keys {
			m[i] = Entry{Key: k, Value: v[k]}
		}
		return m, nil
	default:
		return nil, fmt.Errorf("expected object, got %T", v)
	}
}
