package lookup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/seerbp/petcode/internal/lookup"
	"github.com/seerbp/petcode/internal/petcode"
	"github.com/seerbp/petcode/internal/petcode/effect"
	"github.com/seerbp/petcode/internal/testutil"
)

func TestKeys_SampleMessage(t *testing.T) {
	keys := lookup.Keys(testutil.SampleMessage())
	got := make([]string, len(keys))
	for i, k := range keys {
		got[i] = k.String()
	}
	assert.Equal(t, []string{
		"pet:3842",
		"nature:1",
		"skill:24708", "skill:31567", "skill:31568", "skill:31569",
		"pet_effect:67_1_5",
		"mintmark:40001",
		"state:1", "state:2", "state:3",
		"equip:200001", "equip:300001", "equip:400001", "equip:500001", "equip:600001",
		"title:100001",
	}, got)
}

func TestKeys_Nil(t *testing.T) {
	assert.Nil(t, lookup.Keys(nil))
	assert.Nil(t, lookup.Keys(&petcode.Message{}))
}

func TestKeys_DeduplicatesAcrossPets(t *testing.T) {
	pet := petcode.Pet{ID: 1, Skills: []int32{10, 10, 11}}
	msg := petcode.NewMessage(petcode.ServerOfficial, petcode.DisplayModePVP, []petcode.Pet{pet, pet})
	assert.Equal(t, []lookup.Key{
		{Kind: lookup.KindPet, ID: 1},
		{Kind: lookup.KindNature, ID: 0},
		{Kind: lookup.KindSkill, ID: 10},
		{Kind: lookup.KindSkill, ID: 11},
	}, lookup.Keys(msg))
}

func TestKeys_MintmarksAndGems(t *testing.T) {
	pet := petcode.Pet{
		ID: 5,
		Mintmarks: []petcode.Mintmark{
			{},
			petcode.NewQuanxiaoMintmark(7, 8),
			petcode.NewUniversalMintmark(40001, 5, petcode.WithGem(9), petcode.WithBindSkill(24708)),
			petcode.NewUniversalMintmark(40002, 5, petcode.WithBindSkill(24709)),
		},
	}
	keys := lookup.Keys(&petcode.Message{Pets: []petcode.Pet{pet}})
	assert.Equal(t, []lookup.Key{
		{Kind: lookup.KindPet, ID: 5},
		{Kind: lookup.KindNature},
		{Kind: lookup.KindMintmark, ID: 7},
		{Kind: lookup.KindMintmark, ID: 40001},
		{Kind: lookup.KindGem, ID: 9},
		{Kind: lookup.KindSkill, ID: 24708},
		{Kind: lookup.KindMintmark, ID: 40002},
		{Kind: lookup.KindSkill, ID: 24709},
	}, keys)
}

func TestKeys_EffectKinds(t *testing.T) {
	pet := petcode.Pet{Effects: []petcode.Effect{
		{ID: 1, Status: 1},
		{ID: 2, Status: 2},
		{ID: 3, Status: 4, Args: []int32{-1}},
		{ID: 4, Status: 5},
		{ID: 5, Status: 7},
		{ID: 6, Status: 0},
		{ID: 7, Status: 42},
	}}
	keys := lookup.Keys(&petcode.Message{Pets: []petcode.Pet{pet}})
	require.Len(t, keys, 9)
	assert.Equal(t, []lookup.Key{
		{Kind: lookup.KindPetEffect, Name: "1"},
		{Kind: lookup.KindItemEffect, Name: "2"},
		{Kind: lookup.KindVariation, Name: "3_-1"},
		{Kind: lookup.KindSoulmark, Name: "4"},
		{Kind: lookup.KindTeamTech, Name: "5"},
		{Kind: lookup.KindOtherEffect, Name: "6"},
		{Kind: lookup.KindOtherEffect, Name: "7"},
	}, keys[2:])
}

func TestEffectKind_CoversEveryType(t *testing.T) {
	for _, typ := range []effect.Type{
		effect.TypeNone, effect.TypeGeneral, effect.TypeItem, effect.TypeVariation,
		effect.TypeSoulmark, effect.TypeTeamTech, effect.TypeOther,
	} {
		assert.Contains(t, lookup.Kinds, lookup.EffectKind(typ), typ.String())
	}
	assert.Equal(t, lookup.KindOtherEffect, lookup.EffectKind(effect.Type(3)))
}

func TestPropertyKeys_Unique(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		msg := testutil.MessageGen().Draw(t, "msg")
		seen := map[lookup.Key]bool{}
		for _, k := range lookup.Keys(msg) {
			if seen[k] {
				t.Fatalf("duplicate key %v", k)
			}
			seen[k] = true
		}
	})
}
