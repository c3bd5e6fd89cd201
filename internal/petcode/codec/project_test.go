package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/seerbp/petcode/internal/petcode"
	"github.com/seerbp/petcode/internal/petcode/codec"
	"github.com/seerbp/petcode/internal/testutil"
)

func TestToMapping_Structure(t *testing.T) {
	m := codec.ToMapping(testutil.SampleMessage())
	assert.Equal(t, []string{"server", "displayMode", "seerSet", "pets"}, m.Keys())

	server, _ := m.Get("server")
	assert.Equal(t, "SERVER_OFFICIAL", server)
	mode, _ := m.Get("displayMode")
	assert.Equal(t, "DISPLAY_MODE_PVP", mode)

	pets, ok := m.Get("pets")
	require.True(t, ok)
	require.Len(t, pets, 1)
	pet := pets.([]any)[0].(codec.Mapping)
	assert.Equal(t, []string{
		"id", "level", "dv", "abilityTotal", "evs", "effects", "skills", "mintmarks",
		"nature", "resistance", "petItems", "abilityBonus", "skinId",
	}, pet.Keys())

	total, _ := pet.Get("abilityTotal")
	specialAttack, _ := total.(codec.Mapping).Get("specialAttack")
	assert.Equal(t, int64(90), specialAttack)

	mintmarks, _ := pet.Get("mintmarks")
	universal, ok := mintmarks.([]any)[0].(codec.Mapping).Get("universal")
	require.True(t, ok)
	assert.Equal(t, codec.Mapping{{Key: "id", Value: int64(40001)}, {Key: "level", Value: int64(5)}}, universal)

	bonus, _ := pet.Get("abilityBonus")
	bonusType, _ := bonus.([]any)[0].(codec.Mapping).Get("type")
	assert.Equal(t, "TYPE_SPECIAL", bonusType)
}

func TestToMapping_UnknownEnumRendersNumber(t *testing.T) {
	m := codec.ToMapping(&petcode.Message{Server: petcode.Server(17)})
	v, ok := m.Get("server")
	require.True(t, ok)
	assert.Equal(t, int64(17), v)
}

func TestToMapping_BattleFires(t *testing.T) {
	m := codec.ToMapping(&petcode.Message{BattleFires: []petcode.BattleFire{petcode.BattleFireGreen, petcode.BattleFireGold}})
	v, _ := m.Get("battleFires")
	assert.Equal(t, []any{"BATTLE_FIRE_GREEN", "BATTLE_FIRE_GOLD"}, v)
}

func TestMapping_RoundTrip(t *testing.T) {
	msg := testutil.SampleMessage()
	got, err := codec.FromMapping(codec.ToMapping(msg))
	require.NoError(t, err)
	assert.Equal(t, msg, got)
}

func TestFromMapping_Partial(t *testing.T) {
	got, err := codec.FromMapping(codec.Mapping{
		{Key: "server", Value: "SERVER_OFFICIAL"},
		{Key: "displayMode", Value: "DISPLAY_MODE_PVP"},
	})
	require.NoError(t, err)
	assert.Equal(t, petcode.ServerOfficial, got.Server)
	assert.Equal(t, petcode.DisplayModePVP, got.DisplayMode)
	assert.Empty(t, got.Pets)
	assert.Nil(t, got.SeerSet)
}

func TestFromMapping_IgnoresUnknownKeysAndNulls(t *testing.T) {
	got, err := codec.FromMapping(codec.Mapping{
		{Key: "server", Value: nil},
		{Key: "somethingNew", Value: codec.Mapping{{Key: "x", Value: int64(1)}}},
		{Key: "pets", Value: []any{codec.Mapping{{Key: "id", Value: int64(7)}, {Key: "futureField", Value: true}}}},
	})
	require.NoError(t, err)
	assert.Equal(t, &petcode.Message{Pets: []petcode.Pet{{ID: 7}}}, got)
}

func TestFromMapping_AcceptsProtoFieldNames(t *testing.T) {
	got, err := codec.FromMapping(codec.Mapping{
		{Key: "server", Value: "SERVER_OFFICIAL"},
		{Key: "display_mode", Value: "DISPLAY_MODE_PVE"},
		{Key: "seer_set", Value: codec.Mapping{{Key: "title_id", Value: int64(9)}}},
		{Key: "pets", Value: []any{codec.Mapping{
			{Key: "id", Value: int64(3842)},
			{Key: "is_awaken", Value: true},
			{Key: "skin_id", Value: int64(5)},
			{Key: "ability_total", Value: codec.Mapping{{Key: "special_attack", Value: int64(90)}}},
			{Key: "mintmarks", Value: []any{
				codec.Mapping{{Key: "quanxiao", Value: codec.Mapping{
					{Key: "id", Value: int64(1)},
					{Key: "skill_mintmark_id", Value: int64(2)},
				}}},
				codec.Mapping{{Key: "universal", Value: codec.Mapping{
					{Key: "id", Value: int64(40001)},
					{Key: "gem", Value: codec.Mapping{{Key: "gem_id", Value: int64(3)}, {Key: "bind_skill_id", Value: int64(4)}}},
				}}},
			}},
			{Key: "resistance", Value: codec.Mapping{{Key: "ctl", Value: []any{
				codec.Mapping{{Key: "state_id", Value: int64(1)}, {Key: "percent", Value: int64(55)}},
			}}}},
		}}},
		{Key: "battle_fires", Value: []any{"BATTLE_FIRE_GOLD"}},
	})
	require.NoError(t, err)

	assert.Equal(t, petcode.DisplayModePVE, got.DisplayMode)
	assert.Equal(t, &petcode.SeerSet{TitleID: 9}, got.SeerSet)
	assert.Equal(t, []petcode.BattleFire{petcode.BattleFireGold}, got.BattleFires)
	require.Len(t, got.Pets, 1)
	p := got.Pets[0]
	assert.True(t, p.IsAwaken)
	assert.Equal(t, int32(5), p.SkinID)
	assert.Equal(t, &petcode.AbilityValue{SpecialAttack: 90}, p.AbilityTotal)
	assert.Equal(t, []petcode.Mintmark{
		petcode.NewQuanxiaoMintmark(1, 2),
		petcode.NewUniversalMintmark(40001, 0, petcode.WithGem(3), petcode.WithBindSkill(4)),
	}, p.Mintmarks)
	assert.Equal(t, []petcode.StateItem{{StateID: 1, Percent: 55}}, p.Resistance.Ctl)
}

func TestFromMapping_ConflictingSpellings(t *testing.T) {
	_, err := codec.FromMapping(codec.Mapping{
		{Key: "displayMode", Value: "DISPLAY_MODE_PVP"},
		{Key: "display_mode", Value: "DISPLAY_MODE_PVE"},
	})
	require.True(t, petcode.IsDecodeError(err))
	assert.Contains(t, err.Error(), "displayMode: conflicts with display_mode")

	got, err := codec.FromMapping(codec.Mapping{
		{Key: "displayMode", Value: "DISPLAY_MODE_PVP"},
		{Key: "display_mode", Value: nil},
	})
	require.NoError(t, err)
	assert.Equal(t, petcode.DisplayModePVP, got.DisplayMode)
}

func TestFromMapping_Coercions(t *testing.T) {
	got, err := codec.FromMapping(codec.Mapping{
		{Key: "server", Value: int64(2)},
		{Key: "displayMode", Value: "3"},
		{Key: "pets", Value: []any{
			map[string]any{"id": "3842", "level": float64(100), "dv": 31, "isAwaken": true},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, petcode.ServerTest, got.Server)
	assert.Equal(t, petcode.DisplayModeBoss, got.DisplayMode)
	assert.Equal(t, petcode.Pet{ID: 3842, Level: 100, DV: 31, IsAwaken: true}, got.Pets[0])
}

func TestFromMapping_Errors(t *testing.T) {
	cases := map[string]codec.Mapping{
		"unknown enum name": {{Key: "server", Value: "SERVER_MARS"}},
		"wrong list type":   {{Key: "pets", Value: int64(5)}},
		"wrong object type": {{Key: "seerSet", Value: "x"}},
		"fractional int":    {{Key: "pets", Value: []any{codec.Mapping{{Key: "id", Value: 1.5}}}}},
		"int32 overflow":    {{Key: "pets", Value: []any{codec.Mapping{{Key: "id", Value: int64(1) << 40}}}}},
		"string bool":       {{Key: "pets", Value: []any{codec.Mapping{{Key: "isAwaken", Value: "yes"}}}}},
		"bad list element":  {{Key: "battleFires", Value: []any{true}}},
		"two variants": {{Key: "pets", Value: []any{codec.Mapping{{Key: "mintmarks", Value: []any{codec.Mapping{
			{Key: "skill", Value: codec.Mapping{}},
			{Key: "ability", Value: codec.Mapping{}},
		}}}}}}},
	}
	for name, m := range cases {
		_, err := codec.FromMapping(m)
		assert.True(t, petcode.IsDecodeError(err), name)
	}
}

func TestFromMapping_ErrorNamesPath(t *testing.T) {
	_, err := codec.FromMapping(codec.Mapping{
		{Key: "pets", Value: []any{codec.Mapping{}, codec.Mapping{{Key: "level", Value: "high"}}}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pets[1]: level")
}

func TestPropertyMapping_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		msg := testutil.MessageGen().Draw(t, "msg")
		got, err := codec.FromMapping(codec.ToMapping(msg))
		if err != nil {
			t.Fatalf("FromMapping: %v", err)
		}
		assert.Equal(t, msg, got)
	})
}
