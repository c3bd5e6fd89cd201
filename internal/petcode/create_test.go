package petcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seerbp/petcode/internal/petcode"
)

func TestNewStateResist_PreservesOrder(t *testing.T) {
	got := petcode.NewStateResist(
		petcode.StatePair{StateID: 1, Percent: 55},
		petcode.StatePair{StateID: 2, Percent: 18},
		petcode.StatePair{StateID: 3, Percent: 10},
	)
	assert.Equal(t, []petcode.StateItem{
		{StateID: 1, Percent: 55},
		{StateID: 2, Percent: 18},
		{StateID: 3, Percent: 10},
	}, got)
}

func TestNewStateResist_Empty(t *testing.T) {
	assert.Nil(t, petcode.NewStateResist())
}

func TestNewMessage(t *testing.T) {
	pets := []petcode.Pet{{ID: 3842, Level: 100}}
	m := petcode.NewMessage(petcode.ServerOfficial, petcode.DisplayModePVP, pets,
		petcode.WithSeerSet([]int32{200001, 300001}, 100001),
		petcode.WithBattleFires(petcode.BattleFireGreen, petcode.BattleFireGold),
	)
	require.NotNil(t, m.SeerSet)
	assert.Equal(t, petcode.ServerOfficial, m.Server)
	assert.Equal(t, petcode.DisplayModePVP, m.DisplayMode)
	assert.Equal(t, []int32{200001, 300001}, m.SeerSet.Equips)
	assert.Equal(t, int32(100001), m.SeerSet.TitleID)
	assert.Equal(t, []petcode.BattleFire{petcode.BattleFireGreen, petcode.BattleFireGold}, m.BattleFires)
	require.Len(t, m.Pets, 1)

	pets[0].ID = 1
	assert.Equal(t, int32(3842), m.Pets[0].ID, "NewMessage must copy the pets slice")
}

func TestNewMessage_AllServers(t *testing.T) {
	for _, s := range []petcode.Server{
		petcode.ServerOfficial, petcode.ServerTest, petcode.ServerTaiwan, petcode.ServerClassic,
	} {
		m := petcode.NewMessage(s, petcode.DisplayModePVP, nil)
		assert.Equal(t, s, m.Server)
		assert.Nil(t, m.Pets)
		assert.Nil(t, m.SeerSet)
	}
}
