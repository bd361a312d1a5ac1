package snapshot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/savecode/errs"
)

func TestDefaults(t *testing.T) {
	d := Defaults()

	require.Equal(t, uint(1), d.Level)
	require.Equal(t, 100, d.Stats.HP)
	require.Empty(t, d.Inventory)
	require.Empty(t, d.ActiveMods)
	require.Empty(t, d.BossDrops)
	require.Nil(t, d.Loadout.Weapon)
	require.NoError(t, d.Validate())

	d.Stats.HP = 1
	require.Equal(t, 100, Defaults().Stats.HP, "defaults must be a fresh value")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Snapshot)
	}{
		{name: "nan speed", mutate: func(s *Snapshot) { s.Stats.Speed = math.NaN() }},
		{name: "inf volume", mutate: func(s *Snapshot) { s.Settings.SfxVolume = math.Inf(1) }},
		{name: "nan item stat", mutate: func(s *Snapshot) {
			s.Inventory = []Item{{ID: "a", Stats: &ItemStats{Heal: math.NaN()}}}
		}},
		{name: "inf loadout stat", mutate: func(s *Snapshot) {
			s.Loadout.Armor = &Item{ID: "b", Stats: &ItemStats{Defense: math.Inf(-1)}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			tt.mutate(s)
			require.ErrorIs(t, s.Validate(), errs.ErrNonFinite)
		})
	}

	var nilSnap *Snapshot
	require.ErrorIs(t, nilSnap.Validate(), errs.ErrNilSnapshot)
}

func TestRarityMultiplier(t *testing.T) {
	tests := []struct {
		rarity   Rarity
		expected float64
	}{
		{RarityCommon, 1.0},
		{RarityRare, 1.5},
		{RarityEpic, 2.0},
		{RarityLegendary, 3.0},
		{Rarity("mythic"), 1.0},
	}

	for _, tt := range tests {
		t.Run(string(tt.rarity), func(t *testing.T) {
			require.InDelta(t, tt.expected, tt.rarity.Multiplier(), 1e-9)
		})
	}

	require.True(t, RarityEpic.Valid())
	require.False(t, Rarity("mythic").Valid())
	require.True(t, ItemConsumable.Valid())
	require.False(t, ItemType("ring").Valid())
}

func TestItem_MissingField(t *testing.T) {
	full := Item{ID: "sw1", Name: "Sword", Type: ItemWeapon, Rarity: RarityCommon}
	require.Empty(t, full.MissingField())

	noName := full
	noName.Name = ""
	require.Equal(t, "name", noName.MissingField())

	noRarity := full
	noRarity.Rarity = ""
	require.Equal(t, "rarity", noRarity.MissingField())
}

func TestItem_Clone(t *testing.T) {
	orig := &Item{ID: "a", Stats: &ItemStats{Damage: 3}}
	c := orig.Clone()
	c.Stats.Damage = 9

	require.InDelta(t, 3.0, orig.Stats.Damage, 1e-9)
	require.Nil(t, (*Item)(nil).Clone())
}

func TestItemStats_Sum(t *testing.T) {
	require.InDelta(t, 0.0, (*ItemStats)(nil).Sum(), 1e-9)
	require.InDelta(t, 7.5, (&ItemStats{Damage: 5, Speed: 0.5, Heal: 2}).Sum(), 1e-9)
	require.True(t, (&ItemStats{}).IsZero())
}
