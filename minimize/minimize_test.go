package minimize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/savecode/errs"
	"github.com/arloliu/savecode/snapshot"
)

func sword() snapshot.Item {
	return snapshot.Item{
		ID:          "sw-01",
		Name:        "Rusty Sword",
		Type:        snapshot.ItemWeapon,
		Rarity:      snapshot.RarityRare,
		Stats:       &snapshot.ItemStats{Damage: 10},
		Price:       999,
		Description: "An old blade.",
	}
}

func populated() *snapshot.Snapshot {
	s := snapshot.Defaults()
	s.Level = 4
	s.Stats.HP = 0
	s.Stats.Coins = 250
	s.Stats.Speed = 1.25
	s.Inventory = []snapshot.Item{sword()}
	armor := snapshot.Item{ID: "ar-02", Name: "Plate", Type: snapshot.ItemArmor, Rarity: snapshot.RarityEpic,
		Stats: &snapshot.ItemStats{Defense: 4, Speed: -0.5}}
	s.Loadout.Armor = &armor
	s.ActiveMods = []string{"glass-cannon", "haste"}
	s.Settings.JoystickPosition = "right"

	return s
}

func TestMinimize_Defaults(t *testing.T) {
	c, warnings := Minimize(snapshot.Defaults(), snapshot.Defaults())

	require.Empty(t, warnings)
	require.True(t, c.IsEmpty())
}

func TestMinimize_ElidesDefaults(t *testing.T) {
	c, warnings := Minimize(populated(), snapshot.Defaults())
	require.Empty(t, warnings)

	require.NotNil(t, c.Level)
	require.Equal(t, uint(4), *c.Level)

	require.NotNil(t, c.Stats)
	require.NotNil(t, c.Stats.HP, "zero differs from the default and must be kept")
	require.Equal(t, 0, *c.Stats.HP)
	require.Nil(t, c.Stats.MaxHP)
	require.Nil(t, c.Stats.Damage)
	require.Equal(t, 1.25, *c.Stats.Speed)

	require.NotNil(t, c.Settings)
	require.Nil(t, c.Settings.MusicVolume)
	require.Equal(t, "right", *c.Settings.JoystickPosition)

	require.NotNil(t, c.Loadout)
	require.Nil(t, c.Loadout.Weapon)
	require.Nil(t, c.BossDrops)
}

func TestRoundTrip(t *testing.T) {
	want := populated()

	c, warnings := Minimize(want, snapshot.Defaults())
	require.Empty(t, warnings)

	got, err := Restore(c, snapshot.Defaults())
	require.NoError(t, err)

	require.Equal(t, want.Level, got.Level)
	require.Equal(t, want.Stats, got.Stats)
	require.Equal(t, want.Settings, got.Settings)
	require.Equal(t, want.ActiveMods, got.ActiveMods)
	require.Empty(t, got.BossDrops)
	require.NotNil(t, got.BossDrops)

	require.Len(t, got.Inventory, 1)
	require.Equal(t, "sw-01", got.Inventory[0].ID)
	require.Equal(t, 30, got.Inventory[0].Price)
	require.Empty(t, got.Inventory[0].Description)

	require.Nil(t, got.Loadout.Weapon)
	require.NotNil(t, got.Loadout.Armor)
	require.Equal(t, 14, got.Loadout.Armor.Price, "floor((4-0.5)*2*2)")
}

func TestRestore_Nil(t *testing.T) {
	got, err := Restore(nil, snapshot.Defaults())
	require.NoError(t, err)
	require.Equal(t, snapshot.Defaults(), got)
}

func TestRestore_PartialNested(t *testing.T) {
	coins := 42
	got, err := Restore(&Snapshot{Stats: &Stats{Coins: &coins}}, snapshot.Defaults())
	require.NoError(t, err)

	def := snapshot.Defaults()
	require.Equal(t, 42, got.Stats.Coins)
	require.Equal(t, def.Stats.HP, got.Stats.HP)
	require.Equal(t, def.Stats.VisionRadius, got.Stats.VisionRadius)
	require.Equal(t, def.Settings, got.Settings)
}

func TestRestore_MissingIdentity(t *testing.T) {
	tests := []struct {
		name  string
		input *Snapshot
	}{
		{name: "inventory", input: &Snapshot{Inventory: []Item{{ID: "x", Type: snapshot.ItemWeapon, Rarity: snapshot.RarityCommon}}}},
		{name: "boss drops", input: &Snapshot{BossDrops: []Item{{Name: "x", Type: snapshot.ItemWeapon, Rarity: snapshot.RarityCommon}}}},
		{name: "loadout", input: &Snapshot{Loadout: &Loadout{Utility: &Item{ID: "u", Name: "Lamp", Type: snapshot.ItemUtility}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Restore(tt.input, snapshot.Defaults())
			require.ErrorIs(t, err, errs.ErrMissingField)
		})
	}
}

func TestMinimize_DropsInvalidItems(t *testing.T) {
	s := snapshot.Defaults()
	noName := sword()
	noName.Name = ""
	s.Inventory = []snapshot.Item{noName, sword()}
	s.BossDrops = []snapshot.Item{{ID: "bd", Name: "Crown", Type: snapshot.ItemUtility}}
	s.Loadout.Weapon = &snapshot.Item{Name: "Ghost", Type: snapshot.ItemWeapon, Rarity: snapshot.RarityCommon}

	c, warnings := Minimize(s, snapshot.Defaults())

	require.Len(t, c.Inventory, 1)
	require.Equal(t, "sw-01", c.Inventory[0].ID)
	require.Nil(t, c.BossDrops, "array left empty after dropping is omitted")
	require.Nil(t, c.Loadout)

	require.Len(t, warnings, 3)
	got := make([]string, 0, len(warnings))
	for _, w := range warnings {
		require.ErrorIs(t, w, errs.ErrItemValidation)
		got = append(got, w.Error())
	}
	require.ElementsMatch(t, []string{
		"inventory[0]: item dropped, missing name",
		"bossDrops[0]: item dropped, missing rarity",
		"loadout.weapon[0]: item dropped, missing id",
	}, got)
}

func TestMinimize_DoesNotAliasInput(t *testing.T) {
	s := populated()
	c, _ := Minimize(s, snapshot.Defaults())

	s.ActiveMods[0] = "changed"
	s.Inventory[0].Stats.Damage = 1

	require.Equal(t, "glass-cannon", c.ActiveMods[0])
	require.InDelta(t, 10.0, c.Inventory[0].Stats.Damage, 1e-9)
}
