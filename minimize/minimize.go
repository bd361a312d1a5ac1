// Package minimize elides default values from snapshots and restores them.
//
// Each record shape of the snapshot schema (snapshot, stats, settings,
// loadout, item) has its own minimize/restore pair:
//
//   - scalars equal to their default are omitted
//   - nested records are omitted when every field is omitted
//   - arrays are minimized per element and omitted when empty
//   - items drop their derived fields (see MinimizeItem)
//
// Restore is the inverse for every field covered by the defaults: an
// omitted field takes the default, a present nested record is merged over
// the default record, and a present array is taken as-is.
package minimize

import (
	"fmt"

	"github.com/arloliu/savecode/snapshot"
)

// Minimize returns the compact form of s relative to defaults.
//
// Items missing an identity field are dropped; one warning per dropped item
// is returned. Warnings never stop minimization.
func Minimize(s, defaults *snapshot.Snapshot) (*Snapshot, []error) {
	var warnings []error

	c := &Snapshot{
		Level:      elide(s.Level, defaults.Level),
		Stats:      minimizeStats(&s.Stats, &defaults.Stats),
		ActiveMods: minimizeStrings(s.ActiveMods),
		Settings:   minimizeSettings(&s.Settings, &defaults.Settings),
	}

	var w []error
	c.Inventory, w = minimizeItems("inventory", s.Inventory)
	warnings = append(warnings, w...)

	c.Loadout, w = minimizeLoadout(&s.Loadout)
	warnings = append(warnings, w...)

	c.BossDrops, w = minimizeItems("bossDrops", s.BossDrops)
	warnings = append(warnings, w...)

	return c, warnings
}

// Restore rebuilds a full snapshot from its compact form.
//
// A nil compact snapshot restores to a copy of defaults. Array fields are
// never nil in the result.
//
// Returns errs.ErrMissingField if a restored item lacks an identity field.
func Restore(c *Snapshot, defaults *snapshot.Snapshot) (*snapshot.Snapshot, error) {
	if c == nil {
		c = &Snapshot{}
	}

	s := &snapshot.Snapshot{
		Level:      restore(c.Level, defaults.Level),
		Stats:      restoreStats(c.Stats, &defaults.Stats),
		ActiveMods: restoreStrings(c.ActiveMods, defaults.ActiveMods),
		Settings:   restoreSettings(c.Settings, &defaults.Settings),
	}

	var err error
	if s.Inventory, err = restoreItemsOr("inventory", c.Inventory, defaults.Inventory); err != nil {
		return nil, err
	}
	if s.BossDrops, err = restoreItemsOr("bossDrops", c.BossDrops, defaults.BossDrops); err != nil {
		return nil, err
	}
	if s.Loadout, err = restoreLoadout(c.Loadout, &defaults.Loadout); err != nil {
		return nil, err
	}

	return s, nil
}

func elide[T comparable](v, def T) *T {
	if v == def {
		return nil
	}

	return &v
}

func restore[T any](p *T, def T) T {
	if p == nil {
		return def
	}

	return *p
}

func minimizeStats(s, def *snapshot.Stats) *Stats {
	c := &Stats{
		HP:           elide(s.HP, def.HP),
		MaxHP:        elide(s.MaxHP, def.MaxHP),
		Coins:        elide(s.Coins, def.Coins),
		Damage:       elide(s.Damage, def.Damage),
		Speed:        elide(s.Speed, def.Speed),
		VisionRadius: elide(s.VisionRadius, def.VisionRadius),
	}
	if c.isEmpty() {
		return nil
	}

	return c
}

func restoreStats(c *Stats, def *snapshot.Stats) snapshot.Stats {
	if c == nil {
		return *def
	}

	return snapshot.Stats{
		HP:           restore(c.HP, def.HP),
		MaxHP:        restore(c.MaxHP, def.MaxHP),
		Coins:        restore(c.Coins, def.Coins),
		Damage:       restore(c.Damage, def.Damage),
		Speed:        restore(c.Speed, def.Speed),
		VisionRadius: restore(c.VisionRadius, def.VisionRadius),
	}
}

func minimizeSettings(s, def *snapshot.Settings) *Settings {
	c := &Settings{
		MusicVolume:       elide(s.MusicVolume, def.MusicVolume),
		SfxVolume:         elide(s.SfxVolume, def.SfxVolume),
		JoystickPosition:  elide(s.JoystickPosition, def.JoystickPosition),
		MobileControlType: elide(s.MobileControlType, def.MobileControlType),
	}
	if c.isEmpty() {
		return nil
	}

	return c
}

func restoreSettings(c *Settings, def *snapshot.Settings) snapshot.Settings {
	if c == nil {
		return *def
	}

	return snapshot.Settings{
		MusicVolume:       restore(c.MusicVolume, def.MusicVolume),
		SfxVolume:         restore(c.SfxVolume, def.SfxVolume),
		JoystickPosition:  restore(c.JoystickPosition, def.JoystickPosition),
		MobileControlType: restore(c.MobileControlType, def.MobileControlType),
	}
}

func minimizeLoadout(l *snapshot.Loadout) (*Loadout, []error) {
	var warnings []error
	c := &Loadout{}

	slots := []struct {
		name string
		src  *snapshot.Item
		dst  **Item
	}{
		{"weapon", l.Weapon, &c.Weapon},
		{"armor", l.Armor, &c.Armor},
		{"utility", l.Utility, &c.Utility},
	}
	for _, slot := range slots {
		it, err := minimizeSlot(slot.name, slot.src)
		if err != nil {
			warnings = append(warnings, err)
			continue
		}
		*slot.dst = it
	}

	if c.isEmpty() {
		return nil, warnings
	}

	return c, warnings
}

func restoreLoadout(c *Loadout, def *snapshot.Loadout) (snapshot.Loadout, error) {
	if c == nil {
		return snapshot.Loadout{
			Weapon:  def.Weapon.Clone(),
			Armor:   def.Armor.Clone(),
			Utility: def.Utility.Clone(),
		}, nil
	}

	var (
		l   snapshot.Loadout
		err error
	)
	if l.Weapon, err = restoreSlot("weapon", c.Weapon); err != nil {
		return l, err
	}
	if l.Armor, err = restoreSlot("armor", c.Armor); err != nil {
		return l, err
	}
	if l.Utility, err = restoreSlot("utility", c.Utility); err != nil {
		return l, err
	}

	return l, nil
}

func minimizeStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)

	return out
}

func restoreStrings(values, def []string) []string {
	if values == nil {
		values = def
	}
	out := make([]string, len(values))
	copy(out, values)

	return out
}

func restoreItemsOr(collection string, items []Item, def []snapshot.Item) ([]snapshot.Item, error) {
	if items != nil {
		out, err := restoreItems(collection, items)
		if err != nil {
			return nil, fmt.Errorf("restore %w", err)
		}

		return out, nil
	}

	out := make([]snapshot.Item, len(def))
	for i := range def {
		out[i] = *def[i].Clone()
	}

	return out, nil
}
