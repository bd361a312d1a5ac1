package minimize

import "github.com/arloliu/savecode/snapshot"

// Snapshot is the minimized form of snapshot.Snapshot.
//
// A nil pointer or empty slice means "equal to the default" and is omitted
// from the serialized text. Field order is the serialization order.
type Snapshot struct {
	Level      *uint     `json:"level,omitempty"`
	Stats      *Stats    `json:"stats,omitempty"`
	Inventory  []Item    `json:"inventory,omitempty"`
	Loadout    *Loadout  `json:"loadout,omitempty"`
	ActiveMods []string  `json:"activeMods,omitempty"`
	BossDrops  []Item    `json:"bossDrops,omitempty"`
	Settings   *Settings `json:"settings,omitempty"`
}

// IsEmpty reports whether every field equals its default.
func (s *Snapshot) IsEmpty() bool {
	return s.Level == nil && s.Stats == nil && len(s.Inventory) == 0 && s.Loadout == nil &&
		len(s.ActiveMods) == 0 && len(s.BossDrops) == 0 && s.Settings == nil
}

// Stats is the minimized stat block.
type Stats struct {
	HP           *int     `json:"hp,omitempty"`
	MaxHP        *int     `json:"maxHp,omitempty"`
	Coins        *int     `json:"coins,omitempty"`
	Damage       *int     `json:"damage,omitempty"`
	Speed        *float64 `json:"speed,omitempty"`
	VisionRadius *float64 `json:"visionRadius,omitempty"`
}

func (s *Stats) isEmpty() bool {
	return s.HP == nil && s.MaxHP == nil && s.Coins == nil && s.Damage == nil &&
		s.Speed == nil && s.VisionRadius == nil
}

// Settings is the minimized settings block.
type Settings struct {
	MusicVolume       *float64 `json:"musicVolume,omitempty"`
	SfxVolume         *float64 `json:"sfxVolume,omitempty"`
	JoystickPosition  *string  `json:"joystickPosition,omitempty"`
	MobileControlType *string  `json:"mobileControlType,omitempty"`
}

func (s *Settings) isEmpty() bool {
	return s.MusicVolume == nil && s.SfxVolume == nil && s.JoystickPosition == nil && s.MobileControlType == nil
}

// Loadout is the minimized loadout. Empty slots are nil.
type Loadout struct {
	Weapon  *Item `json:"weapon,omitempty"`
	Armor   *Item `json:"armor,omitempty"`
	Utility *Item `json:"utility,omitempty"`
}

func (l *Loadout) isEmpty() bool {
	return l.Weapon == nil && l.Armor == nil && l.Utility == nil
}

// Item is the minimized item: identity plus the non-zero stats.
type Item struct {
	ID     string              `json:"id"`
	Name   string              `json:"name"`
	Type   snapshot.ItemType   `json:"type"`
	Rarity snapshot.Rarity     `json:"rarity"`
	Stats  *snapshot.ItemStats `json:"stats,omitempty"`
}
