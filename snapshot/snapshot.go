// Package snapshot defines the game-state record carried by save codes.
//
// A Snapshot is produced by the simulation, encoded once into a code, and a
// fresh Snapshot is produced when the code is decoded. Snapshots are plain
// values: the codec copies what it needs and never shares mutable state
// with the caller.
package snapshot

import (
	"fmt"
	"math"

	"github.com/arloliu/savecode/errs"
)

// ScreenResume is the screen every decoded snapshot starts on.
const ScreenResume = "resume"

// Snapshot is the complete persisted state of a run.
type Snapshot struct {
	Level      uint     `json:"level"`
	Stats      Stats    `json:"stats"`
	Inventory  []Item   `json:"inventory"`
	Loadout    Loadout  `json:"loadout"`
	ActiveMods []string `json:"activeMods"`
	BossDrops  []Item   `json:"bossDrops"`
	Settings   Settings `json:"settings"`

	// Screen is presentation state. It is not encoded.
	Screen string `json:"-"`
}

// Stats is the player stat block.
type Stats struct {
	HP           int     `json:"hp"`
	MaxHP        int     `json:"maxHp"`
	Coins        int     `json:"coins"`
	Damage       int     `json:"damage"`
	Speed        float64 `json:"speed"`
	VisionRadius float64 `json:"visionRadius"`
}

// Loadout holds the equipped items. Empty slots are nil.
type Loadout struct {
	Weapon  *Item `json:"weapon,omitempty"`
	Armor   *Item `json:"armor,omitempty"`
	Utility *Item `json:"utility,omitempty"`
}

// Settings is the player preference block.
type Settings struct {
	MusicVolume       float64 `json:"musicVolume"`
	SfxVolume         float64 `json:"sfxVolume"`
	JoystickPosition  string  `json:"joystickPosition"`
	MobileControlType string  `json:"mobileControlType"`
}

// Defaults returns the canonical defaults: the state of a fresh run.
// Array fields are empty, not nil.
func Defaults() *Snapshot {
	return &Snapshot{
		Level: 1,
		Stats: Stats{
			HP:           100,
			MaxHP:        100,
			Coins:        0,
			Damage:       10,
			Speed:        1,
			VisionRadius: 5,
		},
		Inventory:  []Item{},
		ActiveMods: []string{},
		BossDrops:  []Item{},
		Settings: Settings{
			MusicVolume:       0.5,
			SfxVolume:         0.7,
			JoystickPosition:  "left",
			MobileControlType: "joystick",
		},
	}
}

// Validate reports values that cannot be serialized losslessly.
//
// Returns errs.ErrNilSnapshot for a nil snapshot and errs.ErrNonFinite for
// NaN or infinite numbers.
func (s *Snapshot) Validate() error {
	if s == nil {
		return errs.ErrNilSnapshot
	}

	checks := []struct {
		path string
		v    float64
	}{
		{"stats.speed", s.Stats.Speed},
		{"stats.visionRadius", s.Stats.VisionRadius},
		{"settings.musicVolume", s.Settings.MusicVolume},
		{"settings.sfxVolume", s.Settings.SfxVolume},
	}
	for _, c := range checks {
		if !finite(c.v) {
			return fmt.Errorf("%w: %s", errs.ErrNonFinite, c.path)
		}
	}

	if err := validateItems("inventory", s.Inventory); err != nil {
		return err
	}
	if err := validateItems("bossDrops", s.BossDrops); err != nil {
		return err
	}
	for slot, it := range s.Loadout.Slots() {
		if it == nil {
			continue
		}
		if err := validateStats("loadout."+slot, it.Stats); err != nil {
			return err
		}
	}

	return nil
}

// Slots returns the loadout slots keyed by their field name.
func (l *Loadout) Slots() map[string]*Item {
	return map[string]*Item{
		"weapon":  l.Weapon,
		"armor":   l.Armor,
		"utility": l.Utility,
	}
}

func validateItems(collection string, items []Item) error {
	for i := range items {
		if err := validateStats(fmt.Sprintf("%s[%d]", collection, i), items[i].Stats); err != nil {
			return err
		}
	}

	return nil
}

func validateStats(path string, s *ItemStats) error {
	if s == nil {
		return nil
	}
	for _, v := range []float64{s.Damage, s.Defense, s.Speed, s.Vision, s.Heal} {
		if !finite(v) {
			return fmt.Errorf("%w: %s.stats", errs.ErrNonFinite, path)
		}
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
