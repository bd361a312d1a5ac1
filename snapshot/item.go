package snapshot

// ItemType is the equipment slot family of an item.
type ItemType string

const (
	ItemWeapon     ItemType = "weapon"
	ItemArmor      ItemType = "armor"
	ItemUtility    ItemType = "utility"
	ItemConsumable ItemType = "consumable"
)

// Valid reports whether t is one of the known item types.
func (t ItemType) Valid() bool {
	switch t {
	case ItemWeapon, ItemArmor, ItemUtility, ItemConsumable:
		return true
	default:
		return false
	}
}

// Rarity is the catalog tier of an item.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Valid reports whether r is one of the known rarities.
func (r Rarity) Valid() bool {
	switch r {
	case RarityCommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	default:
		return false
	}
}

// Multiplier returns the price multiplier of the rarity tier.
// Unknown rarities price like common items.
func (r Rarity) Multiplier() float64 {
	switch r {
	case RarityRare:
		return 1.5
	case RarityEpic:
		return 2.0
	case RarityLegendary:
		return 3.0
	default:
		return 1.0
	}
}

// ItemStats holds the optional stat bonuses of an item. Zero means absent.
type ItemStats struct {
	Damage  float64 `json:"damage,omitempty"`
	Defense float64 `json:"defense,omitempty"`
	Speed   float64 `json:"speed,omitempty"`
	Vision  float64 `json:"vision,omitempty"`
	Heal    float64 `json:"heal,omitempty"`
}

// Sum returns the total of all stat values.
func (s *ItemStats) Sum() float64 {
	if s == nil {
		return 0
	}

	return s.Damage + s.Defense + s.Speed + s.Vision + s.Heal
}

// IsZero reports whether no stat is set.
func (s *ItemStats) IsZero() bool {
	return s == nil || *s == ItemStats{}
}

// Item is a catalog item owned by the player.
//
// Price and Description are derived data: codes do not carry them. Price is
// recomputed from the stats and rarity on decode, Description is left empty
// for the presentation layer to fill in.
type Item struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        ItemType   `json:"type"`
	Rarity      Rarity     `json:"rarity"`
	Stats       *ItemStats `json:"stats,omitempty"`
	Price       int        `json:"price"`
	Description string     `json:"description"`
}

// MissingField returns the name of the first empty identity field, or "" if
// the item has all of id, name, type and rarity.
func (it *Item) MissingField() string {
	switch {
	case it.ID == "":
		return "id"
	case it.Name == "":
		return "name"
	case it.Type == "":
		return "type"
	case it.Rarity == "":
		return "rarity"
	default:
		return ""
	}
}

// Clone returns a deep copy of the item.
func (it *Item) Clone() *Item {
	if it == nil {
		return nil
	}

	c := *it
	if it.Stats != nil {
		stats := *it.Stats
		c.Stats = &stats
	}

	return &c
}
