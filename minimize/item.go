package minimize

import (
	"fmt"
	"math"

	"github.com/arloliu/savecode/errs"
	"github.com/arloliu/savecode/snapshot"
)

// MinimizeItem drops the derived fields of an item.
//
// Price and Description are always dropped; zero stats are dropped and the
// stats block is omitted when nothing is left.
//
// Returns:
//   - *Item: the compact item, nil when the item is dropped
//   - error: an *errs.ItemValidationWarning when id, name, type or rarity is
//     missing. The warning is recoverable: callers skip the item.
func MinimizeItem(it *snapshot.Item) (*Item, error) {
	if field := it.MissingField(); field != "" {
		return nil, &errs.ItemValidationWarning{Field: field}
	}

	c := &Item{
		ID:     it.ID,
		Name:   it.Name,
		Type:   it.Type,
		Rarity: it.Rarity,
	}
	if !it.Stats.IsZero() {
		stats := *it.Stats
		c.Stats = &stats
	}

	return c, nil
}

// RestoreItem rebuilds a full item from its compact form.
//
// The price is recomputed as floor(sum(stats) * 2 * rarity multiplier).
// Description is left empty for the presentation layer.
func RestoreItem(c *Item) snapshot.Item {
	it := snapshot.Item{
		ID:     c.ID,
		Name:   c.Name,
		Type:   c.Type,
		Rarity: c.Rarity,
	}
	if c.Stats != nil {
		stats := *c.Stats
		it.Stats = &stats
	}
	it.Price = Price(it.Stats, it.Rarity)

	return it
}

// Price computes the deterministic price of an item.
func Price(stats *snapshot.ItemStats, rarity snapshot.Rarity) int {
	return int(math.Floor(stats.Sum() * 2 * rarity.Multiplier()))
}

func minimizeItems(collection string, items []snapshot.Item) ([]Item, []error) {
	var (
		out      []Item
		warnings []error
	)
	for i := range items {
		c, err := MinimizeItem(&items[i])
		if err != nil {
			warnings = append(warnings, locate(err, collection, i))
			continue
		}
		out = append(out, *c)
	}

	return out, warnings
}

func minimizeSlot(slot string, it *snapshot.Item) (*Item, error) {
	if it == nil {
		return nil, nil
	}
	c, err := MinimizeItem(it)
	if err != nil {
		return nil, locate(err, "loadout."+slot, 0)
	}

	return c, nil
}

func locate(err error, collection string, index int) error {
	if w, ok := err.(*errs.ItemValidationWarning); ok {
		w.Collection = collection
		w.Index = index
	}

	return err
}

func restoreItems(collection string, items []Item) ([]snapshot.Item, error) {
	out := make([]snapshot.Item, 0, len(items))
	for i := range items {
		if err := checkIdentity(&items[i]); err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", collection, i, err)
		}
		out = append(out, RestoreItem(&items[i]))
	}

	return out, nil
}

func restoreSlot(slot string, c *Item) (*snapshot.Item, error) {
	if c == nil {
		return nil, nil
	}
	if err := checkIdentity(c); err != nil {
		return nil, fmt.Errorf("loadout.%s: %w", slot, err)
	}
	it := RestoreItem(c)

	return &it, nil
}

func checkIdentity(c *Item) error {
	probe := snapshot.Item{ID: c.ID, Name: c.Name, Type: c.Type, Rarity: c.Rarity}
	if field := probe.MissingField(); field != "" {
		return fmt.Errorf("%w: %s", errs.ErrMissingField, field)
	}

	return nil
}
