package character

import (
	"log"
	"slices"

	"github.com/KirkDiggler/character-core/internal/domain/item"
	rpgerr "github.com/KirkDiggler/character-core/internal/errors"
	"github.com/KirkDiggler/character-core/internal/events"
)

// HasItem reports whether the inventory holds at least query.Quantity()
// units of the same item
func (c *Character) HasItem(query *item.Item) bool {
	idx := c.findItem(query)
	return idx != -1 && c.inventory[idx].Quantity() >= query.Quantity()
}

// RemoveItem takes query.Quantity() units of the matching stack out of the
// inventory. A stack that reaches zero is removed from the slice. On failure
// the inventory is unchanged and the error is either not_found or
// insufficient_quantity.
func (c *Character) RemoveItem(query *item.Item) ([]*item.Item, error) {
	if query == nil {
		return nil, rpgerr.InvalidArgument("item to remove is required")
	}

	idx := c.findItem(query)
	if idx == -1 {
		log.Printf("Character %s: cannot remove %s, not in inventory", c.Name, query)
		return nil, rpgerr.NotFoundf("item '%s' not found in inventory", query.Name).
			WithMeta("character_id", c.id).
			WithMeta("item_name", query.Name)
	}

	entry := c.inventory[idx]
	requested := query.Quantity()
	if !entry.ModifyQuantity(-requested) {
		log.Printf("Character %s: cannot remove %s, only %d held", c.Name, query, entry.Quantity())
		return nil, rpgerr.InsufficientQuantityf("cannot remove %d of '%s', only %d held",
			requested, query.Name, entry.Quantity()).
			WithMeta("character_id", c.id).
			WithMeta("item_name", query.Name).
			WithMeta("held", entry.Quantity())
	}

	removed := entry.Quantity() == 0
	if removed {
		c.inventory = slices.Delete(c.inventory, idx, idx+1)
	}

	c.emit(&events.InventoryChangedEvent{
		BaseEvent:       events.BaseEvent{Type: events.EventTypeItemRemoved, CharacterID: c.id},
		ItemName:        entry.Name,
		ItemDescription: entry.Description,
		Delta:           -requested,
		Remaining:       entry.Quantity(),
		Removed:         removed,
	})

	return c.inventory, nil
}

// AddItemToInventory merges it into a matching stack, or appends it when the
// inventory has no such item. The item itself is stored, not a copy.
// A nil item is ignored.
func (c *Character) AddItemToInventory(it *item.Item) []*item.Item {
	if it == nil {
		return c.inventory
	}

	added := it.Quantity()
	remaining := added
	if idx := c.findItem(it); idx != -1 {
		entry := c.inventory[idx]
		before := entry.Quantity()
		entry.ModifyQuantity(added)
		remaining = entry.Quantity()
		// a saturated stack may absorb less than was offered
		added = remaining - before
	} else {
		c.inventory = append(c.inventory, it)
	}

	if added == 0 {
		return c.inventory
	}

	c.emit(&events.InventoryChangedEvent{
		BaseEvent:       events.BaseEvent{Type: events.EventTypeItemAdded, CharacterID: c.id},
		ItemName:        it.Name,
		ItemDescription: it.Description,
		Delta:           added,
		Remaining:       remaining,
	})

	return c.inventory
}

// findItem returns the index of the stack matching query, or -1
func (c *Character) findItem(query *item.Item) int {
	if query == nil {
		return -1
	}
	return slices.IndexFunc(c.inventory, func(entry *item.Item) bool {
		return entry.IsSameItem(query)
	})
}
