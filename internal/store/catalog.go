package store

import (
	"fmt"

	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/domain"
	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/obs"
	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/storage"
)

// AddItem creates a catalog item from the input, assigning a fresh
// identifier and defaulting the low-stock threshold to 3 when unspecified.
func (s *Store) AddItem(in domain.ItemInput) error {
	if err := domain.Validate(in); err != nil {
		return fmt.Errorf("add item: %w: %w", ErrInvalidInput, err)
	}
	item := domain.Item{
		ID:                s.newID(),
		Name:              in.Name,
		Price:             in.Price,
		Cost:              in.Cost,
		Vendor:            in.Vendor,
		ImageURL:          in.ImageURL,
		Sizes:             append([]domain.SizeStock(nil), in.Sizes...),
		Tags:              append([]string(nil), in.Tags...),
		LowStockThreshold: in.LowStockThreshold,
	}
	if item.LowStockThreshold == 0 {
		item.LowStockThreshold = domain.DefaultLowStockThreshold
	}
	s.items = append(s.items, item)
	s.persist(storage.KeyItems, s.items)
	s.log.Debug().Str("id", item.ID).Str("name", item.Name).Msg("item added")
	s.notify(TopicItems)
	return nil
}

// UpdateItem merges the patch onto the item with the given id.
func (s *Store) UpdateItem(id string, patch domain.ItemPatch) error {
	if err := domain.Validate(patch); err != nil {
		return fmt.Errorf("update item: %w: %w", ErrInvalidInput, err)
	}
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		patch.Apply(&s.items[i])
		s.persist(storage.KeyItems, s.items)
		s.log.Debug().Str("id", id).Msg("item updated")
		s.notify(TopicItems)
		return nil
	}
	return fmt.Errorf("update item %q: %w", id, ErrNotFound)
}

// DeleteItem removes the item and every cart line referencing it. The
// removed item is kept in a single undo slot, overwriting whatever the slot
// held before. Historical transactions are untouched. Unknown ids are a
// no-op.
func (s *Store) DeleteItem(id string) {
	idx := -1
	for i := range s.items {
		if s.items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	removed := s.items[idx].Clone()
	s.lastDeleted = &removed
	s.items = append(s.items[:idx], s.items[idx+1:]...)

	kept := s.cart[:0]
	for _, line := range s.cart {
		if line.ItemID != id {
			kept = append(kept, line)
		}
	}
	s.cart = kept

	s.persist(storage.KeyItems, s.items)
	s.persist(storage.KeyCart, s.cart)
	if obs.ItemsDeletedTotal != nil {
		obs.ItemsDeletedTotal.Inc()
	}
	s.log.Info().Str("id", id).Str("name", removed.Name).Msg("item deleted")
	s.notify(TopicItems)
	s.notify(TopicCart)
}

// UndoDelete restores the most recently deleted item, appended to the end
// of the catalog, and empties the undo slot. With an empty slot it is a
// no-op. Only one deletion is ever recoverable.
func (s *Store) UndoDelete() {
	if s.lastDeleted == nil {
		return
	}
	item := *s.lastDeleted
	s.lastDeleted = nil
	s.items = append(s.items, item)
	s.persist(storage.KeyItems, s.items)
	s.log.Info().Str("id", item.ID).Msg("item delete undone")
	s.notify(TopicItems)
}
