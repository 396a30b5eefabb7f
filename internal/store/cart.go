package store

import (
	"fmt"

	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/domain"
	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/storage"
)

// AddToCart adds a snapshot line to the cart. A line with the same item,
// size and unit price as an existing one merges into it by summing
// quantities; the cart never holds duplicate lines for that key.
func (s *Store) AddToCart(line domain.LineItem) error {
	if line.Qty <= 0 {
		return fmt.Errorf("add to cart: qty must be positive: %w", ErrInvalidInput)
	}
	if line.ItemID == "" {
		return fmt.Errorf("add to cart: item id required: %w", ErrInvalidInput)
	}
	key := line.MergeKey()
	merged := false
	for i := range s.cart {
		if s.cart[i].MergeKey() == key {
			s.cart[i].Qty += line.Qty
			merged = true
			break
		}
	}
	if !merged {
		s.cart = append(s.cart, line)
	}
	s.persist(storage.KeyCart, s.cart)
	s.log.Debug().Str("item", line.ItemID).Int("qty", line.Qty).Bool("merged", merged).Msg("cart line added")
	s.notify(TopicCart)
	return nil
}

// SetCartQty sets the quantity of the line at index. A quantity of zero or
// less removes the line; cart quantities are always positive. Out-of-range
// indexes are a no-op.
func (s *Store) SetCartQty(index, qty int) {
	if index < 0 || index >= len(s.cart) {
		return
	}
	if qty <= 0 {
		s.cart = append(s.cart[:index], s.cart[index+1:]...)
	} else {
		s.cart[index].Qty = qty
	}
	s.persist(storage.KeyCart, s.cart)
	s.notify(TopicCart)
}

// RemoveCartLine removes the line at index. Out-of-range indexes are a no-op.
func (s *Store) RemoveCartLine(index int) {
	if index < 0 || index >= len(s.cart) {
		return
	}
	s.cart = append(s.cart[:index], s.cart[index+1:]...)
	s.persist(storage.KeyCart, s.cart)
	s.notify(TopicCart)
}

// ClearCart empties the cart.
func (s *Store) ClearCart() {
	s.cart = nil
	s.persist(storage.KeyCart, []domain.LineItem{})
	s.notify(TopicCart)
}

// SetTaxRate stores a new tax rate, clamped at zero.
func (s *Store) SetTaxRate(rate float64) {
	if rate < 0 {
		rate = 0
	}
	s.settings.TaxRate = rate
	s.persist(storage.KeySettings, s.settings)
	s.log.Debug().Float64("taxRate", rate).Msg("tax rate updated")
	s.notify(TopicSettings)
}
