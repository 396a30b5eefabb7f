package store

import (
	"fmt"

	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/domain"
	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/obs"
	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/pricing"
	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/storage"
)

// SaleOptions parameterizes CompleteSale. AmountPaid applies to cash
// tenders only; when nil, exact payment is assumed. Discount is optional
// and applies to the whole cart.
type SaleOptions struct {
	Tender     domain.Tender
	AmountPaid *domain.Money
	Discount   *domain.Discount
}

// CompleteSale finalizes the current cart into an immutable transaction:
// totals are computed from the settings tax rate and the optional discount,
// recorded stock for every sized line is decremented (clamped at zero, never
// blocking the sale), the record is appended to the history, and the cart is
// cleared.
//
// Policy: the store does not verify that a cash payment covers the total.
// Callers are expected to validate amountPaid before invoking; an
// underpayment simply yields negative change.
func (s *Store) CompleteSale(opts SaleOptions) (domain.Transaction, error) {
	if !opts.Tender.Valid() {
		return domain.Transaction{}, fmt.Errorf("complete sale: unknown tender %q: %w", opts.Tender, ErrInvalidInput)
	}
	if len(s.cart) == 0 {
		return domain.Transaction{}, fmt.Errorf("complete sale: cart empty: %w", ErrInvalidInput)
	}
	if opts.Discount != nil {
		if err := domain.Validate(*opts.Discount); err != nil {
			return domain.Transaction{}, fmt.Errorf("complete sale: %w: %w", ErrInvalidInput, err)
		}
	}

	totals := pricing.Compute(s.cart, opts.Discount, s.settings.TaxRate)

	for _, line := range s.cart {
		if line.Size == "" {
			continue
		}
		s.decrementStock(line.ItemID, line.Size, line.Qty)
	}

	txn := domain.Transaction{
		ID:        s.newID(),
		Timestamp: s.now(),
		Subtotal:  totals.Subtotal,
		Tax:       totals.Tax,
		Total:     totals.Total,
		Tender:    opts.Tender,
		Lines:     domain.CloneLines(s.cart),
	}
	if opts.Discount != nil {
		d := *opts.Discount
		txn.Discount = &d
	}
	if opts.Tender == domain.TenderCash {
		paid := totals.Total
		if opts.AmountPaid != nil {
			paid = *opts.AmountPaid
		}
		change := pricing.ChangeDue(paid, totals.Total)
		txn.AmountPaid = &paid
		txn.Change = &change
	}

	s.txns = append(s.txns, txn)
	s.persist(storage.KeyTransactions, s.txns)
	s.persist(storage.KeyItems, s.items)

	if obs.SalesTotal != nil {
		obs.SalesTotal.WithLabelValues(string(opts.Tender)).Inc()
	}
	if obs.SaleRevenueCents != nil {
		obs.SaleRevenueCents.Add(float64(totals.Total))
	}
	s.log.Info().
		Str("id", txn.ID).
		Str("tender", string(txn.Tender)).
		Str("total", domain.FormatMoney(txn.Total)).
		Int("lines", len(txn.Lines)).
		Msg("sale completed")

	s.notify(TopicItems)
	s.ClearCart()
	return txn.Clone(), nil
}

// decrementStock reduces recorded stock for one item size by qty, clamped
// at zero. Missing items or sizes are ignored: a sale is never blocked by
// the stock ledger.
func (s *Store) decrementStock(itemID, size string, qty int) {
	for i := range s.items {
		if s.items[i].ID != itemID {
			continue
		}
		for j := range s.items[i].Sizes {
			if s.items[i].Sizes[j].Size != size {
				continue
			}
			stock := s.items[i].Sizes[j].Stock - qty
			if stock < 0 {
				stock = 0
			}
			s.items[i].Sizes[j].Stock = stock
			return
		}
		return
	}
}
