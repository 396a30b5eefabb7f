package pricing

import (
	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/domain"
)

// Totals aggregates the computed pricing components of a sale.
type Totals struct {
	PreDiscount domain.Money
	Discount    domain.Money
	Subtotal    domain.Money
	Tax         domain.Money
	Total       domain.Money
}

// Compute calculates sale totals for the given cart lines. The discount is
// optional and applies to the whole cart. Tax is charged on the discounted
// subtotal and rounded to the nearest cent; total = subtotal + tax.
func Compute(lines []domain.LineItem, discount *domain.Discount, taxRate float64) Totals {
	var pre domain.Money
	for _, l := range lines {
		if l.Qty <= 0 {
			continue
		}
		pre += l.Subtotal()
	}

	var off domain.Money
	if discount != nil {
		off = discount.Amount(pre)
	}

	subtotal := pre - off
	if subtotal < 0 {
		subtotal = 0
	}
	if taxRate < 0 {
		taxRate = 0
	}
	tax := domain.RoundCents(float64(subtotal) * taxRate)
	return Totals{
		PreDiscount: pre,
		Discount:    off,
		Subtotal:    subtotal,
		Tax:         tax,
		Total:       subtotal + tax,
	}
}

// ChangeDue returns the change owed on a cash payment. The result is
// negative when the amount paid does not cover the total; rejecting such
// payments is the caller's responsibility.
func ChangeDue(amountPaid, total domain.Money) domain.Money {
	return amountPaid - total
}
