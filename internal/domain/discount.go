package domain

// DiscountKind distinguishes percentage and fixed-amount discounts.
type DiscountKind string

const (
	// DiscountPercent applies Value as a percentage (0-100) of the
	// pre-discount subtotal.
	DiscountPercent DiscountKind = "percent"
	// DiscountFixed applies Value as a minor-unit amount.
	DiscountFixed DiscountKind = "fixed"
)

// Discount applies to the whole cart, never per line. For percent discounts
// Value is the percentage and may be fractional; for fixed discounts Value is
// a monetary amount in minor units.
type Discount struct {
	Kind  DiscountKind `json:"kind" validate:"oneof=percent fixed"`
	Value float64      `json:"value" validate:"gte=0"`
}

// Amount computes the discount in minor units for the given pre-discount
// subtotal, clamped to [0, preDiscount].
func (d Discount) Amount(preDiscount Money) Money {
	var amount Money
	switch d.Kind {
	case DiscountPercent:
		amount = RoundCents(float64(preDiscount) * d.Value / 100)
	case DiscountFixed:
		amount = RoundCents(d.Value)
	}
	if amount < 0 {
		amount = 0
	}
	if amount > preDiscount {
		amount = preDiscount
	}
	return amount
}
