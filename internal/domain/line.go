package domain

import "fmt"

// LineItem is a cart line or a transaction line. Name, prices and image are
// snapshots taken when the line was added; later catalog edits never change
// lines already in the cart or in historical transactions.
type LineItem struct {
	ItemID    string `json:"itemId"`
	Name      string `json:"name"`
	Size      string `json:"size,omitempty"`
	Qty       int    `json:"qty"`
	UnitPrice Money  `json:"unitPrice"`
	UnitCost  Money  `json:"unitCost"`
	ImageURL  string `json:"imageUrl,omitempty"`
}

// MergeKey identifies lines that combine into one when added to the cart:
// same item, same size, same captured unit price.
func (l LineItem) MergeKey() string {
	return fmt.Sprintf("%s|%s|%d", l.ItemID, l.Size, l.UnitPrice)
}

// Subtotal returns unit price times quantity.
func (l LineItem) Subtotal() Money {
	return l.UnitPrice * Money(l.Qty)
}

// CloneLines deep-copies a slice of lines.
func CloneLines(lines []LineItem) []LineItem {
	if lines == nil {
		return nil
	}
	return append([]LineItem(nil), lines...)
}
