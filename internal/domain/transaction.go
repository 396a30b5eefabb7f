package domain

import "time"

// Tender is the payment method for a sale.
type Tender string

const (
	TenderCash Tender = "cash"
	TenderCard Tender = "card"
)

// Valid reports whether the tender is one of the known kinds.
func (t Tender) Valid() bool {
	return t == TenderCash || t == TenderCard
}

// Transaction is a completed sale. Records are append-only: never mutated or
// deleted after creation. AmountPaid and Change are only set for cash
// tenders. Lines is an independent snapshot of the cart at time of sale.
type Transaction struct {
	ID         string     `json:"id"`
	Timestamp  time.Time  `json:"timestamp"`
	Subtotal   Money      `json:"subtotal"`
	Tax        Money      `json:"tax"`
	Total      Money      `json:"total"`
	Tender     Tender     `json:"tender"`
	AmountPaid *Money     `json:"amountPaid,omitempty"`
	Change     *Money     `json:"change,omitempty"`
	Discount   *Discount  `json:"discount,omitempty"`
	Lines      []LineItem `json:"lines"`
}

// Clone returns a deep copy independent of the receiver.
func (t Transaction) Clone() Transaction {
	out := t
	out.Lines = CloneLines(t.Lines)
	if t.AmountPaid != nil {
		paid := *t.AmountPaid
		out.AmountPaid = &paid
	}
	if t.Change != nil {
		change := *t.Change
		out.Change = &change
	}
	if t.Discount != nil {
		d := *t.Discount
		out.Discount = &d
	}
	return out
}

// CloneTransactions deep-copies a slice of transactions.
func CloneTransactions(txns []Transaction) []Transaction {
	if txns == nil {
		return nil
	}
	out := make([]Transaction, len(txns))
	for i, t := range txns {
		out[i] = t.Clone()
	}
	return out
}
