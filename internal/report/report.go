// Package report computes read-side sales aggregates over the transaction
// history. Everything here is pure: inputs are never mutated and repeated
// calls over the same data yield identical results.
package report

import (
	"sort"
	"time"

	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/domain"
)

// topSellerCount is how many line groups qualify as top sellers.
const topSellerCount = 5

// Totals summarizes a set of transactions. Profit is pre-tax:
// subtotal minus cost of goods sold.
type Totals struct {
	Subtotal  domain.Money
	Tax       domain.Money
	Total     domain.Money
	COGS      domain.Money
	Profit    domain.Money
	CashTotal domain.Money
	CardTotal domain.Money
}

// LineAgg aggregates every sold line sharing a (name, size) key.
type LineAgg struct {
	Key     string
	Name    string
	Size    string
	Qty     int
	Revenue domain.Money
	Cost    domain.Money
	Profit  domain.Money
}

// Report is the result of aggregating a date range.
type Report struct {
	Start      time.Time
	End        time.Time
	Totals     Totals
	Lines      []LineAgg
	TopSellers []LineAgg
}

// Aggregate filters transactions to [startOfDay(start), endOfDay(end)]
// inclusive and accumulates totals and per-line groups, sorted by revenue
// descending. Zero start or end bounds fall back to today relative to now.
func Aggregate(txns []domain.Transaction, start, end, now time.Time) Report {
	if start.IsZero() {
		start = now
	}
	if end.IsZero() {
		end = now
	}
	lo := StartOfDay(start)
	hi := EndOfDay(end)

	var totals Totals
	groups := make(map[string]*LineAgg)
	for _, t := range txns {
		if t.Timestamp.Before(lo) || t.Timestamp.After(hi) {
			continue
		}
		totals.Subtotal += t.Subtotal
		totals.Tax += t.Tax
		totals.Total += t.Total
		switch t.Tender {
		case domain.TenderCash:
			totals.CashTotal += t.Total
		case domain.TenderCard:
			totals.CardTotal += t.Total
		}
		for _, l := range t.Lines {
			revenue := l.UnitPrice * domain.Money(l.Qty)
			cost := l.UnitCost * domain.Money(l.Qty)
			totals.COGS += cost

			key := l.Name + "|" + l.Size
			g := groups[key]
			if g == nil {
				g = &LineAgg{Key: key, Name: l.Name, Size: l.Size}
				groups[key] = g
			}
			g.Qty += l.Qty
			g.Revenue += revenue
			g.Cost += cost
			g.Profit += revenue - cost
		}
	}
	totals.Profit = totals.Subtotal - totals.COGS

	lines := make([]LineAgg, 0, len(groups))
	for _, g := range groups {
		lines = append(lines, *g)
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Revenue != lines[j].Revenue {
			return lines[i].Revenue > lines[j].Revenue
		}
		return lines[i].Key < lines[j].Key
	})

	top := lines
	if len(top) > topSellerCount {
		top = top[:topSellerCount]
	}
	return Report{
		Start:      lo,
		End:        hi,
		Totals:     totals,
		Lines:      lines,
		TopSellers: append([]LineAgg(nil), top...),
	}
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
