package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/domain"
	"github.com/iprint3022-drewifey/Dirt-Inventory-POS/internal/report"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func money(m int64) *domain.Money { return &m }

func fixtureTxns() []domain.Transaction {
	return []domain.Transaction{
		{
			ID:        "t1",
			Timestamp: time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC),
			Subtotal:  2500, Tax: 200, Total: 2700,
			Tender:     domain.TenderCash,
			AmountPaid: money(3000), Change: money(300),
			Lines: []domain.LineItem{
				{ItemID: "a", Name: "Dirt Tee", Size: "M", Qty: 2, UnitPrice: 1000, UnitCost: 400},
				{ItemID: "b", Name: "Sticker", Qty: 1, UnitPrice: 500, UnitCost: 100},
			},
		},
		{
			ID:        "t2",
			Timestamp: time.Date(2025, 6, 12, 16, 0, 0, 0, time.UTC),
			Subtotal:  1000, Tax: 80, Total: 1080,
			Tender: domain.TenderCard,
			Lines: []domain.LineItem{
				{ItemID: "a", Name: "Dirt Tee", Size: "M", Qty: 1, UnitPrice: 1000, UnitCost: 400},
			},
		},
		{
			// Outside every test range.
			ID:        "t3",
			Timestamp: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
			Subtotal:  9999, Tax: 0, Total: 9999,
			Tender: domain.TenderCard,
			Lines: []domain.LineItem{
				{ItemID: "c", Name: "Old Hat", Qty: 1, UnitPrice: 9999, UnitCost: 5000},
			},
		},
	}
}

func TestAggregateTotals(t *testing.T) {
	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)
	r := report.Aggregate(fixtureTxns(), start, end, now)

	require.Equal(t, domain.Money(3500), r.Totals.Subtotal)
	require.Equal(t, domain.Money(280), r.Totals.Tax)
	require.Equal(t, domain.Money(3780), r.Totals.Total)
	require.Equal(t, domain.Money(1300), r.Totals.COGS)
	require.Equal(t, domain.Money(2200), r.Totals.Profit)
	require.Equal(t, domain.Money(2700), r.Totals.CashTotal)
	require.Equal(t, domain.Money(1080), r.Totals.CardTotal)
}

func TestAggregateGroupsByNameAndSize(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	r := report.Aggregate(fixtureTxns(), start, end, now)

	require.Len(t, r.Lines, 2)
	tee := r.Lines[0]
	require.Equal(t, "Dirt Tee", tee.Name)
	require.Equal(t, "M", tee.Size)
	require.Equal(t, 3, tee.Qty)
	require.Equal(t, domain.Money(3000), tee.Revenue)
	require.Equal(t, domain.Money(1200), tee.Cost)
	require.Equal(t, domain.Money(1800), tee.Profit)

	sticker := r.Lines[1]
	require.Equal(t, "Sticker", sticker.Name)
	require.Equal(t, domain.Money(500), sticker.Revenue)
}

func TestAggregateSortsByRevenueDescending(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	r := report.Aggregate(fixtureTxns(), start, end, now)

	require.Len(t, r.Lines, 3)
	for i := 1; i < len(r.Lines); i++ {
		require.GreaterOrEqual(t, r.Lines[i-1].Revenue, r.Lines[i].Revenue)
	}
	require.Equal(t, r.Lines[:3], r.TopSellers)
}

func TestAggregateTopSellersCappedAtFive(t *testing.T) {
	var txns []domain.Transaction
	for i := 0; i < 8; i++ {
		txns = append(txns, domain.Transaction{
			Timestamp: now,
			Tender:    domain.TenderCard,
			Lines: []domain.LineItem{
				{Name: string(rune('a' + i)), Qty: 1, UnitPrice: domain.Money(100 * (i + 1))},
			},
		})
	}
	r := report.Aggregate(txns, now, now, now)
	require.Len(t, r.Lines, 8)
	require.Len(t, r.TopSellers, 5)
	require.Equal(t, "h", r.TopSellers[0].Name)
}

func TestAggregateRangeBoundariesInclusive(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		{ID: "first", Timestamp: report.StartOfDay(day), Total: 100, Tender: domain.TenderCard},
		{ID: "last", Timestamp: report.EndOfDay(day), Total: 200, Tender: domain.TenderCard},
		{ID: "after", Timestamp: report.EndOfDay(day).Add(time.Nanosecond), Total: 400, Tender: domain.TenderCard},
	}
	r := report.Aggregate(txns, day, day, now)
	require.Equal(t, domain.Money(300), r.Totals.Total)
}

func TestAggregateZeroBoundsFallBackToToday(t *testing.T) {
	txns := []domain.Transaction{
		{Timestamp: now.Add(-2 * time.Hour), Total: 500, Tender: domain.TenderCard},
		{Timestamp: now.AddDate(0, 0, -3), Total: 900, Tender: domain.TenderCard},
	}
	r := report.Aggregate(txns, time.Time{}, time.Time{}, now)
	require.Equal(t, domain.Money(500), r.Totals.Total)
	require.Equal(t, report.StartOfDay(now), r.Start)
	require.Equal(t, report.EndOfDay(now), r.End)
}

func TestAggregateIsPureAndIdempotent(t *testing.T) {
	txns := fixtureTxns()
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	first := report.Aggregate(txns, start, end, now)
	second := report.Aggregate(txns, start, end, now)
	require.Equal(t, first, second)
	require.Equal(t, fixtureTxns(), txns, "inputs are never mutated")
}

func TestPresetRange(t *testing.T) {
	start, end := report.PresetRange(report.PresetToday, now)
	require.Equal(t, report.StartOfDay(now), start)
	require.Equal(t, report.EndOfDay(now), end)

	start, end = report.PresetRange(report.PresetYesterday, now)
	require.Equal(t, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, report.EndOfDay(time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)), end)

	start, _ = report.PresetRange(report.PresetLast7, now)
	require.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), start)

	start, _ = report.PresetRange(report.PresetMonth, now)
	require.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), start)
}
