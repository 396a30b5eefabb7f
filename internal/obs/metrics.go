package obs

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// SalesTotal counts completed sales by tender kind.
	SalesTotal *prometheus.CounterVec
	// SaleRevenueCents accumulates grand totals of completed sales in minor units.
	SaleRevenueCents prometheus.Counter
	// PersistFailuresTotal counts swallowed persistence failures by blob key.
	PersistFailuresTotal *prometheus.CounterVec
	// ItemsDeletedTotal counts catalog deletions, including ones later undone.
	ItemsDeletedTotal prometheus.Counter
)

// MustRegisterDomainMetrics initialises and registers the domain Prometheus
// collectors. Safe to call more than once; already-registered collectors are
// reused.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		SalesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_total",
			Help:      "Count of completed sales by tender.",
		}, []string{"tender"})
		SaleRevenueCents = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sale_revenue_cents_total",
			Help:      "Sum of sale grand totals in minor units.",
		})
		PersistFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persist_failures_total",
			Help:      "Count of swallowed persistence failures by blob key.",
		}, []string{"key"})
		ItemsDeletedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_deleted_total",
			Help:      "Count of catalog item deletions.",
		})

		mustRegisterCollector(reg, SalesTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				SalesTotal = v
			}
		})
		mustRegisterCollector(reg, SaleRevenueCents, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Counter); ok {
				SaleRevenueCents = v
			}
		})
		mustRegisterCollector(reg, PersistFailuresTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				PersistFailuresTotal = v
			}
		})
		mustRegisterCollector(reg, ItemsDeletedTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Counter); ok {
				ItemsDeletedTotal = v
			}
		})
	})
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register domain metric: %w", err))
	}
}
