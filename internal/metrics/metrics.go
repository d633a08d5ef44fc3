package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	AuthorizationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prepaid_authorizations_total",
			Help: "Total authorization requests by decision",
		},
		[]string{"status"},
	)

	LoadedAmounts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "prepaid_loaded_amounts",
			Help:    "Distribution of amounts loaded onto cards",
			Buckets: prometheus.LinearBuckets(0, 50, 20),
		},
		[]string{"currency"},
	)

	CapturedAmounts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "prepaid_captured_amounts",
			Help:    "Distribution of captured amounts",
			Buckets: prometheus.LinearBuckets(0, 50, 20),
		},
		[]string{"currency"},
	)

	ReversalsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prepaid_reversals_total",
			Help: "Total reversals by kind",
		},
		[]string{"kind"},
	)

	RefundsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "prepaid_refunds_total",
			Help: "Total refunds received by cards",
		},
	)

	PayoutFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "prepaid_payout_failures_total",
			Help: "Merchant payout notifications that failed",
		},
	)

	JournalFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "prepaid_journal_failures_total",
			Help: "Ledger entries that could not be written to the journal",
		},
	)
)

var registerOnce sync.Once

// RegisterMetrics registers the collectors with the default registry. Safe
// to call more than once.
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			AuthorizationsTotal,
			LoadedAmounts,
			CapturedAmounts,
			ReversalsTotal,
			RefundsTotal,
			PayoutFailuresTotal,
			JournalFailuresTotal,
		)
	})
}
