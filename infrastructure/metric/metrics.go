package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collectors are registered on a module-owned registry; exposing it is the
// embedding application's concern, consistent with the in-process boundary.
var Registry = prometheus.NewRegistry()

var (
	CheckoutStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: "checkout",
		Name:      "started_total",
		Help:      "Number of checkout sessions entered.",
	})

	CheckoutSucceeded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: "checkout",
		Name:      "succeeded_total",
		Help:      "Number of checkout sessions that reached the terminal state.",
	})

	CheckoutRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: "checkout",
		Name:      "rejected_total",
		Help:      "Checkout actions refused, partitioned by reason.",
	}, []string{"reason"})

	CheckoutAbandoned = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: "checkout",
		Name:      "abandoned_total",
		Help:      "Checkout sessions closed before reaching the terminal state.",
	})

	TransactionsMaterialized = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: "settlement",
		Name:      "transactions_total",
		Help:      "Settlement transactions materialized.",
	})

	SettledAmount = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: "settlement",
		Name:      "amount_total",
		Help:      "Gross settled amount across all checkouts.",
	})
)

func init() {
	Registry.MustRegister(CheckoutStarted, CheckoutSucceeded, CheckoutRejected,
		CheckoutAbandoned, TransactionsMaterialized, SettledAmount)
}
