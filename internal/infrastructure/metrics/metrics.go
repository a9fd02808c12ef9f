package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Ledger metrics
	TransactionsRecorded *prometheus.CounterVec
	TransactionTotal     *prometheus.HistogramVec
	DiscountsCapped      prometheus.Counter
	LedgerBalance        prometheus.Gauge

	// User metrics
	UsersCreated          prometheus.Counter
	UserMutations         *prometheus.CounterVec
	UserMutationsRejected *prometheus.CounterVec

	// Authentication metrics
	AuthAttempts *prometheus.CounterVec

	// Policy metrics
	PolicyDenials *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		TransactionsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "koperasi_transactions_recorded_total",
				Help: "Total number of transactions recorded by kind",
			},
			[]string{"kind"},
		),
		TransactionTotal: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "koperasi_transaction_total_amount",
				Help:    "Post-discount transaction totals",
				Buckets: []float64{1000, 10000, 100000, 1000000, 10000000, 100000000},
			},
			[]string{"kind"},
		),
		DiscountsCapped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "koperasi_discounts_capped_total",
			Help: "Total number of discount requests clamped to a role cap",
		}),
		LedgerBalance: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "koperasi_ledger_balance",
			Help: "Current ledger balance (outbound minus inbound)",
		}),

		UsersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "koperasi_users_created_total",
			Help: "Total number of user accounts created",
		}),
		UserMutations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "koperasi_user_mutations_total",
				Help: "Total user mutations by action",
			},
			[]string{"action"},
		),
		UserMutationsRejected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "koperasi_user_mutations_rejected_total",
				Help: "Total user mutations rejected by reason",
			},
			[]string{"reason"},
		),

		AuthAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "koperasi_auth_attempts_total",
				Help: "Total authentication attempts by status",
			},
			[]string{"status"},
		),

		PolicyDenials: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "koperasi_policy_denials_total",
				Help: "Total actions denied by role policy",
			},
			[]string{"action"},
		),
	}
}
