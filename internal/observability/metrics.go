package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Price fetch outcomes
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Metrics holds all Prometheus metrics of the Zakat backend.
// Every method is safe to call on a nil *Metrics.
type Metrics struct {
	// Registry is the Prometheus registry that owns these metrics.
	// Exposed so the /metrics endpoint can use it.
	Registry *prometheus.Registry

	calculations    *prometheus.CounterVec
	priceFetches    *prometheus.CounterVec
	ledgerMutations *prometheus.CounterVec
	rpcDuration     *prometheus.HistogramVec
}

// NewMetrics creates a dedicated Prometheus registry and registers all
// application metrics in it, so tests can build as many as they like.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		calculations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zakat_calculations_total",
				Help: "Total obligation calculations by resulting status.",
			},
			[]string{"status"},
		),
		priceFetches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zakat_price_fetch_total",
				Help: "Total live price fetches by metal and outcome.",
			},
			[]string{"metal", "outcome"},
		),
		ledgerMutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zakat_ledger_mutations_total",
				Help: "Total distribution ledger mutations by operation.",
			},
			[]string{"operation"},
		),
		rpcDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "zakat_rpc_duration_seconds",
				Help:    "Duration of gRPC calls by method.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}
}

// IncrCalculation counts one calculation with its status label.
func (m *Metrics) IncrCalculation(status string) {
	if m == nil {
		return
	}
	m.calculations.WithLabelValues(status).Inc()
}

// IncrPriceFetch counts one price fetch attempt.
func (m *Metrics) IncrPriceFetch(metal, outcome string) {
	if m == nil {
		return
	}
	m.priceFetches.WithLabelValues(metal, outcome).Inc()
}

// IncrLedgerMutation counts one ledger write (add, delete, clear).
func (m *Metrics) IncrLedgerMutation(operation string) {
	if m == nil {
		return
	}
	m.ledgerMutations.WithLabelValues(operation).Inc()
}

// RecordRPCDuration records the duration of a gRPC method.
func (m *Metrics) RecordRPCDuration(method string, d time.Duration) {
	if m == nil {
		return
	}
	m.rpcDuration.WithLabelValues(method).Observe(d.Seconds())
}
