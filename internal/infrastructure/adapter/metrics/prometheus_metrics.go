package metrics

import (
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/paybot/internal/domain/port/core"
	"github.com/prometheus/client_golang/prometheus"
)

// Config carries the constant labels attached to every series
type Config struct {
	ServiceName string
	Environment string
}

// PrometheusMetrics records reconciliation health signals as Prometheus series
type PrometheusMetrics struct {
	signals          *prometheus.CounterVec
	outcomes         *prometheus.CounterVec
	violations       *prometheus.CounterVec
	credits          *prometheus.CounterVec
	notifyFailures   prometheus.Counter
	processorLatency *prometheus.HistogramVec
	processorErrors  *prometheus.CounterVec
	invoicesPurged   prometheus.Counter
}

var _ coreport.Metrics = (*PrometheusMetrics)(nil)

// NewPrometheusMetrics creates the collectors and registers them with registerer.
// A nil registerer falls back to the default registry.
func NewPrometheusMetrics(registerer prometheus.Registerer, cfg Config) *PrometheusMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "paybot"
	}
	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = "unknown"
	}
	constLabels := prometheus.Labels{
		"service": serviceName,
		"env":     environment,
	}

	m := &PrometheusMetrics{
		signals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "paybot_payment_signals_total",
			Help:        "Payment signals received by source.",
			ConstLabels: constLabels,
		}, []string{"source"}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "paybot_reconciliation_outcomes_total",
			Help:        "Reconciliation outcomes by source.",
			ConstLabels: constLabels,
		}, []string{"source", "outcome"}),
		violations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "paybot_invariant_violations_total",
			Help:        "Payment events discarded because they contradicted tracked state.",
			ConstLabels: constLabels,
		}, []string{"reason"}),
		credits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "paybot_credits_applied_total",
			Help:        "Balance credited by paid invoices.",
			ConstLabels: constLabels,
		}, []string{"asset"}),
		notifyFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "paybot_notifications_failed_total",
			Help:        "Payment notifications that could not be delivered.",
			ConstLabels: constLabels,
		}),
		processorLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "paybot_processor_call_duration_seconds",
			Help:        "Payment processor API latency.",
			Buckets:     []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			ConstLabels: constLabels,
		}, []string{"method"}),
		processorErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "paybot_processor_call_errors_total",
			Help:        "Failed payment processor API calls.",
			ConstLabels: constLabels,
		}, []string{"method"}),
		invoicesPurged: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "paybot_invoices_purged_total",
			Help:        "Terminal invoices removed by the retention janitor.",
			ConstLabels: constLabels,
		}),
	}

	registerer.MustRegister(
		m.signals,
		m.outcomes,
		m.violations,
		m.credits,
		m.notifyFailures,
		m.processorLatency,
		m.processorErrors,
		m.invoicesPurged,
	)
	return m
}

func (m *PrometheusMetrics) SignalReceived(source string) {
	m.signals.WithLabelValues(source).Inc()
}

func (m *PrometheusMetrics) ReconciliationOutcome(source, outcome string) {
	m.outcomes.WithLabelValues(source, outcome).Inc()
}

func (m *PrometheusMetrics) InvariantViolation(reason string) {
	m.violations.WithLabelValues(reason).Inc()
}

func (m *PrometheusMetrics) CreditApplied(asset string, credits int64) {
	if credits <= 0 {
		return
	}
	m.credits.WithLabelValues(asset).Add(float64(credits))
}

func (m *PrometheusMetrics) NotificationFailed() {
	m.notifyFailures.Inc()
}

func (m *PrometheusMetrics) ProcessorCall(method string, elapsed time.Duration, err error) {
	m.processorLatency.WithLabelValues(method).Observe(elapsed.Seconds())
	if err != nil {
		m.processorErrors.WithLabelValues(method).Inc()
	}
}

func (m *PrometheusMetrics) InvoicesPurged(count int64) {
	if count <= 0 {
		return
	}
	m.invoicesPurged.Add(float64(count))
}
