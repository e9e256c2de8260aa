package services

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	importsTotal            *prometheus.CounterVec
	importRowsTotal         *prometheus.CounterVec
	importDuration          prometheus.Histogram
	importErrors            *prometheus.CounterVec
	cashflowRequests        *prometheus.CounterVec
	cashflowDuration        prometheus.Histogram
	transactionsCreated     *prometheus.CounterVec
	reimbursementTransitions *prometheus.CounterVec
	allowancesGranted       prometheus.Counter
	httpRequests            *prometheus.CounterVec
	httpDuration            *prometheus.HistogramVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		importsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statement_imports_total",
				Help: "Total number of bank statement imports",
			},
			[]string{"source"},
		),
		importRowsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statement_import_rows_total",
				Help: "Imported and skipped rows per statement source",
			},
			[]string{"source", "outcome"},
		),
		importDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "statement_import_duration_milliseconds",
				Help:    "Statement import duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		importErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statement_import_errors_total",
				Help: "Failed statement imports by reason",
			},
			[]string{"source", "reason"},
		),
		cashflowRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashflow_requests_total",
				Help: "Cashflow chart requests by bucket granularity",
			},
			[]string{"bucket"},
		),
		cashflowDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "cashflow_generation_duration_milliseconds",
				Help:    "Cashflow series generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
		transactionsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_created_total",
				Help: "Created transactions by origin (manual, import, reimbursement)",
			},
			[]string{"origin"},
		),
		reimbursementTransitions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reimbursement_transitions_total",
				Help: "Reimbursement workflow transitions by target status",
			},
			[]string{"status"},
		),
		allowancesGranted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "allowances_granted_total",
				Help: "Total number of volunteer allowances granted",
			},
		),
		httpRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP requests by method, path and status",
			},
			[]string{"method", "path", "status"},
		),
		httpDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_milliseconds",
				Help:    "HTTP request duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"method", "path"},
		),
	}
}

func (m *PrometheusMetrics) RecordImport(source string, imported, skipped int, duration time.Duration) {
	m.importsTotal.WithLabelValues(source).Inc()
	m.importRowsTotal.WithLabelValues(source, "imported").Add(float64(imported))
	m.importRowsTotal.WithLabelValues(source, "skipped").Add(float64(skipped))
	m.importDuration.Observe(float64(duration.Milliseconds()))
	m.transactionsCreated.WithLabelValues("import").Add(float64(imported))
}

func (m *PrometheusMetrics) RecordImportError(source, reason string) {
	m.importErrors.WithLabelValues(source, reason).Inc()
}

func (m *PrometheusMetrics) RecordCashflowRequest(bucket string, duration time.Duration) {
	m.cashflowRequests.WithLabelValues(bucket).Inc()
	m.cashflowDuration.Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordTransactionCreated(origin string) {
	m.transactionsCreated.WithLabelValues(origin).Inc()
}

func (m *PrometheusMetrics) RecordReimbursementTransition(status string) {
	m.reimbursementTransitions.WithLabelValues(status).Inc()
}

func (m *PrometheusMetrics) RecordAllowanceGranted() {
	m.allowancesGranted.Inc()
}

func (m *PrometheusMetrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(float64(duration.Milliseconds()))
}

// NoopMetrics discards all measurements. Used in tests.
type NoopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface { return &NoopMetrics{} }

func (m *NoopMetrics) RecordImport(string, int, int, time.Duration)           {}
func (m *NoopMetrics) RecordImportError(string, string)                       {}
func (m *NoopMetrics) RecordCashflowRequest(string, time.Duration)            {}
func (m *NoopMetrics) RecordTransactionCreated(string)                        {}
func (m *NoopMetrics) RecordReimbursementTransition(string)                   {}
func (m *NoopMetrics) RecordAllowanceGranted()                                {}
func (m *NoopMetrics) RecordHTTPRequest(string, string, int, time.Duration)   {}
