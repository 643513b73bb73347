// Package metrics собирает Prometheus-метрики сервиса.
// Все методы безопасны для nil-получателя: при выключенных метриках передаётся nil.
package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	WizardTransitions   *prometheus.CounterVec
	Submissions         *prometheus.CounterVec
	ActiveSessions      prometheus.Gauge
	Estimates           *prometheus.HistogramVec
	DBQueryDuration     *prometheus.HistogramVec
	DBConnections       *prometheus.GaugeVec
}

// New создает метрики и регистрирует их в реестре по умолчанию
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в переданном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		WizardTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_wizard_transitions_total",
			Help:        "Booking wizard actions by result",
			ConstLabels: labels,
		}, []string{"action", "result"}),

		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "form_submissions_total",
			Help:        "Form submissions by form, backend and result",
			ConstLabels: labels,
		}, []string{"form", "backend", "result"}),

		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "booking_sessions_active",
			Help:        "Number of open booking wizard sessions",
			ConstLabels: labels,
		}),

		Estimates: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "price_estimate_amount",
			Help:        "Distribution of calculated price estimates",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(5000, 2, 10),
		}, []string{"complexity", "material"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation", "status"}),

		DBConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections",
			Help:        "Database connection pool state",
			ConstLabels: labels,
		}, []string{"state"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.WizardTransitions,
		m.Submissions,
		m.ActiveSessions,
		m.Estimates,
		m.DBQueryDuration,
		m.DBConnections,
	)

	return m
}

// ObserveHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveTransition учитывает действие мастера записи
func (m *Metrics) ObserveTransition(action, result string) {
	if m == nil {
		return
	}
	m.WizardTransitions.WithLabelValues(action, result).Inc()
}

// ObserveSubmission учитывает отправку формы
func (m *Metrics) ObserveSubmission(form, backend, result string) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(form, backend, result).Inc()
}

// SetActiveSessions выставляет число открытых сессий
func (m *Metrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.ActiveSessions.Set(float64(n))
}

// ObserveEstimate учитывает рассчитанную стоимость
func (m *Metrics) ObserveEstimate(complexity, material string, total int64) {
	if m == nil {
		return
	}
	m.Estimates.WithLabelValues(complexity, material).Observe(float64(total))
}

// ObserveDBQuery учитывает выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil && err != sql.ErrNoRows {
		status = "error"
	}
	m.DBQueryDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

// SetDBPoolStats выставляет состояние пула соединений
func (m *Metrics) SetDBPoolStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.DBConnections.WithLabelValues("open").Set(float64(stats.OpenConnections))
	m.DBConnections.WithLabelValues("in_use").Set(float64(stats.InUse))
	m.DBConnections.WithLabelValues("idle").Set(float64(stats.Idle))
	m.DBConnections.WithLabelValues("max_open").Set(float64(stats.MaxOpenConnections))
}
