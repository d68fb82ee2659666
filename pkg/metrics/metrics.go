// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса.
// Все методы безопасны для nil-получателя: при выключенных метриках передается nil.
type Metrics struct {
	service string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration   *prometheus.HistogramVec
	dbOpenConnections *prometheus.GaugeVec
	dbInUse           *prometheus.GaugeVec
	dbIdle            *prometheus.GaugeVec

	slotsResolvedTotal    *prometheus.CounterVec
	cancellationFeesTotal *prometheus.CounterVec
	cacheRequestsTotal    *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в указанном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		service: serviceName,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation", "status"}),
		dbOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of established database connections",
		}, []string{"service"}),
		dbInUse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of database connections currently in use",
		}, []string{"service"}),
		dbIdle: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle database connections",
		}, []string{"service"}),
		slotsResolvedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scheduling_slots_resolved_total",
			Help: "Slot resolutions by the rule that produced the result",
		}, []string{"service", "source"}),
		cancellationFeesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scheduling_cancellation_fees_total",
			Help: "Cancellation fee evaluations by outcome",
		}, []string{"service", "outcome"}),
		cacheRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scheduling_cache_requests_total",
			Help: "Business settings cache lookups by result",
		}, []string{"service", "result"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbOpenConnections,
		m.dbInUse,
		m.dbIdle,
		m.slotsResolvedTotal,
		m.cancellationFeesTotal,
		m.cacheRequestsTotal,
	)

	return m
}

// ObserveHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(m.service, method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.service, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery учитывает выполненный SQL запрос
func (m *Metrics) ObserveDBQuery(operation string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.dbQueryDuration.WithLabelValues(m.service, operation, status).Observe(duration.Seconds())
}

// SetDBPoolStats обновляет метрики пула соединений
func (m *Metrics) SetDBPoolStats(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.dbOpenConnections.WithLabelValues(m.service).Set(float64(open))
	m.dbInUse.WithLabelValues(m.service).Set(float64(inUse))
	m.dbIdle.WithLabelValues(m.service).Set(float64(idle))
}

// IncSlotsResolved учитывает расчет слотов; source - правило, которое дало результат
func (m *Metrics) IncSlotsResolved(source string) {
	if m == nil {
		return
	}
	m.slotsResolvedTotal.WithLabelValues(m.service, source).Inc()
}

// IncCancellationFee учитывает расчет платы за отмену (charged, free)
func (m *Metrics) IncCancellationFee(outcome string) {
	if m == nil {
		return
	}
	m.cancellationFeesTotal.WithLabelValues(m.service, outcome).Inc()
}

// IncCache учитывает обращение к кэшу настроек (hit, miss, error)
func (m *Metrics) IncCache(result string) {
	if m == nil {
		return
	}
	m.cacheRequestsTotal.WithLabelValues(m.service, result).Inc()
}
