package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	serviceName string

	// HTTP метрики
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Метрики запросов к БД
	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec

	// Метрики connection pool
	DBConnectionsOpen  *prometheus.GaugeVec
	DBConnectionsInUse *prometheus.GaugeVec
	DBConnectionsIdle  *prometheus.GaugeVec

	// Метрики кэша
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec
}

// New создает и регистрирует метрики в дефолтном registry
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		DBQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database queries",
		}, []string{"service", "operation", "status"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"service", "operation"}),

		DBConnectionsOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_open",
			Help: "Number of open database connections",
		}, []string{"service"}),

		DBConnectionsInUse: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_in_use",
			Help: "Number of database connections in use",
		}, []string{"service"}),

		DBConnectionsIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		}, []string{"service"}),

		CacheHitsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		}, []string{"service", "cache"}),

		CacheMissesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		}, []string{"service", "cache"}),
	}
}

// ServiceName возвращает имя сервиса, с которым зарегистрированы метрики
func (m *Metrics) ServiceName() string {
	return m.serviceName
}

// ObserveDBQuery записывает результат выполнения запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, seconds float64, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.DBQueriesTotal.WithLabelValues(m.serviceName, operation, status).Inc()
	m.DBQueryDuration.WithLabelValues(m.serviceName, operation).Observe(seconds)
}

// SetDBPoolStats записывает состояние connection pool
func (m *Metrics) SetDBPoolStats(open, inUse, idle int) {
	m.DBConnectionsOpen.WithLabelValues(m.serviceName).Set(float64(open))
	m.DBConnectionsInUse.WithLabelValues(m.serviceName).Set(float64(inUse))
	m.DBConnectionsIdle.WithLabelValues(m.serviceName).Set(float64(idle))
}

// CacheHit записывает попадание в кэш
func (m *Metrics) CacheHit(cache string) {
	m.CacheHitsTotal.WithLabelValues(m.serviceName, cache).Inc()
}

// CacheMiss записывает промах кэша
func (m *Metrics) CacheMiss(cache string) {
	m.CacheMissesTotal.WithLabelValues(m.serviceName, cache).Inc()
}
