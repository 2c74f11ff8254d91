package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics contém os coletores Prometheus da aplicação
type Metrics struct {
	registry *prometheus.Registry

	// HTTP
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Banco de dados
	DBProbeTotal *prometheus.CounterVec

	// Usuários
	UsersRegisteredTotal prometheus.Counter
	UserCacheLookups     *prometheus.CounterVec
}

// NewMetrics cria os coletores num registry próprio, o que permite
// instâncias independentes (ex.: em testes)
func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Current number of HTTP requests being processed",
			},
		),
		DBProbeTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "db_probe_total",
				Help:      "Database connectivity probes by result",
			},
			[]string{"result"},
		),
		UsersRegisteredTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "users_registered_total",
				Help:      "Total users registered",
			},
		),
		UserCacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "user_cache_lookups_total",
				Help:      "User cache lookups by result (hit, miss, error)",
			},
			[]string{"result"},
		),
	}
}

// Handler expõe os coletores no formato de exposição do Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveProbe registra o resultado de um teste de conexão
func (m *Metrics) ObserveProbe(ok bool) {
	if m == nil {
		return
	}
	result := "success"
	if !ok {
		result = "failure"
	}
	m.DBProbeTotal.WithLabelValues(result).Inc()
}

// ObserveCacheLookup registra hit, miss ou error
func (m *Metrics) ObserveCacheLookup(result string) {
	if m == nil {
		return
	}
	m.UserCacheLookups.WithLabelValues(result).Inc()
}

// ObserveRegistration incrementa o total de cadastros
func (m *Metrics) ObserveRegistration() {
	if m == nil {
		return
	}
	m.UsersRegisteredTotal.Inc()
}
