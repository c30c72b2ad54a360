package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Quote and config load outcomes
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"

	SourceCache    = "cache"
	SourceDatabase = "database"
	SourceDefault  = "default"
)

// Metrics holds the shipping service collectors.
// All Record methods are safe to call on a nil *Metrics.
type Metrics struct {
	serviceName string
	registry    *prometheus.Registry

	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	QuotesTotal      *prometheus.CounterVec
	QuoteDistanceKm  *prometheus.HistogramVec
	ConfigLoadsTotal *prometheus.CounterVec
	EventsPublished  *prometheus.CounterVec
	EventsConsumed   *prometheus.CounterVec
	MethodsConfirmed *prometheus.CounterVec

	CircuitBreakerState *prometheus.GaugeVec
}

// Config holds metrics configuration
type Config struct {
	ServiceName string
	Namespace   string
}

// DefaultConfig returns the default metrics configuration
func DefaultConfig(serviceName string) *Config {
	return &Config{
		ServiceName: serviceName,
		Namespace:   "pawhaven",
	}
}

// New creates the collectors on a private registry
func New(config *Config) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		serviceName: config.ServiceName,
		registry:    registry,
	}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"service", "method", "path"},
	)

	m.HTTPRequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Name:        "http_requests_in_flight",
			Help:        "Number of HTTP requests currently being processed",
			ConstLabels: prometheus.Labels{"service": config.ServiceName},
		},
	)

	m.QuotesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "shipping_quotes_total",
			Help:      "Total number of shipping quotes computed, by outcome and error kind",
		},
		[]string{"service", "mode", "outcome", "error_kind"},
	)

	m.QuoteDistanceKm = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Name:      "shipping_quote_distance_km",
			Help:      "Great circle distance of priced routes",
			Buckets:   []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000, 20000},
		},
		[]string{"service", "mode"},
	)

	m.ConfigLoadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "pricing_config_loads_total",
			Help:      "Total number of pricing config loads by source",
		},
		[]string{"service", "mode", "source", "outcome"},
	)

	m.EventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "nats_events_published_total",
			Help:      "Total number of NATS events published",
		},
		[]string{"service", "subject", "status"},
	)

	m.EventsConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "nats_events_consumed_total",
			Help:      "Total number of NATS events consumed",
		},
		[]string{"service", "subject", "status"},
	)

	m.MethodsConfirmed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "shipping_methods_confirmed_total",
			Help:      "Total number of shipping methods attached to carts",
		},
		[]string{"service", "mode", "tier"},
	)

	m.CircuitBreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: config.Namespace,
			Name:      "circuit_breaker_state",
			Help:      "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"service", "name"},
	)

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
		m.QuotesTotal,
		m.QuoteDistanceKm,
		m.ConfigLoadsTotal,
		m.EventsPublished,
		m.EventsConsumed,
		m.MethodsConfirmed,
		m.CircuitBreakerState,
	)

	return m
}

// Handler returns an HTTP handler for the metrics endpoint
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Registry returns the prometheus registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordHTTPRequest records a served HTTP request
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// IncrementHTTPRequestsInFlight marks a request as started
func (m *Metrics) IncrementHTTPRequestsInFlight() {
	if m == nil {
		return
	}
	m.HTTPRequestsInFlight.Inc()
}

// DecrementHTTPRequestsInFlight marks a request as finished
func (m *Metrics) DecrementHTTPRequestsInFlight() {
	if m == nil {
		return
	}
	m.HTTPRequestsInFlight.Dec()
}

// RecordQuote records a priced route. errorKind is empty on success.
func (m *Metrics) RecordQuote(mode, errorKind string, distanceKm float64) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if errorKind != "" {
		outcome = OutcomeError
	}
	m.QuotesTotal.WithLabelValues(m.serviceName, mode, outcome, errorKind).Inc()
	if outcome == OutcomeSuccess {
		m.QuoteDistanceKm.WithLabelValues(m.serviceName, mode).Observe(distanceKm)
	}
}

// RecordConfigLoad records where a pricing config came from
func (m *Metrics) RecordConfigLoad(mode, source string, success bool) {
	if m == nil {
		return
	}
	m.ConfigLoadsTotal.WithLabelValues(m.serviceName, mode, source, outcome(success)).Inc()
}

// RecordEventPublished records a NATS publish
func (m *Metrics) RecordEventPublished(subject string, success bool) {
	if m == nil {
		return
	}
	m.EventsPublished.WithLabelValues(m.serviceName, subject, outcome(success)).Inc()
}

// RecordEventConsumed records a handled NATS message
func (m *Metrics) RecordEventConsumed(subject string, success bool) {
	if m == nil {
		return
	}
	m.EventsConsumed.WithLabelValues(m.serviceName, subject, outcome(success)).Inc()
}

// RecordMethodConfirmed records a shipping method attached to a cart
func (m *Metrics) RecordMethodConfirmed(mode, tier string) {
	if m == nil {
		return
	}
	m.MethodsConfirmed.WithLabelValues(m.serviceName, mode, tier).Inc()
}

// SetCircuitBreakerState records the current breaker state
func (m *Metrics) SetCircuitBreakerState(name string, state int) {
	if m == nil {
		return
	}
	m.CircuitBreakerState.WithLabelValues(m.serviceName, name).Set(float64(state))
}

func outcome(success bool) string {
	if success {
		return OutcomeSuccess
	}
	return OutcomeError
}
