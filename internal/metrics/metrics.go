// Package metrics collects and exposes Prometheus metrics for the HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records request-level metrics. Metrics are registered against
// the Registerer passed to NewCollector, so tests can use an isolated
// registry.
type Collector struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	gatherer prometheus.Gatherer
}

// NewCollector creates a Collector and registers its metrics with reg.
// When reg is also a Gatherer (a *prometheus.Registry is), ScrapeHandler
// serves from it; otherwise the default gatherer is used.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "blog_http_requests_total",
			Help: "Number of handled HTTP requests by status code and method.",
		}, []string{"code", "method"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "blog_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds by method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
	}

	reg.MustRegister(
		c.requests,
		c.latency,
	)

	if gatherer, ok := reg.(prometheus.Gatherer); ok {
		c.gatherer = gatherer
	} else {
		c.gatherer = prometheus.DefaultGatherer
	}

	return c
}

// RecordRequest counts one finished request.
func (c *Collector) RecordRequest(statusCode int, method string) {
	c.requests.WithLabelValues(strconv.Itoa(statusCode), method).Inc()
}

// RecordLatency observes the wall time of one finished request.
func (c *Collector) RecordLatency(method string, duration time.Duration) {
	c.latency.WithLabelValues(method).Observe(duration.Seconds())
}

// ScrapeHandler returns the Prometheus scrape endpoint for the registry
// this collector was registered with.
func (c *Collector) ScrapeHandler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}
