package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds all Prometheus metrics for the club events API.
// A nil *Collector is valid and records nothing.
type Collector struct {
	httpRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
	refundEvents        *prometheus.CounterVec
	emailsSent          *prometheus.CounterVec
	rateLimited         *prometheus.CounterVec
	discountEvaluations *prometheus.CounterVec
	upstreamDuration    *prometheus.HistogramVec
}

// New creates a Collector registered with the default registry.
func New() *Collector {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates a Collector registered with reg.
func NewWithRegistry(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "club_events_http_requests_total",
				Help: "HTTP requests by method, route and status code",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "club_events_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
			},
			[]string{"method", "route"},
		),
		refundEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "club_events_refund_events_total",
				Help: "Refund requests and organizer decisions by outcome",
			},
			[]string{"action", "outcome"},
		),
		emailsSent: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "club_events_emails_total",
				Help: "Emails handed to the provider by outcome",
			},
			[]string{"outcome"},
		),
		rateLimited: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "club_events_rate_limited_total",
				Help: "Requests rejected by a rate limiter",
			},
			[]string{"limiter"},
		),
		discountEvaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "club_events_discount_evaluations_total",
				Help: "Discount evaluations by discount type and result",
			},
			[]string{"discount_type", "result"},
		),
		upstreamDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "club_events_upstream_request_duration_seconds",
				Help:    "Outbound HTTP call latency by method, path and status code",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"method", "path", "status"},
		),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.refundEvents,
		c.emailsSent,
		c.rateLimited,
		c.discountEvaluations,
		c.upstreamDuration,
	)
	return c
}

// ObserveRequest records one finished HTTP request.
func (c *Collector) ObserveRequest(method, route string, status int, d time.Duration) {
	if c == nil {
		return
	}
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// RefundEvent counts a refund action ("requested", "approved", "denied").
func (c *Collector) RefundEvent(action, outcome string) {
	if c == nil {
		return
	}
	c.refundEvents.WithLabelValues(action, outcome).Inc()
}

// EmailsSent adds n emails with the given outcome ("sent", "failed").
func (c *Collector) EmailsSent(outcome string, n int) {
	if c == nil || n <= 0 {
		return
	}
	c.emailsSent.WithLabelValues(outcome).Add(float64(n))
}

// RateLimited counts a rejected request.
func (c *Collector) RateLimited(limiter string) {
	if c == nil {
		return
	}
	c.rateLimited.WithLabelValues(limiter).Inc()
}

// DiscountEvaluated counts one discount evaluation.
func (c *Collector) DiscountEvaluated(discountType string, valid bool) {
	if c == nil {
		return
	}
	result := "invalid"
	if valid {
		result = "valid"
	}
	c.discountEvaluations.WithLabelValues(discountType, result).Inc()
}

// ObserveUpstream records one outbound HTTP call; status 0 means no answer.
func (c *Collector) ObserveUpstream(method, path string, status int, d time.Duration) {
	if c == nil {
		return
	}
	c.upstreamDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(d.Seconds())
}
