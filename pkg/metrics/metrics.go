package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	KeysGenerated     *prometheus.CounterVec
	KeysRevealed      prometheus.Counter
	KeysRevoked       prometheus.Counter
	QuotaRejections   *prometheus.CounterVec
	UsersRegistered   prometheus.Counter
	LoginAttempts     *prometheus.CounterVec
	SubscriptionsSold *prometheus.CounterVec
	ChatMessages      *prometheus.CounterVec

	// Cache metrics
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec

	// Upstream matching API metrics
	UpstreamRequestDuration *prometheus.HistogramVec
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		KeysGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_keys_generated_total",
				Help: "Total number of API keys generated",
			},
			[]string{"tier"},
		),
		KeysRevealed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "api_keys_revealed_total",
			Help: "Total number of one-time key reveals",
		}),
		KeysRevoked: promauto.NewCounter(prometheus.CounterOpts{
			Name: "api_keys_revoked_total",
			Help: "Total number of API keys revoked",
		}),
		QuotaRejections: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_key_quota_rejections_total",
				Help: "Key generation attempts rejected by the plan quota",
			},
			[]string{"tier"},
		),
		UsersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "users_registered_total",
			Help: "Total number of users registered",
		}),
		LoginAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "login_attempts_total",
				Help: "Total number of login attempts",
			},
			[]string{"status"}, // success, failed
		),
		SubscriptionsSold: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "subscriptions_sold_total",
				Help: "Total number of subscriptions sold",
			},
			[]string{"tier"}, // free, pro, enterprise
		),
		ChatMessages: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chat_messages_total",
				Help: "Docs chatbot messages by resolved intent",
			},
			[]string{"intent"},
		),

		CacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"cache_type"},
		),
		CacheMisses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"cache_type"},
		),

		UpstreamRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "upstream_request_duration_seconds",
				Help:    "Matching API request duration in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "status"},
		),
	}
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // route pattern, not the raw URL

			err := next(c)

			status := strconv.Itoa(c.Response().Status)
			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, status).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, status).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// RecordKeyGenerated increments the generated-keys counter for a tier
func (m *Metrics) RecordKeyGenerated(tier string) {
	m.KeysGenerated.WithLabelValues(tier).Inc()
}

// RecordKeyRevealed increments the revealed-keys counter
func (m *Metrics) RecordKeyRevealed() {
	m.KeysRevealed.Inc()
}

// RecordKeyRevoked increments the revoked-keys counter
func (m *Metrics) RecordKeyRevoked() {
	m.KeysRevoked.Inc()
}

// RecordQuotaRejection increments the quota-rejection counter for a tier
func (m *Metrics) RecordQuotaRejection(tier string) {
	m.QuotaRejections.WithLabelValues(tier).Inc()
}

// RecordUserRegistered increments the registered-users counter
func (m *Metrics) RecordUserRegistered() {
	m.UsersRegistered.Inc()
}

// RecordLoginAttempt increments the login-attempts counter
func (m *Metrics) RecordLoginAttempt(success bool) {
	status := "failed"
	if success {
		status = "success"
	}
	m.LoginAttempts.WithLabelValues(status).Inc()
}

// RecordSubscriptionSold increments the subscriptions counter
func (m *Metrics) RecordSubscriptionSold(tier string) {
	m.SubscriptionsSold.WithLabelValues(tier).Inc()
}

// RecordChatMessage increments the chatbot counter for an intent
func (m *Metrics) RecordChatMessage(intent string) {
	m.ChatMessages.WithLabelValues(intent).Inc()
}

// RecordCacheHit increments the cache-hits counter
func (m *Metrics) RecordCacheHit(cacheType string) {
	m.CacheHits.WithLabelValues(cacheType).Inc()
}

// RecordCacheMiss increments the cache-misses counter
func (m *Metrics) RecordCacheMiss(cacheType string) {
	m.CacheMisses.WithLabelValues(cacheType).Inc()
}

// RecordUpstreamRequest records a matching API call's duration
func (m *Metrics) RecordUpstreamRequest(endpoint string, status int, duration time.Duration) {
	m.UpstreamRequestDuration.WithLabelValues(endpoint, strconv.Itoa(status)).Observe(duration.Seconds())
}
