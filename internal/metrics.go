package internal

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for TrackUpstream.
const (
	UpstreamSuccess        = "success"
	UpstreamTransportError = "transport_error"
	UpstreamHTTPError      = "http_error"
	UpstreamDecodeError    = "decode_error"
)

// Result labels for TrackCache.
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logbook_http_requests_total",
			Help: "HTTP requests served, by path and status",
		},
		[]string{"path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "logbook_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)

	upstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logbook_upstream_requests_total",
			Help: "Upstream API requests, by API, endpoint and outcome",
		},
		[]string{"api", "endpoint", "outcome"},
	)

	upstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "logbook_upstream_request_duration_seconds",
			Help:    "Upstream API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"api", "endpoint"},
	)

	rowsShapedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logbook_rows_shaped_total",
			Help: "Rows shaped, by pipeline",
		},
		[]string{"pipeline"},
	)

	cacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logbook_cache_requests_total",
			Help: "Cache lookups, by result",
		},
		[]string{"result"},
	)

	exportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logbook_exports_total",
			Help: "Rendered table exports, by format",
		},
		[]string{"format"},
	)
)

func ObserveHTTPRequest(path string, status int, d time.Duration) {
	httpRequestsTotal.WithLabelValues(path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(path).Observe(d.Seconds())
}

func TrackUpstream(api, endpoint, outcome string, d time.Duration) {
	upstreamRequestsTotal.WithLabelValues(api, endpoint, outcome).Inc()
	upstreamRequestDuration.WithLabelValues(api, endpoint).Observe(d.Seconds())
}

func AddRowsShaped(pipeline string, n int) {
	if n <= 0 {
		return
	}
	rowsShapedTotal.WithLabelValues(pipeline).Add(float64(n))
}

func TrackCache(result string) {
	cacheRequestsTotal.WithLabelValues(result).Inc()
}

func TrackExport(format string) {
	exportsTotal.WithLabelValues(format).Inc()
}
