package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	customCounters   = make(map[string]*prometheus.CounterVec)
	customGauges     = make(map[string]*prometheus.GaugeVec)
	customHistograms = make(map[string]*prometheus.HistogramVec)
	customMu         sync.RWMutex
)

var (
	// Request metrics
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "injectwaf_requests_total",
			Help: "Total number of HTTP requests processed by injectwaf",
		},
		[]string{"method", "path"},
	)

	RequestsBlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "injectwaf_requests_blocked_total",
			Help: "Total number of requests blocked by injectwaf",
		},
		[]string{"kind", "vector"},
	)

	RequestsAllowed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "injectwaf_requests_allowed_total",
			Help: "Total number of requests allowed through injectwaf",
		},
	)

	// Detection engine metrics
	ScanDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "injectwaf_scan_duration_seconds",
			Help:    "Time spent scanning a request across all input vectors",
			Buckets: prometheus.ExponentialBuckets(0.000001, 4, 10),
		},
		[]string{"verdict"},
	)

	SQLiDetections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "injectwaf_sqli_detections_total",
			Help: "SQL injection payloads detected, by input vector",
		},
		[]string{"vector"},
	)

	XSSDetections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "injectwaf_xss_detections_total",
			Help: "XSS payloads detected, by input vector",
		},
		[]string{"vector"},
	)

	// Header validation metrics
	HeaderValidationFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "injectwaf_header_validation_failed_total",
			Help: "Total number of requests with invalid headers",
		},
		[]string{"reason"},
	)

	// Exemption metrics
	ExemptedRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "injectwaf_exempted_requests_total",
			Help: "Requests that bypassed scanning via a valid exemption token",
		},
		[]string{"subject"},
	)

	ExemptionRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "injectwaf_exemption_rejected_total",
			Help: "Exemption tokens that failed validation",
		},
	)

	// Body decompression metrics
	BodiesDecompressed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "injectwaf_bodies_decompressed_total",
			Help: "Request bodies decompressed before scanning, by encoding",
		},
		[]string{"encoding"},
	)

	// Configuration reload metrics
	ConfigReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "injectwaf_config_reloads_total",
			Help: "Total number of configuration reloads by type",
		},
		[]string{"config_type"},
	)

	OverlayFingerprints = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "injectwaf_overlay_fingerprints",
			Help: "Number of operator-supplied fingerprints currently loaded",
		},
	)
)

func RegisterCustomCounter(name, help string, labels []string) *prometheus.CounterVec {
	customMu.Lock()
	defer customMu.Unlock()

	if counter, exists := customCounters[name]; exists {
		return counter
	}

	counter := promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: name,
			Help: help,
		},
		labels,
	)

	customCounters[name] = counter
	return counter
}

func RegisterCustomGauge(name, help string, labels []string) *prometheus.GaugeVec {
	customMu.Lock()
	defer customMu.Unlock()

	if gauge, exists := customGauges[name]; exists {
		return gauge
	}

	gauge := promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: name,
			Help: help,
		},
		labels,
	)

	customGauges[name] = gauge
	return gauge
}

func RegisterCustomHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	customMu.Lock()
	defer customMu.Unlock()

	if histogram, exists := customHistograms[name]; exists {
		return histogram
	}

	if len(buckets) == 0 {
		buckets = prometheus.DefBuckets
	}

	histogram := promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: buckets,
		},
		labels,
	)

	customHistograms[name] = histogram
	return histogram
}

func GetCustomCounter(name string) (*prometheus.CounterVec, bool) {
	customMu.RLock()
	defer customMu.RUnlock()
	counter, exists := customCounters[name]
	return counter, exists
}

func GetCustomGauge(name string) (*prometheus.GaugeVec, bool) {
	customMu.RLock()
	defer customMu.RUnlock()
	gauge, exists := customGauges[name]
	return gauge, exists
}

func GetCustomHistogram(name string) (*prometheus.HistogramVec, bool) {
	customMu.RLock()
	defer customMu.RUnlock()
	histogram, exists := customHistograms[name]
	return histogram, exists
}
