package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector groups the prometheus instruments exposed on /metrics.
type Collector struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	ReportsGeneratedTotal prometheus.Counter
	StayIndoorAlertsTotal prometheus.Counter
	SpeechSynthesesTotal  prometheus.Counter
	UpstreamErrorsTotal   *prometheus.CounterVec
}

// NewCollector registers the application metrics under the given namespace.
func NewCollector(namespace string) *Collector {
	return &Collector{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by method, path, and status",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"path"},
		),
		ReportsGeneratedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reports_generated_total",
				Help:      "Weather advisory reports produced",
			},
		),
		StayIndoorAlertsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "stay_indoor_alerts_total",
				Help:      "Reports that raised the stay-indoor alert",
			},
		),
		SpeechSynthesesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "speech_syntheses_total",
				Help:      "Narrations converted to audio",
			},
		),
		UpstreamErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "upstream_errors_total",
				Help:      "Failures talking to upstream services",
			},
			[]string{"upstream"},
		),
	}
}
