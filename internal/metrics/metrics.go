package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FramesRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nimbus_frames_rendered_total",
			Help: "Total frames rendered, by scene",
		},
		[]string{"scene"},
	)

	FrameDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "nimbus_frame_duration_seconds",
			Help:    "Time spent composing and flushing one frame",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 10),
		},
	)

	FetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nimbus_fetches_total",
			Help: "Total weather fetches",
		},
		[]string{"source", "status"},
	)

	FetchLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nimbus_fetch_latency_seconds",
			Help:    "Weather fetch latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	RefreshesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nimbus_refreshes_total",
			Help: "Total user-requested refreshes",
		},
	)
)
