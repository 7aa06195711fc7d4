// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DashboardRendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seopulse_dashboard_renders_total",
			Help: "Dashboard page and fragment renders by selected tab",
		},
		[]string{"view", "tab"},
	)

	TabClampsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "seopulse_tab_clamps_total",
			Help: "Tab change requests whose index was out of range and got clamped",
		},
	)

	ChartRenderSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "seopulse_chart_render_seconds",
			Help:    "Time spent drawing a chart to SVG",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	ChartCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seopulse_chart_cache_total",
			Help: "Chart cache lookups by result (hit, miss)",
		},
		[]string{"result"},
	)

	ExportsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "seopulse_report_exports_total",
			Help: "CSV report exports served",
		},
	)
)
