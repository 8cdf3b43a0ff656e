package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Event metrics
	EventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "evplot_events_total",
			Help: "Total accumulated events per kind",
		},
		[]string{"kind"},
	)
	LinesIgnoredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "evplot_lines_ignored_total",
			Help: "Total lines dropped for having an untracked kind",
		},
	)
	LinesFilteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "evplot_lines_filtered_total",
			Help: "Total lines dropped by the filter expression",
		},
	)
	ParseErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "evplot_parse_errors_total",
			Help: "Total malformed lines seen in watch mode",
		},
	)

	// Render metrics
	RendersTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "evplot_renders_total",
			Help: "Total chart renders",
		},
	)
	RenderErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "evplot_render_errors_total",
			Help: "Total failed chart renders",
		},
	)

	// Series metrics
	TrackedKinds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "evplot_tracked_kinds",
			Help: "Number of kinds with an active series",
		},
	)
)
