package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the counters and histograms for tool invocations and roster loads.
type Metrics struct {
	ToolCalls    *prometheus.CounterVec
	ToolDuration *prometheus.HistogramVec
	RosterLoads  *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance registered on reg.
// Every roster load is counted under status "ok" or "unavailable"; every
// tool call is counted and timed by tool name.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		ToolCalls: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "employee_mcp_tool_calls_total",
			Help: "Total number of tool invocations handled.",
		}, []string{"tool"}),
		ToolDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "employee_mcp_tool_duration_seconds",
			Help:    "Time spent answering a tool invocation, roster load included.",
			Buckets: prometheus.DefBuckets,
		}, []string{"tool"}),
		RosterLoads: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "employee_mcp_roster_loads_total",
			Help: "Total roster file loads by outcome.",
		}, []string{"status"}), // status: 'ok', 'unavailable'
	}

	metrics.RosterLoads.WithLabelValues("ok")
	metrics.RosterLoads.WithLabelValues("unavailable")

	return metrics
}
