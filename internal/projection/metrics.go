package projection

import "github.com/prometheus/client_golang/prometheus"

var projectionsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "duewise_projections_total",
		Help: "How many event projections were calculated, partitioned by scope.",
	},
	[]string{"scope"},
)

var affordabilityChecksTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "duewise_affordability_checks_total",
		Help: "How many affordability checks were calculated, partitioned by verdict.",
	},
	[]string{"status"},
)

// Collectors returns the Prometheus metrics of the engine.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{projectionsTotal, affordabilityChecksTotal}
}
