package periodic

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var invocationsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "periodic_invocations_total",
	Help: "The total number of completed invocations of periodic task funcs",
}, []string{"task"})

var panicsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "periodic_panics_total",
	Help: "The total number of periodic task loops terminated abnormally",
}, []string{"task"})

var runningLoops = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "periodic_running_loops",
	Help: "The number of periodic task goroutines currently alive",
})

// metricLabel maps unnamed tasks onto a single label value.
func metricLabel(name string) string {

	if name == "" {
		return "unnamed"
	}
	return name
}
