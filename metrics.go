package seqbench

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	containerArray  = "array"
	containerLinked = "linked"
	opWrite         = "write"
	opRead          = "read"
)

var (
	// FootprintGauge records the byte estimate of each container.
	FootprintGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "seqbench",
			Name:      "footprint_bytes",
			Help:      "Estimated memory footprint of a sequence container",
		}, []string{"container"})

	// AccessDurationGauge records the last measured loop time per container and operation.
	AccessDurationGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "seqbench",
			Name:      "access_duration_nanoseconds",
			Help:      "Elapsed time of a timed access loop",
		}, []string{"container", "op"})
)

// InitMetrics registers the benchmark metrics with registry.
func InitMetrics(registry *prometheus.Registry) {
	registry.MustRegister(FootprintGauge)
	registry.MustRegister(AccessDurationGauge)
}

func observeFootprint(fp Footprint) {
	FootprintGauge.WithLabelValues(containerArray).Set(float64(fp.Array))
	FootprintGauge.WithLabelValues(containerLinked).Set(float64(fp.Linked))
}

func observeTimings(res Result) {
	AccessDurationGauge.WithLabelValues(containerArray, opWrite).Set(float64(res.ArrayWrite))
	AccessDurationGauge.WithLabelValues(containerArray, opRead).Set(float64(res.ArrayRead))
	AccessDurationGauge.WithLabelValues(containerLinked, opWrite).Set(float64(res.LinkedWrite))
	AccessDurationGauge.WithLabelValues(containerLinked, opRead).Set(float64(res.LinkedRead))
}
