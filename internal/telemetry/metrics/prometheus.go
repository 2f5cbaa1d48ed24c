package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const unknownVersion = "unknown"

// SetupPrometheus creates the dashboard registry: Go build info, runtime and
// process collectors, a <namespace>_build_info gauge labeled with the running
// version, and the given extra collectors.
func SetupPrometheus(namespace, versionInfo string, extraCollectors ...prometheus.Collector) *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if versionInfo == "" {
		versionInfo = unknownVersion
	}
	buildInfo := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   namespace,
		Name:        "build_info",
		Help:        "Running dashboard version, always 1",
		ConstLabels: prometheus.Labels{"version": versionInfo},
	})
	buildInfo.Set(1)
	promRegistry.MustRegister(buildInfo)

	for _, c := range extraCollectors {
		promRegistry.MustRegister(c)
	}

	return promRegistry
}
