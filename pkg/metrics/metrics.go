package metrics

import "github.com/prometheus/client_golang/prometheus"

var KLinesProcessedMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tastream_klines_processed_total",
		Help: "number of klines fed into the indicator set",
	}, []string{"symbol"})

var IndicatorUpdatesMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tastream_indicator_updates_total",
		Help: "number of indicator updates",
	}, []string{"indicator"})

func init() {
	prometheus.MustRegister(
		KLinesProcessedMetrics,
		IndicatorUpdatesMetrics,
	)
}
