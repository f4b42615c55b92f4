package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/harukisawai/godchecker/config"
	coremetrics "github.com/harukisawai/godchecker/core/metrics"
)

// PromSink records run statistics as Prometheus metrics. The pipeline is a
// scheduled batch with no scrape surface, so the private registry is pushed
// to a Pushgateway when the run summary is recorded.
type PromSink struct {
	registry  *prometheus.Registry
	items     *prometheus.GaugeVec
	failed    *prometheus.GaugeVec
	output    prometheus.Gauge
	collected prometheus.Gauge
	failures  prometheus.Gauge
	duration  prometheus.Gauge
	pusher    *push.Pusher
}

// NewPromSink builds the sink. With an empty Pushgateway URL the metrics
// are still registered, which keeps the sink usable in tests.
func NewPromSink(cfg config.MetricsConfig) (*PromSink, error) {
	reg := prometheus.NewRegistry()
	s := &PromSink{
		registry: reg,
		items: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "feed_collector_items",
			Help: "Items produced by each collector in the last run",
		}, []string{"source"}),
		failed: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "feed_collector_failed",
			Help: "Whether the collector failed in the last run (0 or 1)",
		}, []string{"source"}),
		output: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "feed_items_output",
			Help: "Items written to the feed artifact",
		}),
		collected: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "feed_items_collected",
			Help: "Items collected before merge and windowing",
		}),
		failures: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "feed_collectors_failed",
			Help: "Collectors that contributed zero items due to a failure",
		}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "feed_run_duration_seconds",
			Help: "Wall-clock duration of the pipeline run",
		}),
	}
	for _, c := range []prometheus.Collector{s.items, s.failed, s.output, s.collected, s.failures, s.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	if cfg.PushGatewayURL != "" {
		job := cfg.JobName
		if job == "" {
			job = "godchecker"
		}
		s.pusher = push.New(cfg.PushGatewayURL, job).Gatherer(reg)
	}
	return s, nil
}

// RecordCollector sets the per-source gauges.
func (s *PromSink) RecordCollector(st coremetrics.CollectorStats) error {
	s.items.WithLabelValues(st.Source).Set(float64(st.Items))
	var v float64
	if st.Failed {
		v = 1
	}
	s.failed.WithLabelValues(st.Source).Set(v)
	return nil
}

// RecordRun sets the run gauges and pushes the registry when a gateway is
// configured.
func (s *PromSink) RecordRun(st coremetrics.RunStats) error {
	s.collected.Set(float64(st.ItemsCollected))
	s.output.Set(float64(st.ItemsOutput))
	s.failures.Set(float64(st.CollectorsFailed))
	s.duration.Set(st.Duration.Seconds())
	if s.pusher != nil {
		return s.pusher.Push()
	}
	return nil
}
