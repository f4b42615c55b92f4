// Package metrics defines the stats emitted by a pipeline run and the Sink
// interface implemented in infra/metrics. Sinks record per-collector
// outcomes and a run summary; PromSink, InfluxSink and MultiSink are the
// provided implementations, with NopSink as the default when nothing is
// configured.
package metrics

import "time"

// CollectorStats describes one collector's contribution to a run.
type CollectorStats struct {
	RunID    string
	Source   string
	Items    int
	Failed   bool
	Duration time.Duration
}

// RunStats summarizes a completed pipeline run.
type RunStats struct {
	RunID            string
	StartedAt        time.Time
	ItemsCollected   int
	ItemsOutput      int
	CollectorsFailed int
	Duration         time.Duration
}

// Sink records pipeline statistics.
type Sink interface {
	RecordCollector(CollectorStats) error
	RecordRun(RunStats) error
}

// NopSink discards all stats.
type NopSink struct{}

func (NopSink) RecordCollector(CollectorStats) error { return nil }
func (NopSink) RecordRun(RunStats) error             { return nil }
