package metrics

import coremetrics "github.com/harukisawai/godchecker/core/metrics"

// MultiSink fans stats out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordCollector forwards the stats to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordCollector(st coremetrics.CollectorStats) error {
	for _, s := range m.Sinks {
		if err := s.RecordCollector(st); err != nil {
			return err
		}
	}
	return nil
}

// RecordRun forwards the run summary to all sinks.
func (m *MultiSink) RecordRun(st coremetrics.RunStats) error {
	for _, s := range m.Sinks {
		if err := s.RecordRun(st); err != nil {
			return err
		}
	}
	return nil
}
