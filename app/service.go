package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harukisawai/godchecker/config"
	"github.com/harukisawai/godchecker/core/collector"
	"github.com/harukisawai/godchecker/core/dateparse"
	"github.com/harukisawai/godchecker/core/feed"
	coremetrics "github.com/harukisawai/godchecker/core/metrics"
	"github.com/harukisawai/godchecker/core/model"
	"github.com/harukisawai/godchecker/infra/fetch"
	"github.com/harukisawai/godchecker/infra/logger"
	"github.com/harukisawai/godchecker/infra/metrics"
	"github.com/harukisawai/godchecker/infra/notify"
	"github.com/harukisawai/godchecker/pkg/export"
	"github.com/harukisawai/godchecker/sources"
)

// Service orchestrates one pipeline run: collect, merge, window, write.
type Service struct {
	cfg        *config.Config
	log        logger.Logger
	sink       coremetrics.Sink
	collectors []collector.Collector
	notifier   *notify.Publisher
	now        func() time.Time
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")
	fetcher := fetch.New(cfg.Fetch)

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sink := metrics.NewInfluxSinkWithFallback(
			cfg.Metrics.InfluxURL, cfg.Metrics.InfluxToken,
			cfg.Metrics.InfluxOrg, cfg.Metrics.InfluxBucket)
		sinks = append(sinks, sink)
	}
	var sink coremetrics.Sink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	var notifier *notify.Publisher
	if cfg.Notify.Enabled {
		n, err := notify.New(cfg.Notify)
		if err != nil {
			// the feed must still be produced when the broker is down
			logg.Errorf("notify publisher unavailable: %v", err)
		} else {
			notifier = n
		}
	}

	return newService(cfg, sources.All(fetcher, logg), sink, notifier, logg), nil
}

func newService(cfg *config.Config, cols []collector.Collector, sink coremetrics.Sink, notifier *notify.Publisher, log logger.Logger) *Service {
	return &Service{
		cfg:        cfg,
		log:        log,
		sink:       sink,
		collectors: cols,
		notifier:   notifier,
		now:        dateparse.Now,
	}
}

// Run executes one full pipeline pass. Collector failures are isolated and
// logged; only a failure to write the final artifact is returned.
func (s *Service) Run(ctx context.Context) error {
	runID := uuid.NewString()
	started := time.Now()
	s.log.Infof("run %s: collecting from %d sources", runID, len(s.collectors))

	var all []model.Item
	failedCollectors := 0
	for _, c := range s.collectors {
		colStarted := time.Now()
		res := s.collect(ctx, c)
		stats := coremetrics.CollectorStats{
			RunID:    runID,
			Source:   res.Source,
			Items:    len(res.Items),
			Failed:   res.Failed(),
			Duration: time.Since(colStarted),
		}
		if err := s.sink.RecordCollector(stats); err != nil {
			s.log.Warnf("run %s: record collector stats: %v", runID, err)
		}
		if res.Failed() {
			failedCollectors++
			s.log.Errorf("run %s: collector %s failed: %v", runID, res.Source, res.Err)
			continue
		}
		s.log.Infof("run %s: collector %s produced %d items", runID, res.Source, len(res.Items))
		all = append(all, res.Items...)
	}

	merged := feed.Merge(all, s.cfg.Feed.ManualDir, s.log)
	window := feed.Window{
		Retention: time.Duration(s.cfg.Feed.RetentionDays) * 24 * time.Hour,
		Now:       s.now,
	}
	kept := window.Apply(merged)

	if err := export.WriteFile(s.cfg.Feed.OutputPath, kept); err != nil {
		return fmt.Errorf("write feed: %w", err)
	}
	s.log.Infof("run %s: wrote %s with %d items", runID, s.cfg.Feed.OutputPath, len(kept))

	runStats := coremetrics.RunStats{
		RunID:            runID,
		StartedAt:        started,
		ItemsCollected:   len(all),
		ItemsOutput:      len(kept),
		CollectorsFailed: failedCollectors,
		Duration:         time.Since(started),
	}
	if err := s.sink.RecordRun(runStats); err != nil {
		s.log.Warnf("run %s: record run stats: %v", runID, err)
	}
	if s.notifier != nil {
		summary := notify.Summary{RunID: runID, Items: len(kept), GeneratedAt: dateparse.ISO(s.now())}
		if err := s.notifier.Publish(summary); err != nil {
			s.log.Warnf("run %s: notify: %v", runID, err)
		}
	}
	return nil
}

// collect runs one collector, converting an error return or a panic into a
// failed Result so a broken upstream never aborts the rest of the run.
func (s *Service) collect(ctx context.Context, c collector.Collector) (res collector.Result) {
	res.Source = c.Name()
	defer func() {
		if r := recover(); r != nil {
			res.Items = nil
			res.Err = fmt.Errorf("collector panic: %v", r)
		}
	}()
	res.Items, res.Err = c.Collect(ctx)
	return res
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	if s.notifier != nil {
		s.notifier.Close()
	}
	return nil
}
