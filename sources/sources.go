// Package sources implements the per-authority collectors. Each collector
// owns its upstream's candidate URLs and heuristics: which markup regions to
// read, which keywords gate a fragment, what time-of-day to assume when the
// announcement carries none. Collectors share the page client through the
// collector.Fetcher interface and never fail the run: a dead URL simply
// contributes nothing.
package sources

import (
	"strings"

	"github.com/harukisawai/godchecker/core/collector"
	"github.com/harukisawai/godchecker/core/logger"
)

// All returns the collectors in their fixed execution order.
func All(f collector.Fetcher, log logger.Logger) []collector.Collector {
	return []collector.Collector{
		NewKunaicho(f, log),
		NewKantei(f, log),
		NewMofa(f, log),
		NewTraffic(f, log),
	}
}

// ByName returns the collector with the given name, or nil.
func ByName(name string, f collector.Fetcher, log logger.Logger) collector.Collector {
	for _, c := range All(f, log) {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
