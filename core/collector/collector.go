// Package collector defines the contract between the orchestrator and the
// per-authority collectors. Each collector owns one upstream's candidate
// pages and heuristics; the orchestrator runs them in sequence and isolates
// their failures from each other.
package collector

import (
	"context"

	"github.com/harukisawai/godchecker/core/model"
)

// Fetcher retrieves a page body for a collector. Implementations apply a
// bounded timeout and a fixed client label.
type Fetcher interface {
	Get(ctx context.Context, url string) (string, error)
}

// Collector gathers announced items from one authority.
type Collector interface {
	Name() string
	Collect(ctx context.Context) ([]model.Item, error)
}

// Result captures a single collector run: either its items or the failure
// that produced zero items. Carrying the failure in the result instead of
// letting it propagate is what keeps one broken upstream from aborting the
// rest of the run.
type Result struct {
	Source string
	Items  []model.Item
	Err    error
}

// Failed reports whether the collector contributed nothing due to an error.
func (r Result) Failed() bool { return r.Err != nil }
