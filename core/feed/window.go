package feed

import (
	"sort"
	"time"

	"github.com/harukisawai/godchecker/core/dateparse"
	"github.com/harukisawai/godchecker/core/model"
)

// DefaultRetention is the rolling window past events stay visible in.
const DefaultRetention = 60 * 24 * time.Hour

// Window drops stale or unparseable records and orders the rest. Records
// whose startAt cannot be parsed never reach the output; future-dated
// records are always kept.
type Window struct {
	Retention time.Duration    // zero means DefaultRetention
	Now       func() time.Time // zero means the JST clock
}

// Apply filters items against the retention cutoff and sorts the survivors
// ascending by the literal startAt string. String order equals
// chronological order because every emitted timestamp carries the same
// +09:00 offset.
func (w Window) Apply(items []model.Item) []model.Item {
	retention := w.Retention
	if retention == 0 {
		retention = DefaultRetention
	}
	now := w.Now
	if now == nil {
		now = dateparse.Now
	}
	cutoff := now().Add(-retention)

	kept := make([]model.Item, 0, len(items))
	for _, it := range items {
		start, err := time.Parse(time.RFC3339, it.StartAt)
		if err != nil {
			continue
		}
		if start.Before(cutoff) {
			continue
		}
		kept = append(kept, it)
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].StartAt < kept[j].StartAt })
	return kept
}
