package sources

import (
	"context"
	"time"

	"github.com/harukisawai/godchecker/core/collector"
	"github.com/harukisawai/godchecker/core/dateparse"
	"github.com/harukisawai/godchecker/core/feed"
	"github.com/harukisawai/godchecker/core/logger"
	"github.com/harukisawai/godchecker/core/model"
	"github.com/harukisawai/godchecker/infra/fetch"
)

// Press release index of the Ministry of Foreign Affairs.
var mofaURLs = []string{
	"https://www.mofa.go.jp/mofaj/press/index.html",
}

// Announcements relevant to state visits; everything else on the press page
// is noise.
var mofaKeywords = []string{"国賓", "公式実務訪問賓客", "歓迎行事", "儀仗", "来日"}

// placeholderDays positions an undated announcement a week out. MOFA often
// announces a visit before the schedule is fixed, so this collector trades
// precision for recall instead of dropping the fragment.
const placeholderDays = 7

// Mofa collects state-visit announcements.
type Mofa struct {
	fetcher collector.Fetcher
	log     logger.Logger
}

func NewMofa(f collector.Fetcher, log logger.Logger) *Mofa {
	return &Mofa{fetcher: f, log: log}
}

func (c *Mofa) Name() string { return "mofa" }

func (c *Mofa) Collect(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	for _, url := range mofaURLs {
		page, err := c.fetcher.Get(ctx, url)
		if err != nil {
			c.log.Warnf("mofa: %s skipped: %v", url, err)
			continue
		}
		if page == "" {
			continue
		}
		for _, text := range fetch.Fragments(page, "a") {
			if !containsAny(text, mofaKeywords) {
				continue
			}
			start, ok := dateparse.Guess(text, 10, 0)
			if !ok {
				start = placeholderStart()
				c.log.Debugf("mofa: undated announcement placed %d days out: %s", placeholderDays, dateparse.Truncate(text))
			}
			items = append(items, feed.NewItem(feed.ItemParams{
				Category:  "state",
				Seed:      text,
				Title:     "国賓関連: " + dateparse.Truncate(text),
				StartAt:   start,
				EndAt:     start.Add(3 * time.Hour),
				Area:      "迎賓館（赤坂離宮）周辺（推定）",
				Purpose:   "国賓来日に伴う行事/儀仗（公表情報ベース）",
				Tags:      []string{model.TagState},
				Authority: "外務省",
				SourceURL: url,
			}))
		}
	}
	return items, nil
}

func placeholderStart() time.Time {
	now := dateparse.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 10, 0, 0, 0, dateparse.JST)
	return day.AddDate(0, 0, placeholderDays)
}
