package sources

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/harukisawai/godchecker/core/collector"
	"github.com/harukisawai/godchecker/core/dateparse"
	"github.com/harukisawai/godchecker/core/feed"
	"github.com/harukisawai/godchecker/core/logger"
	"github.com/harukisawai/godchecker/core/model"
	"github.com/harukisawai/godchecker/infra/fetch"
)

// Published schedule pages of the Imperial Household Agency.
var kunaichoURLs = []string{
	"https://www.kunaicho.go.jp/activity/activity/01/activity01.html",
	"https://www.kunaicho.go.jp/page/koho/show",
}

// Kunaicho collects announced imperial events. Fragments without a date are
// skipped; an event with no recognizable title becomes a generic schedule
// entry rather than being dropped.
type Kunaicho struct {
	fetcher collector.Fetcher
	log     logger.Logger
}

func NewKunaicho(f collector.Fetcher, log logger.Logger) *Kunaicho {
	return &Kunaicho{fetcher: f, log: log}
}

func (c *Kunaicho) Name() string { return "kunaicho" }

func (c *Kunaicho) Collect(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	for _, url := range kunaichoURLs {
		page, err := c.fetcher.Get(ctx, url)
		if err != nil {
			c.log.Warnf("kunaicho: %s skipped: %v", url, err)
			continue
		}
		if page == "" {
			continue
		}

		// anchors carrying "date + event name"
		for _, text := range fetch.Fragments(page, "a") {
			start, ok := dateparse.Guess(text, 9, 0)
			if !ok {
				continue
			}
			title := dateparse.StripDatePrefix(text)
			if title == "" {
				title = "ご日程"
			}
			items = append(items, c.item(text, title, start, url))
		}

		// list and table layouts on the same pages
		for _, text := range fetch.Fragments(page, "li, td, p") {
			if utf8.RuneCountInString(text) < 6 {
				continue
			}
			start, ok := dateparse.Guess(text, 9, 0)
			if !ok {
				continue
			}
			title := dateparse.Truncate(dateparse.StripDatePrefix(text))
			if title == "" {
				title = "行事"
			}
			items = append(items, c.item(text, title, start, url))
		}
	}
	return items, nil
}

func (c *Kunaicho) item(seed, title string, start time.Time, url string) model.Item {
	return feed.NewItem(feed.ItemParams{
		Category:  "imperial",
		Seed:      seed,
		Title:     "皇族行事: " + title,
		StartAt:   start,
		EndAt:     start.Add(3 * time.Hour),
		Area:      "皇居周辺（推定）",
		Purpose:   "公表済みのご日程",
		Tags:      []string{model.TagImperial},
		Authority: "宮内庁",
		SourceURL: url,
	})
}
