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

// Published schedule and press-conference pages of the Prime Minister's
// Office.
var kanteiURLs = []string{
	"https://www.kantei.go.jp/jp/iken/koukai/",
	"https://www.kantei.go.jp/jp/101_kishida/statement/",
}

// Kantei collects announced PM-related schedule entries. These start early,
// so the assumed time-of-day is 08:00 with a one-hour slot.
type Kantei struct {
	fetcher collector.Fetcher
	log     logger.Logger
}

func NewKantei(f collector.Fetcher, log logger.Logger) *Kantei {
	return &Kantei{fetcher: f, log: log}
}

func (c *Kantei) Name() string { return "kantei" }

func (c *Kantei) Collect(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	for _, url := range kanteiURLs {
		page, err := c.fetcher.Get(ctx, url)
		if err != nil {
			c.log.Warnf("kantei: %s skipped: %v", url, err)
			continue
		}
		if page == "" {
			continue
		}
		for _, text := range fetch.Fragments(page, "a") {
			start, ok := dateparse.Guess(text, 8, 0)
			if !ok {
				continue
			}
			title := dateparse.StripDatePrefix(text)
			if title == "" {
				title = "首相関連の予定/会見"
			}
			items = append(items, feed.NewItem(feed.ItemParams{
				Category:  "pm",
				Seed:      text,
				Title:     "首相関連: " + title,
				StartAt:   start,
				EndAt:     start.Add(time.Hour),
				Area:      "官邸〜霞が関（推定）",
				Purpose:   "公表済みの予定/会見等",
				Tags:      []string{model.TagPM},
				Authority: "内閣官房・首相官邸",
				SourceURL: url,
			}))
		}
	}
	return items, nil
}
