package sources

import (
	"context"
	"strings"
	"time"

	"github.com/harukisawai/godchecker/core/collector"
	"github.com/harukisawai/godchecker/core/dateparse"
	"github.com/harukisawai/godchecker/core/feed"
	"github.com/harukisawai/godchecker/core/logger"
	"github.com/harukisawai/godchecker/core/model"
	"github.com/harukisawai/godchecker/infra/fetch"
)

// Published restriction notices from the Metropolitan Expressway operator
// and the Metropolitan Police Department.
var trafficURLs = []string{
	"https://www.shutoko.jp/roadinfo/event/",
	"https://www.keishicho.metro.tokyo.jp/kotu/kisei/index.html",
}

var trafficKeywords = []string{
	"交通規制", "通行止め", "交通規制のお知らせ", "首都高", "羽田", "皇居", "迎賓館", "通行規制",
}

// Rough keyword-to-area mapping; first hit wins.
var trafficAreas = []struct {
	keyword string
	area    string
}{
	{"皇居", "皇居周辺"},
	{"迎賓館", "迎賓館（赤坂）周辺"},
	{"赤坂", "迎賓館（赤坂）周辺"},
	{"羽田", "羽田空港周辺/首都高1号羽田線"},
}

const trafficDefaultArea = "都内一部（公表範囲）"

// Traffic collects published road-restriction notices. A notice without a
// date is skipped: fabricating a restriction window would be worse than
// missing one.
type Traffic struct {
	fetcher collector.Fetcher
	log     logger.Logger
}

func NewTraffic(f collector.Fetcher, log logger.Logger) *Traffic {
	return &Traffic{fetcher: f, log: log}
}

func (c *Traffic) Name() string { return "traffic" }

func (c *Traffic) Collect(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	for _, url := range trafficURLs {
		page, err := c.fetcher.Get(ctx, url)
		if err != nil {
			c.log.Warnf("traffic: %s skipped: %v", url, err)
			continue
		}
		if page == "" {
			continue
		}
		for _, text := range fetch.Fragments(page, "a") {
			if !containsAny(text, trafficKeywords) {
				continue
			}
			start, ok := dateparse.Guess(text, 7, 0)
			if !ok {
				c.log.Debugf("traffic: undated notice skipped: %s", dateparse.Truncate(text))
				continue
			}
			items = append(items, feed.NewItem(feed.ItemParams{
				Category: "traffic",
				Seed:     text,
				Title:    "交通規制: " + dateparse.Truncate(text),
				StartAt:  start,
				EndAt:    start.Add(4 * time.Hour),
				Area:     areaFor(text),
				Purpose:  "公表済みの交通規制",
				// restrictions are relevant to all three categories
				Tags:      []string{model.TagImperial, model.TagPM, model.TagState},
				Authority: "公表元",
				SourceURL: url,
			}))
		}
	}
	return items, nil
}

func areaFor(text string) string {
	for _, m := range trafficAreas {
		if strings.Contains(text, m.keyword) {
			return m.area
		}
	}
	return trafficDefaultArea
}
