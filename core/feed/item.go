package feed

import (
	"crypto/sha1"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harukisawai/godchecker/core/dateparse"
	"github.com/harukisawai/godchecker/core/model"
)

// fingerprint range; wide enough to separate fragments sharing a date,
// small enough to keep ids readable
const fingerprintMod = 1_000_000

// ItemParams carries everything needed to assemble a feed item. EndAt may be
// zero; Roads, Tags and Geometry may be nil.
type ItemParams struct {
	Category  string // id prefix identifying the source category
	Seed      string // raw fragment text the item was derived from
	Title     string
	StartAt   time.Time
	EndAt     time.Time
	Area      string
	Purpose   string
	Desc      string
	Roads     []string
	Tags      []string
	Authority string
	SourceURL string
	NewsURL   string
	Geometry  json.RawMessage
}

// NewItem assembles a canonical feed item. A missing end time defaults to a
// three-hour slot. Construction is pure; the id is fully determined by
// category, start date and seed text.
func NewItem(p ItemParams) model.Item {
	end := p.EndAt
	if end.IsZero() {
		end = p.StartAt.Add(3 * time.Hour)
	}
	roads := p.Roads
	if roads == nil {
		roads = []string{}
	}
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return model.Item{
		ID:        ItemID(p.Category, p.StartAt, p.Seed),
		Title:     p.Title,
		Purpose:   p.Purpose,
		Desc:      p.Desc,
		Authority: p.Authority,
		Area:      p.Area,
		StartAt:   dateparse.ISO(p.StartAt),
		EndAt:     dateparse.ISO(end),
		Geometry:  p.Geometry,
		Roads:     roads,
		Tags:      tags,
		SourceURL: p.SourceURL,
		NewsURL:   p.NewsURL,
	}
}

// ItemID derives the identity key used for dedup and manual overrides.
func ItemID(category string, start time.Time, seed string) string {
	return fmt.Sprintf("%s_%s_%d", category, start.In(dateparse.JST).Format("2006-01-02"), Fingerprint(seed))
}

// Fingerprint reduces the raw fragment text to a bounded number. Manual
// overrides address items by id, so the digest must be identical across runs
// and process restarts; a runtime-seeded hash would silently break override
// addressing.
func Fingerprint(text string) uint64 {
	sum := sha1.Sum([]byte(text))
	return binary.BigEndian.Uint64(sum[:8]) % fingerprintMod
}
