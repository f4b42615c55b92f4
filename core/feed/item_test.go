package feed

import (
	"regexp"
	"testing"
	"time"

	"github.com/harukisawai/godchecker/core/dateparse"
)

var start = time.Date(2025, 9, 10, 9, 0, 0, 0, dateparse.JST)

func TestNewItemDefaultEnd(t *testing.T) {
	it := NewItem(ItemParams{Category: "imperial", Seed: "seed", StartAt: start})
	if it.StartAt != "2025-09-10T09:00:00+09:00" {
		t.Errorf("startAt %s", it.StartAt)
	}
	if it.EndAt != "2025-09-10T12:00:00+09:00" {
		t.Errorf("endAt %s, want start + 3h", it.EndAt)
	}
}

func TestNewItemExplicitEnd(t *testing.T) {
	it := NewItem(ItemParams{Category: "pm", Seed: "seed", StartAt: start, EndAt: start.Add(time.Hour)})
	if it.EndAt != "2025-09-10T10:00:00+09:00" {
		t.Errorf("endAt %s", it.EndAt)
	}
}

func TestNewItemEmptyCollections(t *testing.T) {
	it := NewItem(ItemParams{Category: "state", Seed: "seed", StartAt: start})
	if it.Roads == nil || it.Tags == nil {
		t.Error("roads and tags must be empty slices, not nil")
	}
}

func TestItemIDShape(t *testing.T) {
	id := ItemID("imperial", start, "9月10日 一般参賀")
	if !regexp.MustCompile(`^imperial_2025-09-10_\d{1,6}$`).MatchString(id) {
		t.Errorf("unexpected id %s", id)
	}
}

func TestItemIDStable(t *testing.T) {
	// manual overrides address items by id, so identical input text must
	// yield the identical id on every run
	a := ItemID("traffic", start, "首都高 通行止め")
	b := ItemID("traffic", start, "首都高 通行止め")
	if a != b {
		t.Errorf("id not stable: %s vs %s", a, b)
	}
	c := ItemID("traffic", start, "別の告知")
	if a == c {
		t.Errorf("distinct seeds collided: %s", a)
	}
}

func TestFingerprintBounded(t *testing.T) {
	for _, s := range []string{"", "a", "皇居周辺 交通規制", "2025年9月10日"} {
		if f := Fingerprint(s); f >= 1_000_000 {
			t.Errorf("fingerprint %d out of range for %q", f, s)
		}
	}
}
