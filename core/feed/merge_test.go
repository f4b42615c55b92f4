package feed

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"github.com/harukisawai/godchecker/core/model"
	"github.com/harukisawai/godchecker/infra/logger"
)

func baseItems() []model.Item {
	return []model.Item{
		{ID: "x", Title: "自動収集", StartAt: "2025-09-10T09:00:00+09:00", EndAt: "2025-09-10T12:00:00+09:00", Roads: []string{}, Tags: []string{"imperial"}},
		{ID: "y", Title: "別件", StartAt: "2025-09-11T07:00:00+09:00", EndAt: "2025-09-11T11:00:00+09:00", Roads: []string{}, Tags: []string{}},
	}
}

func writeManual(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write manual file: %v", err)
	}
}

func ids(items []model.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	sort.Strings(out)
	return out
}

func TestMergeMissingDir(t *testing.T) {
	got := Merge(baseItems(), filepath.Join(t.TempDir(), "nope"), logger.NopLogger{})
	if !reflect.DeepEqual(ids(got), []string{"x", "y"}) {
		t.Errorf("ids %v", ids(got))
	}
}

func TestMergeOverrideReplacesWholeRecord(t *testing.T) {
	dir := t.TempDir()
	writeManual(t, dir, "fix.json", `[
  {"id": "x", "title": "訂正済み", "startAt": "2025-09-10T10:00:00+09:00", "endAt": "2025-09-10T13:00:00+09:00", "roads": [], "tags": []}
]`)
	got := Merge(baseItems(), dir, logger.NopLogger{})
	var x model.Item
	for _, it := range got {
		if it.ID == "x" {
			x = it
		}
	}
	if x.Title != "訂正済み" || x.StartAt != "2025-09-10T10:00:00+09:00" {
		t.Errorf("override not applied in full: %#v", x)
	}
	// no field-level merge: base title must be gone even though the
	// override omitted other base fields
	if len(x.Tags) != 0 {
		t.Errorf("base fields leaked into override: %#v", x.Tags)
	}
}

func TestMergeIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeManual(t, dir, "fix.json", `[{"id": "x", "title": "訂正", "startAt": "2025-09-10T10:00:00+09:00"}]`)
	once := Merge(baseItems(), dir, logger.NopLogger{})
	twice := Merge(once, dir, logger.NopLogger{})
	sort.Slice(once, func(i, j int) bool { return once[i].ID < once[j].ID })
	sort.Slice(twice, func(i, j int) bool { return twice[i].ID < twice[j].ID })
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("merge not idempotent:\nonce:  %#v\ntwice: %#v", once, twice)
	}
}

func TestMergeBrokenFileSkipped(t *testing.T) {
	dir := t.TempDir()
	writeManual(t, dir, "broken.json", `{not json`)
	writeManual(t, dir, "good.json", `[{"id": "z", "title": "手動", "startAt": "2025-09-12T09:00:00+09:00"}]`)
	got := Merge(baseItems(), dir, logger.NopLogger{})
	if !reflect.DeepEqual(ids(got), []string{"x", "y", "z"}) {
		t.Errorf("ids %v", ids(got))
	}
}

func TestMergeInvalidRecordSkipped(t *testing.T) {
	dir := t.TempDir()
	// missing startAt fails validation, missing id as well
	writeManual(t, dir, "bad.json", `[{"title": "idなし"}, {"id": "ok", "startAt": "2025-09-12T09:00:00+09:00"}]`)
	got := Merge(nil, dir, logger.NopLogger{})
	if !reflect.DeepEqual(ids(got), []string{"ok"}) {
		t.Errorf("ids %v", ids(got))
	}
}

type warnCapture struct {
	logger.NopLogger
	warns []string
}

func (l *warnCapture) Warnf(format string, args ...any) {
	l.warns = append(l.warns, fmt.Sprintf(format, args...))
}

func TestMergeBadManualDirPattern(t *testing.T) {
	// "[" makes the glob pattern malformed
	log := &warnCapture{}
	got := Merge(baseItems(), "[", log)
	if !reflect.DeepEqual(ids(got), []string{"x", "y"}) {
		t.Errorf("ids %v", ids(got))
	}
	if len(log.warns) != 1 {
		t.Errorf("glob failure not logged: %v", log.warns)
	}
}

func TestMergeLaterBaseItemWins(t *testing.T) {
	base := []model.Item{
		{ID: "x", Title: "先の記録", StartAt: "2025-09-10T09:00:00+09:00"},
		{ID: "x", Title: "後勝ち", StartAt: "2025-09-10T09:00:00+09:00"},
	}
	got := Merge(base, "", logger.NopLogger{})
	if len(got) != 1 || got[0].Title != "後勝ち" {
		t.Errorf("got %#v", got)
	}
}
