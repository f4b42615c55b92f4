package feed

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/harukisawai/godchecker/core/logger"
	"github.com/harukisawai/godchecker/core/model"
)

var validate = validator.New()

// Merge reconciles collected items with operator-authored override files.
// Base items are keyed by id; a later base item silently replaces an earlier
// one sharing its id (the collision is logged so it stays observable).
// Every record from manualDir/*.json then replaces any stored record with
// the same id in full. A file that fails to parse is skipped, as is an
// override record missing its identity or start time; the rest of the
// directory is still applied. A missing directory means no overrides.
func Merge(base []model.Item, manualDir string, log logger.Logger) []model.Item {
	out := make(map[string]model.Item, len(base))
	for _, it := range base {
		if _, ok := out[it.ID]; ok {
			log.Warnf("duplicate item id %s, keeping the later record", it.ID)
		}
		out[it.ID] = it
	}

	if manualDir != "" {
		paths, err := filepath.Glob(filepath.Join(manualDir, "*.json"))
		if err != nil {
			log.Warnf("manual dir %s unusable: %v", manualDir, err)
		}
		for _, path := range paths {
			data, err := os.ReadFile(path)
			if err != nil {
				log.Warnf("manual file %s unreadable: %v", path, err)
				continue
			}
			var records []model.Item
			if err := json.Unmarshal(data, &records); err != nil {
				log.Warnf("manual file %s skipped: %v", path, err)
				continue
			}
			for _, rec := range records {
				if err := validate.Struct(rec); err != nil {
					log.Warnf("manual record in %s skipped: %v", path, err)
					continue
				}
				out[rec.ID] = rec
			}
		}
	}

	items := make([]model.Item, 0, len(out))
	for _, it := range out {
		items = append(items, it)
	}
	return items
}
