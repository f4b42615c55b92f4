// Package export writes the feed artifact.
package export

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/harukisawai/godchecker/core/model"
)

// WriteJSON writes items to w as a pretty-printed JSON array. HTML escaping
// is disabled so the Japanese text stays literal in the artifact.
func WriteJSON(w io.Writer, items []model.Item) error {
	if items == nil {
		items = []model.Item{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

// WriteFile writes the feed artifact to path, creating parent directories.
func WriteFile(path string, items []model.Item) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteJSON(f, items); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
