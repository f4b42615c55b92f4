package config

import "fmt"

// FeedConfig controls the feed artifact and the manual override overlay.
type FeedConfig struct {
	// OutputPath is where the final JSON array is written.
	OutputPath string `json:"output_path"`
	// ManualDir holds operator-authored override files. A missing
	// directory is treated as empty.
	ManualDir string `json:"manual_dir"`
	// RetentionDays is the rolling window past events stay visible in.
	RetentionDays int `json:"retention_days"`
}

// SetDefaults applies sane defaults.
func (c *FeedConfig) SetDefaults() {
	if c.OutputPath == "" {
		c.OutputPath = "docs/restrictions.json"
	}
	if c.ManualDir == "" {
		c.ManualDir = "data/manual"
	}
	if c.RetentionDays <= 0 {
		c.RetentionDays = 60
	}
}

// Validate checks mandatory fields.
func (c FeedConfig) Validate() error {
	if c.OutputPath == "" {
		return fmt.Errorf("output_path is required")
	}
	return nil
}
