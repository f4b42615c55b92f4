package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config groups every tunable of the pipeline. All sections have working
// defaults so an empty file is a valid configuration.
type Config struct {
	Fetch   FetchConfig   `json:"fetch"`
	Feed    FeedConfig    `json:"feed"`
	Metrics MetricsConfig `json:"metrics"`
	Notify  NotifyConfig  `json:"notify"`
}

// Load reads the configuration file (yaml or json by extension) and applies
// GC_ environment overrides with __ as the nesting separator.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// the callback emits dotted keys, so the provider must unflatten on "."
	if err := k.Load(env.Provider("GC_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "gc_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Fetch.SetDefaults()
	cfg.Feed.SetDefaults()
	if err := cfg.Feed.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Notify.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
