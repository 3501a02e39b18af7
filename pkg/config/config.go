package config

import (
	"os"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const envPrefix = "FOLIO_"

// Config carries every tuning constant of the reconciliation engine. The
// similarity thresholds and year windows are heuristics tuned against fixture
// data; they are exposed here for testability, not because other values are
// expected to work better.
type Config struct {
	// Cleaner.
	MinPublicationYear int `koanf:"min_publication_year" default:"1990" validate:"gt=0"`
	MaxYearsAhead      int `koanf:"max_years_ahead" default:"2" validate:"gte=0"`

	// Consolidator.
	DuplicateTitleSimilarity float64 `koanf:"duplicate_title_similarity" default:"0.8" validate:"gt=0,lte=1"`
	DuplicateYearWindow      int     `koanf:"duplicate_year_window" default:"5" validate:"gte=0"`

	// Title clusterer.
	ClusterStrongSimilarity    float64 `koanf:"cluster_strong_similarity" default:"0.7" validate:"gt=0,lte=1"`
	ClusterModerateSimilarity  float64 `koanf:"cluster_moderate_similarity" default:"0.5" validate:"gt=0,lte=1"`
	ClusterSubstringSimilarity float64 `koanf:"cluster_substring_similarity" default:"0.4" validate:"gt=0,lte=1"`
	ClusterCoreSimilarity      float64 `koanf:"cluster_core_similarity" default:"0.3" validate:"gt=0,lte=1"`

	// Edition assembler.
	AudiobookYearWindow   int `koanf:"audiobook_year_window" default:"5" validate:"gte=0"`
	FirstEditionYearSpan  int `koanf:"first_edition_year_span" default:"1" validate:"gte=0"`
	MaxParsedEditionValue int `koanf:"max_parsed_edition_value" default:"99" validate:"gt=0"`

	// Path of the JSON file holding ISBN-keyed manual corrections. Optional;
	// a missing file means no corrections.
	OverridesFilePath string `koanf:"overrides_file_path"`

	// Overrides are loaded from OverridesFilePath, or injected directly in
	// tests.
	Overrides map[string]Override `koanf:"-"`
}

// New builds a Config from defaults, an optional YAML file named by the
// CONFIG_FILE env var, and FOLIO_-prefixed environment variables, in
// ascending precedence.
func New() (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, errors.WithStack(err)
	}

	k := koanf.New(".")

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, errors.Wrap(err, "failed to load config file")
			}
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.WithStack(err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	cfg.Overrides, err = loadOverrides(cfg.OverridesFilePath)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns a Config with compiled-in defaults and no overrides. Used
// by tests and by callers that embed the engine without external config.
func Default() *Config {
	cfg := &Config{Overrides: map[string]Override{}}
	if err := defaults.Set(cfg); err != nil {
		// Static struct tags; can only fail on a programming error.
		panic(err)
	}
	return cfg
}
