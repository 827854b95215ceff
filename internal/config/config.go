package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/z340/internal/logging"
	"github.com/aretw0/z340/pkg/transform"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "z340.yaml"

// PauseMode controls the acknowledgement prompt after the result is printed.
type PauseMode string

const (
	PauseAuto   PauseMode = "auto"   // pause only when stdin is a terminal
	PauseAlways PauseMode = "always" // always wait for Enter
	PauseNever  PauseMode = "never"
)

// Config holds the settings read from z340.yaml / z340.json.
type Config struct {
	LogLevel      string                   `yaml:"log_level" json:"log_level" mapstructure:"log_level"`
	LogFormat     string                   `yaml:"log_format" json:"log_format" mapstructure:"log_format"`
	Pause         PauseMode                `yaml:"pause" json:"pause" mapstructure:"pause"`
	Split         bool                     `yaml:"split" json:"split" mapstructure:"split"`
	Metrics       bool                     `yaml:"metrics" json:"metrics" mapstructure:"metrics"`
	Substitutions []transform.Substitution `yaml:"substitutions" json:"substitutions" mapstructure:"substitutions"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	subs := make([]transform.Substitution, len(transform.DefaultSubstitutions))
	copy(subs, transform.DefaultSubstitutions)
	return Config{
		LogLevel:      "warn",
		LogFormat:     string(logging.FormatText),
		Pause:         PauseAuto,
		Substitutions: subs,
	}
}

// Load reads a configuration file (YAML or JSON) on top of the defaults.
// A missing file yields the defaults unless required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	if err := decode(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func decode(raw map[string]any, cfg *Config) error {
	// A listed set of substitutions replaces the defaults rather than
	// overwriting them element by element.
	if _, ok := raw["substitutions"]; ok {
		cfg.Substitutions = nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		TagName:          "mapstructure",
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		ZeroFields:       false,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// Validate checks enumerated values and the substitution list.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return fmt.Errorf("log_format: %w", err)
	}
	switch c.Pause {
	case PauseAuto, PauseAlways, PauseNever:
	default:
		return fmt.Errorf("pause: unknown mode %q", c.Pause)
	}
	if _, err := transform.NewNormalizer(c.Substitutions...); err != nil {
		return fmt.Errorf("substitutions: %w", err)
	}
	return nil
}

// Normalizer builds the output normalizer described by the config.
func (c Config) Normalizer() (*transform.Normalizer, error) {
	return transform.NewNormalizer(c.Substitutions...)
}
