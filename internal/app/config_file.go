package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the single-file configuration schema. Nested sections map
// naturally to flags.
type FileConfig struct {
	UserAgent      string `yaml:"userAgent" json:"userAgent"`
	AcceptLanguage string `yaml:"acceptLanguage" json:"acceptLanguage"`

	Fetch struct {
		Timeout       time.Duration `yaml:"timeout" json:"timeout"`
		RatePerSecond float64       `yaml:"ratePerSecond" json:"ratePerSecond"`
	} `yaml:"fetch" json:"fetch"`

	AsOfYear int  `yaml:"asOfYear" json:"asOfYear"`
	Verbose  bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays explicitly set file values onto cfg. Zero values
// in the file leave the existing (flag or default) value alone.
func ApplyFileConfig(fc FileConfig, cfg *Config) {
	if fc.UserAgent != "" {
		cfg.UserAgent = fc.UserAgent
	}
	if fc.AcceptLanguage != "" {
		cfg.AcceptLanguage = fc.AcceptLanguage
	}
	if fc.Fetch.Timeout > 0 {
		cfg.FetchTimeout = fc.Fetch.Timeout
	}
	if fc.Fetch.RatePerSecond > 0 {
		cfg.RatePerSecond = fc.Fetch.RatePerSecond
	}
	if fc.AsOfYear > 0 {
		cfg.AsOfYear = fc.AsOfYear
	}
	if fc.Verbose {
		cfg.Verbose = true
	}
}
