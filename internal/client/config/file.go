package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/nuroki/internal/flagx"
	"github.com/dmitrijs2005/nuroki/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for config file decoding. Durations
// use timex.Duration, so files can say "15s" or integer nanoseconds. Unset
// fields leave the runtime Config untouched.
type FileConfig struct {
	APIBaseURL      string          `json:"api_base_url" yaml:"api_base_url"`
	CoursesBaseURL  string          `json:"courses_base_url" yaml:"courses_base_url"`
	DBPath          string          `json:"db_path" yaml:"db_path"`
	RequestTimeout  *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	LogFormat       string          `json:"log_format" yaml:"log_format"`
	LogLevel        string          `json:"log_level" yaml:"log_level"`
	CoalesceRefresh *bool           `json:"coalesce_refresh" yaml:"coalesce_refresh"`
}

// parseFile overlays cfg with the file named by -c/--config. Files ending
// in .yaml or .yml are decoded as YAML, anything else as JSON.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc FileConfig) apply(cfg *Config) {
	setString(&cfg.APIBaseURL, fc.APIBaseURL)
	setString(&cfg.CoursesBaseURL, fc.CoursesBaseURL)
	setString(&cfg.DBPath, fc.DBPath)
	setString(&cfg.LogFormat, fc.LogFormat)
	setString(&cfg.LogLevel, fc.LogLevel)
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.CoalesceRefresh != nil {
		cfg.CoalesceRefresh = *fc.CoalesceRefresh
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
