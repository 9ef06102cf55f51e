// Package config loads the exporter's INI configuration file.
package config

import (
	"fmt"
	"time"

	"gopkg.in/ini.v1"
)

// Defaults applied when the file omits an optional key.
const (
	DefaultTimeout    = 30 * time.Second
	DefaultOutputPath = "output"
)

// Config holds the settings read from config.ini.
type Config struct {
	// WebURL is the odds page base URL. The week number is appended
	// as "-{week}" when building per-week page URLs.
	WebURL string

	// Timeout bounds each page load, including the wait for the odds
	// table to render.
	Timeout time.Duration

	// OutputPath is the directory spreadsheets are exported to.
	OutputPath string
}

// Load reads and validates the INI file at path. WebUrl is required;
// Timeout (seconds) and OutputPath fall back to defaults when omitted.
func Load(path string) (*Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	section := file.Section(ini.DefaultSection)

	cfg := &Config{
		WebURL:     section.Key("WebUrl").String(),
		Timeout:    DefaultTimeout,
		OutputPath: section.Key("OutputPath").MustString(DefaultOutputPath),
	}

	if cfg.WebURL == "" {
		return nil, fmt.Errorf("config %s: WebUrl is required", path)
	}

	if raw := section.Key("Timeout").String(); raw != "" {
		seconds, err := section.Key("Timeout").Int()
		if err != nil {
			return nil, fmt.Errorf("config %s: Timeout: %w", path, err)
		}
		if seconds <= 0 {
			return nil, fmt.Errorf("config %s: Timeout must be positive, got %d", path, seconds)
		}
		cfg.Timeout = time.Duration(seconds) * time.Second
	}

	return cfg, nil
}
