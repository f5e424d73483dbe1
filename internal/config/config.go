// Package config loads the optional YAML settings for the comparison report.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a config file or value fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Output formats
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
)

// MaxPrecision bounds the number of decimals printed for float metrics.
const MaxPrecision = 10

type Config struct {
	Format    string `yaml:"format"`
	Precision int    `yaml:"precision"`
	LogLevel  string `yaml:"log_level"`

	Groups struct {
		BuyNowTitle string `yaml:"buy_now_title"`
		OtherTitle  string `yaml:"other_title"`
		DeltaTitle  string `yaml:"delta_title"`
	} `yaml:"groups"`

	Metrics struct {
		// Textfile is written in Prometheus text format after each run. Empty disables it.
		Textfile  string `yaml:"textfile"`
		Namespace string `yaml:"namespace"`
	} `yaml:"metrics"`
}

// Default returns the settings used when no config file is given.
func Default() Config {
	var c Config
	c.Format = FormatText
	c.Precision = 2
	c.LogLevel = "info"
	c.Groups.BuyNowTitle = "Group: buyNow = TRUE"
	c.Groups.OtherTitle = "Group: buyNow = FALSE"
	c.Groups.DeltaTitle = "Δ True - False"
	c.Metrics.Namespace = "buynow_compare"
	return c
}

// Load reads path on top of Default. An empty path returns Default.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
	}
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatMarkdown, FormatCSV:
	default:
		return fmt.Errorf("%w: unknown format %q (want text, markdown or csv)", ErrInvalidConfig, c.Format)
	}
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return fmt.Errorf("%w: precision %d out of range [0, %d]", ErrInvalidConfig, c.Precision, MaxPrecision)
	}
	if c.Groups.BuyNowTitle == "" || c.Groups.OtherTitle == "" || c.Groups.DeltaTitle == "" {
		return fmt.Errorf("%w: group titles must not be empty", ErrInvalidConfig)
	}
	if c.Metrics.Textfile != "" && c.Metrics.Namespace == "" {
		return fmt.Errorf("%w: metrics namespace required with a textfile", ErrInvalidConfig)
	}
	return nil
}
