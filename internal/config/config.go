package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"unitcheck/internal/term"
)

type LoggingCfg struct {
	File         string `yaml:"file" json:"file"`                   // Optional log file, appended to alongside stderr
	RotationDays int    `yaml:"rotation_days" json:"rotation_days"` // Days to keep a log file before rotation
}

type MetricsCfg struct {
	Port int `yaml:"port" json:"port"` // 0 disables the Prometheus endpoint
}

type Config struct {
	Color   string     `yaml:"color" json:"color"` // auto, always or never
	Logging LoggingCfg `yaml:"logging" json:"logging"`
	Metrics MetricsCfg `yaml:"metrics" json:"metrics"`
}

var (
	errInvalidPort = errors.New("metrics.port must be between 0 and 65535")
	errInvalidPath = errors.New("logging.file must be absolute")
)

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	// validateAndDefault cannot fail on the zero value
	_ = cfg.validateAndDefault()
	return cfg
}

func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := decode(f)
	if err != nil {
		return nil, err
	}
	if err := cfg.validateAndDefault(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(r io.Reader) (*Config, error) {
	cfg := &Config{}
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return cfg, nil
}

func (c *Config) validateAndDefault() error {
	mode, err := term.ParseMode(c.Color)
	if err != nil {
		return fmt.Errorf("color: %w", err)
	}
	c.Color = string(mode)

	if c.Metrics.Port < 0 || c.Metrics.Port > 65535 {
		return fmt.Errorf("%w: %d", errInvalidPort, c.Metrics.Port)
	}

	if c.Logging.RotationDays <= 0 {
		c.Logging.RotationDays = 30 // Default: keep logs for 30 days
	}

	if c.Logging.File != "" {
		cp := filepath.Clean(c.Logging.File)
		if !filepath.IsAbs(cp) {
			return fmt.Errorf("%w: %s", errInvalidPath, c.Logging.File)
		}
		c.Logging.File = cp
	}

	return nil
}

// ColorMode returns the validated colour mode
func (c *Config) ColorMode() term.Mode {
	return term.Mode(c.Color)
}

func (c *Config) MetricsAddress() string {
	return fmt.Sprintf(":%d", c.Metrics.Port)
}
