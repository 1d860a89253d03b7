package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config holds the host settings.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Identity IdentityConfig `yaml:"identity"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level string `yaml:"level"`
	// File is the log destination. Empty means the default cache location.
	// "-" logs to stderr.
	File string `yaml:"file"`
}

// MetricsConfig controls the optional Prometheus endpoint.
type MetricsConfig struct {
	// Listen is a host:port address. Empty disables the endpoint.
	Listen string `yaml:"listen"`
}

// IdentityConfig controls where the machine identifier is persisted.
type IdentityConfig struct {
	MachineIDFile string `yaml:"machine_id_file"`
}

// Environment variable names that override file values.
const (
	EnvLogLevel      = "RECLAIM_LOG_LEVEL"
	EnvLogFile       = "RECLAIM_LOG_FILE"
	EnvMetricsAddr   = "RECLAIM_METRICS_ADDR"
	EnvMachineIDFile = "RECLAIM_MACHINE_ID_FILE"
)

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path (if non-empty and present), applies environment
// overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		// #nosec G304 -- the config path is supplied by the operator
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := decodeStrict(data, &cfg); err != nil {
				return Config{}, err
			}
		}
	}

	applyEnv(&cfg, os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeStrict(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("strict config parse error: %w", err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("config file contains multiple documents or trailing content")
	}
	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Log.Level = v
	}
	if v, ok := lookup(EnvLogFile); ok && v != "" {
		cfg.Log.File = v
	}
	if v, ok := lookup(EnvMetricsAddr); ok {
		cfg.Metrics.Listen = v
	}
	if v, ok := lookup(EnvMachineIDFile); ok && v != "" {
		cfg.Identity.MachineIDFile = v
	}
}

// Validate checks field values.
func (c Config) Validate() error {
	if c.Log.Level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
			return fmt.Errorf("log.level: %w", err)
		}
	}
	if c.Metrics.Listen != "" {
		if _, _, err := net.SplitHostPort(c.Metrics.Listen); err != nil {
			return fmt.Errorf("metrics.listen: %w", err)
		}
	}
	return nil
}
