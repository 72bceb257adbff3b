// Package config loads tmpltime configuration from YAML or TOML files, .env files and the
// environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/tmpltime/internal/foundation/errors"
)

// CurrentVersion is the configuration schema version this build reads and writes.
const CurrentVersion = "1"

// Config is the tmpltime configuration file.
type Config struct {
	Version      string             `yaml:"version" toml:"version"`
	Capabilities CapabilitiesConfig `yaml:"capabilities" toml:"capabilities"`
	Logging      LoggingConfig      `yaml:"logging" toml:"logging"`
	Metrics      MetricsConfig      `yaml:"metrics" toml:"metrics"`
}

// CapabilitiesConfig switches the optional pipeline collaborators. A nil field means the
// default (enabled).
type CapabilitiesConfig struct {
	NamedZones *bool `yaml:"named_zones,omitempty" toml:"named_zones,omitempty"` // IANA names in with_timezone
	Locales    *bool `yaml:"locales,omitempty" toml:"locales,omitempty"`         // locale option of output_format
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level" toml:"level"`
	Format LogFormat `yaml:"format" toml:"format"`
}

// MetricsConfig controls the Prometheus text export written after each command.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	File    string `yaml:"file,omitempty" toml:"file,omitempty"` // empty writes to stderr
}

// NamedZonesEnabled reports whether IANA zone names are resolved.
func (c CapabilitiesConfig) NamedZonesEnabled() bool { return c.NamedZones == nil || *c.NamedZones }

// LocalesEnabled reports whether localized formatting is available.
func (c CapabilitiesConfig) LocalesEnabled() bool { return c.Locales == nil || *c.Locales }

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Logging: LoggingConfig{Level: LogLevelInfo, Format: LogFormatText},
	}
}

// Load reads configPath, then applies .env files and TMPLTIME_* environment overrides.
// Files ending in .toml are read as TOML, anything else as YAML. A missing file (or an
// empty path) yields Default with the overrides applied.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	cfg := Default()
	if configPath != "" {
		data, err := os.ReadFile(configPath) // #nosec G304 -- operator-supplied config path
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, ferrors.FileSystemError("failed to read config file").WithCause(err).WithContext("path", configPath).Build()
		default:
			if err := unmarshal(configPath, []byte(os.ExpandEnv(string(data))), cfg); err != nil {
				return nil, ferrors.ConfigError("failed to parse config file").WithCause(err).WithContext("path", configPath).Build()
			}
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := normalizeConfig(cfg); err != nil {
		return nil, err
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Init writes an example configuration to configPath. An existing file is only replaced
// when force is set.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.FileSystemError(fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", configPath)).Build()
	}

	enabled := true
	example := Config{
		Version:      CurrentVersion,
		Capabilities: CapabilitiesConfig{NamedZones: &enabled, Locales: &enabled},
		Logging:      LoggingConfig{Level: LogLevelInfo, Format: LogFormatText},
		Metrics:      MetricsConfig{Enabled: false, File: "./tmpltime.prom"},
	}

	data, err := marshal(configPath, &example)
	if err != nil {
		return ferrors.InternalError("failed to marshal config").WithCause(err).Build()
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return ferrors.FileSystemError("failed to write config file").WithCause(err).WithContext("path", configPath).Build()
	}
	return nil
}

func normalizeConfig(cfg *Config) error {
	level, err := logLevelNormalizer.Parse(string(cfg.Logging.Level))
	if err != nil {
		return err
	}
	format, err := logFormatNormalizer.Parse(string(cfg.Logging.Format))
	if err != nil {
		return err
	}
	cfg.Logging.Level, cfg.Logging.Format = level, format
	return nil
}

func validateConfig(cfg *Config) error {
	if cfg.Version != CurrentVersion {
		return ferrors.ConfigError(fmt.Sprintf("unsupported configuration version: %q (expected %q)", cfg.Version, CurrentVersion)).Build()
	}
	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func unmarshal(path string, data []byte, cfg *Config) error {
	if isTOML(path) {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

func marshal(path string, cfg *Config) ([]byte, error) {
	if !isTOML(path) {
		return yaml.Marshal(cfg)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
