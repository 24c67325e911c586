// Package config loads CLI settings from flags, PAIRWISE_* environment
// variables, an optional YAML file and built-in defaults, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pairwise/stats"
)

// EnvPrefix namespaces environment overrides, e.g. PAIRWISE_WORKERS=4.
const EnvPrefix = "PAIRWISE"

// Config is the resolved CLI configuration.
type Config struct {
	Workers      int    `mapstructure:"workers" yaml:"workers" validate:"gte=1,lte=256"`
	LogLevel     string `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat    string `mapstructure:"log_format" yaml:"log_format" validate:"oneof=text json"`
	OutputFormat string `mapstructure:"output_format" yaml:"output_format" validate:"oneof=json yaml"`
	MISamples    int    `mapstructure:"mi_samples" yaml:"mi_samples" validate:"gt=0"`

	// Default input files; flags override them per invocation.
	CatalogPath  string `mapstructure:"catalog" yaml:"catalog,omitempty"`
	EnsemblePath string `mapstructure:"ensemble" yaml:"ensemble,omitempty"`
	TablePath    string `mapstructure:"table" yaml:"table,omitempty"`
}

var validate = validator.New()

// Validate checks field ranges and enumerations.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Workers:      1,
		LogLevel:     "info",
		LogFormat:    "text",
		OutputFormat: "json",
		MISamples:    stats.DefaultMISamples,
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("workers", d.Workers)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)
	v.SetDefault("output_format", d.OutputFormat)
	v.SetDefault("mi_samples", d.MISamples)
	v.SetDefault("catalog", "")
	v.SetDefault("ensemble", "")
	v.SetDefault("table", "")
}

// Load loads configuration from file, env, and defaults.
// An explicit cfgFile must exist; otherwise ~/.pairwise/pairwise.yaml and
// ./pairwise.yaml are read when present.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".pairwise"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("pairwise")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Save writes c as YAML to path, creating parent directories.
func Save(c *Config, path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}
