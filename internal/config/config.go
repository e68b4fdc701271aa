// Package config loads the settings of the ezfork command from flags,
// environment variables and an optional YAML config file.
package config

import (
	"strings"

	"github.com/pgvanniekerk/ezfork/pkg/forkjoin"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load, e.g. EZFORK_WORKERS.
const EnvPrefix = "EZFORK"

// Config represents the command configuration.
type Config struct {
	Workers      int          `mapstructure:"workers"`
	LogLevel     string       `mapstructure:"log_level"`
	Output       string       `mapstructure:"output"`
	LockOSThread bool         `mapstructure:"lock_os_thread"`
	Fib          FibConfig    `mapstructure:"fib"`
	Stress       StressConfig `mapstructure:"stress"`
}

// FibConfig configures the fib command.
type FibConfig struct {
	N int `mapstructure:"n"`
}

// StressConfig configures the stress command.
type StressConfig struct {
	Regions     int `mapstructure:"regions"`
	Concurrency int `mapstructure:"concurrency"`
}

// Output formats.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// New creates a configuration with default values.
func New() Config {
	return Config{
		Workers:  0,
		LogLevel: "info",
		Output:   OutputText,
		Fib: FibConfig{
			N: 39,
		},
		Stress: StressConfig{
			Regions:     100,
			Concurrency: 0,
		},
	}
}

// SetDefaults registers the values of New with v.
func SetDefaults(v *viper.Viper) {
	d := New()
	v.SetDefault("workers", d.Workers)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("output", d.Output)
	v.SetDefault("lock_os_thread", d.LockOSThread)
	v.SetDefault("fib.n", d.Fib.N)
	v.SetDefault("stress.regions", d.Stress.Regions)
	v.SetDefault("stress.concurrency", d.Stress.Concurrency)
}

// Load reads the config file named by the "config" key, if any, applies
// environment overrides and decodes the result.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "reading config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every setting is within range.
func (c Config) Validate() error {
	if c.Workers < 0 || c.Workers > forkjoin.MaxWorkers {
		return errors.Errorf("workers must be between 0 and %d, got %d", forkjoin.MaxWorkers, c.Workers)
	}
	switch c.Output {
	case OutputText, OutputYAML:
	default:
		return errors.Errorf("unsupported output format %q", c.Output)
	}
	if c.Fib.N < 0 || c.Fib.N > 92 {
		return errors.Errorf("fib.n must be between 0 and 92, got %d", c.Fib.N)
	}
	if c.Stress.Regions < 0 {
		return errors.Errorf("stress.regions must not be negative, got %d", c.Stress.Regions)
	}
	if c.Stress.Concurrency < 0 {
		return errors.Errorf("stress.concurrency must not be negative, got %d", c.Stress.Concurrency)
	}
	return nil
}
