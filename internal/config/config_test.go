package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)
	require.Equal(t, New(), cfg)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ezfork.yaml")
	data := []byte(`
workers: 4
output: yaml
fib:
  n: 20
stress:
  regions: 500
  concurrency: 16
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	v := viper.New()
	v.Set("config", path)
	cfg, err := Load(v)
	require.NoError(t, err)

	require.Equal(t, 4, cfg.Workers)
	require.Equal(t, OutputYAML, cfg.Output)
	require.Equal(t, 20, cfg.Fib.N)
	require.Equal(t, 500, cfg.Stress.Regions)
	require.Equal(t, 16, cfg.Stress.Concurrency)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("EZFORK_WORKERS", "3")
	t.Setenv("EZFORK_FIB_N", "12")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Workers)
	require.Equal(t, 12, cfg.Fib.N)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	v := viper.New()
	v.Set("config", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := Load(v)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"negative workers":     func(c *Config) { c.Workers = -1 },
		"too many workers":     func(c *Config) { c.Workers = 100_000 },
		"unknown output":       func(c *Config) { c.Output = "json" },
		"fib overflows":        func(c *Config) { c.Fib.N = 93 },
		"negative regions":     func(c *Config) { c.Stress.Regions = -1 },
		"negative concurrency": func(c *Config) { c.Stress.Concurrency = -5 },
	} {
		t.Run(name, func(t *testing.T) {
			cfg := New()
			mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
	require.NoError(t, New().Validate())
}
