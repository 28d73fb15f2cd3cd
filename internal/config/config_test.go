// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/precisiongraph/internal/config"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.False(t, cfg.AutoLambda())
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, config.Default(), *cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "precgraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
shrinkage: ledoit-wolf
quantile: 0.75
method: type7
input:
  path: prices.xlsx
  kind: prices
  sheet: Close
server:
  addr: ":9090"
  read_timeout: 5s
`), 0o600))

	t.Setenv("PRECGRAPH_QUANTILE", "0.5")
	t.Setenv("PRECGRAPH_LOGGING_LEVEL", "debug")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.True(t, cfg.AutoLambda())
	require.Equal(t, 0.5, cfg.Quantile)
	require.Equal(t, "type7", cfg.Method)
	require.Equal(t, "prices", cfg.Input.Kind)
	require.Equal(t, "Close", cfg.Input.Sheet)
	require.Equal(t, ":9090", cfg.Server.Addr)
	require.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, "debug", cfg.Logging.Level)
	// Untouched fields keep their defaults.
	require.Equal(t, 0.3, cfg.Lambda)
	require.Equal(t, config.Default().Server.MaxBodyBytes, cfg.Server.MaxBodyBytes)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"lambda":    "lambda: 1.5\n",
		"quantile":  "quantile: -0.1\n",
		"method":    "method: median\n",
		"shrinkage": "shrinkage: oas\n",
		"format":    "input:\n  format: parquet\n",
		"level":     "logging:\n  level: trace\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
			_, err := config.Load(path)
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lambda: [\n"), 0o600))
	_, err := config.Load(path)
	require.Error(t, err)
	require.NotErrorIs(t, err, config.ErrInvalid)
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("PRECGRAPH_LAMBDA", "lots")
	_, err := config.Load("")
	require.Error(t, err)
}

// Env keys follow the field path; the unprefixed $PATH is never consulted.
func TestLoad_EnvKeys(t *testing.T) {
	t.Setenv("PATH", "/usr/bin")
	t.Setenv("PRECGRAPH_SERVER_MAX_BODY_BYTES", "1024")
	t.Setenv("PRECGRAPH_SWEEP_WORKERS", "3")

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Empty(t, cfg.Input.Path)
	require.Equal(t, int64(1024), cfg.Server.MaxBodyBytes)
	require.Equal(t, 3, cfg.Sweep.Workers)
}
