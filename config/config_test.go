package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LdDl/tracklets/tracks"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trackctl.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.Smoothing.MaxGap)
	assert.Equal(t, 10.0, cfg.Smoothing.Sigma)
	assert.Equal(t, 4.0, cfg.Smoothing.Truncate)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
[smoothing]
method = "Kalman"
max_gap = 5

[kalman]
std_dev_m = 3.5

[logging]
format = "json"
level = "DEBUG"

[workers]
count = 2
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "kalman", cfg.Smoothing.Method)
	assert.Equal(t, 5, cfg.Smoothing.MaxGap)
	assert.Equal(t, 10.0, cfg.Smoothing.Sigma, "unset keys keep defaults")
	assert.Equal(t, 3.5, cfg.Kalman.StdDevM)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 2, cfg.Workers.Count)

	options, err := cfg.SmoothOptions()
	require.NoError(t, err)
	assert.Equal(t, 5, options.MaxGap)
	kalman, ok := options.Smoother.(*tracks.KalmanSmoother)
	require.True(t, ok, "expected Kalman smoother, got %T", options.Smoother)
	assert.Equal(t, 3.5, kalman.StdDevM)
}

func TestSmoothOptionsGaussian(t *testing.T) {
	cfg := Default()
	cfg.Smoothing.Sigma = 2
	options, err := cfg.SmoothOptions()
	require.NoError(t, err)
	gaussian, ok := options.Smoother.(*tracks.GaussianSmoother)
	require.True(t, ok)
	assert.Equal(t, 8, gaussian.Radius())
}

func TestSmoothOptionsEmptyMethod(t *testing.T) {
	cfg := Default()
	cfg.Smoothing.Method = ""
	cfg.Smoothing.Sigma = 3
	options, err := cfg.SmoothOptions()
	require.NoError(t, err)
	gaussian, ok := options.Smoother.(*tracks.GaussianSmoother)
	require.True(t, ok, "expected Gaussian smoother, got %T", options.Smoother)
	assert.Equal(t, 3.0, gaussian.Sigma)

	path := writeConfig(t, "[smoothing]\nmethod = \"\"\n")
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gaussian", loaded.Smoothing.Method)
}

func TestOverrideMethod(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.OverrideMethod("  Kalman "))
	assert.Equal(t, "kalman", cfg.Smoothing.Method)
	options, err := cfg.SmoothOptions()
	require.NoError(t, err)
	_, ok := options.Smoother.(*tracks.KalmanSmoother)
	assert.True(t, ok, "expected Kalman smoother, got %T", options.Smoother)

	assert.Error(t, cfg.OverrideMethod("median"))
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string]string{
		"method":        "[smoothing]\nmethod = \"median\"\n",
		"max gap":       "[smoothing]\nmax_gap = 0\n",
		"sigma":         "[smoothing]\nsigma = -1.0\n",
		"kalman":        "[kalman]\ndt = 0.0\n",
		"log level":     "[logging]\nlevel = \"loud\"\n",
		"log format":    "[logging]\nformat = \"xml\"\n",
		"workers":       "[workers]\ncount = 0\n",
		"unknown field": "[smoothing]\nwindow = 3\n",
		"syntax":        "[smoothing\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Store.Path = "/var/lib/tracks.db"
	data, err := cfg.Encode()
	require.NoError(t, err)
	loaded, err := Load(writeConfig(t, string(data)))
	require.NoError(t, err)
	assert.Equal(t, cfg, *loaded)
}
