package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/LdDl/tracklets/tracks"
)

// Smoothing contains interpolation and filter settings.
type Smoothing struct {
	Method   string  `toml:"method"`
	MaxGap   int     `toml:"max_gap"`
	Sigma    float64 `toml:"sigma"`
	Truncate float64 `toml:"truncate"`
}

// Kalman contains settings of the "kalman" smoothing method.
type Kalman struct {
	Dt      float64 `toml:"dt"`
	StdDevA float64 `toml:"std_dev_a"`
	StdDevM float64 `toml:"std_dev_m"`
}

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Store contains SQLite settings.
type Store struct {
	Path string `toml:"path"`
}

// Workers bounds parallel smoothing of track sets.
type Workers struct {
	Count int `toml:"count"`
}

// Config encapsulates all configuration values for trackctl.
type Config struct {
	Smoothing Smoothing `toml:"smoothing"`
	Kalman    Kalman    `toml:"kalman"`
	Logging   Logging   `toml:"logging"`
	Store     Store     `toml:"store"`
	Workers   Workers   `toml:"workers"`
}

// Default returns configuration matching the library defaults.
func Default() Config {
	kalman := tracks.NewKalmanSmoother()
	return Config{
		Smoothing: Smoothing{
			Method:   "gaussian",
			MaxGap:   tracks.DefaultMaxGap,
			Sigma:    tracks.DefaultSigma,
			Truncate: tracks.DefaultTruncate,
		},
		Kalman: Kalman{
			Dt:      kalman.Dt,
			StdDevA: kalman.StdDevA,
			StdDevM: kalman.StdDevM,
		},
		Logging: Logging{
			Level:  "info",
			Format: "console",
		},
		Store: Store{
			Path: "tracks.db",
		},
		Workers: Workers{
			Count: 4,
		},
	}
}

// Load parses and validates a configuration file. An empty path or a missing file yields Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return &cfg, nil
	}
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, errors.Wrap(err, "open config")
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Encode renders configuration as TOML
func (c *Config) Encode() ([]byte, error) {
	data, err := toml.Marshal(c)
	return data, errors.Wrap(err, "encode config")
}

func (c *Config) normalize() {
	c.Smoothing.Method = strings.ToLower(strings.TrimSpace(c.Smoothing.Method))
	if c.Smoothing.Method == "" {
		c.Smoothing.Method = "gaussian"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Store.Path = strings.TrimSpace(c.Store.Path)
}

// OverrideMethod replaces smoothing method, e.g. from a command line flag, and validates the result
func (c *Config) OverrideMethod(method string) error {
	c.Smoothing.Method = method
	c.normalize()
	return c.Validate()
}

// SmoothOptions builds core smoothing options from the configuration.
func (c *Config) SmoothOptions() (tracks.SmoothOptions, error) {
	options := tracks.SmoothOptions{MaxGap: c.Smoothing.MaxGap}
	switch c.Smoothing.Method {
	case "", "gaussian":
		options.Smoother = &tracks.GaussianSmoother{
			Sigma:    c.Smoothing.Sigma,
			Truncate: c.Smoothing.Truncate,
		}
	case "kalman":
		options.Smoother = &tracks.KalmanSmoother{
			Dt:      c.Kalman.Dt,
			StdDevA: c.Kalman.StdDevA,
			StdDevM: c.Kalman.StdDevM,
		}
	default:
		_, err := tracks.NewSmoother(c.Smoothing.Method)
		return options, err
	}
	return options, nil
}
