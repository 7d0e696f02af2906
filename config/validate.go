package config

import (
	"fmt"

	"github.com/pkg/errors"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSmoothing(); err != nil {
		return err
	}
	if err := c.validateKalman(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if c.Workers.Count < 1 {
		return errors.New("workers.count must be at least 1")
	}
	return nil
}

func (c *Config) validateSmoothing() error {
	switch c.Smoothing.Method {
	case "gaussian", "kalman":
	default:
		return fmt.Errorf("smoothing.method must be gaussian or kalman, got %q", c.Smoothing.Method)
	}
	if c.Smoothing.MaxGap < 1 || c.Smoothing.MaxGap > 1000 {
		return fmt.Errorf("smoothing.max_gap must be between 1 and 1000, got %d", c.Smoothing.MaxGap)
	}
	if c.Smoothing.Sigma <= 0 {
		return errors.New("smoothing.sigma must be positive")
	}
	if c.Smoothing.Truncate <= 0 {
		return errors.New("smoothing.truncate must be positive")
	}
	return nil
}

func (c *Config) validateKalman() error {
	if c.Kalman.Dt <= 0 {
		return errors.New("kalman.dt must be positive")
	}
	if c.Kalman.StdDevA <= 0 || c.Kalman.StdDevM <= 0 {
		return errors.New("kalman.std_dev_a and kalman.std_dev_m must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
