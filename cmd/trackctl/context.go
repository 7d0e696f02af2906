package main

import (
	"log/slog"
	"os"

	"github.com/LdDl/tracklets/config"
	"github.com/LdDl/tracklets/logging"
	"github.com/LdDl/tracklets/store"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	config *config.Config
	logger *slog.Logger
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.config != nil {
		return c.config, nil
	}
	cfg, err := config.Load(*c.configFlag)
	if err != nil {
		return nil, err
	}
	if *c.logLevelFlag != "" {
		cfg.Logging.Level = *c.logLevelFlag
	}
	logger, err := logging.NewFromConfig(cfg, os.Stderr)
	if err != nil {
		return nil, err
	}
	c.config = cfg
	c.logger = logger
	return cfg, nil
}

func (c *commandContext) openStore() (*store.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return store.Open(cfg.Store.Path, c.logger)
}
