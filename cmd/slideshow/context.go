package main

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/claes/slideshow/internal/config"
	"github.com/claes/slideshow/internal/logging"
)

type commandContext struct {
	configFlag *string
	verbose    *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *zap.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string, verbose *bool) *commandContext {
	return &commandContext{configFlag: configFlag, verbose: verbose}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		if path == "" {
			path = "slideshow.toml"
		}
		c.config, _, c.configErr = config.Load(path)
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*zap.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		level := cfg.Logging.Level
		if c.verbose != nil && *c.verbose {
			level = "debug"
		}
		c.logger, c.loggerErr = logging.New(logging.Options{Level: level, Format: cfg.Logging.Format})
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) syncLogger() {
	if c.logger != nil {
		_ = c.logger.Sync()
	}
}
