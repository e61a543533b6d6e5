package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"rangeshift/internal/config"
	"rangeshift/internal/convert"
	"rangeshift/internal/journal"
	"rangeshift/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger

	runOnce sync.Once
	runID   string
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the process logger, tagged with the per-invocation run
// ID so journal rows and log lines can be correlated.
func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg.Logging.Level, cfg.Logging.Format, cfg.Paths.LogDir)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger.With(logging.String(logging.FieldRunID, c.ensureRunID()))
	})
	return c.logger
}

func (c *commandContext) ensureRunID() string {
	c.runOnce.Do(func() {
		c.runID = uuid.NewString()
	})
	return c.runID
}

func (c *commandContext) newConverter() (*convert.Converter, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return convert.New(c.ensureLogger(), cfg.Scan.Extensions), nil
}

// openJournal connects to the conversion journal. Callers that treat journal
// trouble as advisory should log the error and continue.
func (c *commandContext) openJournal() (*journal.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return journal.Open(cfg.Paths.JournalPath)
}
