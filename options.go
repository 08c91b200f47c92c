package docman

import (
	"time"

	"go.uber.org/zap"
)

// Option configures the Manager.
type Option interface {
	apply(*managerConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*managerConfig)

func (f optionFunc) apply(c *managerConfig) { f(c) }

type managerConfig struct {
	logger *zap.Logger
	now    func() time.Time
	newID  func() string
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return optionFunc(func(c *managerConfig) {
		c.logger = logger
	})
}

// WithClock overrides the clock used to stamp Created on generated-id saves.
func WithClock(now func() time.Time) Option {
	return optionFunc(func(c *managerConfig) {
		c.now = now
	})
}

// WithIDGenerator overrides the generator of document ids. Defaults to random UUIDs.
func WithIDGenerator(newID func() string) Option {
	return optionFunc(func(c *managerConfig) {
		c.newID = newID
	})
}
