package middleware

import (
	"time"

	"github.com/xraph/frankie"
	"github.com/xraph/frankie/errors"
	"github.com/xraph/frankie/logger"
)

// LoggingConfig defines configuration for logging middleware
type LoggingConfig struct {
	// ExcludePaths defines paths to exclude from logging
	ExcludePaths []string
}

// DefaultLoggingConfig returns default logging configuration
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		ExcludePaths: []string{"/health", "/metrics"},
	}
}

// Logging middleware logs requests with timing information
func Logging(l logger.Logger) frankie.Middleware {
	return LoggingWithConfig(l, DefaultLoggingConfig())
}

// LoggingWithConfig middleware logs requests with custom configuration
func LoggingWithConfig(l logger.Logger, config LoggingConfig) frankie.Middleware {
	excludeMap := make(map[string]bool)
	for _, path := range config.ExcludePaths {
		excludeMap[path] = true
	}

	return func(next frankie.Handler) frankie.Handler {
		return func(c *frankie.Context) error {
			if excludeMap[c.Path()] {
				return next(c)
			}

			start := time.Now()

			l.Info("request started",
				logger.String("method", c.Method()),
				logger.String("path", c.Path()),
			)

			err := next(c)

			status := c.Status()
			if err != nil {
				// The error handler decides the wire status, not the
				// context's pre-error state.
				status = errors.GetHTTPStatusCode(err)
			}

			fields := []logger.Field{
				logger.String("method", c.Method()),
				logger.String("path", c.Path()),
				logger.Int("status", status),
				logger.Duration("duration", time.Since(start)),
			}
			if err != nil {
				l.Error("request failed", append(fields, logger.Error(err))...)
				return err
			}

			l.Info("request completed", fields...)
			return nil
		}
	}
}
