package logger

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format is the output encoding: json (production) or console.
	Format string `mapstructure:"format" default:"json"`
	// File is an optional path for the append-only audit trail. When set,
	// log entries are written to the file in addition to stdout.
	File string `mapstructure:"file" default:""`
}

// New creates a new zap logger based on the configuration.
func New(cfg *Config) (*zap.Logger, error) {
	var config zap.Config

	if cfg.Level == "debug" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}

	// Set format based on configuration
	if cfg.Format == "console" {
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.DisableStacktrace = true
	} else {
		config.Encoding = "json"
	}

	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.MessageKey = "message"

	// Tee the audit trail into a file; zap appends, never truncates.
	if cfg.File != "" {
		config.OutputPaths = append(config.OutputPaths, cfg.File)
	}

	return config.Build()
}

// WithRayID returns a logger with the ray_id field set from the Fiber context.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	rid := c.Locals("ray_id")
	if str, ok := rid.(string); ok && str != "" {
		return l.With(zap.String("ray_id", str))
	}
	return l
}
