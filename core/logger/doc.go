// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and integrates with the Fiber web framework.
// Every mapping decision, inventory decrement, and load is recorded through
// this logger, forming the append-only audit trail of the service.
//
// # Context Awareness
//
// The logger is designed to be context-aware, specifically regarding RayIDs
// (Request IDs). The WithRayID helper extracts the RayID from a Fiber context
// and attaches it to the log entry, ensuring that all logs related to a
// specific request can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//   - File: optional path to tee the audit trail into (append-only)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", File: "sku_mapping.log"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
