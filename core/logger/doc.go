// Package logger provides a structured logging facility based on Zap.
//
// Diagnostic logs go to stderr. Operator-facing messages are printed
// separately by core/console, so the default level is warn and routine runs
// stay quiet; --verbose switches to the development (debug) configuration.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithCommand(log, "test-db")
//	log.Info("probe started")
package logger
