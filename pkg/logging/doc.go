// Package logging provides structured logging utilities for datagen.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// so every command logs the same way. It supports environment-based log level
// configuration, module/version context injection, and source location
// tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger; an empty level falls back to LOG_LEVEL:
//
//	logging.SetDefaultStructuredLoggerWithLevel("datagen", "v1.0.0", "warn")
//	slog.Info("records generated", "count", n)
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity when no
// explicit level is given:
//
//	LOG_LEVEL=debug datagen generate --config data.toml
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "records emitted",
//	    "module": "datagen",
//	    "version": "v1.0.0",
//	    "files": 42
//	}
package logging
