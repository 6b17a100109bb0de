// Package logging provides structured logging utilities for the sheets-mcp application.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - Document identifier sanitization (truncation and hashing)
//   - Consistent attribute naming across the codebase
//   - Logger adapter interface for flexibility
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "sheets.read")
//	logger.Info("reading range",
//	    logging.Status("success"))
//
// Sanitize sensitive data before logging:
//
//	logger.Info("spreadsheet accessed",
//	    logging.Spreadsheet(spreadsheetID))
//
// # Security Considerations
//
// This package is designed with security in mind:
//   - Spreadsheet IDs are truncated or hashed to limit identifier leakage while
//     allowing correlation
//   - Tokens are never logged directly
package logging
