package logging

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
)

// Common log attribute keys for consistent naming across the codebase.
const (
	KeyOperation   = "operation"
	KeyService     = "service"
	KeySpreadsheet = "spreadsheet"
	KeySheet       = "sheet"
	KeyRange       = "range"
	KeyDuration    = "duration"
	KeyStatus      = "status"
	KeyError       = "error"
	KeyTool        = "tool"
)

// Status values for consistent logging.
// Note: These are intentionally duplicated from instrumentation package
// to avoid circular dependencies (instrumentation imports logging).
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// WithOperation returns a logger with the operation attribute set.
func WithOperation(logger *slog.Logger, operation string) *slog.Logger {
	return logger.With(slog.String(KeyOperation, operation))
}

// WithTool returns a logger with the tool attribute set.
func WithTool(logger *slog.Logger, tool string) *slog.Logger {
	return logger.With(slog.String(KeyTool, tool))
}

// WithService returns a logger with the service attribute set.
func WithService(logger *slog.Logger, service string) *slog.Logger {
	return logger.With(slog.String(KeyService, service))
}

// WithSpreadsheet returns a logger with the spreadsheet attribute set.
// The ID is truncated to avoid reproducing full document identifiers
// in general log streams.
func WithSpreadsheet(logger *slog.Logger, spreadsheetID string) *slog.Logger {
	return logger.With(slog.String(KeySpreadsheet, TruncateID(spreadsheetID)))
}

// Operation returns a slog attribute for the operation name.
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Service returns a slog attribute for the service name.
func Service(svc string) slog.Attr {
	return slog.String(KeyService, svc)
}

// Spreadsheet returns a slog attribute for a truncated spreadsheet ID.
func Spreadsheet(spreadsheetID string) slog.Attr {
	return slog.String(KeySpreadsheet, TruncateID(spreadsheetID))
}

// Sheet returns a slog attribute for the sheet/tab name.
func Sheet(name string) slog.Attr {
	return slog.String(KeySheet, name)
}

// Range returns a slog attribute for an A1 range.
func Range(a1 string) slog.Attr {
	return slog.String(KeyRange, a1)
}

// Tool returns a slog attribute for the tool name.
func Tool(tool string) slog.Attr {
	return slog.String(KeyTool, tool)
}

// Status returns a slog attribute for the status.
func Status(status string) slog.Attr {
	return slog.String(KeyStatus, status)
}

// Err returns a slog attribute for an error.
// If err is nil, returns an empty Group attribute that will be omitted from output.
// This allows safely passing Err(maybeNilErr) without adding empty attributes.
//
// Usage:
//
//	logger.Info("operation", logging.Err(err))  // Safe even if err is nil
func Err(err error) slog.Attr {
	if err == nil {
		// Return an empty Group that slog will omit from output
		return slog.Group("")
	}
	return slog.String(KeyError, err.Error())
}

// idPrefixLen is how much of a document ID survives truncation.
// Note: intentionally duplicated from the instrumentation package to
// avoid a circular dependency.
const idPrefixLen = 8

// TruncateID reduces a document identifier to a short prefix for logging.
// This allows correlation of log entries without exposing full IDs.
func TruncateID(id string) string {
	if id == "" {
		return ""
	}
	if len(id) <= idPrefixLen {
		return id
	}
	return id[:idPrefixLen] + "..."
}

// AnonymizeID returns a hashed representation of a document ID for logging
// purposes. Unlike TruncateID, the result cannot be matched against a known
// ID by prefix; use this where even partial identifiers must not appear.
func AnonymizeID(id string) string {
	if id == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(id))
	return "doc:" + hex.EncodeToString(hash[:8])
}

// SanitizeToken returns a masked version of a token for logging.
// It returns a length indicator without exposing any token content,
// as even partial token prefixes (like JWT headers) can aid attacks.
func SanitizeToken(token string) string {
	if token == "" {
		return "<empty>"
	}
	return fmt.Sprintf("[token:%d chars]", len(token))
}
