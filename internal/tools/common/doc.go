// Package common provides shared utilities for MCP tool implementations.
// It contains argument extraction helpers, error result formatting, and
// instrumentation wrappers used across all tool packages to avoid code
// duplication and ensure consistent behavior.
//
// Argument helpers validate types and values before any network call is
// made, so malformed requests fail fast with a validation_error payload.
package common
