package instrumentation

// Cardinality management helpers for metrics and logs.
// These functions reduce high-cardinality label values to prevent metrics explosion.
//
// # Warning
//
// High cardinality in metrics can cause:
// - Increased memory usage in Prometheus/metrics backends
// - Slower query performance
// - Higher storage costs
//
// Always use these helpers when recording metrics with spreadsheet identifiers.

// spreadsheetIDPrefixLen is how much of a spreadsheet ID survives truncation.
// Drive file IDs are 44 characters; eight is enough to correlate log lines
// without reproducing the full identifier.
const spreadsheetIDPrefixLen = 8

// TruncateSpreadsheetID reduces a spreadsheet ID to a short prefix for
// lower-cardinality logging.
//
// Example:
//
//	TruncateSpreadsheetID("1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms")  // "1BxiMVs0..."
//	TruncateSpreadsheetID("short")                                          // "short"
//	TruncateSpreadsheetID("")                                               // "unknown"
func TruncateSpreadsheetID(id string) string {
	if id == "" {
		return "unknown"
	}
	if len(id) <= spreadsheetIDPrefixLen {
		return id
	}
	return id[:spreadsheetIDPrefixLen] + "..."
}

// Common operation types for Google API metrics.
// Status and Service constants are defined in config.go.
const (
	OperationList     = "list"
	OperationGet      = "get"
	OperationRead     = "read"
	OperationSearch   = "search"
	OperationMetadata = "metadata"
)
