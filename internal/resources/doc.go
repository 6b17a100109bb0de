// Package resources provides MCP resources exposing server capability data.
// Resources are read-only data sources that MCP clients can fetch, such as
// the active authentication mode and the tools it enables.
package resources
