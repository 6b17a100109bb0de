// Package sheets_tools implements the MCP tools that read spreadsheet
// content: cell values, metadata, sheet listings, and value search.
//
// Every tool validates its arguments into a typed struct before any
// Google API call is made, and reports failures as structured
// {kind, message} error payloads.
package sheets_tools
