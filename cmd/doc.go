// Package cmd implements the command-line interface for sheets-mcp.
//
// This package provides the following commands:
//   - serve: Start the MCP server exposing Google Sheets and Drive tools
//   - auth: Run the interactive OAuth bootstrap and save the token
//   - version: Display version information
//
// The serve command is the default command when no subcommand is specified.
package cmd
