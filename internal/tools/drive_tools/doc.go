// Package drive_tools provides MCP tools for discovering spreadsheets
// through the Google Drive API: list_spreadsheets and
// search_spreadsheets_by_name.
//
// Both tools require OAuth credentials. When the server runs with only an
// API key the handlers return a capability error before making any network
// call, since Drive listing has no API-key mode.
package drive_tools
