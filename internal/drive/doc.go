// Package drive provides a client for discovering Google Spreadsheets
// through the Google Drive API.
//
// Only two read operations are exposed:
//   - Listing the spreadsheets accessible to the authenticated user
//   - Searching spreadsheets by name (exact or substring)
//
// Both are backed by files.list filtered to the spreadsheet MIME type.
// Drive listing requires an OAuth credential; an API-key client cannot see
// a user's files, so the server never constructs this client in key-only
// mode and the corresponding tools report a capability error instead.
package drive
