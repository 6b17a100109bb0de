// Package sheets provides a read-only client for the Google Sheets API.
//
// The client wraps spreadsheets.get and spreadsheets.values.get and reshapes
// responses into plain JSON-serializable types:
//   - Reading cell values from a range or a whole sheet
//   - Spreadsheet metadata (title, sheet list, grid dimensions)
//   - Listing the sheets/tabs of a spreadsheet
//   - In-memory substring search over cell values
//
// A client is constructed either from an OAuth-authorized HTTP client
// (private and public spreadsheets) or from a static API key (public
// spreadsheets only). API failures are classified through the google
// package's error taxonomy before being returned.
package sheets
