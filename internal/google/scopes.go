package google

// ReadonlyScopes are the Google OAuth scopes the server requests. The server
// only ever reads, so the scopes are the read-only variants:
//   - Sheets: read cell data and spreadsheet metadata
//   - Drive: list and search file metadata (no content access)
var ReadonlyScopes = []string{
	"https://www.googleapis.com/auth/spreadsheets.readonly",
	"https://www.googleapis.com/auth/drive.metadata.readonly",
}
