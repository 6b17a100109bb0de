// Package google_tools provides MCP tools for Google OAuth authentication.
//
// The OAuth flow:
//  1. Call google_get_auth_url to get the authorization URL
//  2. User visits the URL and authorizes read-only Sheets and Drive access
//  3. User copies the authorization code
//  4. Call google_save_auth_code with the code to save the token
//
// Once authenticated, all spreadsheet tools work with the saved token, which
// is refreshed automatically as needed. Saving a token also resets the
// server's cached clients so the new credential takes effect immediately.
package google_tools
