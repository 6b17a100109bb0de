// Package google provides credential management for the Google Sheets and
// Drive APIs.
//
// Two credential kinds are supported:
//   - An OAuth2 token stored on disk (access + refresh token), refreshed
//     transparently through an oauth2.TokenSource. This grants read access to
//     private and public spreadsheets and to Drive file listing.
//   - A static API key from the GOOGLE_SHEETS_API_KEY environment variable,
//     which grants read access to public spreadsheets only.
//
// The interactive OAuth authorization flow itself lives outside this package;
// callers complete it via GetAuthURL and SaveToken (see the auth command),
// and this package only consumes the resulting token file.
//
// The package also defines the error taxonomy used across the server to
// surface failures as structured {kind, message} results.
package google
