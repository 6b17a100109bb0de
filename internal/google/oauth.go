package google

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// tokenDirName is the directory under the user cache dir where the token lives.
const tokenDirName = "sheets-mcp"

// envAPIKey is the environment variable holding the static API key.
const envAPIKey = "GOOGLE_SHEETS_API_KEY"

// HasToken checks if an OAuth token file exists
func HasToken() bool {
	_, err := os.ReadFile(tokenFile())
	return err == nil
}

// APIKey returns the static API key from the environment, or "" if unset
func APIKey() string {
	return strings.TrimSpace(os.Getenv(envAPIKey))
}

// HasAPIKey checks if a static API key is configured
func HasAPIKey() bool {
	return APIKey() != ""
}

// GetAuthURL returns the OAuth URL for user authorization
func GetAuthURL() string {
	conf := getOAuthConfig()
	return conf.AuthCodeURL("state", oauth2.AccessTypeOffline)
}

// SaveToken exchanges an authorization code for tokens and saves them
func SaveToken(ctx context.Context, authCode string) error {
	conf := getOAuthConfig()

	t, err := conf.Exchange(ctx, authCode)
	if err != nil {
		return fmt.Errorf("failed to exchange auth code: %w", err)
	}
	if t.RefreshToken == "" {
		return fmt.Errorf("authorization response did not include a refresh token")
	}

	file := tokenFile()
	if err := os.MkdirAll(filepath.Dir(file), 0700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tokenData := t.AccessToken + " " + t.RefreshToken
	if err := os.WriteFile(file, []byte(tokenData), 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	return nil
}

// getOAuthConfig returns the OAuth2 configuration for the Sheets/Drive scopes.
// Client ID and secret come from the environment so deployments can use their
// own OAuth application.
func getOAuthConfig() *oauth2.Config {
	const OOB = "urn:ietf:wg:oauth:2.0:oob"
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		Endpoint:     google.Endpoint,
		RedirectURL:  OOB,
		Scopes:       ReadonlyScopes,
	}
}

// GetTokenSource returns an OAuth2 token source for the stored token.
// The source refreshes the access token transparently when it expires.
// Returns an AuthError-kind error if no valid token exists or the refresh fails.
func GetTokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	conf := getOAuthConfig()

	slurp, err := os.ReadFile(tokenFile())
	if err != nil {
		return nil, NewError(KindAuth, "no Google OAuth token found; run 'sheets-mcp auth' first")
	}

	tok, err := parseTokenFile(string(slurp))
	if err != nil {
		return nil, NewError(KindAuth, err.Error())
	}

	ts := conf.TokenSource(ctx, tok)

	// Validate the token; an expired access token is refreshed here.
	if _, err := ts.Token(); err != nil {
		return nil, NewError(KindAuth, fmt.Sprintf("cached token is invalid and could not be refreshed: %v", err))
	}

	return ts, nil
}

// parseTokenFile parses the two-field "access refresh" token file format.
func parseTokenFile(data string) (*oauth2.Token, error) {
	f := strings.Fields(strings.TrimSpace(data))
	if len(f) != 2 {
		return nil, fmt.Errorf("invalid token file format: expected two fields, got %d", len(f))
	}
	return &oauth2.Token{
		AccessToken:  f[0],
		TokenType:    "Bearer",
		RefreshToken: f[1],
		Expiry:       time.Unix(1, 0),
	}, nil
}

// GetHTTPClient returns an HTTP client configured with OAuth2 authentication.
// The client is configured to use HTTP/1.1 to avoid HTTP/2 protocol errors.
func GetHTTPClient(ctx context.Context) (*http.Client, error) {
	ts, err := GetTokenSource(ctx)
	if err != nil {
		return nil, err
	}

	client := oauth2.NewClient(ctx, ts)

	// Force HTTP/1.1 by disabling HTTP/2
	transport := client.Transport.(*oauth2.Transport)
	baseTransport := &http.Transport{
		ForceAttemptHTTP2: false,
	}
	transport.Base = baseTransport

	return client, nil
}

func tokenFile() string {
	return filepath.Join(userCacheDir(), tokenDirName, "google.token")
}

func userCacheDir() string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir(), "Library", "Caches")
	case "windows":
		for _, ev := range []string{"TEMP", "TMP"} {
			if v := os.Getenv(ev); v != "" {
				return v
			}
		}
		panic("No Windows TEMP or TMP environment variables found")
	}
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return xdg
	}
	return filepath.Join(homeDir(), ".cache")
}

func homeDir() string {
	if runtime.GOOS == "windows" {
		return os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH")
	}
	return os.Getenv("HOME")
}
