package server

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/okibi/sheets-mcp/internal/drive"
	"github.com/okibi/sheets-mcp/internal/google"
	"github.com/okibi/sheets-mcp/internal/instrumentation"
	"github.com/okibi/sheets-mcp/internal/sheets"
)

// AuthMode identifies which credential kind the session selected.
type AuthMode string

const (
	// AuthModeNone means no usable credential has been selected yet.
	AuthModeNone AuthMode = "none"

	// AuthModeOAuth means an OAuth token is active: private and public
	// spreadsheets are readable and Drive listing is available.
	AuthModeOAuth AuthMode = "oauth"

	// AuthModeAPIKey means a static API key is active: only public
	// spreadsheets are readable and Drive listing is unavailable.
	AuthModeAPIKey AuthMode = "api_key"
)

// ServerContext holds the session state for the MCP server: the selected
// credential and the Google API clients built from it. Exactly one
// credential is active per process; it is selected once and not hot-swapped
// mid-request (re-selection only happens after the auth bootstrap tools
// store a new token).
type ServerContext struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu           sync.RWMutex
	authMode     AuthMode
	sheetsClient *sheets.Client
	driveClient  *drive.Client
	metrics      *instrumentation.Metrics
	auditLogger  *instrumentation.AuditLogger
	shutdown     bool
}

// NewServerContext creates a new server context and attempts to select a
// credential immediately. A missing credential is not fatal here: clients
// are re-selected lazily on first tool use so the auth bootstrap tools can
// run against a credential-less server.
func NewServerContext(ctx context.Context) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	sc := &ServerContext{
		ctx:      shutdownCtx,
		cancel:   cancel,
		authMode: AuthModeNone,
	}

	if err := sc.selectCredential(); err != nil {
		slog.Warn("no usable Google credential at startup; will retry on first tool use",
			"error", err.Error())
	}

	return sc, nil
}

// selectCredential picks the active credential and builds the matching
// clients. Preference order: OAuth token (refreshed transparently), then
// API key. Callers must hold sc.mu or be the constructor.
func (sc *ServerContext) selectCredential() error {
	switch {
	case google.HasToken():
		httpClient, err := google.GetHTTPClient(sc.ctx)
		if err != nil {
			if sc.metrics != nil {
				sc.metrics.RecordCredentialSelection(sc.ctx, string(AuthModeOAuth), instrumentation.StatusError)
			}
			return err
		}
		sheetsClient, err := sheets.NewClient(sc.ctx, httpClient)
		if err != nil {
			return fmt.Errorf("failed to create Sheets client: %w", err)
		}
		driveClient, err := drive.NewClient(sc.ctx, httpClient)
		if err != nil {
			return fmt.Errorf("failed to create Drive client: %w", err)
		}
		sc.sheetsClient = sheetsClient
		sc.driveClient = driveClient
		sc.authMode = AuthModeOAuth

	case google.HasAPIKey():
		sheetsClient, err := sheets.NewClientWithAPIKey(sc.ctx, google.APIKey())
		if err != nil {
			return fmt.Errorf("failed to create Sheets client: %w", err)
		}
		sc.sheetsClient = sheetsClient
		sc.driveClient = nil
		sc.authMode = AuthModeAPIKey

	default:
		return google.NewError(google.KindAuth,
			"no Google credential available: run 'sheets-mcp auth' or set GOOGLE_SHEETS_API_KEY")
	}

	if sc.metrics != nil {
		sc.metrics.RecordCredentialSelection(sc.ctx, string(sc.authMode), instrumentation.StatusSuccess)
	}
	return nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// AuthMode returns the active credential mode
func (sc *ServerContext) AuthMode() AuthMode {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.authMode
}

// SheetsClient returns the Sheets client for the selected credential,
// selecting one lazily if startup selection failed. Returns an auth error
// when no credential is available.
func (sc *ServerContext) SheetsClient() (*sheets.Client, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.sheetsClient != nil {
		return sc.sheetsClient, nil
	}
	if err := sc.selectCredential(); err != nil {
		return nil, err
	}
	return sc.sheetsClient, nil
}

// DriveClient returns the Drive client. In key-only mode Drive listing is
// not a capability of the credential and a capability error is returned
// without any network activity.
func (sc *ServerContext) DriveClient() (*drive.Client, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.driveClient != nil {
		return sc.driveClient, nil
	}
	if sc.sheetsClient == nil {
		if err := sc.selectCredential(); err != nil {
			return nil, err
		}
	}
	if sc.authMode == AuthModeAPIKey {
		return nil, google.NewError(google.KindCapability,
			"listing spreadsheets requires OAuth authentication; the configured API key only permits reading public sheets")
	}
	if sc.driveClient == nil {
		return nil, google.NewError(google.KindAuth, "no Drive client available")
	}
	return sc.driveClient, nil
}

// ResetClients drops the cached clients so the next accessor call re-selects
// the credential. Called after the auth bootstrap stores a new token.
func (sc *ServerContext) ResetClients() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.sheetsClient = nil
	sc.driveClient = nil
	sc.authMode = AuthModeNone
}

// SetClients installs pre-built clients and mode. Intended for tests.
func (sc *ServerContext) SetClients(mode AuthMode, s *sheets.Client, d *drive.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.authMode = mode
	sc.sheetsClient = s
	sc.driveClient = d
}

// Metrics returns the metrics recorder, or nil if instrumentation is off
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// SetMetrics sets the metrics recorder used by tool instrumentation
func (sc *ServerContext) SetMetrics(m *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = m
}

// AuditLogger returns the audit logger, or nil if audit logging is off
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.auditLogger
}

// SetAuditLogger sets the audit logger used by tool instrumentation
func (sc *ServerContext) SetAuditLogger(al *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.auditLogger = al
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
