package instrumentation

import (
	"context"
	"testing"
	"time"
)

func newTestMetricsProvider(t *testing.T) (*Provider, context.Context) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	provider, err := NewProvider(ctx, Config{
		ServiceName:     "test-service",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: "prometheus",
		TracingExporter: "none",
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	t.Cleanup(func() { _ = provider.Shutdown(ctx) })

	return provider, ctx
}

func TestMetrics_RecordHTTPRequest(t *testing.T) {
	provider, ctx := newTestMetricsProvider(t)

	metrics := provider.Metrics()
	if metrics == nil {
		t.Fatal("expected metrics to be non-nil")
	}

	// Should not panic
	metrics.RecordHTTPRequest(ctx, "GET", "/mcp", 200, 100*time.Millisecond)
	metrics.RecordHTTPRequest(ctx, "POST", "/mcp", 500, 50*time.Millisecond)
}

func TestMetrics_RecordGoogleAPIOperation(t *testing.T) {
	provider, ctx := newTestMetricsProvider(t)
	metrics := provider.Metrics()

	// Should not panic
	metrics.RecordGoogleAPIOperation(ctx, ServiceSheets, OperationRead, StatusSuccess, 200*time.Millisecond)
	metrics.RecordGoogleAPIOperation(ctx, ServiceSheets, OperationMetadata, StatusError, 500*time.Millisecond)
	metrics.RecordGoogleAPIOperation(ctx, ServiceDrive, OperationList, StatusSuccess, 100*time.Millisecond)
}

func TestMetrics_RecordOAuthAuth(t *testing.T) {
	provider, ctx := newTestMetricsProvider(t)
	metrics := provider.Metrics()

	// Should not panic
	metrics.RecordOAuthAuth(ctx, OAuthResultSuccess)
	metrics.RecordOAuthAuth(ctx, OAuthResultFailure)
}

func TestMetrics_RecordCredentialSelection(t *testing.T) {
	provider, ctx := newTestMetricsProvider(t)
	metrics := provider.Metrics()

	// Should not panic
	metrics.RecordCredentialSelection(ctx, "oauth", StatusSuccess)
	metrics.RecordCredentialSelection(ctx, "api_key", StatusSuccess)
	metrics.RecordCredentialSelection(ctx, "oauth", StatusError)
}

func TestMetrics_RecordToolInvocation(t *testing.T) {
	provider, ctx := newTestMetricsProvider(t)
	metrics := provider.Metrics()

	// Should not panic
	metrics.RecordToolInvocation(ctx, "read_sheet_data", StatusSuccess, 150*time.Millisecond)
	metrics.RecordToolInvocation(ctx, "list_spreadsheets", StatusError, 75*time.Millisecond)
}

func TestMetrics_RecordToolError(t *testing.T) {
	provider, ctx := newTestMetricsProvider(t)
	metrics := provider.Metrics()

	// Should not panic
	metrics.RecordToolError(ctx, "read_sheet_data", "validation_error")
	metrics.RecordToolError(ctx, "list_spreadsheets", "capability_error")
}

func TestMetrics_RecordToolInvocationWithSpreadsheet(t *testing.T) {
	provider, ctx := newTestMetricsProvider(t)
	metrics := provider.Metrics()

	// Should not panic whether or not detailed labels are enabled
	metrics.RecordToolInvocationWithSpreadsheet(ctx, "read_sheet_data", StatusSuccess,
		"1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms", 100*time.Millisecond)
	metrics.RecordToolInvocationWithSpreadsheet(ctx, "read_sheet_data", StatusSuccess,
		"", 100*time.Millisecond)
}

func TestMetrics_ActiveSessions(t *testing.T) {
	provider, ctx := newTestMetricsProvider(t)
	metrics := provider.Metrics()

	// Should not panic
	metrics.IncrementActiveSessions(ctx)
	metrics.DecrementActiveSessions(ctx)
}

func TestMetrics_NoOpWhenUninitialized(t *testing.T) {
	ctx := context.Background()
	metrics := &Metrics{}

	// None of these should panic on a zero-value recorder
	metrics.RecordHTTPRequest(ctx, "GET", "/mcp", 200, time.Millisecond)
	metrics.RecordGoogleAPIOperation(ctx, ServiceSheets, OperationRead, StatusSuccess, time.Millisecond)
	metrics.RecordOAuthAuth(ctx, OAuthResultSuccess)
	metrics.RecordCredentialSelection(ctx, "oauth", StatusSuccess)
	metrics.RecordToolInvocation(ctx, "read_sheet_data", StatusSuccess, time.Millisecond)
	metrics.RecordToolError(ctx, "read_sheet_data", "transient_error")
	metrics.RecordToolInvocationWithSpreadsheet(ctx, "read_sheet_data", StatusSuccess, "abc", time.Millisecond)
	metrics.IncrementActiveSessions(ctx)
	metrics.DecrementActiveSessions(ctx)
}
