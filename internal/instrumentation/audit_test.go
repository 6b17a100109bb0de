package instrumentation

import (
	"context"
	"errors"
	"log/slog"
	"testing"
)

// Test constants to reduce string repetition and satisfy goconst
const (
	testSpreadsheetID = "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"
	testSpreadsheet   = "1BxiMVs0..."
	testSheetName     = "Revenue"
	testTraceID       = "abc123def456"
	testSpanID        = "span789"
	testToolRead      = "read_sheet_data"
	testToolSearch    = "search_sheet_data"
	testToolList      = "list_spreadsheets"
)

func TestToolInvocation_NewAndComplete(t *testing.T) {
	ti := NewToolInvocation(testToolRead)

	// Verify initial state
	if ti.Tool != testToolRead {
		t.Errorf("Tool = %q, want %q", ti.Tool, testToolRead)
	}
	if ti.StartTime.IsZero() {
		t.Error("StartTime should not be zero")
	}

	// Complete the invocation - duration should be calculated from StartTime
	ti.CompleteSuccess()

	if !ti.Success {
		t.Error("Success should be true")
	}
	// Duration is calculated from StartTime, so it should be >= 0
	// We don't check for > 0 as the test may complete instantly
	if ti.Duration < 0 {
		t.Error("Duration should not be negative")
	}
	if ti.Error != "" {
		t.Errorf("Error should be empty, got %q", ti.Error)
	}
}

func TestToolInvocation_CompleteWithError(t *testing.T) {
	ti := NewToolInvocation(testToolSearch)
	err := errors.New("permission denied")

	ti.CompleteWithError(err)

	if ti.Success {
		t.Error("Success should be false")
	}
	if ti.Error != "permission denied" {
		t.Errorf("Error = %q, want %q", ti.Error, "permission denied")
	}
}

func TestToolInvocation_WithSpreadsheet(t *testing.T) {
	ti := NewToolInvocation(testToolRead)
	ti.WithSpreadsheet(testSpreadsheetID, testSheetName)

	if ti.SpreadsheetID != testSpreadsheetID {
		t.Errorf("SpreadsheetID = %q, want %q", ti.SpreadsheetID, testSpreadsheetID)
	}
	if ti.SheetName != testSheetName {
		t.Errorf("SheetName = %q, want %q", ti.SheetName, testSheetName)
	}
}

func TestToolInvocation_WithService(t *testing.T) {
	ti := NewToolInvocation(testToolRead)
	ti.WithService(ServiceSheets, OperationRead)

	if ti.ServiceName != ServiceSheets {
		t.Errorf("ServiceName = %q, want %q", ti.ServiceName, ServiceSheets)
	}
	if ti.Operation != OperationRead {
		t.Errorf("Operation = %q, want %q", ti.Operation, OperationRead)
	}
}

func TestToolInvocation_SpreadsheetRef(t *testing.T) {
	ti := NewToolInvocation("test")
	ti.SpreadsheetID = testSpreadsheetID

	if ref := ti.SpreadsheetRef(); ref != testSpreadsheet {
		t.Errorf("SpreadsheetRef() = %q, want %q", ref, testSpreadsheet)
	}
}

func TestToolInvocation_Status(t *testing.T) {
	ti := NewToolInvocation("test")

	ti.Success = true
	if status := ti.Status(); status != StatusSuccess {
		t.Errorf("Status() = %q, want %q", status, StatusSuccess)
	}

	ti.Success = false
	if status := ti.Status(); status != StatusError {
		t.Errorf("Status() = %q, want %q", status, StatusError)
	}
}

func TestToolInvocation_LogAttrs(t *testing.T) {
	ti := NewToolInvocation(testToolList)
	ti.WithSpreadsheet(testSpreadsheetID, "").
		WithService(ServiceDrive, OperationList).
		CompleteSuccess()
	ti.TraceID = testTraceID

	attrs := ti.LogAttrs()

	// Verify we have the expected attributes
	attrMap := make(map[string]slog.Attr)
	for _, attr := range attrs {
		attrMap[attr.Key] = attr
	}

	// Check required attributes
	requiredKeys := []string{"tool", "duration", "success"}
	for _, key := range requiredKeys {
		if _, ok := attrMap[key]; !ok {
			t.Errorf("Missing required attribute: %s", key)
		}
	}

	// Check cardinality-controlled values
	if ref := attrMap["spreadsheet"].Value.String(); ref != testSpreadsheet {
		t.Errorf("spreadsheet = %q, want %q", ref, testSpreadsheet)
	}

	// Check service-related attributes
	if service := attrMap["service"].Value.String(); service != ServiceDrive {
		t.Errorf("service = %q, want %q", service, ServiceDrive)
	}
	if operation := attrMap["operation"].Value.String(); operation != OperationList {
		t.Errorf("operation = %q, want %q", operation, OperationList)
	}
}

func TestToolInvocation_LogAttrs_WithError(t *testing.T) {
	ti := NewToolInvocation(testToolSearch)
	ti.WithSpreadsheet(testSpreadsheetID, testSheetName).
		WithErrorKind("not_found_error").
		CompleteWithError(errors.New("test error"))

	attrs := ti.LogAttrs()

	attrMap := make(map[string]slog.Attr)
	for _, attr := range attrs {
		attrMap[attr.Key] = attr
	}

	// Check error attributes are present
	if _, ok := attrMap["error"]; !ok {
		t.Error("Missing error attribute")
	}
	if errVal := attrMap["error"].Value.String(); errVal != "test error" {
		t.Errorf("error = %q, want %q", errVal, "test error")
	}
	if kind := attrMap["error_kind"].Value.String(); kind != "not_found_error" {
		t.Errorf("error_kind = %q, want %q", kind, "not_found_error")
	}
}

func TestToolInvocation_LogAttrs_MinimalFields(t *testing.T) {
	ti := NewToolInvocation(testToolRead)
	ti.CompleteSuccess()

	attrs := ti.LogAttrs()

	// Verify minimal attributes are present
	attrMap := make(map[string]slog.Attr)
	for _, attr := range attrs {
		attrMap[attr.Key] = attr
	}

	// These should NOT be present when not set
	if _, ok := attrMap["spreadsheet"]; ok {
		t.Error("spreadsheet should not be present when empty")
	}
	if _, ok := attrMap["service"]; ok {
		t.Error("service should not be present when empty")
	}
	if _, ok := attrMap["operation"]; ok {
		t.Error("operation should not be present when empty")
	}
	if _, ok := attrMap["trace_id"]; ok {
		t.Error("trace_id should not be present when empty")
	}
}

func TestToolInvocation_LogAuditAttrs(t *testing.T) {
	ti := NewToolInvocation(testToolRead)
	ti.WithSpreadsheet(testSpreadsheetID, testSheetName).
		WithService(ServiceSheets, OperationRead).
		CompleteSuccess()
	ti.TraceID = testTraceID
	ti.SpanID = testSpanID

	attrs := ti.LogAuditAttrs()

	// Verify we have the expected attributes
	attrMap := make(map[string]slog.Attr)
	for _, attr := range attrs {
		attrMap[attr.Key] = attr
	}

	// Check that full values are present (not cardinality-controlled)
	if id := attrMap["spreadsheet_id"].Value.String(); id != testSpreadsheetID {
		t.Errorf("spreadsheet_id = %q, want %q", id, testSpreadsheetID)
	}
	if sheet := attrMap["sheet"].Value.String(); sheet != testSheetName {
		t.Errorf("sheet = %q, want %q", sheet, testSheetName)
	}

	// Check trace context
	if traceID := attrMap["trace_id"].Value.String(); traceID != testTraceID {
		t.Errorf("trace_id = %q, want %q", traceID, testTraceID)
	}
	if spanID := attrMap["span_id"].Value.String(); spanID != testSpanID {
		t.Errorf("span_id = %q, want %q", spanID, testSpanID)
	}
}

func TestToolInvocation_MethodChaining(t *testing.T) {
	ti := NewToolInvocation(testToolRead).
		WithSpreadsheet(testSpreadsheetID, "").
		WithService(ServiceSheets, OperationRead).
		CompleteSuccess()

	if ti.Tool != testToolRead {
		t.Errorf("Tool = %q, want %q", ti.Tool, testToolRead)
	}
	if ti.SpreadsheetID != testSpreadsheetID {
		t.Errorf("SpreadsheetID = %q, want %q", ti.SpreadsheetID, testSpreadsheetID)
	}
	if ti.ServiceName != ServiceSheets {
		t.Errorf("ServiceName = %q, want %q", ti.ServiceName, ServiceSheets)
	}
	if !ti.Success {
		t.Error("Success should be true")
	}
}

func TestAuditLogger_New(t *testing.T) {
	// Test with nil logger (should use default)
	al := NewAuditLogger(nil)
	if al.logger == nil {
		t.Error("logger should not be nil when created with nil")
	}

	// Test with custom logger
	logger := slog.Default()
	al = NewAuditLogger(logger)
	if al.logger != logger {
		t.Error("logger should be the provided logger")
	}
}

func TestAuditLogger_LogToolInvocation_Success(t *testing.T) {
	// This test verifies the method runs without panic
	al := NewAuditLogger(slog.Default())
	ti := NewToolInvocation(testToolRead).
		WithSpreadsheet(testSpreadsheetID, testSheetName).
		CompleteSuccess()

	// Should not panic
	al.LogToolInvocation(ti)
}

func TestAuditLogger_LogToolInvocation_Failure(t *testing.T) {
	// This test verifies the method runs without panic for failures
	al := NewAuditLogger(slog.Default())
	ti := NewToolInvocation(testToolSearch).
		WithSpreadsheet(testSpreadsheetID, "").
		CompleteWithError(errors.New("test error"))

	// Should not panic
	al.LogToolInvocation(ti)
}

func TestAuditLogger_LogToolAudit(t *testing.T) {
	// This test verifies the method runs without panic
	al := NewAuditLogger(slog.Default())
	ti := NewToolInvocation(testToolList).
		WithService(ServiceDrive, OperationList).
		CompleteSuccess()
	ti.TraceID = testTraceID

	// Should not panic
	al.LogToolAudit(ti)
}

func TestAuditLogger_Disabled(t *testing.T) {
	al := NewAuditLogger(slog.Default())
	al.SetEnabled(false)

	ti := NewToolInvocation(testToolRead).CompleteSuccess()

	// Should not panic and should be a no-op
	al.LogToolInvocation(ti)
	al.LogToolAudit(ti)
}

func TestTraceIDFromContext_NoSpan(t *testing.T) {
	ctx := context.Background()
	traceID := TraceIDFromContext(ctx)

	if traceID != "" {
		t.Errorf("TraceIDFromContext with no span = %q, want empty string", traceID)
	}
}

func TestToolInvocation_WithSpanContext_NoSpan(t *testing.T) {
	ctx := context.Background()
	ti := NewToolInvocation("test").WithSpanContext(ctx)

	if ti.TraceID != "" {
		t.Errorf("TraceID = %q, want empty string", ti.TraceID)
	}
	if ti.SpanID != "" {
		t.Errorf("SpanID = %q, want empty string", ti.SpanID)
	}
}

func TestToolInvocation_Complete_NilError(t *testing.T) {
	ti := NewToolInvocation("test")
	ti.Complete(true, nil)

	if ti.Error != "" {
		t.Errorf("Error = %q, want empty string", ti.Error)
	}
}
