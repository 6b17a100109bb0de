package common

import (
	"errors"
	"testing"

	"github.com/okibi/sheets-mcp/internal/google"
)

func wantValidationError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	var gerr *google.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("error = %v, want *google.Error", err)
	}
	if gerr.Kind != google.KindValidation {
		t.Errorf("error kind = %q, want %q", gerr.Kind, google.KindValidation)
	}
}

func TestRequiredString(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]interface{}
		want    string
		wantErr bool
	}{
		{
			name: "present",
			args: map[string]interface{}{"spreadsheet_id": "abc123"},
			want: "abc123",
		},
		{
			name:    "missing",
			args:    map[string]interface{}{},
			wantErr: true,
		},
		{
			name:    "empty",
			args:    map[string]interface{}{"spreadsheet_id": ""},
			wantErr: true,
		},
		{
			name:    "wrong type",
			args:    map[string]interface{}{"spreadsheet_id": 42.0},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RequiredString(tt.args, "spreadsheet_id")
			if tt.wantErr {
				wantValidationError(t, err)
				return
			}
			if err != nil {
				t.Fatalf("RequiredString() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("RequiredString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOptionalString(t *testing.T) {
	got, err := OptionalString(map[string]interface{}{"range": "A1:B2"}, "range")
	if err != nil {
		t.Fatalf("OptionalString() error = %v", err)
	}
	if got != "A1:B2" {
		t.Errorf("OptionalString() = %q, want %q", got, "A1:B2")
	}

	got, err = OptionalString(map[string]interface{}{}, "range")
	if err != nil {
		t.Fatalf("OptionalString() missing key error = %v", err)
	}
	if got != "" {
		t.Errorf("OptionalString() missing key = %q, want empty", got)
	}

	_, err = OptionalString(map[string]interface{}{"range": true}, "range")
	wantValidationError(t, err)
}

func TestOptionalBool(t *testing.T) {
	got, err := OptionalBool(map[string]interface{}{"case_sensitive": false}, "case_sensitive", true)
	if err != nil {
		t.Fatalf("OptionalBool() error = %v", err)
	}
	if got {
		t.Error("OptionalBool() = true, want false")
	}

	got, err = OptionalBool(map[string]interface{}{}, "case_sensitive", true)
	if err != nil {
		t.Fatalf("OptionalBool() missing key error = %v", err)
	}
	if !got {
		t.Error("OptionalBool() missing key should return default true")
	}

	_, err = OptionalBool(map[string]interface{}{"case_sensitive": "yes"}, "case_sensitive", true)
	wantValidationError(t, err)
}

func TestOptionalPositiveInt(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]interface{}
		want    int
		wantErr bool
	}{
		{
			name: "json number",
			args: map[string]interface{}{"limit": 50.0},
			want: 50,
		},
		{
			name: "native int",
			args: map[string]interface{}{"limit": 10},
			want: 10,
		},
		{
			name: "missing uses default",
			args: map[string]interface{}{},
			want: 20,
		},
		{
			name:    "zero rejected",
			args:    map[string]interface{}{"limit": 0.0},
			wantErr: true,
		},
		{
			name:    "negative rejected",
			args:    map[string]interface{}{"limit": -5.0},
			wantErr: true,
		},
		{
			name:    "fractional rejected",
			args:    map[string]interface{}{"limit": 2.5},
			wantErr: true,
		},
		{
			name:    "string rejected",
			args:    map[string]interface{}{"limit": "20"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OptionalPositiveInt(tt.args, "limit", 20)
			if tt.wantErr {
				wantValidationError(t, err)
				return
			}
			if err != nil {
				t.Fatalf("OptionalPositiveInt() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("OptionalPositiveInt() = %d, want %d", got, tt.want)
			}
		})
	}
}
