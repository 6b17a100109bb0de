package sheets_tools

import (
	"errors"
	"testing"

	"github.com/okibi/sheets-mcp/internal/google"
	"github.com/okibi/sheets-mcp/internal/sheets"
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

func TestParseReadSheetDataArgs(t *testing.T) {
	tests := []struct {
		name    string
		raw     map[string]interface{}
		want    readSheetDataArgs
		wantErr bool
	}{
		{
			name: "all arguments",
			raw: map[string]interface{}{
				"spreadsheet_id": "abc123",
				"range":          "Sheet1!A1:C10",
				"render_option":  "FORMULA",
			},
			want: readSheetDataArgs{
				SpreadsheetID: "abc123",
				Range:         "Sheet1!A1:C10",
				RenderOption:  sheets.RenderFormula,
			},
		},
		{
			name: "defaults applied",
			raw: map[string]interface{}{
				"spreadsheet_id": "abc123",
			},
			want: readSheetDataArgs{
				SpreadsheetID: "abc123",
				RenderOption:  sheets.RenderFormattedValue,
			},
		},
		{
			name:    "missing spreadsheet_id",
			raw:     map[string]interface{}{"range": "A1:B2"},
			wantErr: true,
		},
		{
			name: "invalid render option",
			raw: map[string]interface{}{
				"spreadsheet_id": "abc123",
				"render_option":  "PRETTY",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseReadSheetDataArgs(tt.raw)
			if tt.wantErr {
				wantValidationError(t, err)
				return
			}
			if err != nil {
				t.Fatalf("parseReadSheetDataArgs() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("parseReadSheetDataArgs() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseSearchSheetDataArgs(t *testing.T) {
	tests := []struct {
		name    string
		raw     map[string]interface{}
		want    searchSheetDataArgs
		wantErr bool
	}{
		{
			name: "defaults to case-sensitive all sheets",
			raw: map[string]interface{}{
				"spreadsheet_id": "abc123",
				"search_term":    "Revenue",
			},
			want: searchSheetDataArgs{
				SpreadsheetID: "abc123",
				SearchTerm:    "Revenue",
				CaseSensitive: true,
			},
		},
		{
			name: "case sensitivity disabled",
			raw: map[string]interface{}{
				"spreadsheet_id": "abc123",
				"search_term":    "revenue",
				"sheet_name":     "Q1",
				"case_sensitive": false,
			},
			want: searchSheetDataArgs{
				SpreadsheetID: "abc123",
				SearchTerm:    "revenue",
				SheetName:     "Q1",
				CaseSensitive: false,
			},
		},
		{
			name:    "missing search term",
			raw:     map[string]interface{}{"spreadsheet_id": "abc123"},
			wantErr: true,
		},
		{
			name:    "empty search term",
			raw:     map[string]interface{}{"spreadsheet_id": "abc123", "search_term": ""},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSearchSheetDataArgs(tt.raw)
			if tt.wantErr {
				wantValidationError(t, err)
				return
			}
			if err != nil {
				t.Fatalf("parseSearchSheetDataArgs() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("parseSearchSheetDataArgs() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseGetRangeDataArgs(t *testing.T) {
	// range is mandatory here, unlike read_sheet_data
	_, err := parseGetRangeDataArgs(map[string]interface{}{
		"spreadsheet_id": "abc123",
	})
	wantValidationError(t, err)

	got, err := parseGetRangeDataArgs(map[string]interface{}{
		"spreadsheet_id": "abc123",
		"range":          "Sheet1!B2:D4",
	})
	if err != nil {
		t.Fatalf("parseGetRangeDataArgs() error = %v", err)
	}
	if got.Range != "Sheet1!B2:D4" {
		t.Errorf("Range = %q, want %q", got.Range, "Sheet1!B2:D4")
	}
	if got.RenderOption != sheets.RenderFormattedValue {
		t.Errorf("RenderOption = %q, want default %q", got.RenderOption, sheets.RenderFormattedValue)
	}
}

func TestParseRenderOption(t *testing.T) {
	tests := []struct {
		name    string
		raw     map[string]interface{}
		want    string
		wantErr bool
	}{
		{"absent uses default", map[string]interface{}{}, sheets.RenderFormattedValue, false},
		{"formatted", map[string]interface{}{"render_option": "FORMATTED_VALUE"}, sheets.RenderFormattedValue, false},
		{"unformatted", map[string]interface{}{"render_option": "UNFORMATTED_VALUE"}, sheets.RenderUnformattedValue, false},
		{"formula", map[string]interface{}{"render_option": "FORMULA"}, sheets.RenderFormula, false},
		{"lowercase rejected", map[string]interface{}{"render_option": "formula"}, "", true},
		{"unknown rejected", map[string]interface{}{"render_option": "RAW"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRenderOption(tt.raw)
			if tt.wantErr {
				wantValidationError(t, err)
				return
			}
			if err != nil {
				t.Fatalf("parseRenderOption() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("parseRenderOption() = %q, want %q", got, tt.want)
			}
		})
	}
}
