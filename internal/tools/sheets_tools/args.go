package sheets_tools

import (
	"github.com/okibi/sheets-mcp/internal/google"
	"github.com/okibi/sheets-mcp/internal/sheets"
	"github.com/okibi/sheets-mcp/internal/tools/common"
)

// Each tool parses its raw argument map into a typed struct before doing
// anything else, so handlers operate on validated values only.

type readSheetDataArgs struct {
	SpreadsheetID string
	Range         string
	RenderOption  string
}

func parseReadSheetDataArgs(raw map[string]interface{}) (readSheetDataArgs, error) {
	var args readSheetDataArgs
	var err error

	if args.SpreadsheetID, err = common.RequiredString(raw, "spreadsheet_id"); err != nil {
		return args, err
	}
	if args.Range, err = common.OptionalString(raw, "range"); err != nil {
		return args, err
	}
	if args.RenderOption, err = parseRenderOption(raw); err != nil {
		return args, err
	}
	return args, nil
}

type getSheetMetadataArgs struct {
	SpreadsheetID string
}

func parseGetSheetMetadataArgs(raw map[string]interface{}) (getSheetMetadataArgs, error) {
	var args getSheetMetadataArgs
	var err error

	args.SpreadsheetID, err = common.RequiredString(raw, "spreadsheet_id")
	return args, err
}

type listSheetsArgs struct {
	SpreadsheetID string
}

func parseListSheetsArgs(raw map[string]interface{}) (listSheetsArgs, error) {
	var args listSheetsArgs
	var err error

	args.SpreadsheetID, err = common.RequiredString(raw, "spreadsheet_id")
	return args, err
}

type searchSheetDataArgs struct {
	SpreadsheetID string
	SearchTerm    string
	SheetName     string
	CaseSensitive bool
}

func parseSearchSheetDataArgs(raw map[string]interface{}) (searchSheetDataArgs, error) {
	var args searchSheetDataArgs
	var err error

	if args.SpreadsheetID, err = common.RequiredString(raw, "spreadsheet_id"); err != nil {
		return args, err
	}
	if args.SearchTerm, err = common.RequiredString(raw, "search_term"); err != nil {
		return args, err
	}
	if args.SheetName, err = common.OptionalString(raw, "sheet_name"); err != nil {
		return args, err
	}
	// Matching is case-sensitive unless explicitly disabled
	if args.CaseSensitive, err = common.OptionalBool(raw, "case_sensitive", true); err != nil {
		return args, err
	}
	return args, nil
}

type getRangeDataArgs struct {
	SpreadsheetID string
	Range         string
	RenderOption  string
}

func parseGetRangeDataArgs(raw map[string]interface{}) (getRangeDataArgs, error) {
	var args getRangeDataArgs
	var err error

	if args.SpreadsheetID, err = common.RequiredString(raw, "spreadsheet_id"); err != nil {
		return args, err
	}
	if args.Range, err = common.RequiredString(raw, "range"); err != nil {
		return args, err
	}
	if args.RenderOption, err = parseRenderOption(raw); err != nil {
		return args, err
	}
	return args, nil
}

// parseRenderOption extracts and validates the optional render_option
// argument, applying the FORMATTED_VALUE default. Validation happens here,
// before the request goes anywhere near the network.
func parseRenderOption(raw map[string]interface{}) (string, error) {
	opt, err := common.OptionalString(raw, "render_option")
	if err != nil {
		return "", err
	}
	if opt == "" {
		return sheets.RenderFormattedValue, nil
	}
	if !sheets.ValidRenderOption(opt) {
		return "", google.Errorf(google.KindValidation,
			"render_option must be one of %s, %s, %s",
			sheets.RenderFormattedValue, sheets.RenderUnformattedValue, sheets.RenderFormula)
	}
	return opt, nil
}
