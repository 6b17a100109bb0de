package sheets_tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/okibi/sheets-mcp/internal/instrumentation"
	"github.com/okibi/sheets-mcp/internal/server"
	"github.com/okibi/sheets-mcp/internal/sheets"
	"github.com/okibi/sheets-mcp/internal/tools/common"
)

// RegisterSheetsTools registers all spreadsheet content tools with the MCP server
func RegisterSheetsTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Read sheet data tool
	readSheetDataTool := mcp.NewTool("read_sheet_data",
		mcp.WithDescription("Read cell values from a Google Spreadsheet. When no range is given, the entire first sheet is read."),
		mcp.WithString("spreadsheet_id",
			mcp.Required(),
			mcp.Description("The ID of the spreadsheet (from its URL)"),
		),
		mcp.WithString("range",
			mcp.Description("A1 notation range to read (e.g. 'Sheet1!A1:C10'). Omit to read the whole first sheet."),
		),
		mcp.WithString("render_option",
			mcp.Description("How values are rendered: FORMATTED_VALUE (default), UNFORMATTED_VALUE, or FORMULA"),
		),
	)

	s.AddTool(readSheetDataTool, common.InstrumentedToolHandlerWithService(
		"read_sheet_data", instrumentation.ServiceSheets, instrumentation.OperationRead, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleReadSheetData(ctx, request, sc)
		}))

	// Get sheet metadata tool
	getSheetMetadataTool := mcp.NewTool("get_sheet_metadata",
		mcp.WithDescription("Get spreadsheet metadata: title, locale, time zone, and the properties of every sheet/tab"),
		mcp.WithString("spreadsheet_id",
			mcp.Required(),
			mcp.Description("The ID of the spreadsheet"),
		),
	)

	s.AddTool(getSheetMetadataTool, common.InstrumentedToolHandlerWithService(
		"get_sheet_metadata", instrumentation.ServiceSheets, instrumentation.OperationMetadata, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetSheetMetadata(ctx, request, sc)
		}))

	// List sheets tool
	listSheetsTool := mcp.NewTool("list_sheets",
		mcp.WithDescription("List the sheets/tabs of a spreadsheet in tab order"),
		mcp.WithString("spreadsheet_id",
			mcp.Required(),
			mcp.Description("The ID of the spreadsheet"),
		),
	)

	s.AddTool(listSheetsTool, common.InstrumentedToolHandlerWithService(
		"list_sheets", instrumentation.ServiceSheets, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListSheets(ctx, request, sc)
		}))

	// Search sheet data tool
	searchSheetDataTool := mcp.NewTool("search_sheet_data",
		mcp.WithDescription("Search cell values for a substring. Returns every match with zero-based row and column coordinates."),
		mcp.WithString("spreadsheet_id",
			mcp.Required(),
			mcp.Description("The ID of the spreadsheet"),
		),
		mcp.WithString("search_term",
			mcp.Required(),
			mcp.Description("Substring to search for"),
		),
		mcp.WithString("sheet_name",
			mcp.Description("Sheet/tab to search. Omit to search every sheet in tab order."),
		),
		mcp.WithBoolean("case_sensitive",
			mcp.Description("Whether matching is case-sensitive (default: true)"),
		),
	)

	s.AddTool(searchSheetDataTool, common.InstrumentedToolHandlerWithService(
		"search_sheet_data", instrumentation.ServiceSheets, instrumentation.OperationSearch, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSearchSheetData(ctx, request, sc)
		}))

	// Get range data tool
	getRangeDataTool := mcp.NewTool("get_range_data",
		mcp.WithDescription("Read cell values from an explicit A1 range of a spreadsheet"),
		mcp.WithString("spreadsheet_id",
			mcp.Required(),
			mcp.Description("The ID of the spreadsheet"),
		),
		mcp.WithString("range",
			mcp.Required(),
			mcp.Description("A1 notation range to read (e.g. 'Sheet1!A1:C10')"),
		),
		mcp.WithString("render_option",
			mcp.Description("How values are rendered: FORMATTED_VALUE (default), UNFORMATTED_VALUE, or FORMULA"),
		),
	)

	s.AddTool(getRangeDataTool, common.InstrumentedToolHandlerWithService(
		"get_range_data", instrumentation.ServiceSheets, instrumentation.OperationRead, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetRangeData(ctx, request, sc)
		}))

	return nil
}

func handleReadSheetData(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args, err := parseReadSheetDataArgs(request.GetArguments())
	if err != nil {
		return common.ErrorResult(err), nil
	}

	client, err := sc.SheetsClient()
	if err != nil {
		return common.ErrorResult(err), nil
	}

	data, err := client.ReadRange(ctx, args.SpreadsheetID, args.Range, args.RenderOption)
	if err != nil {
		return common.ErrorResult(err), nil
	}

	return common.JSONResult(data), nil
}

func handleGetSheetMetadata(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args, err := parseGetSheetMetadataArgs(request.GetArguments())
	if err != nil {
		return common.ErrorResult(err), nil
	}

	client, err := sc.SheetsClient()
	if err != nil {
		return common.ErrorResult(err), nil
	}

	metadata, err := client.GetMetadata(ctx, args.SpreadsheetID)
	if err != nil {
		return common.ErrorResult(err), nil
	}

	return common.JSONResult(metadata), nil
}

func handleListSheets(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args, err := parseListSheetsArgs(request.GetArguments())
	if err != nil {
		return common.ErrorResult(err), nil
	}

	client, err := sc.SheetsClient()
	if err != nil {
		return common.ErrorResult(err), nil
	}

	sheetList, err := client.ListSheets(ctx, args.SpreadsheetID)
	if err != nil {
		return common.ErrorResult(err), nil
	}

	return common.JSONResult(sheetList), nil
}

// searchResult is the payload returned by search_sheet_data.
type searchResult struct {
	SpreadsheetID string             `json:"spreadsheetId"`
	SearchTerm    string             `json:"searchTerm"`
	CaseSensitive bool               `json:"caseSensitive"`
	Matches       []sheets.CellMatch `json:"matches"`
}

func handleSearchSheetData(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args, err := parseSearchSheetDataArgs(request.GetArguments())
	if err != nil {
		return common.ErrorResult(err), nil
	}

	client, err := sc.SheetsClient()
	if err != nil {
		return common.ErrorResult(err), nil
	}

	matches, err := client.SearchValues(ctx, args.SpreadsheetID, args.SearchTerm, sheets.SearchOptions{
		SheetName:     args.SheetName,
		CaseSensitive: args.CaseSensitive,
	})
	if err != nil {
		return common.ErrorResult(err), nil
	}

	if matches == nil {
		matches = []sheets.CellMatch{}
	}

	return common.JSONResult(searchResult{
		SpreadsheetID: args.SpreadsheetID,
		SearchTerm:    args.SearchTerm,
		CaseSensitive: args.CaseSensitive,
		Matches:       matches,
	}), nil
}

func handleGetRangeData(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args, err := parseGetRangeDataArgs(request.GetArguments())
	if err != nil {
		return common.ErrorResult(err), nil
	}

	client, err := sc.SheetsClient()
	if err != nil {
		return common.ErrorResult(err), nil
	}

	data, err := client.ReadRange(ctx, args.SpreadsheetID, args.Range, args.RenderOption)
	if err != nil {
		return common.ErrorResult(err), nil
	}

	return common.JSONResult(data), nil
}
