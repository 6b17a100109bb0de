package drive_tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/okibi/sheets-mcp/internal/drive"
	"github.com/okibi/sheets-mcp/internal/instrumentation"
	"github.com/okibi/sheets-mcp/internal/server"
	"github.com/okibi/sheets-mcp/internal/tools/common"
)

// RegisterDriveTools registers the spreadsheet discovery tools with the MCP
// server. The tools are always registered; the OAuth requirement is checked
// per call so the error can explain the capability gap.
func RegisterDriveTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// List spreadsheets tool
	listSpreadsheetsTool := mcp.NewTool("list_spreadsheets",
		mcp.WithDescription("List spreadsheets accessible to the authenticated user. Requires OAuth; not available with an API key."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of spreadsheets to return (default: 20)"),
		),
		mcp.WithString("order_by",
			mcp.Description("Sort order: name, modifiedTime, or createdTime, each optionally followed by ' desc' (default: 'modifiedTime desc')"),
		),
		mcp.WithString("page_token",
			mcp.Description("Token from a previous response to fetch the next page"),
		),
	)

	s.AddTool(listSpreadsheetsTool, common.InstrumentedToolHandlerWithService(
		"list_spreadsheets", instrumentation.ServiceDrive, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListSpreadsheets(ctx, request, sc)
		}))

	// Search spreadsheets by name tool
	searchSpreadsheetsTool := mcp.NewTool("search_spreadsheets_by_name",
		mcp.WithDescription("Search spreadsheets by file name. Requires OAuth; not available with an API key."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("File name to search for"),
		),
		mcp.WithBoolean("exact_match",
			mcp.Description("Match the name exactly instead of as a substring (default: false). Substring matching is case-insensitive on the Drive side."),
		),
	)

	s.AddTool(searchSpreadsheetsTool, common.InstrumentedToolHandlerWithService(
		"search_spreadsheets_by_name", instrumentation.ServiceDrive, instrumentation.OperationSearch, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSearchSpreadsheetsByName(ctx, request, sc)
		}))

	return nil
}

// spreadsheetListResult is the payload returned by both discovery tools.
type spreadsheetListResult struct {
	Spreadsheets  []drive.SpreadsheetInfo `json:"spreadsheets"`
	NextPageToken string                  `json:"nextPageToken,omitempty"`
}

func handleListSpreadsheets(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args, err := parseListSpreadsheetsArgs(request.GetArguments())
	if err != nil {
		return common.ErrorResult(err), nil
	}

	client, err := sc.DriveClient()
	if err != nil {
		return common.ErrorResult(err), nil
	}

	infos, nextPageToken, err := client.ListSpreadsheets(ctx, drive.ListOptions{
		MaxResults: args.Limit,
		OrderBy:    args.OrderBy,
		PageToken:  args.PageToken,
	})
	if err != nil {
		return common.ErrorResult(err), nil
	}

	if infos == nil {
		infos = []drive.SpreadsheetInfo{}
	}

	return common.JSONResult(spreadsheetListResult{
		Spreadsheets:  infos,
		NextPageToken: nextPageToken,
	}), nil
}

func handleSearchSpreadsheetsByName(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args, err := parseSearchSpreadsheetsArgs(request.GetArguments())
	if err != nil {
		return common.ErrorResult(err), nil
	}

	client, err := sc.DriveClient()
	if err != nil {
		return common.ErrorResult(err), nil
	}

	infos, nextPageToken, err := client.SearchByName(ctx, args.Name, args.ExactMatch)
	if err != nil {
		return common.ErrorResult(err), nil
	}

	if infos == nil {
		infos = []drive.SpreadsheetInfo{}
	}

	return common.JSONResult(spreadsheetListResult{
		Spreadsheets:  infos,
		NextPageToken: nextPageToken,
	}), nil
}
