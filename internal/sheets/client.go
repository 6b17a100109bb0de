package sheets

import (
	"context"
	"fmt"
	"net/http"

	sheets "google.golang.org/api/sheets/v4"
	"google.golang.org/api/option"

	"github.com/okibi/sheets-mcp/internal/google"
)

// Client wraps the Google Sheets API service
type Client struct {
	service *sheets.Service
}

// NewClient creates a Sheets client from an OAuth-authorized HTTP client
func NewClient(ctx context.Context, httpClient *http.Client) (*Client, error) {
	service, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets service: %w", err)
	}
	return &Client{service: service}, nil
}

// NewClientWithAPIKey creates a Sheets client authorized by a static API key.
// Such a client can only read spreadsheets shared publicly ("anyone with the
// link").
func NewClientWithAPIKey(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("apiKey is required")
	}
	service, err := sheets.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets service: %w", err)
	}
	return &Client{service: service}, nil
}

// ReadRange reads cell values from a range of a spreadsheet. readRange may be
// a full A1-notation range ("Sheet1!A1:C10") or just a sheet name; when it is
// empty the whole first sheet is read, which costs one extra metadata call.
// renderOption must be empty or one of the valid render options.
func (c *Client) ReadRange(ctx context.Context, spreadsheetID, readRange, renderOption string) (*RangeData, error) {
	if spreadsheetID == "" {
		return nil, google.NewError(google.KindValidation, "spreadsheet_id is required")
	}

	if readRange == "" {
		title, err := c.firstSheetTitle(ctx, spreadsheetID)
		if err != nil {
			return nil, err
		}
		readRange = title
	}

	call := c.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx)
	if renderOption != "" {
		call = call.ValueRenderOption(renderOption)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, google.MapAPIError(err)
	}

	return &RangeData{
		SpreadsheetID: spreadsheetID,
		Range:         resp.Range,
		RenderOption:  renderOption,
		Values:        resp.Values,
	}, nil
}

// GetMetadata retrieves structured metadata for a spreadsheet
func (c *Client) GetMetadata(ctx context.Context, spreadsheetID string) (*SpreadsheetMetadata, error) {
	if spreadsheetID == "" {
		return nil, google.NewError(google.KindValidation, "spreadsheet_id is required")
	}

	resp, err := c.service.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, google.MapAPIError(err)
	}

	return convertToMetadata(resp), nil
}

// ListSheets lists the sheets/tabs of a spreadsheet. Only sheet properties
// are requested from the API.
func (c *Client) ListSheets(ctx context.Context, spreadsheetID string) ([]SheetInfo, error) {
	if spreadsheetID == "" {
		return nil, google.NewError(google.KindValidation, "spreadsheet_id is required")
	}

	resp, err := c.service.Spreadsheets.Get(spreadsheetID).
		Context(ctx).
		Fields("sheets.properties").
		Do()
	if err != nil {
		return nil, google.MapAPIError(err)
	}

	infos := make([]SheetInfo, len(resp.Sheets))
	for i, s := range resp.Sheets {
		infos[i] = convertToSheetInfo(s)
	}
	return infos, nil
}

// firstSheetTitle resolves the title of the first sheet of a spreadsheet.
func (c *Client) firstSheetTitle(ctx context.Context, spreadsheetID string) (string, error) {
	infos, err := c.ListSheets(ctx, spreadsheetID)
	if err != nil {
		return "", err
	}
	if len(infos) == 0 {
		return "", google.NewError(google.KindNotFound, "spreadsheet has no sheets")
	}
	return infos[0].Title, nil
}

// convertToMetadata converts a Sheets API Spreadsheet to our metadata type
func convertToMetadata(s *sheets.Spreadsheet) *SpreadsheetMetadata {
	md := &SpreadsheetMetadata{
		SpreadsheetID: s.SpreadsheetId,
		Sheets:        make([]SheetInfo, len(s.Sheets)),
	}
	if s.Properties != nil {
		md.Title = s.Properties.Title
		md.Locale = s.Properties.Locale
		md.TimeZone = s.Properties.TimeZone
	}
	for i, sh := range s.Sheets {
		md.Sheets[i] = convertToSheetInfo(sh)
	}
	return md
}

// convertToSheetInfo converts a Sheets API Sheet to our SheetInfo type
func convertToSheetInfo(s *sheets.Sheet) SheetInfo {
	info := SheetInfo{}
	if s.Properties == nil {
		return info
	}
	info.SheetID = s.Properties.SheetId
	info.Title = s.Properties.Title
	info.Index = s.Properties.Index
	info.SheetType = s.Properties.SheetType
	if s.Properties.GridProperties != nil {
		info.RowCount = s.Properties.GridProperties.RowCount
		info.ColumnCount = s.Properties.GridProperties.ColumnCount
	}
	return info
}
