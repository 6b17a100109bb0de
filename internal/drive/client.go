package drive

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/okibi/sheets-mcp/internal/google"
)

const (
	// SpreadsheetMimeType is the MIME type for Google Sheets files
	SpreadsheetMimeType = "application/vnd.google-apps.spreadsheet"

	// listFields limits files.list responses to the fields we reshape
	listFields = "nextPageToken, files(id, name, createdTime, modifiedTime, owners, shared)"
)

// Client wraps the Google Drive API service
type Client struct {
	service *drive.Service
}

// NewClient creates a Drive client from an OAuth-authorized HTTP client
func NewClient(ctx context.Context, httpClient *http.Client) (*Client, error) {
	service, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}
	return &Client{service: service}, nil
}

// ListSpreadsheets lists spreadsheets accessible to the authenticated user,
// filtered to the spreadsheet MIME type and excluding trashed files.
func (c *Client) ListSpreadsheets(ctx context.Context, opts ListOptions) ([]SpreadsheetInfo, string, error) {
	call := c.service.Files.List().
		Context(ctx).
		Q(spreadsheetQuery("")).
		Fields(listFields)

	if opts.MaxResults > 0 {
		call = call.PageSize(int64(opts.MaxResults))
	}
	if opts.OrderBy != "" {
		call = call.OrderBy(opts.OrderBy)
	}
	if opts.PageToken != "" {
		call = call.PageToken(opts.PageToken)
	}

	fileList, err := call.Do()
	if err != nil {
		return nil, "", google.MapAPIError(err)
	}

	return convertFileList(fileList.Files), fileList.NextPageToken, nil
}

// SearchByName searches spreadsheets by name. With exactMatch the Drive
// query matches the name verbatim; otherwise it uses Drive's "contains"
// operator, which matches case-insensitively on the Drive side.
func (c *Client) SearchByName(ctx context.Context, name string, exactMatch bool) ([]SpreadsheetInfo, string, error) {
	if name == "" {
		return nil, "", google.NewError(google.KindValidation, "name is required")
	}

	op := "contains"
	if exactMatch {
		op = "="
	}
	query := spreadsheetQuery(fmt.Sprintf("name %s '%s'", op, escapeQueryValue(name)))

	fileList, err := c.service.Files.List().
		Context(ctx).
		Q(query).
		PageSize(50).
		Fields(listFields).
		Do()
	if err != nil {
		return nil, "", google.MapAPIError(err)
	}

	return convertFileList(fileList.Files), fileList.NextPageToken, nil
}

// spreadsheetQuery builds a files.list query for non-trashed spreadsheets,
// ANDing in an optional extra clause.
func spreadsheetQuery(extra string) string {
	q := fmt.Sprintf("mimeType='%s' and trashed=false", SpreadsheetMimeType)
	if extra != "" {
		q += " and " + extra
	}
	return q
}

// escapeQueryValue escapes a value for embedding in a single-quoted Drive
// query string literal.
func escapeQueryValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	return strings.ReplaceAll(v, `'`, `\'`)
}

func convertFileList(files []*drive.File) []SpreadsheetInfo {
	infos := make([]SpreadsheetInfo, len(files))
	for i, f := range files {
		infos[i] = convertToSpreadsheetInfo(f)
	}
	return infos
}

// convertToSpreadsheetInfo converts a Drive API File to our SpreadsheetInfo type
func convertToSpreadsheetInfo(f *drive.File) SpreadsheetInfo {
	info := SpreadsheetInfo{
		ID:     f.Id,
		Name:   f.Name,
		Shared: f.Shared,
	}

	if f.CreatedTime != "" {
		if t, err := time.Parse(time.RFC3339, f.CreatedTime); err == nil {
			info.CreatedTime = t
		}
	}
	if f.ModifiedTime != "" {
		if t, err := time.Parse(time.RFC3339, f.ModifiedTime); err == nil {
			info.ModifiedTime = t
		}
	}

	for _, owner := range f.Owners {
		name := owner.DisplayName
		if name == "" {
			name = owner.EmailAddress
		}
		if name != "" {
			info.Owners = append(info.Owners, name)
		}
	}

	return info
}
