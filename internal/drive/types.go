package drive

import "time"

// SpreadsheetInfo is a Drive metadata record for one spreadsheet file
type SpreadsheetInfo struct {
	// ID is the spreadsheet's Drive file ID (usable as a Sheets spreadsheet ID)
	ID string `json:"id"`

	// Name is the file name
	Name string `json:"name"`

	// CreatedTime is when the file was created
	CreatedTime time.Time `json:"createdTime"`

	// ModifiedTime is when the file was last modified
	ModifiedTime time.Time `json:"modifiedTime"`

	// Owners are the display names (or email addresses) of the file owners
	Owners []string `json:"owners,omitempty"`

	// Shared indicates whether the file is shared
	Shared bool `json:"shared"`
}

// ListOptions contains options for listing spreadsheets
type ListOptions struct {
	// MaxResults is the maximum number of spreadsheets to return
	MaxResults int

	// OrderBy specifies the sort order ("name", "modifiedTime desc", ...)
	OrderBy string

	// PageToken is a token for retrieving the next page of results
	PageToken string
}
