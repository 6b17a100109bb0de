package sheets

// Value render options accepted by the Sheets API for values.get.
const (
	RenderFormattedValue   = "FORMATTED_VALUE"
	RenderUnformattedValue = "UNFORMATTED_VALUE"
	RenderFormula          = "FORMULA"
)

// ValidRenderOption reports whether opt is one of the accepted value render
// options. The empty string is not valid; callers apply the default before
// validating.
func ValidRenderOption(opt string) bool {
	switch opt {
	case RenderFormattedValue, RenderUnformattedValue, RenderFormula:
		return true
	}
	return false
}

// SpreadsheetMetadata describes a spreadsheet and its sheets
type SpreadsheetMetadata struct {
	// SpreadsheetID is the spreadsheet's opaque identifier
	SpreadsheetID string `json:"spreadsheetId"`

	// Title is the spreadsheet title
	Title string `json:"title"`

	// Locale is the spreadsheet locale (e.g. "en_US")
	Locale string `json:"locale,omitempty"`

	// TimeZone is the spreadsheet time zone (e.g. "America/New_York")
	TimeZone string `json:"timeZone,omitempty"`

	// Sheets lists the sheets/tabs in order
	Sheets []SheetInfo `json:"sheets"`
}

// SheetInfo describes a single sheet/tab within a spreadsheet
type SheetInfo struct {
	// SheetID is the numeric sheet identifier
	SheetID int64 `json:"sheetId"`

	// Title is the sheet name as shown on the tab
	Title string `json:"title"`

	// Index is the zero-based tab position
	Index int64 `json:"index"`

	// SheetType is the sheet type (GRID, OBJECT, ...)
	SheetType string `json:"sheetType,omitempty"`

	// RowCount is the number of rows in the grid (0 for non-grid sheets)
	RowCount int64 `json:"rowCount,omitempty"`

	// ColumnCount is the number of columns in the grid (0 for non-grid sheets)
	ColumnCount int64 `json:"columnCount,omitempty"`
}

// RangeData holds the values read from a range.
// Rows are returned exactly as the API provides them: trailing empty cells
// are absent, so short rows are not padded to a uniform width.
type RangeData struct {
	// SpreadsheetID is the spreadsheet the values came from
	SpreadsheetID string `json:"spreadsheetId"`

	// Range is the range actually read, in A1 notation
	Range string `json:"range"`

	// RenderOption is the value render option the values were read with
	RenderOption string `json:"renderOption,omitempty"`

	// Values is the 2D sequence of cell values, row-major
	Values [][]interface{} `json:"values"`
}

// CellMatch is a single search hit. Row and Column are zero-based
// coordinates within the scanned sheet.
type CellMatch struct {
	// Sheet is the sheet the match was found in
	Sheet string `json:"sheet"`

	// Row is the zero-based row index
	Row int `json:"row"`

	// Column is the zero-based column index
	Column int `json:"column"`

	// Value is the matched cell's value
	Value interface{} `json:"value"`
}
