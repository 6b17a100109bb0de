package sheets

import (
	"context"
	"fmt"
	"strings"

	"github.com/okibi/sheets-mcp/internal/google"
)

// SearchOptions controls how cell values are matched.
type SearchOptions struct {
	// SheetName restricts the search to a single sheet. When empty, every
	// sheet of the spreadsheet is scanned in tab order.
	SheetName string

	// CaseSensitive selects case-sensitive substring matching (the default
	// exposed by the tools). When false, both the term and the cell value
	// are lowered before comparison.
	CaseSensitive bool
}

// SearchValues searches a spreadsheet for cells containing searchTerm as a
// substring. Every cell of every scanned sheet is visited; there is no early
// termination, so the result is complete. Matches carry zero-based row and
// column coordinates.
func (c *Client) SearchValues(ctx context.Context, spreadsheetID, searchTerm string, opts SearchOptions) ([]CellMatch, error) {
	if spreadsheetID == "" {
		return nil, google.NewError(google.KindValidation, "spreadsheet_id is required")
	}
	if searchTerm == "" {
		return nil, google.NewError(google.KindValidation, "search_term is required")
	}

	var sheetNames []string
	if opts.SheetName != "" {
		sheetNames = []string{opts.SheetName}
	} else {
		infos, err := c.ListSheets(ctx, spreadsheetID)
		if err != nil {
			return nil, err
		}
		for _, info := range infos {
			sheetNames = append(sheetNames, info.Title)
		}
	}

	// Sheets are fetched one at a time; search is a single-shot scan and the
	// result order must follow tab order.
	matches := []CellMatch{}
	for _, name := range sheetNames {
		data, err := c.ReadRange(ctx, spreadsheetID, name, "")
		if err != nil {
			return nil, err
		}
		matches = append(matches, scanValues(name, data.Values, searchTerm, opts.CaseSensitive)...)
	}

	return matches, nil
}

// scanValues performs the linear scan over a sheet's values, recording the
// zero-based coordinates of every cell whose string form contains term.
func scanValues(sheetName string, values [][]interface{}, term string, caseSensitive bool) []CellMatch {
	if !caseSensitive {
		term = strings.ToLower(term)
	}

	var matches []CellMatch
	for rowIdx, row := range values {
		for colIdx, cell := range row {
			text := cellString(cell)
			if !caseSensitive {
				text = strings.ToLower(text)
			}
			if strings.Contains(text, term) {
				matches = append(matches, CellMatch{
					Sheet:  sheetName,
					Row:    rowIdx,
					Column: colIdx,
					Value:  cell,
				})
			}
		}
	}
	return matches
}

// cellString renders a cell value the way it is compared during search.
func cellString(cell interface{}) string {
	if s, ok := cell.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", cell)
}
