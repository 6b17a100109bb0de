package drive_tools

import (
	"github.com/okibi/sheets-mcp/internal/google"
	"github.com/okibi/sheets-mcp/internal/tools/common"
)

const (
	defaultListLimit = 20
	defaultOrderBy   = "modifiedTime desc"
)

// orderByFields are the Drive files.list sort fields the tool accepts,
// each optionally suffixed with " desc".
var orderByFields = map[string]bool{
	"name":         true,
	"modifiedTime": true,
	"createdTime":  true,
}

type listSpreadsheetsArgs struct {
	Limit     int
	OrderBy   string
	PageToken string
}

func parseListSpreadsheetsArgs(raw map[string]interface{}) (listSpreadsheetsArgs, error) {
	var args listSpreadsheetsArgs
	var err error

	if args.Limit, err = common.OptionalPositiveInt(raw, "limit", defaultListLimit); err != nil {
		return args, err
	}
	if args.OrderBy, err = parseOrderBy(raw); err != nil {
		return args, err
	}
	if args.PageToken, err = common.OptionalString(raw, "page_token"); err != nil {
		return args, err
	}
	return args, nil
}

type searchSpreadsheetsArgs struct {
	Name       string
	ExactMatch bool
}

func parseSearchSpreadsheetsArgs(raw map[string]interface{}) (searchSpreadsheetsArgs, error) {
	var args searchSpreadsheetsArgs
	var err error

	if args.Name, err = common.RequiredString(raw, "name"); err != nil {
		return args, err
	}
	if args.ExactMatch, err = common.OptionalBool(raw, "exact_match", false); err != nil {
		return args, err
	}
	return args, nil
}

// parseOrderBy validates the optional order_by argument against the field
// allowlist before it is embedded in a Drive query.
func parseOrderBy(raw map[string]interface{}) (string, error) {
	orderBy, err := common.OptionalString(raw, "order_by")
	if err != nil {
		return "", err
	}
	if orderBy == "" {
		return defaultOrderBy, nil
	}

	field := orderBy
	if n := len(orderBy) - len(" desc"); n > 0 && orderBy[n:] == " desc" {
		field = orderBy[:n]
	}
	if !orderByFields[field] {
		return "", google.Errorf(google.KindValidation,
			"order_by must be one of name, modifiedTime, createdTime, each optionally followed by ' desc'")
	}
	return orderBy, nil
}
