package google

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

// ErrorKind classifies a tool failure. Kinds are stable strings that appear
// verbatim in the {kind, message} error objects returned to MCP clients.
type ErrorKind string

const (
	// KindAuth means no usable credential is available.
	KindAuth ErrorKind = "auth_error"

	// KindCapability means the operation requires a capability the active
	// credential lacks (e.g. Drive listing with an API key).
	KindCapability ErrorKind = "capability_error"

	// KindValidation means the tool arguments are malformed.
	KindValidation ErrorKind = "validation_error"

	// KindUnknownTool means the tool name is not registered.
	KindUnknownTool ErrorKind = "unknown_tool_error"

	// KindNotFound means the upstream API returned a 404-equivalent.
	KindNotFound ErrorKind = "not_found_error"

	// KindPermission means the upstream API returned a 403-equivalent.
	KindPermission ErrorKind = "permission_error"

	// KindTransient means a network failure or upstream 5xx. Not retried
	// internally; surfaced to the caller.
	KindTransient ErrorKind = "transient_error"
)

// Error is a classified failure with a human-readable message.
type Error struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// NewError creates an Error with the given kind and message.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Errorf creates an Error with a formatted message.
func Errorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// JSON renders the error as the {kind, message} object handed to MCP clients.
func (e *Error) JSON() string {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Sprintf(`{"kind":%q,"message":"failed to encode error"}`, e.Kind)
	}
	return string(data)
}

// AsError extracts an *Error from err's chain, or nil.
func AsError(err error) *Error {
	var ge *Error
	if errors.As(err, &ge) {
		return ge
	}
	return nil
}

// MapAPIError folds an error returned by the Google API client into the
// error taxonomy. Already-classified errors pass through unchanged;
// googleapi errors are mapped by HTTP status; everything else (DNS failures,
// timeouts, connection resets) is treated as transient.
func MapAPIError(err error) *Error {
	if err == nil {
		return nil
	}

	if ge := AsError(err); ge != nil {
		return ge
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusUnauthorized:
			return NewError(KindAuth, apiErr.Message)
		case apiErr.Code == http.StatusForbidden:
			return NewError(KindPermission, messageOrDefault(apiErr, "access to the requested resource is forbidden"))
		case apiErr.Code == http.StatusNotFound:
			return NewError(KindNotFound, messageOrDefault(apiErr, "requested resource was not found"))
		case apiErr.Code == http.StatusBadRequest:
			return NewError(KindValidation, messageOrDefault(apiErr, "the request was rejected as malformed"))
		case apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= 500:
			return Errorf(KindTransient, "upstream error (HTTP %d): %s", apiErr.Code, apiErr.Message)
		default:
			return Errorf(KindTransient, "unexpected upstream status %d: %s", apiErr.Code, apiErr.Message)
		}
	}

	return NewError(KindTransient, err.Error())
}

func messageOrDefault(apiErr *googleapi.Error, fallback string) string {
	if apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
