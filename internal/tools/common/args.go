package common

import (
	"math"

	"github.com/okibi/sheets-mcp/internal/google"
)

// RequiredString extracts a required string argument.
// Returns a validation error if the argument is missing, not a string,
// or empty.
func RequiredString(args map[string]interface{}, key string) (string, error) {
	val, ok := args[key]
	if !ok {
		return "", google.Errorf(google.KindValidation, "%s is required", key)
	}
	s, ok := val.(string)
	if !ok {
		return "", google.Errorf(google.KindValidation, "%s must be a string", key)
	}
	if s == "" {
		return "", google.Errorf(google.KindValidation, "%s must not be empty", key)
	}
	return s, nil
}

// OptionalString extracts an optional string argument.
// Returns the empty string when the argument is absent, and a validation
// error when it is present but not a string.
func OptionalString(args map[string]interface{}, key string) (string, error) {
	val, ok := args[key]
	if !ok || val == nil {
		return "", nil
	}
	s, ok := val.(string)
	if !ok {
		return "", google.Errorf(google.KindValidation, "%s must be a string", key)
	}
	return s, nil
}

// OptionalBool extracts an optional boolean argument, returning def when absent.
func OptionalBool(args map[string]interface{}, key string, def bool) (bool, error) {
	val, ok := args[key]
	if !ok || val == nil {
		return def, nil
	}
	b, ok := val.(bool)
	if !ok {
		return def, google.Errorf(google.KindValidation, "%s must be a boolean", key)
	}
	return b, nil
}

// OptionalPositiveInt extracts an optional integer argument, returning def
// when absent. JSON numbers arrive as float64; fractional or non-positive
// values are rejected.
func OptionalPositiveInt(args map[string]interface{}, key string, def int) (int, error) {
	val, ok := args[key]
	if !ok || val == nil {
		return def, nil
	}

	var n int
	switch v := val.(type) {
	case float64:
		if v != math.Trunc(v) {
			return def, google.Errorf(google.KindValidation, "%s must be an integer", key)
		}
		n = int(v)
	case int:
		n = v
	default:
		return def, google.Errorf(google.KindValidation, "%s must be an integer", key)
	}

	if n <= 0 {
		return def, google.Errorf(google.KindValidation, "%s must be a positive integer", key)
	}
	return n, nil
}
