package errors

import (
	"fmt"
	"net/http"
)

// Kind identifies one member of the closed error taxonomy.
type Kind string

const (
	// KindConfiguration - a required credential is missing. Raised at client
	// construction, before any request can be attempted.
	KindConfiguration Kind = "CONFIGURATION_ERROR"

	// KindInput - a caller-supplied parameter is missing or malformed.
	KindInput Kind = "INVALID_INPUT"

	// KindUpstream - a provider answered with a non-success HTTP status.
	KindUpstream Kind = "UPSTREAM_ERROR"

	// KindValidation - a provider answered 200 with a body that does not match
	// the declared schema. Treated as our integration fault, not the caller's.
	KindValidation Kind = "VALIDATION_ERROR"

	// KindTransport - the provider could not be reached at all.
	KindTransport Kind = "TRANSPORT_ERROR"

	KindUnknown Kind = "UNKNOWN_ERROR"
)

// Configuration reports a missing credential or endpoint named by key.
func Configuration(key string) *AppError {
	return &AppError{
		Kind:       KindConfiguration,
		Message:    fmt.Sprintf("%s is not defined", key),
		StatusCode: http.StatusInternalServerError,
	}
}

// Input reports a bad client-supplied parameter.
func Input(message string) *AppError {
	return &AppError{
		Kind:       KindInput,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// Upstream preserves a provider's non-success status and status text.
func Upstream(statusCode int, statusText string) *AppError {
	return &AppError{
		Kind:       KindUpstream,
		Message:    fmt.Sprintf("API request failed: %s", statusText),
		StatusCode: statusCode,
	}
}

// Validation wraps the field-level mismatches reported by a schema parse.
func Validation(fields []string) *AppError {
	return &AppError{
		Kind:       KindValidation,
		Message:    "response validation failed",
		Fields:     fields,
		StatusCode: http.StatusInternalServerError,
	}
}

// Transport wraps a network-level failure reaching a provider. No upstream
// status exists in this case, so the response defaults to 500.
func Transport(err error) *AppError {
	return &AppError{
		Kind:       KindTransport,
		Message:    fmt.Sprintf("request failed: %v", err),
		StatusCode: http.StatusInternalServerError,
	}
}
