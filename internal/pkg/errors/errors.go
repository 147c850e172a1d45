package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// AppError is the only error type produced by the schema and client layers.
// Handlers branch on Kind instead of introspecting generic error values.
type AppError struct {
	Kind       Kind     `json:"kind"`
	Message    string   `json:"message"`
	Fields     []string `json:"fields,omitempty"`
	StatusCode int      `json:"-"`
}

func (e *AppError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, strings.Join(e.Fields, "; "))
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// As unwraps err into an *AppError when it is one.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf reports the kind of err, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return KindUnknown
}
