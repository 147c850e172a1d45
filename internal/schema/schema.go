// Package schema declares the expected shapes of every upstream JSON payload
// and the parse operations that enforce them. Two independent families exist
// (places and journeys/transport); callers pick the one matching the endpoint
// they invoked.
package schema

import (
	"encoding/json"
	stderrors "errors"
	"fmt"

	v10 "github.com/go-playground/validator/v10"

	apperrors "github.com/Les-Cavistes/transit-gateway/internal/pkg/errors"
	"github.com/Les-Cavistes/transit-gateway/internal/pkg/validator"
)

// decode unmarshals raw into dst and enforces the declared shape. Types are
// never coerced: a JSON value of the wrong kind is a field mismatch, and so is
// a missing required field. Fields not declared on dst are ignored.
func decode(raw []byte, dst interface{}) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if stderrors.As(err, &typeErr) {
			field := typeErr.Field
			if field == "" {
				field = "(root)"
			}
			return apperrors.Validation([]string{
				fmt.Sprintf("%s: expected %s, got %s", field, typeErr.Type, typeErr.Value),
			})
		}
		return apperrors.Validation([]string{err.Error()})
	}

	if err := validator.Validate(dst); err != nil {
		var fieldErrs v10.ValidationErrors
		if stderrors.As(err, &fieldErrs) {
			fields := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				fields = append(fields, fmt.Sprintf("%s: %s", fe.Namespace(), fe.Tag()))
			}
			return apperrors.Validation(fields)
		}
		return apperrors.Validation([]string{err.Error()})
	}

	return nil
}
