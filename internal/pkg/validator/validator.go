package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// coordPair matches "<lon>;<lat>": optionally signed decimals, one semicolon,
// no surrounding whitespace.
var coordPair = regexp.MustCompile(`^-?\d+(\.\d+)?;-?\d+(\.\d+)?$`)

func init() {
	validate = validator.New()

	// Report json field names in validation errors, not Go field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	_ = validate.RegisterValidation("coordpair", func(fl validator.FieldLevel) bool {
		return coordPair.MatchString(fl.Field().String())
	})
}

// Validate runs struct tag validation on s.
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator exposes the underlying instance for custom configuration.
func GetValidator() *validator.Validate {
	return validate
}
