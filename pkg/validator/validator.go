package validator

import (
	"reflect"
	"strings"

	"go-stock-api/internal/model"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a request field name to the message explaining why it was
// rejected. It doubles as an error so services can return it directly.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	return "invalid fields: " + strings.Join(fields, ", ")
}

var validate = validator.New()

func init() {
	// Report errors under the json field name, not the Go field name
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Validate Date fields as time values; without this the library would
	// recurse into the struct and skip tags like required entirely.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(model.Date); ok {
			return d.Time
		}
		return nil
	}, model.Date{})
}

// ValidateStruct checks the struct's validate tags and returns nil when the
// value is acceptable.
func ValidateStruct(data interface{}) FieldErrors {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	errs := FieldErrors{}
	for _, fe := range err.(validator.ValidationErrors) {
		errs[fe.Field()] = message(fe)
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return "Ensure this field has no more than " + fe.Param() + " characters."
	case "email":
		return "Enter a valid email address."
	default:
		return "Invalid value."
	}
}
