package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}

// Message flattens validation failures into a single human readable line for
// the HTTP error body.
func Message(errs []*ErrorResponse) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		switch e.Tag {
		case "required":
			parts = append(parts, fmt.Sprintf("field '%s' is required", e.FailedField))
		case "gt":
			parts = append(parts, fmt.Sprintf("field '%s' must be greater than %s", e.FailedField, e.Value))
		default:
			parts = append(parts, fmt.Sprintf("field '%s' failed on '%s'", e.FailedField, e.Tag))
		}
	}
	return strings.Join(parts, "; ")
}
