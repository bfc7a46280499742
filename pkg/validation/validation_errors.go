package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldMessages maps json field names to the user-facing message shown by the
// form layer. The client-side forms display these same strings, so both sides
// of the boundary report identical feedback.
var fieldMessages = map[string]string{
	"name":           "Name must be at least 2 characters",
	"phone":          "Phone number must be at least 10 digits",
	"email":          "Please enter a valid email address",
	"message":        "Message must be at least 10 characters",
	"service":        "Please select a service",
	"date":           "Please select a preferred date",
	"city":           "City is required",
	"state":          "State is required",
	"registrationNo": "Vehicle registration number is required",
	"vehicleBrand":   "Vehicle brand is required",
	"vehicleModel":   "Vehicle model is required",
}

// RegisterTagName makes the validator report fields by their json tag so that
// error details line up with the wire format instead of Go struct names.
func RegisterTagName(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// FieldErrors converts a validator error into a map of json field name to the
// list of user-facing messages for that field.
func FieldErrors(err error) map[string][]string {
	details := make(map[string][]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		details["form"] = []string{err.Error()}
		return details
	}

	for _, e := range validationErrors {
		field := e.Field()
		details[field] = append(details[field], fieldMessage(field, e))
	}

	return details
}

func fieldMessage(field string, e validator.FieldError) string {
	if msg, ok := fieldMessages[field]; ok {
		return msg
	}

	// Fallback for fields without a curated message
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, e.Param())
	case "email":
		return "Please enter a valid email address"
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
