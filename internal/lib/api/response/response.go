package response

import (
	"fmt"

	"github.com/go-playground/validator"
)

// Response is the error envelope; successful handlers render their payload
// directly.
type Response struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func Error(msg string) Response {
	return Response{
		Error: msg,
	}
}

func ValidationError(msg string, errs validator.ValidationErrors) Response {
	var details []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			details = append(details, fmt.Sprintf("Field %s is a required field", err.Field()))
		case "email":
			details = append(details, fmt.Sprintf("Field %s must be a valid email address", err.Field()))
		case "gte":
			details = append(details, fmt.Sprintf("Field %s must be %s or greater", err.Field(), err.Param()))
		default:
			details = append(details, fmt.Sprintf("Field %s is not valid", err.Field()))
		}
	}

	return Response{
		Error:   msg,
		Details: details,
	}
}
