package rest_err

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Causes struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func NewCause(field, message string) Causes {
	return Causes{
		Field:   field,
		Message: message,
	}
}

// NewBindingError converte uma falha de binding do gin em 400, com uma
// causa por campo rejeitado.
func NewBindingError(message string, err error) *RestErr {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewBadRequestValidationError(message, []Causes{NewCause("body", err.Error())})
	}

	causes := make([]Causes, 0, len(verrs))
	for _, fe := range verrs {
		causes = append(causes, NewCause(strings.ToLower(fe.Field()), describeTag(fe)))
	}
	return NewBadRequestValidationError(message, causes)
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	default:
		return fmt.Sprintf("failed on %q validation", fe.Tag())
	}
}
