package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/velastore/vela/internal/domain"
)

// validate is the shared validator instance. Struct tags on the service
// input types describe the rules.
var validate = validator.New(validator.WithRequiredStructEnabled())

// validateInput runs struct validation and converts the first failure into
// a user-facing EINVALID error.
func validateInput(op string, input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return domain.Invalid(op, "invalid input")
	}

	fe := errs[0]
	var msg string
	switch fe.Tag() {
	case "required":
		msg = fmt.Sprintf("%s is required", fe.Field())
	case "uuid":
		msg = fmt.Sprintf("%s must be a valid UUID", fe.Field())
	case "min":
		msg = fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		msg = fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "email":
		msg = fmt.Sprintf("%s must be a valid email address", fe.Field())
	default:
		msg = fmt.Sprintf("%s is invalid", fe.Field())
	}

	return domain.Invalid(op, msg)
}
