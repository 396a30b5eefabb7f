package domain

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate runs struct validation against the shared validator instance.
func Validate(v any) error {
	return validate.Struct(v)
}
