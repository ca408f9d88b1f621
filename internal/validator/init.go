// Package validator holds the shared validation instance used for payload
// checks outside gin's binding layer, such as registration credentials.
package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

// GetValidator returns the shared validator instance.
func GetValidator() *validator.Validate {
	return validate
}
