package serverutils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks a DTO against its validate tags. Field-level detail
// is deliberately collapsed into one generic outcome: the widget client never
// learns which field failed.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return NewValidationError("Invalid input data")
	}
	return nil
}
