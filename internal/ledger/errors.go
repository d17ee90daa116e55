package ledger

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation references a record that is no
// longer in the store.
var ErrNotFound = errors.New("record not found")

// ValidationError is returned for malformed or out-of-range input: a blank
// required field, a non-positive amount, a payment exceeding the supplier's
// debt, or a non-positive exchange rate. The store is left unchanged.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field %q: %s", e.Field, e.Message)
}

func validationErr(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
