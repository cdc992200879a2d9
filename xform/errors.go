package xform

import (
	"fmt"

	"github.com/pkg/errors"
)

// ValidationError is returned when a present node field is malformed.
type ValidationError struct {
	Field    string
	Expected int
	Got      int
	// Index of the first NaN or Inf element, -1 otherwise
	NonFinite int
	// Index of the first element (or matrix column) that does not fit
	// single precision output, -1 otherwise
	TooLarge int
}

func (e *ValidationError) Error() string {
	if e.NonFinite >= 0 {
		return fmt.Sprintf("node %s[%d] is not a finite number", e.Field, e.NonFinite)
	}
	if e.TooLarge >= 0 {
		return fmt.Sprintf("node %s[%d] exceeds single precision range", e.Field, e.TooLarge)
	}
	return fmt.Sprintf("node %s has %d elements, expected %d", e.Field, e.Got, e.Expected)
}

func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

func lengthError(field string, expected, got int) error {
	return &ValidationError{Field: field, Expected: expected, Got: got, NonFinite: -1, TooLarge: -1}
}

func nonFiniteError(field string, expected, index int) error {
	return &ValidationError{Field: field, Expected: expected, Got: expected, NonFinite: index, TooLarge: -1}
}

func tooLargeError(field string, expected, index int) error {
	return &ValidationError{Field: field, Expected: expected, Got: expected, NonFinite: -1, TooLarge: index}
}
