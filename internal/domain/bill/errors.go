package bill

import "errors"

var ErrInvalidItem = errors.New("invalid item")

// FillAllFieldsWarning is the message shown to the user when an item is
// rejected.
const FillAllFieldsWarning = "Please fill out all fields"

type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return FillAllFieldsWarning + " (" + e.Field + ")"
}

func (e *ValidationError) Unwrap() error { return ErrInvalidItem }
