package usecase

import "errors"

// ErrInvalidInput is matched by every validation failure.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError carries a message fit to show the user as-is.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalidInput(msg string) error {
	return &InvalidInputError{Message: msg}
}
