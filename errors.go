package main

import "errors"

// Service-level failures, mapped to HTTP statuses in handlers.go.
var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrEmailTaken          = errors.New("user already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrTransactionNotFound = errors.New("expense not found")
)

// ValidationError reports a field-level schema violation.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErr(msg string) error { return &ValidationError{Msg: msg} }

// isValidation reports whether err is a field-level validation failure.
func isValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
