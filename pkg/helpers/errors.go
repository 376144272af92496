package helpers

import (
	"errors"
	"net/http"
)

// AppError is the single domain error kind. StatusCode follows HTTP semantics so
// handlers can surface it without a translation table.
type AppError struct {
	StatusCode int
	Message    string
	Err        error
}

// NewAppError builds an AppError. The status defaults to 500 when omitted.
func NewAppError(message string, statusCode ...int) *AppError {
	code := http.StatusInternalServerError
	if len(statusCode) > 0 && statusCode[0] != 0 {
		code = statusCode[0]
	}
	return &AppError{StatusCode: code, Message: message}
}

// WrapAppError attaches an underlying cause to a new AppError.
func WrapAppError(err error, message string, statusCode int) *AppError {
	e := NewAppError(message, statusCode)
	e.Err = err
	return e
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// StatusOf returns the status carried by an AppError anywhere in err's chain, 500 otherwise.
func StatusOf(err error) int {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.StatusCode
	}
	return http.StatusInternalServerError
}
