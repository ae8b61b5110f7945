// AngelaMos | 2026
// errors.go

package core

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrNoIdentity   = errors.New("no active identity")
	ErrConflict     = errors.New("conflict")
)

// AppError is an error that knows how it should be rendered to a client.
type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func NewAppError(code, message string, status int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: status,
		Err:        err,
	}
}

func BadRequestError(message string) *AppError {
	return NewAppError("BAD_REQUEST", message, http.StatusBadRequest, ErrInvalidInput)
}

func NotFoundError(resource string) *AppError {
	return NewAppError("NOT_FOUND", resource+" not found", http.StatusNotFound, ErrNotFound)
}

func NoIdentityError() *AppError {
	return NewAppError(
		"NO_IDENTITY",
		"no active identity: log in first",
		http.StatusUnauthorized,
		ErrNoIdentity,
	)
}

func ConflictError(code, message string) *AppError {
	return NewAppError(code, message, http.StatusConflict, ErrConflict)
}

func InternalError(err error) *AppError {
	return NewAppError(
		"INTERNAL_ERROR",
		"an unexpected error occurred",
		http.StatusInternalServerError,
		err,
	)
}
