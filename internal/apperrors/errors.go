package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Standard application errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrValidation     = errors.New("validation failed")
	ErrDuplicate      = errors.New("resource already exists")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("operation already in progress")
	ErrInfrastructure = errors.New("storage unavailable")
	ErrConsistency    = errors.New("period close rolled back")
)

// AppError carries an HTTP-ish status code alongside the wrapped cause.
// errors.Is matches it against the sentinel for its kind.
type AppError struct {
	Code    int
	Message string
	Err     error
	kind    error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) Is(target error) bool {
	return e.kind != nil && target == e.kind
}

// NewAppError wraps err with a code. The kind sentinel is derived from the code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err, kind: kindForCode(code)}
}

// NewNotFoundError reports a missing entity, e.g. NewNotFoundError("service", id).
func NewNotFoundError(entity, id string) *AppError {
	return NewAppError(http.StatusNotFound, fmt.Sprintf("%s %s not found", entity, id), nil)
}

func NewValidationError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, nil)
}

func NewConflictError(message string, err error) *AppError {
	return NewAppError(http.StatusConflict, message, err)
}

// NewConsistencyError marks a multi-step write that failed part way and was rolled back.
func NewConsistencyError(message string, err error) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message, Err: err, kind: ErrConsistency}
}

func kindForCode(code int) error {
	switch code {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrValidation
	case http.StatusConflict:
		return ErrConflict
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusInternalServerError, http.StatusServiceUnavailable:
		return ErrInfrastructure
	}
	return nil
}
