package utils

import (
	"errors"
	"net/http"
)

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons.
var (
	ErrEmailExists       = errors.New("email_exists")
	ErrSlugExists        = errors.New("slug_exists")
	ErrSKUExists         = errors.New("sku_exists")
	ErrNotFound          = errors.New("not_found")
	ErrInsufficientStock = errors.New("insufficient_stock")
	ErrNoRowsUpdated     = errors.New("no_rows_updated")
)

// AppError is the structured error the service layer hands to controllers.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{StatusCode: status, Code: code, Message: message, Err: err}
}

// Constructors for the error taxonomy used across the services.

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, ErrCodeUnauthorized, message, nil)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, ErrCodeForbidden, message, nil)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, ErrCodeConflict, message, nil)
}

func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, ErrCodeNotFound, message, nil)
}

func BadRequest(code, message string) *AppError {
	return NewAppError(http.StatusBadRequest, code, message, nil)
}

func Internal(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", err)
}

// HandleAppError centralizes responding to AppErrors.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, nil, appErr.Err)
	} else {
		RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", nil, err)
	}
}
