package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError carries the domain error taxonomy to the HTTP edge. Services
// build them with the constructors below; handlers only read Status/Message.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Validation(message string, err error) *AppError {
	return &AppError{Code: "VALIDATION_ERROR", Message: message, Status: http.StatusBadRequest, Err: err}
}

func Unauthorized(message string, err error) *AppError {
	return &AppError{Code: "UNAUTHORIZED", Message: message, Status: http.StatusUnauthorized, Err: err}
}

func Forbidden(message string, err error) *AppError {
	return &AppError{Code: "FORBIDDEN", Message: message, Status: http.StatusForbidden, Err: err}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{Code: "NOT_FOUND", Message: fmt.Sprintf("%s not found", resource), Status: http.StatusNotFound, Err: err}
}

func Conflict(message string, err error) *AppError {
	return &AppError{Code: "CONFLICT", Message: message, Status: http.StatusConflict, Err: err}
}

// Internal deliberately hides err from the response body; it is only logged.
func Internal(message string, err error) *AppError {
	return &AppError{Code: "INTERNAL_ERROR", Message: message, Status: http.StatusInternalServerError, Err: err}
}

func Storage(err error) *AppError {
	return &AppError{Code: "STORAGE_ERROR", Message: "file storage failure", Status: http.StatusInternalServerError, Err: err}
}

func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// From returns err as *AppError, wrapping unknown errors as Internal so the
// edge never leaks driver or storage detail.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("Internal server error", err)
}
