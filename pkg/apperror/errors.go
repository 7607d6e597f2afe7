package apperror

import (
	"errors"
	"net/http"
)

// Wire-level error codes surfaced in the response envelope.
const (
	CodeNotFound    = "NOT_FOUND"
	CodeValidation  = "VALIDATION_ERROR"
	CodeBadRequest  = "BAD_REQUEST"
	CodeServerError = "SERVER_ERROR"
)

// AppError represents an application error with an HTTP status code and a
// stable wire code.
type AppError struct {
	Status  int          `json:"-"`
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"details,omitempty"`
}

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// NewAppError creates a new application error.
func NewAppError(status int, code, message string) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a validation error carrying the complete list
// of field errors, not just the first failure.
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Status:  http.StatusBadRequest,
		Code:    CodeValidation,
		Message: "Validation error",
		Fields:  fieldErrors,
	}
}

// NewNotFoundError creates a not found error for the named resource.
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Status:  http.StatusNotFound,
		Code:    CodeNotFound,
		Message: resource + " not found",
	}
}

// NewBadRequestError creates a bad request error with a custom message.
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Status:  http.StatusBadRequest,
		Code:    CodeBadRequest,
		Message: message,
	}
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == CodeNotFound
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == CodeValidation
}

// GetAppError converts an error to an AppError. Unclassified errors become
// generic server errors; their detail is for server-side logs only.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Status:  http.StatusInternalServerError,
		Code:    CodeServerError,
		Message: "Internal server error",
	}
}
