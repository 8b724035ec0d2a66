package apperror

import "net/http"

// FieldError carries a per-field validation message for the response envelope.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type AppError struct {
	Code    int          `json:"code"`
	ErrCode string       `json:"error"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
	Err     error        `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, errCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		ErrCode: errCode,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, "VALIDATION_ERROR", message, nil)
}

// Validation is a BadRequest with per-field details attached.
func Validation(message string, details []FieldError) *AppError {
	e := BadRequest(message)
	e.Details = details
	return e
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, "UNAUTHORIZED", message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, "FORBIDDEN", message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, "NOT_FOUND", message, nil)
}

func Conflict(message string) *AppError {
	return New(http.StatusConflict, "CONFLICT", message, nil)
}

// InUse marks a delete blocked by rows referencing the target.
func InUse(message string) *AppError {
	return New(http.StatusConflict, "RESOURCE_IN_USE", message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal Server Error", err)
}
