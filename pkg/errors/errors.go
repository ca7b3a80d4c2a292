package errors

import (
	"errors"
	"fmt"
)

// AppError carries a business error code plus a client-safe message.
// The wrapped Err is for logs only and is never serialized.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap supports errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError with the given code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap converts a low-level error into an internal AppError, keeping the
// cause for logging.
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// Business error codes.
// 4xxxx are client errors, 5xxxx are server errors.
const (
	// Server errors (50000-50099)
	ErrCodeInternal = 50000

	// Authentication (40100-40199)
	ErrCodeUnauthorized = 40100

	// Missing resources (40400-40499)
	ErrCodeNotFound     = 40400
	ErrCodeBookNotFound = 40402

	// Business rules (40000-40099)
	ErrCodeBusinessError     = 40000
	ErrCodeInsufficientStock = 40001

	// Request errors (40900-40999)
	ErrCodeInvalidParams = 40900
	ErrCodeMissingBody   = 40901
	ErrCodeMissingFields = 40902
)

var (
	ErrInternal     = New(ErrCodeInternal, "Internal server error")
	ErrUnauthorized = New(ErrCodeUnauthorized, "Unauthorized - Invalid API Key")
	ErrMissingBody  = New(ErrCodeMissingBody, "JSON body is required")
)

// IsAppError reports whether err is (or wraps) an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the AppError from err, wrapping unknown errors as
// internal so nothing low-level leaks to clients.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "Internal server error")
}
