package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context, keeping the code of an
// AppError found anywhere in the chain
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	code := CodeInternalError
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		code = appErr.Code
	}
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// WithCode adds an error code to an existing error
func WithCode(code string, err error) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    code,
			Message: appErr.Message,
			Cause:   appErr.Cause,
		}
	}
	return &AppError{
		Code:    code,
		Message: err.Error(),
		Cause:   err,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// GetCode returns the code of the outermost AppError in the chain, or "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// HTTPStatus maps an error code onto a response status
func HTTPStatus(err error) int {
	switch GetCode(err) {
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeNotFound, CodeFileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Predefined error codes
const (
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeNotFound      = "NOT_FOUND"
	CodeInternalError = "INTERNAL_ERROR"
	CodeInvalidInput  = "INVALID_INPUT"
	CodeFileNotFound  = "FILE_NOT_FOUND"
	CodeParseError    = "PARSE_ERROR"
	CodeRenderError   = "RENDER_ERROR"
)

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource))
}

func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

// FileNotFound reports a missing input file
func FileNotFound(path string) *AppError {
	return New(CodeFileNotFound, fmt.Sprintf("data file not found: %s", path))
}

// ParseError reports malformed input content
func ParseError(path string, cause error) *AppError {
	return &AppError{
		Code:    CodeParseError,
		Message: fmt.Sprintf("failed to parse %s", path),
		Cause:   cause,
	}
}

// RenderError reports a chart or document that could not be produced
func RenderError(what string, cause error) *AppError {
	return &AppError{
		Code:    CodeRenderError,
		Message: fmt.Sprintf("failed to render %s", what),
		Cause:   cause,
	}
}
