// Package errors provides the structured error type used across krds.
//
// The navigation core never returns errors for malformed trees; these types
// exist for the loaders, the validator and the CLI that report configuration
// problems back to whoever owns the navigation file.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeInternal   ErrorType = "internal"
)

// NavError is a structured error type with context.
type NavError struct {
	Type    ErrorType
	Code    string
	Message string
	Cause   error
	// Path is the dot-joined node path the error refers to, if any.
	Path     string
	FilePath string
	Context  map[string]interface{}
}

// Error implements the error interface.
func (e *NavError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}

	if e.Path != "" {
		parts = append(parts, "node:"+e.Path)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *NavError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison.
func (e *NavError) Is(target error) bool {
	var t *NavError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *NavError) WithContext(key string, value interface{}) *NavError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithPath records the node path the error refers to.
func (e *NavError) WithPath(path string) *NavError {
	e.Path = path

	return e
}

// WithFile records the navigation file the error came from.
func (e *NavError) WithFile(filePath string) *NavError {
	e.FilePath = filePath

	return e
}

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *NavError {
	return &NavError{
		Type:    ErrorTypeValidation,
		Code:    code,
		Message: message,
	}
}

// NewIOError creates an I/O error.
func NewIOError(code, message string, cause error) *NavError {
	return &NavError{
		Type:    ErrorTypeIO,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *NavError {
	return &NavError{
		Type:    ErrorTypeConfig,
		Code:    code,
		Message: message,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *NavError {
	return &NavError{
		Type:    ErrorTypeInternal,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsValidationError checks if an error is a navigation validation problem.
func IsValidationError(err error) bool {
	var ne *NavError
	if errors.As(err, &ne) {
		return ne.Type == ErrorTypeValidation
	}

	return false
}

// CodeOf returns the code of the first NavError in err's chain, or "".
func CodeOf(err error) string {
	var ne *NavError
	if errors.As(err, &ne) {
		return ne.Code
	}

	return ""
}

// Navigation configuration error codes.
const (
	ErrCodeEmptyTitle     = "NAV_EMPTY_TITLE"
	ErrCodeEmptyLabel     = "NAV_EMPTY_LABEL"
	ErrCodeMissingHref    = "NAV_MISSING_HREF"
	ErrCodeTooDeep        = "NAV_TOO_DEEP"
	ErrCodeMultipleActive = "NAV_MULTIPLE_ACTIVE"
	ErrCodeUnsafeHref     = "NAV_UNSAFE_HREF"
	ErrCodeFileRead       = "NAV_FILE_READ"
	ErrCodeDecode         = "NAV_DECODE"
	ErrCodeConfigInvalid  = "ERR_CONFIG_INVALID"
	ErrCodePathTraversal  = "ERR_PATH_TRAVERSAL"
	ErrCodeInvalidPath    = "ERR_INVALID_PATH"
)

// ErrInvalidPath creates a node path parse error.
func ErrInvalidPath(path string) *NavError {
	return NewValidationError(ErrCodeInvalidPath, "invalid node path: "+path)
}
